package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Error      any    `json:"error,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
}

// Success sends a success response.
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		StatusCode: code,
		Message:    message,
		Data:       data,
		RequestID:  requestID(c),
	})
}

// Error sends an error response. err carries structured details such as
// the field violation map.
func Error(c *gin.Context, code int, message string, err any) {
	c.JSON(code, Response{
		StatusCode: code,
		Message:    message,
		Error:      err,
		RequestID:  requestID(c),
	})
}

func requestID(c *gin.Context) string {
	id, _ := c.Get("RequestID")
	s, _ := id.(string)
	return s
}
