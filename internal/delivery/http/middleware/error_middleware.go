package middleware

import (
	"errors"
	"net/http"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors appended to the gin context into the
// fixed transport statuses. The core never sees HTTP codes; this is the
// single place where the taxonomy meets the wire.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(c, http.StatusBadRequest, "Invalid input", validationErr.Violations)
			return
		}

		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}

		var (
			unknownErr *domain.UnknownResourceError
			userErr    *domain.MissingUserContextError
			dateErr    *domain.InvalidDateError
			mediaErr   *domain.UnsupportedMediaError
			typeErr    *domain.FieldTypeError
		)
		switch {
		case errors.As(err, &unknownErr),
			errors.As(err, &userErr),
			errors.As(err, &dateErr),
			errors.As(err, &mediaErr),
			errors.As(err, &typeErr):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("unhandled request error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
