package v1

import (
	"net/http"

	"go-resume-backend/config"
	"go-resume-backend/internal/command"
	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/auth"
	"go-resume-backend/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Manager  *usecase.ResumeManager
	Bus      *command.Bus
	Jobs     domain.JobRepository
	Cache    cache.TagCache
	Verifier *auth.Verifier
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can short-circuit the request.
	r.Use(middleware.CORSMiddleware([]string{deps.Config.FrontendURL}))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig()))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier))
	{
		NewResourceHandler(protected, deps.Manager, deps.Bus, deps.Cache)
		NewJobHandler(v1, protected, deps.Jobs, deps.Bus, deps.Cache)
	}

	return r
}
