package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-backend/config"
	_ "go-resume-backend/docs" // Important for Swagger
	"go-resume-backend/internal/command"
	v1 "go-resume-backend/internal/delivery/http/v1"
	"go-resume-backend/internal/registry"
	"go-resume-backend/internal/repository/postgres"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/auth"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/database"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/redis"
	"go-resume-backend/pkg/validation"
)

// @title           Resume Backend API
// @version         1.0
// @description     Backend for resume builder and job board using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(slog.LevelInfo)
	logger.Log.Info("Starting resume backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Cache
	var tagCache cache.TagCache
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, caching in process memory", "error", err)
		tagCache = cache.NewMemory()
	} else {
		tagCache = cache.NewRedis(redis.Client())
		defer redis.Close()
	}

	// 5. Setup Repositories
	resumeStore := postgres.NewResumeStore(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)

	// 6. Setup Resource Registry and Manager
	validate := validation.New()
	resources := registry.New()
	manager := usecase.NewResumeManager(resources, resumeStore, validate)

	// 7. Setup Command Bus
	bus := command.NewBus()
	command.NewResumeHandlers(manager, tagCache).Register(bus)
	command.NewJobHandlers(jobRepo, validate, tagCache).Register(bus)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Manager:  manager,
		Bus:      bus,
		Jobs:     jobRepo,
		Cache:    tagCache,
		Verifier: auth.NewVerifier(cfg.JWTSecret),
		Config:   cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
