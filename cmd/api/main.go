package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/backend/config"
	"github.com/healthtrack/backend/internal/api"
	"github.com/healthtrack/backend/internal/catalog"
	"github.com/healthtrack/backend/internal/database"
	"github.com/healthtrack/backend/internal/middleware"
	"github.com/healthtrack/backend/internal/router"
	"github.com/healthtrack/backend/internal/server"
	"github.com/healthtrack/backend/internal/service"
)

func main() {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the database; New applies the schema migration on open
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Redis backs the plan cache and rate limiting. The API still works
	// without it, so a connection failure only logs a warning.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: redis unavailable, plan caching and rate limiting disabled: %v", err)
		redisClient = nil
	}

	// Reference catalog, with built-in defaults when the CSVs are absent
	cat, err := catalog.Load(cfg.RecipeCSVPath, cfg.WorkoutCSVPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Optional S3 storage for exports
	storage, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: S3 storage unavailable, export uploads disabled: %v", err)
		storage = nil
	}

	// Services
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	logService := service.NewLogService(db)
	plannerService := service.NewPlannerService(cfg, redisClient)
	favoriteService := service.NewFavoriteService(db)
	goalService := service.NewGoalService(db)
	exportService := service.NewExportService(db, storage)

	var planLimiter *middleware.RateLimiter
	if redisClient != nil {
		planLimiter = middleware.NewPlanGenerationRateLimiter(redisClient)
	}

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(profileService),
		Metrics:   api.NewMetricsHandler(profileService),
		Logs:      api.NewLogHandler(logService, cat),
		Catalog:   api.NewCatalogHandler(cat),
		Planner:   api.NewPlannerHandler(plannerService, cat, planLimiter),
		Favorites: api.NewFavoriteHandler(favoriteService),
		Goals:     api.NewGoalHandler(goalService),
		Export:    api.NewExportHandler(exportService),
	}

	engine := router.SetupRouter(handlers, authService)
	srv := server.New(cfg.ServerHost+":"+cfg.ServerPort, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Block until we receive a signal or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
