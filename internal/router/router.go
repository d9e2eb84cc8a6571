package router

import (
	"github.com/gin-gonic/gin"

	"github.com/healthtrack/backend/internal/api"
	"github.com/healthtrack/backend/internal/middleware"
)

// Handlers holds every route handler the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Profile   *api.ProfileHandler
	Metrics   *api.MetricsHandler
	Logs      *api.LogHandler
	Catalog   *api.CatalogHandler
	Planner   *api.PlannerHandler
	Favorites *api.FavoriteHandler
	Goals     *api.GoalHandler
	Export    *api.ExportHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, validator middleware.TokenValidator) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Auth routes (registration and login are public, logout is not)
	h.Auth.RegisterRoutes(v1)

	// Catalog is read-only reference data and needs no account
	h.Catalog.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		h.Profile.RegisterRoutes(protected)
		h.Metrics.RegisterRoutes(protected)
		h.Logs.RegisterRoutes(protected)
		h.Planner.RegisterRoutes(protected)
		h.Favorites.RegisterRoutes(protected)
		h.Goals.RegisterRoutes(protected)
		h.Export.RegisterRoutes(protected)
	}

	return router
}
