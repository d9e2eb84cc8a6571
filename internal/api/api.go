// Package api contains the gin handlers for the HTTP surface.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthtrack/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "HealthTrack API is running",
		"version": "v1.0.0",
	})
}

// currentUserID extracts the authenticated user's id set by the auth
// middleware. The bool is false when the request somehow reached a protected
// handler without claims.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// abortUnauthenticated writes the uniform missing-session response.
func abortUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
}

// writeServiceError maps a service error to a 400 for validation failures
// and a 500 for everything else.
func writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
