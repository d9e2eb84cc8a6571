package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/backend/internal/service"
)

// ExportHandler serves CSV downloads of the user's logged data.
type ExportHandler struct {
	exports *service.ExportService
}

func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/export/meals", h.ExportMeals)
	router.GET("/export/meals/link", h.ExportMealsLink)
}

// ExportMeals streams the user's recent meal log as a CSV attachment.
func (h *ExportHandler) ExportMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	data, err := h.exports.ExportMeals(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export meal log"})
		return
	}

	filename := fmt.Sprintf("meals-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportMealsLink returns a presigned URL to a copy of the export uploaded
// to object storage, for sharing without re-downloading.
func (h *ExportHandler) ExportMealsLink(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	url, err := h.exports.ExportMealsLink(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrExportStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create export link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
