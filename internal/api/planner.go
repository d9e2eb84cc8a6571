package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/backend/internal/catalog"
	"github.com/healthtrack/backend/internal/middleware"
	"github.com/healthtrack/backend/internal/service"
)

// PlannerHandler handles AI meal-plan generation and article expansion.
type PlannerHandler struct {
	planner service.IPlannerService
	catalog *catalog.Catalog
	limiter *middleware.RateLimiter
}

func NewPlannerHandler(planner service.IPlannerService, cat *catalog.Catalog, limiter *middleware.RateLimiter) *PlannerHandler {
	return &PlannerHandler{planner: planner, catalog: cat, limiter: limiter}
}

// RegisterRoutes registers the planner routes. Generation is rate limited
// when a limiter is available; reads are not.
func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup) {
	planner := router.Group("/planner")
	{
		if h.limiter != nil {
			planner.POST("/mealplan", h.limiter.RateLimitMiddleware(), h.GenerateMealPlan)
		} else {
			planner.POST("/mealplan", h.GenerateMealPlan)
		}
		planner.GET("/mealplan", h.GetCachedMealPlan)
		planner.POST("/articles/expand", h.ExpandArticle)
	}
}

type GenerateMealPlanRequest struct {
	Goal string `json:"goal" binding:"required"`
}

// GenerateMealPlan asks the model for a plan matching the user's stated
// goal. An upstream failure is converted to a 502 payload; it never crashes
// the interaction.
func (h *PlannerHandler) GenerateMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req GenerateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan, err := h.planner.GenerateMealPlan(c.Request.Context(), userID, req.Goal)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate meal plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// GetCachedMealPlan returns the most recently generated plan, if any. When a
// limiter is configured the response also carries the user's remaining
// generation quota, read without consuming it.
func (h *PlannerHandler) GetCachedMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	if h.limiter != nil {
		remaining, resetTime, err := h.limiter.GetRemainingRequests(c.Request.Context(), userID.String())
		if err == nil {
			c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
			c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))
		}
	}

	plan, err := h.planner.CachedMealPlan(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read cached plan"})
		return
	}
	if plan == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no meal plan generated yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

type ExpandArticleRequest struct {
	Title string `json:"title" binding:"required"`
}

// ExpandArticle generates the full text of a known education article.
func (h *PlannerHandler) ExpandArticle(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		abortUnauthenticated(c)
		return
	}

	var req ExpandArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, found := h.catalog.FindArticle(req.Title)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	text, err := h.planner.ExpandArticle(c.Request.Context(), article.Title)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to expand article: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"title": article.Title, "content": text})
}
