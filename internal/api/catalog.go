package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/backend/internal/catalog"
)

// CatalogHandler serves the static recipe, workout and article catalogs.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	cat := router.Group("/catalog")
	{
		cat.GET("/recipes", h.ListRecipes)
		cat.GET("/workouts", h.ListWorkouts)
		cat.GET("/articles", h.ListArticles)
		cat.POST("/shopping-list", h.BuildShoppingList)
	}
}

func (h *CatalogHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Recipes())
}

func (h *CatalogHandler) ListWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Workouts())
}

func (h *CatalogHandler) ListArticles(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Articles())
}

type ShoppingListRequest struct {
	Recipes []string `json:"recipes" binding:"required"`
}

// BuildShoppingList returns the deduplicated, sorted ingredient union across
// the selected recipes.
func (h *CatalogHandler) BuildShoppingList(c *gin.Context) {
	var req ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": h.catalog.ShoppingList(req.Recipes)})
}
