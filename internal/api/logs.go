package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/backend/internal/catalog"
	"github.com/healthtrack/backend/internal/models"
	"github.com/healthtrack/backend/internal/service"
)

// LogHandler handles the append-only activity logs and their aggregate reads.
type LogHandler struct {
	logs    service.ILogService
	catalog *catalog.Catalog
}

func NewLogHandler(logs service.ILogService, cat *catalog.Catalog) *LogHandler {
	return &LogHandler{logs: logs, catalog: cat}
}

// RegisterRoutes registers the log routes
func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.POST("/meals", h.CreateMeal)
		logs.POST("/meals/from-recipe", h.CreateMealFromRecipe)
		logs.GET("/meals", h.ListMeals)
		logs.GET("/meals/totals", h.GetDailyTotals)
		logs.POST("/water", h.CreateWater)
		logs.GET("/water/total", h.GetWaterTotal)
		logs.POST("/workouts", h.CreateWorkout)
		logs.POST("/workouts/from-template", h.CreateWorkoutFromTemplate)
		logs.GET("/workouts/history", h.GetWorkoutHistory)
		logs.POST("/progress", h.CreateProgress)
		logs.GET("/progress/history", h.GetProgressHistory)
	}
	router.GET("/summary/weekly", h.GetWeeklySummary)
}

// dateQuery reads the date query parameter, defaulting to today.
func dateQuery(c *gin.Context) string {
	return c.DefaultQuery("date", time.Now().Format(models.DateLayout))
}

// daysQuery reads the days query parameter with a default trailing window.
func daysQuery(c *gin.Context, fallback int) (int, bool) {
	s := c.DefaultQuery("days", strconv.Itoa(fallback))
	days, err := strconv.Atoi(s)
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return 0, false
	}
	return days, true
}

type CreateMealRequest struct {
	Date     string  `json:"date" binding:"required"`
	MealType string  `json:"meal_type"`
	FoodName string  `json:"food_name" binding:"required"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func (h *LogHandler) CreateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.MealType == "" {
		req.MealType = "manual"
	}

	entry := models.MealLog{
		Date:     req.Date,
		MealType: req.MealType,
		FoodName: req.FoodName,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	}
	if err := h.logs.AppendMeal(c.Request.Context(), userID, &entry); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

type CreateMealFromRecipeRequest struct {
	Recipe string `json:"recipe" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

// CreateMealFromRecipe quick-adds a catalog recipe to the meal log, copying
// its calories and macros.
func (h *LogHandler) CreateMealFromRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req CreateMealFromRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, found := h.catalog.FindRecipe(req.Recipe)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	entry := models.MealLog{
		Date:     req.Date,
		MealType: "recipe",
		FoodName: recipe.Name,
		Calories: recipe.Calories,
		Protein:  recipe.Protein,
		Carbs:    recipe.Carbs,
		Fats:     recipe.Fats,
	}
	if err := h.logs.AppendMeal(c.Request.Context(), userID, &entry); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *LogHandler) ListMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	meals, err := h.logs.MealsForDate(c.Request.Context(), userID, dateQuery(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if meals == nil {
		meals = []models.MealLog{}
	}

	c.JSON(http.StatusOK, meals)
}

func (h *LogHandler) GetDailyTotals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	totals, err := h.logs.Totals(c.Request.Context(), userID, dateQuery(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// Cups carries no required binding: an explicit zero is a valid entry, and
// the service rejects negative values.
type CreateWaterRequest struct {
	Cups float64 `json:"cups"`
	Date string  `json:"date"`
}

func (h *LogHandler) CreateWater(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req CreateWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.logs.AppendWater(c.Request.Context(), userID, req.Cups, req.Date); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *LogHandler) GetWaterTotal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	date := dateQuery(c)
	total, err := h.logs.WaterTotal(c.Request.Context(), userID, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "cups": total})
}

type CreateWorkoutRequest struct {
	Date           string `json:"date" binding:"required"`
	Exercise       string `json:"exercise" binding:"required"`
	DurationMins   int    `json:"duration_mins"`
	CaloriesBurned int    `json:"calories_burned"`
	Intensity      string `json:"intensity"`
}

func (h *LogHandler) CreateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry := models.WorkoutLog{
		Date:           req.Date,
		Exercise:       req.Exercise,
		DurationMins:   req.DurationMins,
		CaloriesBurned: req.CaloriesBurned,
		Intensity:      req.Intensity,
	}
	if err := h.logs.AppendWorkout(c.Request.Context(), userID, &entry); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

type CreateWorkoutFromTemplateRequest struct {
	Template     string `json:"template" binding:"required"`
	Date         string `json:"date" binding:"required"`
	DurationMins int    `json:"duration_mins"`
}

// CreateWorkoutFromTemplate quick-logs a catalog workout. Calories burned
// scale linearly with the actual duration against the template's reference
// duration.
func (h *LogHandler) CreateWorkoutFromTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req CreateWorkoutFromTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	template, found := h.catalog.FindWorkout(req.Template)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "workout template not found"})
		return
	}

	duration := req.DurationMins
	if duration <= 0 {
		duration = template.DurationMins
	}

	entry := models.WorkoutLog{
		Date:           req.Date,
		Exercise:       template.Name,
		DurationMins:   duration,
		CaloriesBurned: template.CaloriesBurned * duration / template.DurationMins,
		Intensity:      template.Intensity,
	}
	if err := h.logs.AppendWorkout(c.Request.Context(), userID, &entry); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *LogHandler) GetWorkoutHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	days, ok := daysQuery(c, 30)
	if !ok {
		return
	}

	history, err := h.logs.WorkoutHistory(c.Request.Context(), userID, days)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if history == nil {
		history = []models.WorkoutLog{}
	}

	c.JSON(http.StatusOK, history)
}

type CreateProgressRequest struct {
	Date     string   `json:"date" binding:"required"`
	WeightKg *float64 `json:"weight_kg"`
	WaistCm  *float64 `json:"waist_cm"`
	HipCm    *float64 `json:"hip_cm"`
	ChestCm  *float64 `json:"chest_cm"`
	Notes    string   `json:"notes"`
}

func (h *LogHandler) CreateProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry := models.ProgressEntry{
		Date:     req.Date,
		WeightKg: req.WeightKg,
		WaistCm:  req.WaistCm,
		HipCm:    req.HipCm,
		ChestCm:  req.ChestCm,
		Notes:    req.Notes,
	}
	if err := h.logs.AppendProgress(c.Request.Context(), userID, &entry); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *LogHandler) GetProgressHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	days, ok := daysQuery(c, 90)
	if !ok {
		return
	}

	history, err := h.logs.ProgressHistory(c.Request.Context(), userID, days)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if history == nil {
		history = []models.ProgressEntry{}
	}

	c.JSON(http.StatusOK, history)
}

func (h *LogHandler) GetWeeklySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	summary, err := h.logs.WeeklySummary(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
