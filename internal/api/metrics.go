package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/metrics"
	"github.com/healthtrack/backend/internal/service"
)

// MetricsHandler computes health metrics from the stored profile, with query
// parameters overriding individual profile fields.
type MetricsHandler struct {
	profiles *service.ProfileService
}

func NewMetricsHandler(profiles *service.ProfileService) *MetricsHandler {
	return &MetricsHandler{profiles: profiles}
}

// RegisterRoutes registers the metrics routes
func (h *MetricsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/metrics", h.GetMetrics)
}

// MetricsResponse is the full computed metric set for one biometric input.
type MetricsResponse struct {
	BMI           float64            `json:"bmi"`
	BMICategory   string             `json:"bmi_category"`
	BMIIndicator  string             `json:"bmi_indicator"`
	BMR           int                `json:"bmr"`
	TDEE          int                `json:"tdee"`
	BodyFatPct    float64            `json:"body_fat_pct"`
	Macros        metrics.MacroSplit `json:"macros"`
	WaistHipRatio *float64           `json:"waist_hip_ratio,omitempty"`
	CalorieTarget *int               `json:"calorie_target,omitempty"`
	WeeksToGoal   *int               `json:"weeks_to_goal,omitempty"`
}

func floatQuery(c *gin.Context, name string, fallback float64) (float64, error) {
	s := c.Query(name)
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(s, 64)
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}

// GetMetrics computes BMI, BMR/TDEE, body-fat estimate and macro targets.
// Biometrics default to the stored health profile; a user with no profile
// must supply weight_kg, height_cm, age and gender explicitly.
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var weight, height float64
	var age int
	genderStr := ""
	activity := ""

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	switch {
	case err == nil:
		weight = profile.WeightKg
		height = profile.HeightCm
		age = profile.Age
		genderStr = profile.Gender
		activity = profile.ActivityLevel
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Query parameters must carry everything.
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	if weight, err = floatQuery(c, "weight_kg", weight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight_kg"})
		return
	}
	if height, err = floatQuery(c, "height_cm", height); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid height_cm"})
		return
	}
	if age, err = intQuery(c, "age", age); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid age"})
		return
	}
	if g := c.Query("gender"); g != "" {
		genderStr = g
	}
	if a := c.Query("activity_level"); a != "" {
		activity = a
	}

	if weight <= 0 || height <= 0 || age <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight_kg, height_cm and age are required (set a profile or pass query parameters)"})
		return
	}
	gender, err := metrics.ParseGender(genderStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proteinPct, err := floatQuery(c, "protein_pct", 30)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid protein_pct"})
		return
	}
	carbPct, err := floatQuery(c, "carb_pct", 50)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carb_pct"})
		return
	}
	fatPct, err := floatQuery(c, "fat_pct", 20)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fat_pct"})
		return
	}

	bmi := metrics.BMI(weight, height/100)
	label, indicator := metrics.BMICategory(bmi)
	tdee, bmr := metrics.TDEE(weight, height, age, gender, activity)

	resp := MetricsResponse{
		BMI:          bmi,
		BMICategory:  label,
		BMIIndicator: indicator,
		BMR:          bmr,
		TDEE:         tdee,
		BodyFatPct:   metrics.BodyFatEstimate(bmi, age, gender),
		Macros:       metrics.MacroBreakdown(float64(tdee), proteinPct, carbPct, fatPct),
	}

	waist, errW := floatQuery(c, "waist_cm", 0)
	hip, errH := floatQuery(c, "hip_cm", 0)
	if errW == nil && errH == nil && waist > 0 && hip > 0 {
		whr := metrics.WaistHipRatio(waist, hip)
		resp.WaistHipRatio = &whr
	}

	weeks, err := intQuery(c, "weeks_to_goal", 0)
	if err != nil || weeks < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weeks_to_goal"})
		return
	}
	if weeks > 0 {
		target := metrics.CalorieTargetForDeficit(tdee, weeks)
		resp.CalorieTarget = &target
		resp.WeeksToGoal = &weeks
	}

	c.JSON(http.StatusOK, resp)
}
