package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthtrack/backend/internal/models"
	"github.com/healthtrack/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// ILogService defines the interface for the append-only activity log store
type ILogService interface {
	AppendMeal(ctx context.Context, userID uuid.UUID, entry *models.MealLog) error
	AppendWater(ctx context.Context, userID uuid.UUID, cups float64, date string) error
	AppendWorkout(ctx context.Context, userID uuid.UUID, entry *models.WorkoutLog) error
	AppendProgress(ctx context.Context, userID uuid.UUID, entry *models.ProgressEntry) error
	MealsForDate(ctx context.Context, userID uuid.UUID, date string) ([]models.MealLog, error)
	Totals(ctx context.Context, userID uuid.UUID, date string) (DailyTotals, error)
	WaterTotal(ctx context.Context, userID uuid.UUID, date string) (float64, error)
	ProgressHistory(ctx context.Context, userID uuid.UUID, days int) ([]models.ProgressEntry, error)
	WorkoutHistory(ctx context.Context, userID uuid.UUID, days int) ([]models.WorkoutLog, error)
	WeeklySummary(ctx context.Context, userID uuid.UUID) ([]DailySummary, error)
	RecentMeals(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealLog, error)
}

// IPlannerService defines the interface for AI plan generation
type IPlannerService interface {
	GenerateMealPlan(ctx context.Context, userID uuid.UUID, goal string) (string, error)
	CachedMealPlan(ctx context.Context, userID uuid.UUID) (string, error)
	ExpandArticle(ctx context.Context, title string) (string, error)
}

var (
	_ IAuthService    = (*AuthService)(nil)
	_ ILogService     = (*LogService)(nil)
	_ IPlannerService = (*PlannerService)(nil)
)
