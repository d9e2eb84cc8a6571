package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack/backend/internal/models"
	"github.com/healthtrack/backend/internal/service"
	"github.com/healthtrack/backend/internal/testhelpers"
)

func today() string {
	return time.Now().Format(models.DateLayout)
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(models.DateLayout)
}

func TestAppendMealAndTotals(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, logs.AppendMeal(ctx, userID, &models.MealLog{
		Date: today(), MealType: "breakfast", FoodName: "oatmeal",
		Calories: 300, Protein: 10, Carbs: 50, Fats: 6,
	}))
	require.NoError(t, logs.AppendMeal(ctx, userID, &models.MealLog{
		Date: today(), MealType: "lunch", FoodName: "chicken salad",
		Calories: 450, Protein: 35, Carbs: 20, Fats: 22,
	}))

	totals, err := logs.Totals(ctx, userID, today())
	require.NoError(t, err)
	assert.Equal(t, 750, totals.Calories)
	assert.InDelta(t, 45.0, totals.Protein, 1e-9)
	assert.InDelta(t, 70.0, totals.Carbs, 1e-9)
	assert.InDelta(t, 28.0, totals.Fats, 1e-9)
}

func TestTotalsEmptyDateIsZero(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)

	totals, err := logs.Totals(context.Background(), uuid.New(), today())
	require.NoError(t, err)
	assert.Equal(t, service.DailyTotals{}, totals)
}

func TestTotalsScopedToUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, logs.AppendMeal(ctx, alice, &models.MealLog{
		Date: today(), MealType: "dinner", FoodName: "pasta", Calories: 600,
	}))

	totals, err := logs.Totals(ctx, bob, today())
	require.NoError(t, err)
	assert.Equal(t, 0, totals.Calories)
}

func TestAppendMealValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)
	ctx := context.Background()
	userID := uuid.New()

	err := logs.AppendMeal(ctx, userID, &models.MealLog{Date: "not-a-date", FoodName: "toast"})
	assert.ErrorIs(t, err, service.ErrValidation)

	err = logs.AppendMeal(ctx, userID, &models.MealLog{Date: today()})
	assert.ErrorIs(t, err, service.ErrValidation)

	err = logs.AppendMeal(ctx, userID, &models.MealLog{Date: today(), FoodName: "toast", Calories: -1})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestWaterAccumulates(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, logs.AppendWater(ctx, userID, 1.0, today()))
	require.NoError(t, logs.AppendWater(ctx, userID, 2.5, today()))
	require.NoError(t, logs.AppendWater(ctx, userID, 0.5, ""))

	total, err := logs.WaterTotal(ctx, userID, today())
	require.NoError(t, err)
	assert.InDelta(t, 4.0, total, 1e-9)
}

func TestWaterRejectsNegative(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)

	err := logs.AppendWater(context.Background(), uuid.New(), -1, today())
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestWorkoutHistoryWindow(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, logs.AppendWorkout(ctx, userID, &models.WorkoutLog{
		Date: daysAgo(40), Exercise: "old run", DurationMins: 30, CaloriesBurned: 250,
	}))
	require.NoError(t, logs.AppendWorkout(ctx, userID, &models.WorkoutLog{
		Date: daysAgo(5), Exercise: "recent run", DurationMins: 30, CaloriesBurned: 250,
	}))
	require.NoError(t, logs.AppendWorkout(ctx, userID, &models.WorkoutLog{
		Date: today(), Exercise: "lift", DurationMins: 45, CaloriesBurned: 180,
	}))

	history, err := logs.WorkoutHistory(ctx, userID, 30)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Ascending date order
	assert.Equal(t, "recent run", history[0].Exercise)
	assert.Equal(t, "lift", history[1].Exercise)
}

func TestProgressHistoryOrderedAscending(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)
	ctx := context.Background()
	userID := uuid.New()

	w1, w2 := 82.0, 80.5
	require.NoError(t, logs.AppendProgress(ctx, userID, &models.ProgressEntry{Date: daysAgo(1), WeightKg: &w2}))
	require.NoError(t, logs.AppendProgress(ctx, userID, &models.ProgressEntry{Date: daysAgo(14), WeightKg: &w1}))

	history, err := logs.ProgressHistory(ctx, userID, 90)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.InDelta(t, 82.0, *history[0].WeightKg, 1e-9)
	assert.InDelta(t, 80.5, *history[1].WeightKg, 1e-9)
}

func TestWeeklySummary(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, logs.AppendMeal(ctx, userID, &models.MealLog{
		Date: today(), MealType: "lunch", FoodName: "soup", Calories: 200,
	}))
	require.NoError(t, logs.AppendMeal(ctx, userID, &models.MealLog{
		Date: daysAgo(3), MealType: "dinner", FoodName: "stew", Calories: 500,
	}))

	summary, err := logs.WeeklySummary(ctx, userID)
	require.NoError(t, err)
	require.Len(t, summary, 7)

	// Oldest day first, today last.
	assert.Equal(t, daysAgo(6), summary[0].Date)
	assert.Equal(t, today(), summary[6].Date)
	assert.Equal(t, 500, summary[3].Calories)
	assert.Equal(t, 200, summary[6].Calories)
	assert.Equal(t, 0, summary[0].Calories)
}

func TestRecentMealsLimit(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	logs := service.NewLogService(db)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 5; i++ {
		require.NoError(t, logs.AppendMeal(ctx, userID, &models.MealLog{
			Date: daysAgo(i), MealType: "lunch", FoodName: "meal", Calories: 100,
		}))
	}

	meals, err := logs.RecentMeals(ctx, userID, 3)
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, today(), meals[0].Date)
}
