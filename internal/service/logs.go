package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/models"
)

// ErrValidation marks errors caused by bad log input (missing or malformed
// fields). Handlers map it to a 400 instead of a 500.
var ErrValidation = errors.New("validation failed")

// LogService implements the append-only activity log store. Records are
// created once and never mutated or deleted; every aggregate is recomputed
// from the full entry set on read, so correctness depends only on insert
// completeness.
type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

// DailyTotals is the summed nutrition for one user and date.
type DailyTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// DailySummary is one day of totals in a multi-day rollup.
type DailySummary struct {
	Date string `json:"date"`
	DailyTotals
}

func validateDate(date string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, date)
	}
	return nil
}

// AppendMeal validates and inserts an immutable meal record. Macro fields
// default to zero when omitted by the caller.
func (s *LogService) AppendMeal(ctx context.Context, userID uuid.UUID, entry *models.MealLog) error {
	if err := validateDate(entry.Date); err != nil {
		return err
	}
	if entry.FoodName == "" {
		return fmt.Errorf("%w: food_name is required", ErrValidation)
	}
	if entry.Calories < 0 || entry.Protein < 0 || entry.Carbs < 0 || entry.Fats < 0 {
		return fmt.Errorf("%w: nutrition values must be non-negative", ErrValidation)
	}
	entry.UserID = userID
	return s.db.WithContext(ctx).Create(entry).Error
}

// AppendWater inserts a water entry. An empty date defaults to today.
// Entries for the same date accumulate; they are summed on read, never merged.
func (s *LogService) AppendWater(ctx context.Context, userID uuid.UUID, cups float64, date string) error {
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	if err := validateDate(date); err != nil {
		return err
	}
	if cups < 0 {
		return fmt.Errorf("%w: cups must be non-negative", ErrValidation)
	}
	entry := models.WaterLog{UserID: userID, Date: date, Cups: cups}
	return s.db.WithContext(ctx).Create(&entry).Error
}

// AppendWorkout validates and inserts an immutable workout record.
func (s *LogService) AppendWorkout(ctx context.Context, userID uuid.UUID, entry *models.WorkoutLog) error {
	if err := validateDate(entry.Date); err != nil {
		return err
	}
	if entry.Exercise == "" {
		return fmt.Errorf("%w: exercise is required", ErrValidation)
	}
	if entry.DurationMins < 0 || entry.CaloriesBurned < 0 {
		return fmt.Errorf("%w: duration and calories must be non-negative", ErrValidation)
	}
	entry.UserID = userID
	return s.db.WithContext(ctx).Create(entry).Error
}

// AppendProgress inserts a measurement record. Any subset of the measurement
// fields may be nil; notes default to empty.
func (s *LogService) AppendProgress(ctx context.Context, userID uuid.UUID, entry *models.ProgressEntry) error {
	if err := validateDate(entry.Date); err != nil {
		return err
	}
	entry.UserID = userID
	return s.db.WithContext(ctx).Create(entry).Error
}

// MealsForDate returns all meal entries for an exact user+date, newest first.
func (s *LogService) MealsForDate(ctx context.Context, userID uuid.UUID, date string) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

// Totals sums all meal entries for an exact user+date. A date with no
// entries yields the zero value, never an error.
func (s *LogService) Totals(ctx context.Context, userID uuid.UUID, date string) (DailyTotals, error) {
	var totals DailyTotals
	err := s.db.WithContext(ctx).
		Model(&models.MealLog{}).
		Select("COALESCE(SUM(calories), 0) AS calories, COALESCE(SUM(protein), 0) AS protein, COALESCE(SUM(carbs), 0) AS carbs, COALESCE(SUM(fats), 0) AS fats").
		Where("user_id = ? AND date = ?", userID, date).
		Scan(&totals).Error
	return totals, err
}

// WaterTotal sums water cups for an exact user+date; zero when none.
func (s *LogService) WaterTotal(ctx context.Context, userID uuid.UUID, date string) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&models.WaterLog{}).
		Select("COALESCE(SUM(cups), 0)").
		Where("user_id = ? AND date = ?", userID, date).
		Scan(&total).Error
	return total, err
}

// cutoffDate returns the inclusive lower bound for a trailing-days window.
// Dates are stored as YYYY-MM-DD text so string comparison orders correctly.
func cutoffDate(days int) string {
	return time.Now().AddDate(0, 0, -days).Format(models.DateLayout)
}

// ProgressHistory returns progress entries with date >= today-days in
// ascending date order.
func (s *LogService) ProgressHistory(ctx context.Context, userID uuid.UUID, days int) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, cutoffDate(days)).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// WorkoutHistory returns workout entries with date >= today-days in
// ascending date order.
func (s *LogService) WorkoutHistory(ctx context.Context, userID uuid.UUID, days int) ([]models.WorkoutLog, error) {
	var entries []models.WorkoutLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, cutoffDate(days)).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// WeeklySummary returns daily meal totals for the trailing 7 days including
// today, oldest day first. Days with no entries appear with zero totals.
func (s *LogService) WeeklySummary(ctx context.Context, userID uuid.UUID) ([]DailySummary, error) {
	summaries := make([]DailySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format(models.DateLayout)
		totals, err := s.Totals(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, DailySummary{Date: date, DailyTotals: totals})
	}
	return summaries, nil
}

// RecentMeals returns the user's most recent meal entries, date descending,
// capped at limit. Used by the CSV export.
func (s *LogService) RecentMeals(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}
