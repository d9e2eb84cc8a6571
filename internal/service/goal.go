package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/models"
)

// GoalService manages user goals (target weight, target date, free text).
type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// CreateGoal validates and stores a new goal.
func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, goal *models.Goal) error {
	if goal.GoalText == "" {
		return fmt.Errorf("%w: goal_text is required", ErrValidation)
	}
	if goal.TargetDate != "" {
		if _, err := time.Parse(models.DateLayout, goal.TargetDate); err != nil {
			return fmt.Errorf("%w: invalid target_date %q, expected YYYY-MM-DD", ErrValidation, goal.TargetDate)
		}
	}
	goal.UserID = userID
	goal.Achieved = false
	return s.db.WithContext(ctx).Create(goal).Error
}

// ListGoals returns the user's goals, newest first.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

// MarkAchieved flags a goal as achieved. Scoped to the owning user so one
// user cannot complete another's goal.
func (s *GoalService) MarkAchieved(ctx context.Context, userID, goalID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Update("achieved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
