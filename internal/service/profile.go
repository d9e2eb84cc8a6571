package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/metrics"
	"github.com/healthtrack/backend/internal/models"
)

// ProfileService manages the per-user biometric snapshot.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's health profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile validates and stores the biometric snapshot, creating the
// row on first write and updating it afterwards.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, update *models.HealthProfile) (*models.HealthProfile, error) {
	if update.WeightKg <= 0 || update.HeightCm <= 0 || update.Age <= 0 {
		return nil, fmt.Errorf("%w: weight, height and age must be positive", ErrValidation)
	}
	if _, err := metrics.ParseGender(update.Gender); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !metrics.ValidActivityLevel(update.ActivityLevel) {
		return nil, fmt.Errorf("%w: unknown activity level %q", ErrValidation, update.ActivityLevel)
	}

	var profile models.HealthProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.HealthProfile{UserID: userID}
	case err != nil:
		return nil, err
	}

	profile.WeightKg = update.WeightKg
	profile.HeightCm = update.HeightCm
	profile.Age = update.Age
	profile.Gender = update.Gender
	profile.ActivityLevel = update.ActivityLevel

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
