package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/models"
	"github.com/healthtrack/backend/internal/service"
	"github.com/healthtrack/backend/internal/testhelpers"
)

func validProfile() *models.HealthProfile {
	return &models.HealthProfile{
		WeightKg:      70,
		HeightCm:      175,
		Age:           30,
		Gender:        "male",
		ActivityLevel: "sedentary",
	}
}

func TestUpsertProfileCreatesThenUpdates(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	profiles := service.NewProfileService(db)
	ctx := context.Background()
	userID := uuid.New()

	created, err := profiles.UpsertProfile(ctx, userID, validProfile())
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.InDelta(t, 70.0, created.WeightKg, 1e-9)

	update := validProfile()
	update.WeightKg = 68.5
	updated, err := profiles.UpsertProfile(ctx, userID, update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.InDelta(t, 68.5, updated.WeightKg, 1e-9)

	// Still a single row per user.
	var count int64
	require.NoError(t, db.Model(&models.HealthProfile{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertProfileValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	profiles := service.NewProfileService(db)
	ctx := context.Background()
	userID := uuid.New()

	bad := validProfile()
	bad.WeightKg = 0
	_, err := profiles.UpsertProfile(ctx, userID, bad)
	assert.ErrorIs(t, err, service.ErrValidation)

	bad = validProfile()
	bad.Gender = "unspecified"
	_, err = profiles.UpsertProfile(ctx, userID, bad)
	assert.ErrorIs(t, err, service.ErrValidation)

	bad = validProfile()
	bad.ActivityLevel = "couch"
	_, err = profiles.UpsertProfile(ctx, userID, bad)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestGetProfileNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	profiles := service.NewProfileService(db)

	_, err := profiles.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
