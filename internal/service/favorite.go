package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/models"
)

// favoriteItemTypes is the set of catalog item kinds a user can pin.
var favoriteItemTypes = map[string]bool{
	"recipe":  true,
	"workout": true,
}

// FavoriteService manages pinned catalog items.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// AddFavorite pins an item. Pinning the same item twice is a no-op rather
// than an error.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID uuid.UUID, itemType, itemName, itemData string) (*models.Favorite, error) {
	if !favoriteItemTypes[itemType] {
		return nil, fmt.Errorf("%w: item_type must be one of: recipe, workout", ErrValidation)
	}
	if itemName == "" {
		return nil, fmt.Errorf("%w: item_name is required", ErrValidation)
	}

	var existing models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_name = ?", userID, itemType, itemName).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fav := models.Favorite{
		UserID:   userID,
		ItemType: itemType,
		ItemName: itemName,
		ItemData: itemData,
	}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

// ListFavorites returns the user's pinned items, newest first, optionally
// filtered by item type.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID, itemType string) ([]models.Favorite, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if itemType != "" {
		query = query.Where("item_type = ?", itemType)
	}

	var favorites []models.Favorite
	err := query.Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}

// RemoveFavorite unpins an item, scoped to the owning user.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, favoriteID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", favoriteID, userID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
