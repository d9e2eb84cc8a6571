package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/config"
)

// exportLimit caps the CSV export at the most recent meal records.
const exportLimit = 100

// ErrExportStorageUnavailable is returned by share-link exports when no S3
// bucket is configured.
var ErrExportStorageUnavailable = errors.New("export storage is not configured")

// ExportService renders a user's recent meal history as CSV and, when an S3
// bucket is configured, uploads a copy of each export.
type ExportService struct {
	logs    *LogService
	storage *config.S3Config
}

func NewExportService(db *gorm.DB, storage *config.S3Config) *ExportService {
	return &ExportService{
		logs:    NewLogService(db),
		storage: storage,
	}
}

// buildMealsCSV renders the user's last 100 meal records, date descending,
// as CSV bytes. The column layout mirrors the stored schema.
func (s *ExportService) buildMealsCSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	meals, err := s.logs.RecentMeals(ctx, userID, exportLimit)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"id", "user_id", "date", "meal_type", "food_name", "calories", "protein", "carbs", "fats", "created_at"},
	}
	for _, m := range meals {
		records = append(records, []string{
			m.ID.String(),
			m.UserID.String(),
			m.Date,
			m.MealType,
			m.FoodName,
			strconv.Itoa(m.Calories),
			strconv.FormatFloat(m.Protein, 'f', -1, 64),
			strconv.FormatFloat(m.Carbs, 'f', -1, 64),
			strconv.FormatFloat(m.Fats, 'f', -1, 64),
			m.CreatedAt.Format(time.RFC3339),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportMeals returns the meal-history CSV for direct download.
func (s *ExportService) ExportMeals(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	data, err := s.buildMealsCSV(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Upload is best effort: the caller still gets their CSV when S3 is down.
	if s.storage != nil {
		if err := s.storage.PutObject(ctx, exportKey(userID), "text/csv", data); err != nil {
			log.Printf("failed to upload export for user %s: %v", userID, err)
		}
	}

	return data, nil
}

// ExportMealsLink uploads the export and returns a presigned download URL
// valid for one hour. Unlike ExportMeals, the upload is mandatory here.
func (s *ExportService) ExportMealsLink(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.storage == nil {
		return "", ErrExportStorageUnavailable
	}

	data, err := s.buildMealsCSV(ctx, userID)
	if err != nil {
		return "", err
	}

	key := exportKey(userID)
	if err := s.storage.PutObject(ctx, key, "text/csv", data); err != nil {
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	return s.storage.GeneratePresignedURL(ctx, key, time.Hour)
}

func exportKey(userID uuid.UUID) string {
	return fmt.Sprintf("exports/%s/meals-%s.csv", userID, time.Now().Format("20060102-150405"))
}
