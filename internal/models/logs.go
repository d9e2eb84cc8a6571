package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the storage format for all log dates. Dates are kept as text,
// not native timestamps, so exact-date lookups and range scans compare
// lexicographically.
const DateLayout = "2006-01-02"

// MealLog is an append-only meal record. There are no update or delete
// operations; daily totals are recomputed from the full entry set on read.
type MealLog struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index:idx_meal_user_date" json:"user_id"`
	Date      string    `gorm:"size:10;not null;index:idx_meal_user_date" json:"date"`
	MealType  string    `gorm:"size:20;not null" json:"meal_type"`
	FoodName  string    `gorm:"size:255;not null" json:"food_name"`
	Calories  int       `gorm:"not null" json:"calories"`
	Protein   float64   `gorm:"type:float;not null;default:0" json:"protein"`
	Carbs     float64   `gorm:"type:float;not null;default:0" json:"carbs"`
	Fats      float64   `gorm:"type:float;not null;default:0" json:"fats"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *MealLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// WaterLog entries for the same user and date are summed on read, never merged.
type WaterLog struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index:idx_water_user_date" json:"user_id"`
	Date      string    `gorm:"size:10;not null;index:idx_water_user_date" json:"date"`
	Cups      float64   `gorm:"type:float;not null" json:"cups"`
	CreatedAt time.Time `json:"created_at"`
}

func (w *WaterLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

type WorkoutLog struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID `gorm:"type:varchar(36);not null;index:idx_workout_user_date" json:"user_id"`
	Date           string    `gorm:"size:10;not null;index:idx_workout_user_date" json:"date"`
	Exercise       string    `gorm:"size:100;not null" json:"exercise"`
	DurationMins   int       `gorm:"not null" json:"duration_mins"`
	CaloriesBurned int       `gorm:"not null" json:"calories_burned"`
	Intensity      string    `gorm:"size:20" json:"intensity"`
	CreatedAt      time.Time `json:"created_at"`
}

func (w *WorkoutLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// ProgressEntry records body measurements. Measurement fields are pointers:
// any subset may be absent and absent is distinct from zero.
type ProgressEntry struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index:idx_progress_user_date" json:"user_id"`
	Date      string    `gorm:"size:10;not null;index:idx_progress_user_date" json:"date"`
	WeightKg  *float64  `gorm:"type:float" json:"weight_kg,omitempty"`
	WaistCm   *float64  `gorm:"type:float" json:"waist_cm,omitempty"`
	HipCm     *float64  `gorm:"type:float" json:"hip_cm,omitempty"`
	ChestCm   *float64  `gorm:"type:float" json:"chest_cm,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *ProgressEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
