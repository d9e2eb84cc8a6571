package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a user target (e.g. a goal weight) with an optional target date.
type Goal struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	GoalText    string    `gorm:"type:text;not null" json:"goal_text"`
	TargetValue float64   `gorm:"type:float" json:"target_value"`
	TargetDate  string    `gorm:"size:10" json:"target_date"`
	Achieved    bool      `gorm:"not null;default:false" json:"achieved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
