package model

import (
	"time"

	"gorm.io/gorm"
)

// Report is an aggregate summary over a user's testing activity, maintained
// by administrators alongside the raw results.
type Report struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	User         User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TestID       *uint          `json:"test_id,omitempty" gorm:"index"`
	Title        string         `json:"title" gorm:"not null"`
	Summary      string         `json:"summary" gorm:"type:text"`
	AverageScore float64        `json:"average_score"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
