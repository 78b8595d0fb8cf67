package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ContentTypeStudyMaterial = "study-material"
	ContentTypeTestQuestion  = "test-question"
)

type Content struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"not null"`
	ContentType string         `json:"content_type" gorm:"not null"` // "study-material" or "test-question"
	Link        string         `json:"link" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
