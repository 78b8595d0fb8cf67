package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Title          string         `json:"title" gorm:"not null;uniqueIndex"`
	Description    string         `json:"description,omitempty"`
	Duration       int            `json:"duration" gorm:"not null"` // minutes
	Date           time.Time      `json:"date"`
	TotalQuestions int            `json:"total_questions"`
	PassingScore   int            `json:"passing_score"`
	Questions      []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	TestID       uint           `json:"test_id" gorm:"not null;index"`
	QuestionText string         `json:"question_text" gorm:"type:text;not null"`
	Points       int            `json:"points" gorm:"not null;default:1"`
	OrderInTest  int            `json:"order_in_test" gorm:"not null"`
	Choices      []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

type Choice struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Option     string         `json:"option" gorm:"not null"`
	IsCorrect  bool           `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
