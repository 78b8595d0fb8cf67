package model

import (
	"time"

	"gorm.io/gorm"
)

// Result is the persisted outcome of one user's attempt at a Test.
// Passed is always derived from Score against the test's passing threshold;
// the two are never allowed to diverge on any write path.
type Result struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	User            User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TestID          uint           `json:"test_id" gorm:"not null;index"`
	Test            Test           `json:"test,omitempty" gorm:"foreignKey:TestID"`
	Score           int            `json:"score" gorm:"not null"`
	Passed          bool           `json:"passed" gorm:"not null"`
	CertificateLink *string        `json:"certificate_link,omitempty"` // nil for failing results
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
