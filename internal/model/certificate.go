package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	CertificateStatusValid   = "valid"
	CertificateStatusRevoked = "revoked"
)

type Certificate struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	User            User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ResultID        uint           `json:"result_id" gorm:"not null;index"`
	Result          Result         `json:"result,omitempty" gorm:"foreignKey:ResultID"`
	CertificateLink string         `json:"certificate_link" gorm:"not null"`
	IssuedDate      time.Time      `json:"issued_date" gorm:"autoCreateTime"`
	ExpirationDate  *time.Time     `json:"expiration_date,omitempty"`
	Status          string         `json:"status" gorm:"not null;default:'valid'"` // "valid" or "revoked"
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
