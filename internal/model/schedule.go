package model

import (
	"time"

	"gorm.io/gorm"
)

type Schedule struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	TestName        string         `json:"test_name" gorm:"not null"`
	TestDate        time.Time      `json:"test_date" gorm:"not null"`
	AvailableSeats  int            `json:"available_seats" gorm:"not null"`
	RegisteredUsers []User         `json:"registered_users,omitempty" gorm:"many2many:schedule_registrations;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
