package dto

import "time"

type ScheduleCreateDTO struct {
	TestName       string    `json:"test_name" binding:"required"`
	TestDate       time.Time `json:"test_date" binding:"required"`
	AvailableSeats int       `json:"available_seats" binding:"required,min=1"`
}

type ScheduleUpdateDTO struct {
	TestName       string     `json:"test_name" binding:"omitempty"`
	TestDate       *time.Time `json:"test_date"`
	AvailableSeats *int       `json:"available_seats" binding:"omitempty,min=1"`
}

type ScheduleResponseDTO struct {
	ID              uint              `json:"id"`
	TestName        string            `json:"test_name"`
	TestDate        time.Time         `json:"test_date"`
	AvailableSeats  int               `json:"available_seats"`
	RegisteredUsers []UserResponseDTO `json:"registered_users,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
