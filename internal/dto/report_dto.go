package dto

import "time"

type ReportCreateDTO struct {
	UserID       uint    `json:"user_id" binding:"required"`
	TestID       *uint   `json:"test_id"`
	Title        string  `json:"title" binding:"required"`
	Summary      string  `json:"summary"`
	AverageScore float64 `json:"average_score" binding:"omitempty,min=0"`
}

type ReportUpdateDTO struct {
	Title        string   `json:"title" binding:"omitempty"`
	Summary      string   `json:"summary" binding:"omitempty"`
	AverageScore *float64 `json:"average_score" binding:"omitempty,min=0"`
}

type ReportResponseDTO struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	TestID       *uint     `json:"test_id,omitempty"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary,omitempty"`
	AverageScore float64   `json:"average_score"`
	CreatedAt    time.Time `json:"created_at"`
}
