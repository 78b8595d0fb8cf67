package dto

import "time"

// ResultCreateDTO creates a result record directly (admin path). Passed is
// never accepted from the client; it is derived from Score server-side.
type ResultCreateDTO struct {
	UserID          uint    `json:"user_id" binding:"required"`
	TestID          uint    `json:"test_id" binding:"required"`
	Score           *int    `json:"score" binding:"required,min=0"`
	CertificateLink *string `json:"certificate_link" binding:"omitempty,url"`
}

// ResultUpdateDTO updates a result. A score change re-derives Passed.
type ResultUpdateDTO struct {
	Score           *int    `json:"score" binding:"omitempty,min=0"`
	CertificateLink *string `json:"certificate_link" binding:"omitempty,url"`
}

type ResultResponseDTO struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Username        string    `json:"username,omitempty"`
	TestID          uint      `json:"test_id"`
	TestTitle       string    `json:"test_title,omitempty"`
	Score           int       `json:"score"`
	Passed          bool      `json:"passed"`
	CertificateLink *string   `json:"certificate_link"`
	CreatedAt       time.Time `json:"created_at"`
}
