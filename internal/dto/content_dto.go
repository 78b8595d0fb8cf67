package dto

import "time"

type ContentCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ContentType string `json:"content_type" binding:"required,oneof=study-material test-question"`
	Link        string `json:"link" binding:"required,url"`
}

type ContentUpdateDTO struct {
	Title       string `json:"title" binding:"omitempty"`
	Description string `json:"description" binding:"omitempty"`
	ContentType string `json:"content_type" binding:"omitempty,oneof=study-material test-question"`
	Link        string `json:"link" binding:"omitempty,url"`
}

type ContentResponseDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ContentType string    `json:"content_type"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}
