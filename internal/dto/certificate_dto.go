package dto

import "time"

// CertificateCreateDTO issues a certificate for an existing passing result.
// The certificate link is derived server-side from the user and result ids.
type CertificateCreateDTO struct {
	UserID         uint       `json:"user_id" binding:"required"`
	ResultID       uint       `json:"result_id" binding:"required"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

type CertificateUpdateDTO struct {
	Status         string     `json:"status" binding:"omitempty,oneof=valid revoked"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

type CertificateResponseDTO struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"user_id"`
	ResultID        uint       `json:"result_id"`
	CertificateLink string     `json:"certificate_link"`
	IssuedDate      time.Time  `json:"issued_date"`
	ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
	Status          string     `json:"status"`
}
