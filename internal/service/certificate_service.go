package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/toeflcenter/backend/config"
	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
	"github.com/toeflcenter/backend/internal/repository"
)

type CertificateService interface {
	CreateCertificate(req dto.CertificateCreateDTO) (*dto.CertificateResponseDTO, error)
	GetCertificate(id uint, callerID uint, callerIsAdmin bool) (*dto.CertificateResponseDTO, error)
	GetAllCertificates() ([]dto.CertificateResponseDTO, error)
	UpdateCertificate(id uint, req dto.CertificateUpdateDTO) (*dto.CertificateResponseDTO, error)
	DeleteCertificate(id uint) error
}

type certificateService struct {
	certRepo   repository.CertificateRepository
	resultRepo repository.ResultRepository
	cfg        *config.Config
}

func NewCertificateService(
	certRepo repository.CertificateRepository,
	resultRepo repository.ResultRepository,
	cfg *config.Config,
) CertificateService {
	return &certificateService{certRepo: certRepo, resultRepo: resultRepo, cfg: cfg}
}

// certificateLinkFor derives the canonical certificate URL from the user and
// result identifiers.
func certificateLinkFor(baseURL string, userID, resultID uint) string {
	return fmt.Sprintf("%s/users/%d/results/%d", baseURL, userID, resultID)
}

// CreateCertificate issues a certificate for an existing passing result.
// Failing results never yield a certificate.
func (s *certificateService) CreateCertificate(req dto.CertificateCreateDTO) (*dto.CertificateResponseDTO, error) {
	result, err := s.resultRepo.FindByID(req.ResultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("result %d: %w", req.ResultID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching result %d: %w", req.ResultID, err)
	}
	if result.UserID != req.UserID {
		return nil, fmt.Errorf("result %d does not belong to user %d: %w", req.ResultID, req.UserID, apperrors.ErrInvalidInput)
	}
	if !result.Passed {
		return nil, apperrors.ErrResultNotPassed
	}

	certificate := model.Certificate{
		UserID:          req.UserID,
		ResultID:        req.ResultID,
		CertificateLink: certificateLinkFor(s.cfg.Certificate.BaseURL, req.UserID, req.ResultID),
		ExpirationDate:  req.ExpirationDate,
		Status:          model.CertificateStatusValid,
	}
	if err := s.certRepo.Create(&certificate); err != nil {
		log.Error().Err(err).Uint("resultID", req.ResultID).Msg("CreateCertificate: repository error")
		return nil, fmt.Errorf("error creating certificate: %w", err)
	}

	return certificateToResponse(&certificate)
}

// GetCertificate is available to the owning user or an admin.
func (s *certificateService) GetCertificate(id uint, callerID uint, callerIsAdmin bool) (*dto.CertificateResponseDTO, error) {
	certificate, err := s.certRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("certificate %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching certificate %d: %w", id, err)
	}
	if certificate.UserID != callerID && !callerIsAdmin {
		return nil, fmt.Errorf("certificate %d belongs to another user: %w", id, apperrors.ErrForbidden)
	}
	return certificateToResponse(certificate)
}

func (s *certificateService) GetAllCertificates() ([]dto.CertificateResponseDTO, error) {
	certificates, err := s.certRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllCertificates: repository error")
		return nil, fmt.Errorf("error fetching certificates: %w", err)
	}

	dtos := make([]dto.CertificateResponseDTO, 0, len(certificates))
	for i := range certificates {
		resp, err := certificateToResponse(&certificates[i])
		if err != nil {
			continue
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}

func (s *certificateService) UpdateCertificate(id uint, req dto.CertificateUpdateDTO) (*dto.CertificateResponseDTO, error) {
	certificate, err := s.certRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("certificate %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching certificate %d: %w", id, err)
	}

	if req.Status != "" {
		certificate.Status = req.Status
	}
	if req.ExpirationDate != nil {
		certificate.ExpirationDate = req.ExpirationDate
	}

	if err := s.certRepo.Update(certificate); err != nil {
		log.Error().Err(err).Uint("certificateID", id).Msg("UpdateCertificate: repository error")
		return nil, fmt.Errorf("error updating certificate %d: %w", id, err)
	}
	return certificateToResponse(certificate)
}

func (s *certificateService) DeleteCertificate(id uint) error {
	if _, err := s.certRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("certificate %d: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("error fetching certificate %d: %w", id, err)
	}
	if err := s.certRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("certificateID", id).Msg("DeleteCertificate: repository error")
		return fmt.Errorf("error deleting certificate %d: %w", id, err)
	}
	return nil
}

func certificateToResponse(certificate *model.Certificate) (*dto.CertificateResponseDTO, error) {
	var resp dto.CertificateResponseDTO
	if err := copier.Copy(&resp, certificate); err != nil {
		log.Error().Err(err).Uint("certificateID", certificate.ID).Msg("Failed to copy Certificate model to DTO")
		return nil, fmt.Errorf("error preparing certificate response: %w", err)
	}
	return &resp, nil
}
