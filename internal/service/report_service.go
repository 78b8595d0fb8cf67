package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
	"github.com/toeflcenter/backend/internal/repository"
)

type ReportService interface {
	CreateReport(req dto.ReportCreateDTO) (*dto.ReportResponseDTO, error)
	GetReport(id uint) (*dto.ReportResponseDTO, error)
	GetAllReports() ([]dto.ReportResponseDTO, error)
	UpdateReport(id uint, req dto.ReportUpdateDTO) (*dto.ReportResponseDTO, error)
	DeleteReport(id uint) error
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) CreateReport(req dto.ReportCreateDTO) (*dto.ReportResponseDTO, error) {
	report := model.Report{
		UserID:       req.UserID,
		TestID:       req.TestID,
		Title:        req.Title,
		Summary:      req.Summary,
		AverageScore: req.AverageScore,
	}
	if err := s.reportRepo.Create(&report); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateReport: repository error")
		return nil, fmt.Errorf("error creating report: %w", err)
	}
	return reportToResponse(&report)
}

func (s *reportService) GetReport(id uint) (*dto.ReportResponseDTO, error) {
	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching report %d: %w", id, err)
	}
	return reportToResponse(report)
}

func (s *reportService) GetAllReports() ([]dto.ReportResponseDTO, error) {
	reports, err := s.reportRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllReports: repository error")
		return nil, fmt.Errorf("error fetching reports: %w", err)
	}

	dtos := make([]dto.ReportResponseDTO, 0, len(reports))
	for i := range reports {
		resp, err := reportToResponse(&reports[i])
		if err != nil {
			continue
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}

func (s *reportService) UpdateReport(id uint, req dto.ReportUpdateDTO) (*dto.ReportResponseDTO, error) {
	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching report %d: %w", id, err)
	}

	if req.Title != "" {
		report.Title = req.Title
	}
	if req.Summary != "" {
		report.Summary = req.Summary
	}
	if req.AverageScore != nil {
		report.AverageScore = *req.AverageScore
	}

	if err := s.reportRepo.Update(report); err != nil {
		log.Error().Err(err).Uint("reportID", id).Msg("UpdateReport: repository error")
		return nil, fmt.Errorf("error updating report %d: %w", id, err)
	}
	return reportToResponse(report)
}

func (s *reportService) DeleteReport(id uint) error {
	if _, err := s.reportRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("report %d: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("error fetching report %d: %w", id, err)
	}
	if err := s.reportRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("reportID", id).Msg("DeleteReport: repository error")
		return fmt.Errorf("error deleting report %d: %w", id, err)
	}
	return nil
}

func reportToResponse(report *model.Report) (*dto.ReportResponseDTO, error) {
	var resp dto.ReportResponseDTO
	if err := copier.Copy(&resp, report); err != nil {
		log.Error().Err(err).Uint("reportID", report.ID).Msg("Failed to copy Report model to DTO")
		return nil, fmt.Errorf("error preparing report response: %w", err)
	}
	return &resp, nil
}
