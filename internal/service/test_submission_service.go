package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/toeflcenter/backend/config"
	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
	"github.com/toeflcenter/backend/internal/repository"
)

// TestSubmissionService handles the grading flow: load the test, score the
// submitted answers, persist the result, and issue a certificate when the
// result passes. Result and certificate are written in one transaction so a
// passing result is never left without its certificate.
type TestSubmissionService interface {
	SubmitTest(testID uint, userID uint, req dto.TestSubmissionDTO) (*dto.ResultResponseDTO, error)
}

type testSubmissionService struct {
	testRepo repository.TestRepository
	grading  GradingService
	cfg      *config.Config
	db       *gorm.DB
}

func NewTestSubmissionService(
	testRepo repository.TestRepository,
	grading GradingService,
	cfg *config.Config,
	db *gorm.DB,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo: testRepo,
		grading:  grading,
		cfg:      cfg,
		db:       db,
	}
}

func (s *testSubmissionService) SubmitTest(testID uint, userID uint, req dto.TestSubmissionDTO) (*dto.ResultResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("test %d: %w", testID, apperrors.ErrNotFound)
		}
		log.Error().Err(err).Uint("testID", testID).Msg("SubmitTest: failed to load test")
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}

	score, passed, err := s.grading.Grade(test, req.Answers)
	if err != nil {
		return nil, err
	}

	result := model.Result{
		UserID: userID,
		TestID: testID,
		Score:  score,
		Passed: passed,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return fmt.Errorf("failed to create result record: %w", err)
		}
		if !passed {
			return nil
		}

		link := certificateLinkFor(s.cfg.Certificate.BaseURL, userID, result.ID)
		certificate := model.Certificate{
			UserID:          userID,
			ResultID:        result.ID,
			CertificateLink: link,
			Status:          model.CertificateStatusValid,
		}
		if err := tx.Create(&certificate).Error; err != nil {
			return fmt.Errorf("failed to create certificate record: %w", err)
		}

		result.CertificateLink = &link
		if err := tx.Save(&result).Error; err != nil {
			return fmt.Errorf("failed to attach certificate link to result: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Uint("userID", userID).Msg("SubmitTest: transaction failed")
		return nil, err
	}

	log.Info().
		Uint("testID", testID).
		Uint("userID", userID).
		Int("score", score).
		Bool("passed", passed).
		Msg("Test attempt graded")

	return &dto.ResultResponseDTO{
		ID:              result.ID,
		UserID:          userID,
		TestID:          testID,
		TestTitle:       test.Title,
		Score:           score,
		Passed:          passed,
		CertificateLink: result.CertificateLink,
		CreatedAt:       result.CreatedAt,
	}, nil
}
