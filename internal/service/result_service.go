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

// fallbackThreshold applies when a result's test can no longer be resolved
// for threshold lookup.
const fallbackThreshold = 70

type ResultService interface {
	CreateResult(req dto.ResultCreateDTO) (*dto.ResultResponseDTO, error)
	GetResult(id uint, callerID uint, callerIsAdmin bool) (*dto.ResultResponseDTO, error)
	GetResults(callerID uint, callerIsAdmin bool) ([]dto.ResultResponseDTO, error)
	UpdateResult(id uint, req dto.ResultUpdateDTO) (*dto.ResultResponseDTO, error)
	DeleteResult(id uint) error
}

type resultService struct {
	resultRepo repository.ResultRepository
	testRepo   repository.TestRepository
	userRepo   repository.UserRepository
	grading    GradingService
	cfg        *config.Config
}

func NewResultService(
	resultRepo repository.ResultRepository,
	testRepo repository.TestRepository,
	userRepo repository.UserRepository,
	grading GradingService,
	cfg *config.Config,
) ResultService {
	return &resultService{
		resultRepo: resultRepo,
		testRepo:   testRepo,
		userRepo:   userRepo,
		grading:    grading,
		cfg:        cfg,
	}
}

// thresholdFor resolves the passing threshold for a result's test. When the
// test is gone the fixed fallback applies so Passed stays derivable.
func (s *resultService) thresholdFor(testID uint) int {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("thresholdFor: test not resolvable, using fallback threshold")
		return fallbackThreshold
	}
	return s.grading.PassingThreshold(test)
}

func (s *resultService) CreateResult(req dto.ResultCreateDTO) (*dto.ResultResponseDTO, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", req.UserID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching user %d: %w", req.UserID, err)
	}
	test, err := s.testRepo.FindByIDWithQuestions(req.TestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("test %d: %w", req.TestID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching test %d: %w", req.TestID, err)
	}

	score := *req.Score
	passed := score >= s.grading.PassingThreshold(test)
	result := model.Result{
		UserID: req.UserID,
		TestID: req.TestID,
		Score:  score,
		Passed: passed,
	}
	if passed {
		result.CertificateLink = req.CertificateLink
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("testID", req.TestID).Msg("CreateResult: repository error")
		return nil, fmt.Errorf("error creating result: %w", err)
	}

	// A passing result always carries a link; derive the canonical one when
	// the caller supplied none.
	if passed && result.CertificateLink == nil {
		link := certificateLinkFor(s.cfg.Certificate.BaseURL, result.UserID, result.ID)
		result.CertificateLink = &link
		if err := s.resultRepo.Update(&result); err != nil {
			log.Error().Err(err).Uint("resultID", result.ID).Msg("CreateResult: failed to attach certificate link")
			return nil, fmt.Errorf("error attaching certificate link: %w", err)
		}
	}

	return resultToResponse(&result), nil
}

func (s *resultService) GetResult(id uint, callerID uint, callerIsAdmin bool) (*dto.ResultResponseDTO, error) {
	result, err := s.resultRepo.FindByIDWithRefs(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("result %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching result %d: %w", id, err)
	}
	if result.UserID != callerID && !callerIsAdmin {
		return nil, fmt.Errorf("result %d belongs to another user: %w", id, apperrors.ErrForbidden)
	}
	return resultToResponse(result), nil
}

// GetResults returns every result for admins, and only the caller's own
// results otherwise.
func (s *resultService) GetResults(callerID uint, callerIsAdmin bool) ([]dto.ResultResponseDTO, error) {
	var (
		results []model.Result
		err     error
	)
	if callerIsAdmin {
		results, err = s.resultRepo.FindAll()
	} else {
		results, err = s.resultRepo.FindAllByUser(callerID)
	}
	if err != nil {
		log.Error().Err(err).Msg("GetResults: repository error")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}

	dtos := make([]dto.ResultResponseDTO, 0, len(results))
	for i := range results {
		dtos = append(dtos, *resultToResponse(&results[i]))
	}
	return dtos, nil
}

// UpdateResult re-derives Passed whenever the score changes so the two never
// diverge.
func (s *resultService) UpdateResult(id uint, req dto.ResultUpdateDTO) (*dto.ResultResponseDTO, error) {
	result, err := s.resultRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("result %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching result %d: %w", id, err)
	}

	if req.CertificateLink != nil {
		result.CertificateLink = req.CertificateLink
	}
	if req.Score != nil {
		result.Score = *req.Score
		result.Passed = result.Score >= s.thresholdFor(result.TestID)
	}

	// Keep the link consistent with the derived outcome: failing results
	// never carry one, passing results always do.
	if !result.Passed {
		result.CertificateLink = nil
	} else if result.CertificateLink == nil {
		link := certificateLinkFor(s.cfg.Certificate.BaseURL, result.UserID, result.ID)
		result.CertificateLink = &link
	}

	if err := s.resultRepo.Update(result); err != nil {
		log.Error().Err(err).Uint("resultID", id).Msg("UpdateResult: repository error")
		return nil, fmt.Errorf("error updating result %d: %w", id, err)
	}
	return resultToResponse(result), nil
}

func (s *resultService) DeleteResult(id uint) error {
	if _, err := s.resultRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("result %d: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("error fetching result %d: %w", id, err)
	}
	if err := s.resultRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("resultID", id).Msg("DeleteResult: repository error")
		return fmt.Errorf("error deleting result %d: %w", id, err)
	}
	return nil
}

func resultToResponse(result *model.Result) *dto.ResultResponseDTO {
	resp := dto.ResultResponseDTO{
		ID:              result.ID,
		UserID:          result.UserID,
		TestID:          result.TestID,
		Score:           result.Score,
		Passed:          result.Passed,
		CertificateLink: result.CertificateLink,
		CreatedAt:       result.CreatedAt,
	}
	if result.User.ID != 0 {
		resp.Username = result.User.Username
	}
	if result.Test.ID != 0 {
		resp.TestTitle = result.Test.Title
	}
	return &resp
}
