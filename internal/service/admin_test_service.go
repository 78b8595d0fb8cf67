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

// AdminTestService covers the admin-only write operations over tests.
type AdminTestService interface {
	CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	UpdateTest(id uint, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error)
	DeleteTest(id uint) error
}

type adminTestService struct {
	testRepo repository.TestRepository
}

func NewAdminTestService(testRepo repository.TestRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo}
}

func (s *adminTestService) CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	test := model.Test{
		Title:          req.Title,
		Description:    req.Description,
		Duration:       req.Duration,
		Date:           req.Date,
		TotalQuestions: len(questions),
		PassingScore:   req.PassingScore,
		Questions:      questions,
	}

	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTest: failed to create test")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}

	created, err := s.testRepo.FindByIDWithQuestions(test.ID)
	if err != nil {
		log.Error().Err(err).Uint("testID", test.ID).Msg("CreateTest: failed to reload created test")
		return testToResponse(&test)
	}
	return testToResponse(created)
}

func (s *adminTestService) UpdateTest(id uint, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("test %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching test %d: %w", id, err)
	}

	if req.Title != "" {
		test.Title = req.Title
	}
	if req.Description != "" {
		test.Description = req.Description
	}
	if req.Duration > 0 {
		test.Duration = req.Duration
	}
	if req.Date != nil {
		test.Date = *req.Date
	}
	if req.PassingScore != nil {
		test.PassingScore = *req.PassingScore
	}

	if req.Questions != nil {
		questions, err := buildQuestions(req.Questions)
		if err != nil {
			return nil, err
		}
		if err := s.testRepo.ReplaceQuestions(id, questions); err != nil {
			log.Error().Err(err).Uint("testID", id).Msg("UpdateTest: failed to replace questions")
			return nil, fmt.Errorf("database error replacing questions: %w", err)
		}
		test.TotalQuestions = len(questions)
	}

	if err := s.testRepo.Update(test); err != nil {
		log.Error().Err(err).Uint("testID", id).Msg("UpdateTest: failed to update test")
		return nil, fmt.Errorf("database error updating test: %w", err)
	}

	updated, err := s.testRepo.FindByIDWithQuestions(id)
	if err != nil {
		return testToResponse(test)
	}
	return testToResponse(updated)
}

func (s *adminTestService) DeleteTest(id uint) error {
	if _, err := s.testRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("test %d: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("error fetching test %d: %w", id, err)
	}
	if err := s.testRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("testID", id).Msg("DeleteTest: failed to delete test")
		return fmt.Errorf("database error deleting test: %w", err)
	}
	return nil
}

// buildQuestions converts creation DTOs into models, preserving submitted
// order and requiring at least one correct choice per question.
func buildQuestions(reqs []dto.QuestionCreateDTO) ([]model.Question, error) {
	questions := make([]model.Question, 0, len(reqs))
	for i, qReq := range reqs {
		hasCorrect := false
		choices := make([]model.Choice, 0, len(qReq.Choices))
		for _, cReq := range qReq.Choices {
			if cReq.IsCorrect {
				hasCorrect = true
			}
			choices = append(choices, model.Choice{Option: cReq.Option, IsCorrect: cReq.IsCorrect})
		}
		if !hasCorrect {
			return nil, fmt.Errorf("question %d has no choice flagged correct: %w", i+1, apperrors.ErrInvalidInput)
		}

		points := qReq.Points
		if points == 0 {
			points = 1
		}
		questions = append(questions, model.Question{
			QuestionText: qReq.QuestionText,
			Points:       points,
			OrderInTest:  i + 1,
			Choices:      choices,
		})
	}
	return questions, nil
}

func testToResponse(test *model.Test) (*dto.TestResponseDTO, error) {
	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Uint("testID", test.ID).Msg("Failed to copy Test model to TestResponseDTO")
		return nil, fmt.Errorf("error preparing test response: %w", err)
	}
	return &resp, nil
}
