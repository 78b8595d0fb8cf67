package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/repository"
)

// UserTestService covers the read operations available to every
// authenticated user.
type UserTestService interface {
	GetAllTests() ([]dto.TestSummaryDTO, error)
	GetTestDetails(testID uint) (*dto.TestResponseDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: repository error")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(tests))
	for _, test := range tests {
		var summary dto.TestSummaryDTO
		if err := copier.Copy(&summary, &test); err != nil {
			log.Error().Err(err).Uint("testID", test.ID).Msg("GetAllTests: failed to copy test to summary DTO")
			continue
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *userTestService) GetTestDetails(testID uint) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("test %d: %w", testID, apperrors.ErrNotFound)
		}
		log.Error().Err(err).Uint("testID", testID).Msg("GetTestDetails: repository error")
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}
	return testToResponse(test)
}
