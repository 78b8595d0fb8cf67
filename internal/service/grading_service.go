package service

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
)

// GradingService scores a submitted answer set against a test's question
// sequence. Grading is deterministic and has no side effects; persisting the
// outcome is the caller's job.
type GradingService interface {
	Grade(test *model.Test, answers []dto.SubmittedAnswerDTO) (score int, passed bool, err error)
	PassingThreshold(test *model.Test) int
}

type gradingService struct{}

func NewGradingService() GradingService {
	return &gradingService{}
}

// PassingThreshold returns the test's own passing score when it defines one,
// otherwise the ceiling of 70% of the question count.
func (s *gradingService) PassingThreshold(test *model.Test) int {
	if test.PassingScore > 0 {
		return test.PassingScore
	}
	return int(math.Ceil(0.7 * float64(len(test.Questions))))
}

// Grade walks the test's ordered questions, matching each submitted answer
// against the choices flagged correct. A question with no submitted answer
// contributes zero. A question without an explicit point value is worth 1.
func (s *gradingService) Grade(test *model.Test, answers []dto.SubmittedAnswerDTO) (int, bool, error) {
	if len(test.Questions) == 0 {
		return 0, false, fmt.Errorf("test %d has no questions, submission is not possible: %w", test.ID, apperrors.ErrInvalidInput)
	}
	if len(answers) == 0 {
		return 0, false, fmt.Errorf("submission must contain at least one answer: %w", apperrors.ErrInvalidInput)
	}

	selected := make(map[int]string, len(answers))
	valid := 0
	for _, answer := range answers {
		if answer.QuestionIndex == nil {
			continue
		}
		idx := *answer.QuestionIndex
		if idx < 0 || idx >= len(test.Questions) {
			log.Warn().Int("questionIndex", idx).Uint("testID", test.ID).Msg("Grade: answer index outside question sequence, skipping")
			continue
		}
		selected[idx] = answer.SelectedOption
		valid++
	}
	if valid == 0 {
		return 0, false, fmt.Errorf("no answers match the questions of test %d: %w", test.ID, apperrors.ErrInvalidInput)
	}

	score := 0
	for i, question := range test.Questions {
		option, answered := selected[i]
		if !answered {
			continue
		}
		if isCorrectOption(question, option) {
			points := question.Points
			if points == 0 {
				points = 1
			}
			score += points
		}
	}

	threshold := s.PassingThreshold(test)
	return score, score >= threshold, nil
}

func isCorrectOption(question model.Question, option string) bool {
	for _, choice := range question.Choices {
		if choice.IsCorrect && choice.Option == option {
			return true
		}
	}
	return false
}
