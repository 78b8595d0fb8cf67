package service

import (
	"errors"
	"testing"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
)

func buildTest(questionCount, passingScore int) *model.Test {
	test := &model.Test{Title: "Grammar Basics", PassingScore: passingScore}
	test.ID = 1
	for i := 0; i < questionCount; i++ {
		test.Questions = append(test.Questions, model.Question{
			QuestionText: "question",
			OrderInTest:  i + 1,
			Choices: []model.Choice{
				{Option: "A", IsCorrect: true},
				{Option: "B", IsCorrect: false},
				{Option: "C", IsCorrect: false},
			},
		})
	}
	return test
}

func answersFor(options map[int]string) []dto.SubmittedAnswerDTO {
	answers := make([]dto.SubmittedAnswerDTO, 0, len(options))
	for idx, option := range options {
		i := idx
		answers = append(answers, dto.SubmittedAnswerDTO{QuestionIndex: &i, SelectedOption: option})
	}
	return answers
}

func correctAnswers(n int) map[int]string {
	options := make(map[int]string, n)
	for i := 0; i < n; i++ {
		options[i] = "A"
	}
	return options
}

func TestGradePassesAtDefaultThreshold(t *testing.T) {
	grading := NewGradingService()
	test := buildTest(10, 0)

	options := correctAnswers(7)
	options[7] = "B"
	options[8] = "C"
	options[9] = "B"

	score, passed, err := grading.Grade(test, answersFor(options))
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 7 {
		t.Errorf("score = %d, want 7", score)
	}
	if !passed {
		t.Error("passed = false, want true for 7/10 with a 70%% default threshold")
	}
}

func TestGradeFailsBelowDefaultThreshold(t *testing.T) {
	grading := NewGradingService()
	test := buildTest(10, 0)

	score, passed, err := grading.Grade(test, answersFor(correctAnswers(6)))
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 6 {
		t.Errorf("score = %d, want 6", score)
	}
	if passed {
		t.Error("passed = true, want false for 6/10 with a 70%% default threshold")
	}
}

func TestGradeWeightedQuestionsAgainstPassingScore(t *testing.T) {
	grading := NewGradingService()
	test := buildTest(10, 70)
	for i := range test.Questions {
		test.Questions[i].Points = 10
	}

	options := correctAnswers(7)
	options[7] = "B"
	options[8] = "B"
	options[9] = "C"

	score, passed, err := grading.Grade(test, answersFor(options))
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 70 {
		t.Errorf("score = %d, want 70", score)
	}
	if !passed {
		t.Error("passed = false, want true for 70 against passing score 70")
	}

	score, passed, err = grading.Grade(test, answersFor(correctAnswers(6)))
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 60 || passed {
		t.Errorf("(score, passed) = (%d, %v), want (60, false)", score, passed)
	}
}

func TestGradeUsesExplicitPassingScore(t *testing.T) {
	grading := NewGradingService()
	test := buildTest(10, 5)

	_, passed, err := grading.Grade(test, answersFor(correctAnswers(5)))
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if !passed {
		t.Error("passed = false, want true when score equals the test's own passing score")
	}
}

func TestPassingThresholdRoundsUp(t *testing.T) {
	grading := NewGradingService()

	cases := []struct {
		questions int
		want      int
	}{
		{10, 7},
		{9, 7},  // ceil(6.3)
		{3, 3},  // ceil(2.1)
		{1, 1},
		{4, 3},  // ceil(2.8)
	}
	for _, tc := range cases {
		got := grading.PassingThreshold(buildTest(tc.questions, 0))
		if got != tc.want {
			t.Errorf("PassingThreshold(%d questions) = %d, want %d", tc.questions, got, tc.want)
		}
	}
}

func TestGradeSkipsMissingAndOutOfRangeAnswers(t *testing.T) {
	grading := NewGradingService()
	test := buildTest(5, 0)

	outOfRange := 99
	answers := answersFor(map[int]string{0: "A", 1: "A"})
	answers = append(answers,
		dto.SubmittedAnswerDTO{QuestionIndex: nil, SelectedOption: "A"},
		dto.SubmittedAnswerDTO{QuestionIndex: &outOfRange, SelectedOption: "A"},
	)

	score, passed, err := grading.Grade(test, answers)
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 2 {
		t.Errorf("score = %d, want 2; unanswered questions contribute zero", score)
	}
	if passed {
		t.Error("passed = true, want false for 2/5")
	}
}

func TestGradeUsesQuestionPoints(t *testing.T) {
	grading := NewGradingService()
	test := buildTest(2, 5)
	test.Questions[0].Points = 5 // second question keeps the default of 1

	score, _, err := grading.Grade(test, answersFor(correctAnswers(2)))
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if score != 6 {
		t.Errorf("score = %d, want 6 (5 points + default 1)", score)
	}
}

func TestGradeRejectsEmptyInput(t *testing.T) {
	grading := NewGradingService()

	_, _, err := grading.Grade(buildTest(0, 0), answersFor(correctAnswers(1)))
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("test without questions: err = %v, want ErrInvalidInput", err)
	}

	_, _, err = grading.Grade(buildTest(3, 0), nil)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("empty answer set: err = %v, want ErrInvalidInput", err)
	}

	_, _, err = grading.Grade(buildTest(3, 0), []dto.SubmittedAnswerDTO{{QuestionIndex: nil, SelectedOption: "A"}})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("no valid answer index: err = %v, want ErrInvalidInput", err)
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	grading := NewGradingService()
	test := buildTest(10, 0)
	answers := answersFor(correctAnswers(8))

	firstScore, firstPassed, err := grading.Grade(test, answers)
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	for i := 0; i < 5; i++ {
		score, passed, err := grading.Grade(test, answers)
		if err != nil {
			t.Fatalf("Grade returned error on repeat: %v", err)
		}
		if score != firstScore || passed != firstPassed {
			t.Fatalf("repeat grade (%d, %v) differs from first (%d, %v)", score, passed, firstScore, firstPassed)
		}
	}
}
