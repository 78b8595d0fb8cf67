package service

import (
	"errors"
	"testing"
	"time"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/dto"
)

func questionDTO(correct string) dto.QuestionCreateDTO {
	return dto.QuestionCreateDTO{
		QuestionText: "pick one",
		Choices: []dto.ChoiceCreateDTO{
			{Option: "A", IsCorrect: correct == "A"},
			{Option: "B", IsCorrect: correct == "B"},
		},
	}
}

func validCreateDTO(questionCount int) dto.TestCreateDTO {
	req := dto.TestCreateDTO{
		Title:       "Listening Section",
		Description: "Section one",
		Duration:    30,
		Date:        time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC),
	}
	for i := 0; i < questionCount; i++ {
		req.Questions = append(req.Questions, questionDTO("A"))
	}
	return req
}

func TestCreateTestAssignsOrderAndDefaults(t *testing.T) {
	testRepo := newFakeTestRepo()
	svc := NewAdminTestService(testRepo)

	resp, err := svc.CreateTest(validCreateDTO(3))
	if err != nil {
		t.Fatalf("CreateTest returned error: %v", err)
	}
	if resp.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", resp.TotalQuestions)
	}

	stored, err := testRepo.FindByID(resp.ID)
	if err != nil {
		t.Fatalf("created test not stored: %v", err)
	}
	for i, question := range stored.Questions {
		if question.OrderInTest != i+1 {
			t.Errorf("question %d: OrderInTest = %d, want %d", i, question.OrderInTest, i+1)
		}
		if question.Points != 1 {
			t.Errorf("question %d: Points = %d, want default 1", i, question.Points)
		}
	}
}

func TestCreateTestRequiresCorrectChoice(t *testing.T) {
	svc := NewAdminTestService(newFakeTestRepo())

	req := validCreateDTO(1)
	req.Questions = append(req.Questions, questionDTO("")) // nothing flagged correct

	_, err := svc.CreateTest(req)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateTestReplacesQuestions(t *testing.T) {
	testRepo := newFakeTestRepo()
	svc := NewAdminTestService(testRepo)

	created, err := svc.CreateTest(validCreateDTO(3))
	if err != nil {
		t.Fatalf("CreateTest returned error: %v", err)
	}

	updated, err := svc.UpdateTest(created.ID, dto.TestUpdateDTO{
		Questions: []dto.QuestionCreateDTO{questionDTO("B")},
	})
	if err != nil {
		t.Fatalf("UpdateTest returned error: %v", err)
	}
	if updated.TotalQuestions != 1 {
		t.Errorf("TotalQuestions after replacement = %d, want 1", updated.TotalQuestions)
	}

	stored, err := testRepo.FindByID(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.Questions) != 1 {
		t.Fatalf("stored question count = %d, want 1", len(stored.Questions))
	}
}

func TestUpdateTestNotFound(t *testing.T) {
	svc := NewAdminTestService(newFakeTestRepo())
	if _, err := svc.UpdateTest(77, dto.TestUpdateDTO{Title: "renamed"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTestNotFound(t *testing.T) {
	svc := NewAdminTestService(newFakeTestRepo())
	if err := svc.DeleteTest(77); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
