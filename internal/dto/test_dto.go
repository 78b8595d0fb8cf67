package dto

import "time"

// ChoiceCreateDTO is one candidate option for a question.
type ChoiceCreateDTO struct {
	Option    string `json:"option" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionCreateDTO is used within TestCreateDTO for admin test creation.
type QuestionCreateDTO struct {
	QuestionText string            `json:"question_text" binding:"required"`
	Points       int               `json:"points" binding:"omitempty,min=1"`
	Choices      []ChoiceCreateDTO `json:"choices" binding:"required,min=2,dive"`
}

// TestCreateDTO is for admin to create a new test with all its questions.
type TestCreateDTO struct {
	Title        string              `json:"title" binding:"required"`
	Description  string              `json:"description" binding:"required"`
	Duration     int                 `json:"duration" binding:"required,min=1"`
	Date         time.Time           `json:"date" binding:"required"`
	PassingScore int                 `json:"passing_score" binding:"omitempty,min=0"`
	Questions    []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// TestUpdateDTO updates test metadata. When Questions is non-nil the question
// set is replaced wholesale, preserving the submitted order.
type TestUpdateDTO struct {
	Title        string              `json:"title" binding:"omitempty"`
	Description  string              `json:"description" binding:"omitempty"`
	Duration     int                 `json:"duration" binding:"omitempty,min=1"`
	Date         *time.Time          `json:"date"`
	PassingScore *int                `json:"passing_score" binding:"omitempty"`
	Questions    []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

type ChoiceResponseDTO struct {
	ID        uint   `json:"id"`
	Option    string `json:"option"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionResponseDTO struct {
	ID           uint                `json:"id"`
	TestID       uint                `json:"test_id"`
	QuestionText string              `json:"question_text"`
	Points       int                 `json:"points"`
	OrderInTest  int                 `json:"order_in_test"`
	Choices      []ChoiceResponseDTO `json:"choices,omitempty"`
}

type TestResponseDTO struct {
	ID             uint                  `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description,omitempty"`
	Duration       int                   `json:"duration"`
	Date           time.Time             `json:"date"`
	TotalQuestions int                   `json:"total_questions"`
	PassingScore   int                   `json:"passing_score"`
	Questions      []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

// TestSummaryDTO is used for listing tests available to users.
type TestSummaryDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Duration       int       `json:"duration"`
	Date           time.Time `json:"date"`
	TotalQuestions int       `json:"total_questions"`
	PassingScore   int       `json:"passing_score"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubmittedAnswerDTO is a user's answer to the question at the given position
// in the test's ordered question sequence.
type SubmittedAnswerDTO struct {
	QuestionIndex  *int   `json:"question_index" binding:"required"`
	SelectedOption string `json:"selected_option" binding:"required"`
}

// TestSubmissionDTO is the request body for submitting a test attempt.
type TestSubmissionDTO struct {
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,min=1,dive"`
}
