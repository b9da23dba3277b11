package quiz

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
)

type Question struct {
	Text          string       `json:"text" validate:"required"`
	Type          QuestionType `json:"type" validate:"oneof=multiple-choice true-false"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Points        int          `json:"points" validate:"min=0"`
}

type Quiz struct {
	ID              uuid.UUID
	JobID           uuid.UUID
	Title           string
	Description     string
	DurationMinutes int
	Questions       []Question
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Response struct {
	ID               uuid.UUID
	QuizID           uuid.UUID
	CandidateID      uuid.UUID
	Score            float64
	TimeTakenSeconds int
	SubmittedAt      time.Time
}
