package dto

import (
	"time"

	"jobboard/internal/domain/quiz"

	"github.com/google/uuid"
)

type QuizRequest struct {
	JobID           string          `json:"job_id" validate:"omitempty,uuid"`
	Title           string          `json:"title" validate:"max=200"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes" validate:"gte=0,lte=600"`
	Questions       []quiz.Question `json:"questions" validate:"omitempty,dive"`
}

type SubmitQuizRequest struct {
	Answers          []string `json:"answers"`
	TimeTakenSeconds int      `json:"time_taken_seconds" validate:"gte=0"`
}

type QuizResponse struct {
	ID              uuid.UUID       `json:"id"`
	JobID           uuid.UUID       `json:"job_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	DurationMinutes int             `json:"duration_minutes"`
	Questions       []quiz.Question `json:"questions"`
	CreatedBy       uuid.UUID       `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type QuizResultResponse struct {
	ID               uuid.UUID `json:"id"`
	QuizID           uuid.UUID `json:"quiz_id"`
	CandidateID      uuid.UUID `json:"candidate_id"`
	Score            float64   `json:"score"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

// FromQuiz blanks the correct answers unless reveal is set.
func FromQuiz(q quiz.Quiz, reveal bool) QuizResponse {
	questions := make([]quiz.Question, 0, len(q.Questions))
	for _, it := range q.Questions {
		if !reveal {
			it.CorrectAnswer = ""
		}
		questions = append(questions, it)
	}
	return QuizResponse{
		ID:              q.ID,
		JobID:           q.JobID,
		Title:           q.Title,
		Description:     q.Description,
		DurationMinutes: q.DurationMinutes,
		Questions:       questions,
		CreatedBy:       q.CreatedBy,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

func FromQuizzes(in []quiz.Quiz, reveal func(quiz.Quiz) bool) []QuizResponse {
	out := make([]QuizResponse, 0, len(in))
	for _, q := range in {
		out = append(out, FromQuiz(q, reveal(q)))
	}
	return out
}

func FromQuizResponse(r quiz.Response) QuizResultResponse {
	return QuizResultResponse{
		ID:               r.ID,
		QuizID:           r.QuizID,
		CandidateID:      r.CandidateID,
		Score:            r.Score,
		TimeTakenSeconds: r.TimeTakenSeconds,
		SubmittedAt:      r.SubmittedAt,
	}
}
