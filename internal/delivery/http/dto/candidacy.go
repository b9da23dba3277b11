package dto

import (
	"time"

	"jobboard/internal/domain/candidacy"

	"github.com/google/uuid"
)

type ApplyRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

type CandidacyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

type CandidacyResponse struct {
	ID          uuid.UUID        `json:"id"`
	JobID       uuid.UUID        `json:"job_id"`
	JobTitle    string           `json:"job_title,omitempty"`
	CandidateID uuid.UUID        `json:"candidate_id"`
	Status      candidacy.Status `json:"status"`
	AppliedAt   time.Time        `json:"applied_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func FromCandidacy(c candidacy.Candidacy) CandidacyResponse {
	return CandidacyResponse{
		ID:          c.ID,
		JobID:       c.JobID,
		CandidateID: c.CandidateID,
		Status:      c.Status,
		AppliedAt:   c.AppliedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCandidacyWithJob(c candidacy.WithJob) CandidacyResponse {
	out := FromCandidacy(c.Candidacy)
	out.JobTitle = c.JobTitle
	return out
}

func FromCandidacies(in []candidacy.WithJob) []CandidacyResponse {
	out := make([]CandidacyResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromCandidacyWithJob(c))
	}
	return out
}
