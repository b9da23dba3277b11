package dto

import (
	"time"

	"jobboard/internal/domain/resume"

	"github.com/google/uuid"
)

type ResumeRequest struct {
	Document resume.Document `json:"document"`
	FileURL  string          `json:"file_url" validate:"omitempty,url"`
}

type ResumeResponse struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Document  resume.Document `json:"document"`
	FileURL   string          `json:"file_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromResume(r resume.Resume) ResumeResponse {
	return ResumeResponse{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Document:  r.Document,
		FileURL:   r.FileURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromResumes(in []resume.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(in))
	for _, r := range in {
		out = append(out, FromResume(r))
	}
	return out
}
