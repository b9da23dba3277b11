package dto

import (
	"time"

	"jobboard/internal/domain/candidate"

	"github.com/google/uuid"
)

type CandidateRequest struct {
	FullName        string   `json:"full_name" validate:"max=200"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	Bio             string   `json:"bio"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	Skills          []string `json:"skills" validate:"omitempty,dive,max=100"`
}

type CandidateResponse struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	Skills          []string  `json:"skills"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromCandidate(p candidate.Profile) CandidateResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return CandidateResponse{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		FullName:        p.FullName,
		Email:           p.Email,
		Phone:           p.Phone,
		Address:         p.Address,
		Bio:             p.Bio,
		ExperienceYears: p.ExperienceYears,
		Skills:          skills,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromCandidates(in []candidate.Profile) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromCandidate(p))
	}
	return out
}
