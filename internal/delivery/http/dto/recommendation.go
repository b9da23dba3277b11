package dto

import (
	"jobboard/internal/domain/recommendation"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
)

type RecommendationEntry struct {
	TargetID string  `json:"target_id" validate:"required,uuid"`
	Score    float64 `json:"score" validate:"gte=0"`
}

type SetRecommendationsRequest struct {
	Entries []RecommendationEntry `json:"entries" validate:"dive"`
}

// ToEntries assumes the request already passed validation.
func (r SetRecommendationsRequest) ToEntries() []recommendation.Entry {
	out := make([]recommendation.Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, recommendation.Entry{TargetID: uuid.MustParse(e.TargetID), Score: e.Score})
	}
	return out
}

type JobMatchResponse struct {
	Job   JobResponse `json:"job"`
	Score float64     `json:"score"`
}

type ResumeMatchResponse struct {
	Resume ResumeResponse `json:"resume"`
	Score  float64        `json:"score"`
}

type BestMatchResponse struct {
	Job    JobResponse    `json:"job"`
	Resume ResumeResponse `json:"resume"`
	Score  float64        `json:"score"`
}

type MatchScoreResponse struct {
	Score float64 `json:"score"`
}

func FromJobMatches(in []usecase.JobMatch) []JobMatchResponse {
	out := make([]JobMatchResponse, 0, len(in))
	for _, m := range in {
		out = append(out, JobMatchResponse{Job: FromJobWithCompany(m.Job), Score: m.Score})
	}
	return out
}

func FromResumeMatches(in []usecase.ResumeMatch) []ResumeMatchResponse {
	out := make([]ResumeMatchResponse, 0, len(in))
	for _, m := range in {
		out = append(out, ResumeMatchResponse{Resume: FromResume(m.Resume), Score: m.Score})
	}
	return out
}

func FromBestMatches(in []usecase.CompanyBestMatch) []BestMatchResponse {
	out := make([]BestMatchResponse, 0, len(in))
	for _, m := range in {
		out = append(out, BestMatchResponse{Job: FromJob(m.Job), Resume: FromResume(m.Resume), Score: m.Score})
	}
	return out
}
