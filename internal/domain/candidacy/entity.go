package candidacy

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

type Candidacy struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	Status      Status
	AppliedAt   time.Time
	UpdatedAt   time.Time
}

// WithJob pairs a candidacy with the title of the job it targets.
type WithJob struct {
	Candidacy
	JobTitle   string
	JobCompany uuid.UUID
}
