package job

import (
	"time"

	"jobboard/internal/domain/recommendation"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusClosed
}

type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Job struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	Title           string
	Department      string
	Location        string
	EmploymentType  string
	WorkMode        string
	ExperienceLevel string
	Salary          SalaryRange
	RequiredSkills  []string
	Description     string
	Status          Status
	Recommendations []recommendation.Entry
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CompanySummary is the slice of a company shown next to a job.
type CompanySummary struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Name     string
	Logo     string
	Industry string
	Location string
}

type WithCompany struct {
	Job
	Company CompanySummary
}
