package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type SalaryRange struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"gte=0"`
}

type JobRequest struct {
	Title           string      `json:"title" validate:"max=200"`
	Department      string      `json:"department"`
	Location        string      `json:"location"`
	EmploymentType  string      `json:"employment_type"`
	WorkMode        string      `json:"work_mode"`
	ExperienceLevel string      `json:"experience_level"`
	Salary          SalaryRange `json:"salary"`
	RequiredSkills  []string    `json:"required_skills" validate:"omitempty,dive,max=100"`
	Description     string      `json:"description"`
	Status          string      `json:"status" validate:"omitempty,oneof=Active Closed"`
}

type JobCompany struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Logo     string    `json:"logo,omitempty"`
	Industry string    `json:"industry,omitempty"`
	Location string    `json:"location,omitempty"`
}

type JobResponse struct {
	ID              uuid.UUID       `json:"id"`
	CompanyID       uuid.UUID       `json:"company_id"`
	Company         *JobCompany     `json:"company,omitempty"`
	Title           string          `json:"title"`
	Department      string          `json:"department,omitempty"`
	Location        string          `json:"location,omitempty"`
	EmploymentType  string          `json:"employment_type,omitempty"`
	WorkMode        string          `json:"work_mode,omitempty"`
	ExperienceLevel string          `json:"experience_level,omitempty"`
	Salary          job.SalaryRange `json:"salary"`
	RequiredSkills  []string        `json:"required_skills"`
	Description     string          `json:"description,omitempty"`
	Status          job.Status      `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromJob(j job.Job) JobResponse {
	skills := j.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		ID:              j.ID,
		CompanyID:       j.CompanyID,
		Title:           j.Title,
		Department:      j.Department,
		Location:        j.Location,
		EmploymentType:  j.EmploymentType,
		WorkMode:        j.WorkMode,
		ExperienceLevel: j.ExperienceLevel,
		Salary:          j.Salary,
		RequiredSkills:  skills,
		Description:     j.Description,
		Status:          j.Status,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func FromJobWithCompany(j job.WithCompany) JobResponse {
	out := FromJob(j.Job)
	out.Company = &JobCompany{
		ID:       j.Company.ID,
		Name:     j.Company.Name,
		Logo:     j.Company.Logo,
		Industry: j.Company.Industry,
		Location: j.Company.Location,
	}
	return out
}

func FromJobsWithCompany(in []job.WithCompany) []JobResponse {
	out := make([]JobResponse, 0, len(in))
	for _, j := range in {
		out = append(out, FromJobWithCompany(j))
	}
	return out
}
