package resume

import (
	"time"

	"jobboard/internal/domain/recommendation"

	"github.com/google/uuid"
)

// Document is the free-form body of a résumé, stored as one JSON document.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Accreditations []Accreditation `json:"accreditations"`
	Languages      []Language      `json:"languages"`
	Interests      []string        `json:"interests"`
	Links          []Link          `json:"links"`
}

type PersonalInfo struct {
	FullName string `json:"full_name" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Summary  string `json:"summary"`
}

type Education struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"oneof=diploma training"`
	Institution string `json:"institution" validate:"required"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	Description string `json:"description"`
}

type Experience struct {
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Location    string `json:"location"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	Description string `json:"description"`
}

type Skill struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"min=1,max=5"`
}

type Accreditation struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	Description  string `json:"description"`
}

type Language struct {
	Language    string `json:"language" validate:"required"`
	Proficiency string `json:"proficiency" validate:"required"`
}

type Link struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

type Resume struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Document        Document
	FileURL         string
	Recommendations []recommendation.Entry
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
