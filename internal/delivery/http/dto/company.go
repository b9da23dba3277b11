package dto

import (
	"time"

	"jobboard/internal/domain/company"

	"github.com/google/uuid"
)

type CompanyRequest struct {
	Name        string `json:"name" validate:"max=200"`
	Logo        string `json:"logo" validate:"omitempty,url"`
	Location    string `json:"location"`
	Website     string `json:"website" validate:"omitempty,url"`
	Size        string `json:"size"`
	Industry    string `json:"industry"`
	Founded     string `json:"founded"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Logo        string    `json:"logo,omitempty"`
	Location    string    `json:"location,omitempty"`
	Website     string    `json:"website,omitempty"`
	Size        string    `json:"size,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Founded     string    `json:"founded,omitempty"`
	Description string    `json:"description,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCompany(c company.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Name:        c.Name,
		Logo:        c.Logo,
		Location:    c.Location,
		Website:     c.Website,
		Size:        c.Size,
		Industry:    c.Industry,
		Founded:     c.Founded,
		Description: c.Description,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCompanies(in []company.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromCompany(c))
	}
	return out
}
