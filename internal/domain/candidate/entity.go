package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	FullName        string
	Email           string
	Phone           string
	Address         string
	Bio             string
	ExperienceYears int
	Skills          []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
