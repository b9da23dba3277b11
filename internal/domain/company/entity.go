package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Logo        string
	Location    string
	Website     string
	Size        string
	Industry    string
	Founded     string
	Description string
	Email       string
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
