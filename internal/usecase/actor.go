package usecase

import (
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// CanManage reports whether the actor owns the record or is an admin.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	if a.UserID == uuid.Nil {
		return false
	}
	return a.IsAdmin() || a.UserID == ownerID
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
