package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

// UpdateMeInput changes only the fields that are set.
type UpdateMeInput struct {
	Email    *string
	Username *string
	Password *string
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateMeInput) (user.User, error)
}

type User struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *User {
	return &User{users: users}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	return sanitizeUser(usr), nil
}

func (u *User) UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateMeInput) (user.User, error) {
	usr, err := u.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Username = name
	}

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return user.User{}, ErrInvalidInput
		}
		if email != usr.Email {
			taken, err := u.users.ExistsByEmail(ctx, email)
			if err != nil {
				return user.User{}, ErrInternal
			}
			if taken {
				return user.User{}, ErrEmailTaken
			}
		}
		usr.Email = email
	}

	if in.Password != nil {
		if !validPassword(*in.Password) {
			return user.User{}, ErrInvalidInput
		}
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return user.User{}, err
		}
		usr.PasswordHash = hash
	}

	if err := u.users.UpdateUser(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}
	return u.GetMe(ctx, userID)
}

func (u *User) load(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}
