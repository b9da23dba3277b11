package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Email    string
	Username string
	Password string
	Role     user.Role
}

type LoginInput struct {
	Email    string
	Password string
}

// Session is an authenticated user with a fresh token pair.
type Session struct {
	User         user.User
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (Session, error)
	Login(ctx context.Context, in LoginInput) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

// Register creates a candidate or recruiter account. Admins are provisioned
// by the seed command only.
func (u *Auth) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)
	if email == "" || username == "" || !validPassword(in.Password) {
		return Session{}, ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = user.RoleCandidate
	}
	if !role.SelfRegistrable() {
		return Session{}, ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return Session{}, ErrInternal
	}
	if exists {
		return Session{}, ErrEmailTaken
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return Session{}, err
	}

	usr := user.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := u.users.CreateUser(ctx, usr); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if exists, exErr := u.users.ExistsByEmail(ctx, email); exErr == nil && exists {
			return Session{}, ErrEmailTaken
		}
		return Session{}, ErrInternal
	}

	created, err := u.users.GetUserByID(ctx, usr.ID)
	if err != nil {
		return Session{}, ErrInternal
	}
	return u.issue(created)
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (Session, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Session{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, ErrInternal
	}
	if !passwordMatches(usr.PasswordHash, in.Password) {
		return Session{}, ErrInvalidCredentials
	}
	return u.issue(usr)
}

// Refresh trades a refresh token for a new pair. The role is reloaded from
// the user so role changes take effect on the next refresh.
func (u *Auth) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return Session{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrRefreshTokenExpired
		}
		return Session{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Session{}, ErrInvalidRefreshToken
		}
		return Session{}, ErrInternal
	}
	return u.issue(usr)
}

func (u *Auth) issue(usr user.User) (Session, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return Session{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return Session{}, ErrInternal
	}
	return Session{User: sanitizeUser(usr), AccessToken: access, RefreshToken: refresh}, nil
}
