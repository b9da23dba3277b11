package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")

	ErrCompanyNotFound          = errors.New("company not found")
	ErrCompanyExists            = errors.New("company already exists")
	ErrJobNotFound              = errors.New("job not found")
	ErrResumeNotFound           = errors.New("resume not found")
	ErrCandidateProfileNotFound = errors.New("candidate profile not found")
	ErrCandidateProfileExists   = errors.New("candidate profile already exists")
	ErrCandidacyNotFound        = errors.New("candidacy not found")
	ErrAlreadyApplied           = errors.New("already applied to this job")
	ErrInvalidStatus            = errors.New("invalid status")
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrQuizNotFound             = errors.New("quiz not found")
	ErrQuizAlreadySubmitted     = errors.New("quiz already submitted")
	ErrQuizResponseNotFound     = errors.New("quiz response not found")

	// ErrNotificationNotPersisted is a soft failure; callers log it and carry on.
	ErrNotificationNotPersisted = errors.New("notification not persisted")
)
