package repository

import (
	"errors"
	"strconv"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrJobNotFound          = errors.New("job not found")
	ErrResumeNotFound       = errors.New("resume not found")
	ErrCandidateNotFound    = errors.New("candidate profile not found")
	ErrCandidacyNotFound    = errors.New("candidacy not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuizResponseNotFound = errors.New("quiz response not found")

	// ErrDuplicate wraps a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
)

func clampPage(limit, offset, def, max int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
