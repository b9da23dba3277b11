package usecase

import (
	"strings"

	"jobboard/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= minPasswordLength
}

func hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrInternal
	}
	return string(hash), nil
}

func passwordMatches(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// sanitizeUser strips secrets before a user leaves the usecase layer.
func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
