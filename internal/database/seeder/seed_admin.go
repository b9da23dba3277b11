package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var errAdminCredentials = errors.New("admin email and password are required")

// AdminSeeder creates the admin account once. An existing user with the same
// email is left untouched.
type AdminSeeder struct {
	Email    string
	Username string
	Password string
}

func (AdminSeeder) Name() string { return "admin" }

func (s AdminSeeder) validate() error {
	if strings.TrimSpace(s.Email) == "" || s.Password == "" {
		return errAdminCredentials
	}
	if len(s.Password) < 8 {
		return fmt.Errorf("admin password must be at least 8 characters")
	}
	return nil
}

func (s AdminSeeder) Run(ctx context.Context, db database.DB) error {
	if err := s.validate(); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "username", "password_hash", "role"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	username := strings.TrimSpace(s.Username)
	if username == "" {
		username = "admin"
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, role)
		 VALUES ($1, $2, $3, $4, 'admin')
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New(), strings.ToLower(strings.TrimSpace(s.Email)), username, string(hash),
	)
	return err
}
