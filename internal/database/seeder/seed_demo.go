package seeder

import (
	"context"
	"fmt"

	"jobboard/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoRecruiterEmail = "recruiter@demo.jobboard.local"
	demoPassword       = "demo-password"
)

type demoJob struct {
	Title      string
	Department string
	Location   string
	WorkMode   string
	Level      string
	SalaryMin  int
	SalaryMax  int
	Skills     []string
}

var demoJobs = []demoJob{
	{Title: "Backend Engineer", Department: "Engineering", Location: "Jakarta", WorkMode: "Hybrid", Level: "Mid", SalaryMin: 15000000, SalaryMax: 25000000, Skills: []string{"Go", "PostgreSQL", "Redis"}},
	{Title: "Frontend Engineer", Department: "Engineering", Location: "Remote", WorkMode: "Remote", Level: "Senior", SalaryMin: 18000000, SalaryMax: 30000000, Skills: []string{"TypeScript", "React"}},
	{Title: "Data Analyst", Department: "Data", Location: "Bandung", WorkMode: "Onsite", Level: "Junior", SalaryMin: 8000000, SalaryMax: 12000000, Skills: []string{"SQL", "Python"}},
}

// DemoSeeder creates a recruiter with a company and a few active jobs for
// local development. It does nothing when the recruiter already exists.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "company_id", "title", "department", "location", "work_mode", "experience_level", "salary_min", "salary_max", "required_skills", "status"); err != nil {
		return err
	}

	var exists bool
	if err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, demoRecruiterEmail).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		return insertDemo(ctx, tx, string(hash))
	})
}

func insertDemo(ctx context.Context, tx database.Tx, hash string) error {
	recruiterID := uuid.New()
	if _, err := tx.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, role) VALUES ($1, $2, $3, $4, 'recruiter')`,
		recruiterID, demoRecruiterEmail, "demo-recruiter", hash,
	); err != nil {
		return err
	}

	companyID := uuid.New()
	if _, err := tx.Exec(ctx,
		`INSERT INTO companies (id, owner_id, name, location, industry, size) VALUES ($1, $2, $3, $4, $5, $6)`,
		companyID, recruiterID, "Demo Labs", "Jakarta", "Software", "11-50",
	); err != nil {
		return err
	}

	for _, j := range demoJobs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, company_id, title, department, location, work_mode, experience_level, salary_min, salary_max, required_skills, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'Active')`,
			uuid.New(), companyID, j.Title, j.Department, j.Location, j.WorkMode, j.Level, j.SalaryMin, j.SalaryMax, j.Skills,
		); err != nil {
			return fmt.Errorf("insert job %q: %w", j.Title, err)
		}
	}

	return nil
}
