package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/candidate"

	"github.com/google/uuid"
)

type CandidateRepository interface {
	Create(ctx context.Context, p candidate.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (candidate.Profile, error)
	List(ctx context.Context, limit, offset int) ([]candidate.Profile, error)
	Update(ctx context.Context, p candidate.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, owner_id, full_name, email, phone, address, bio, experience_years, skills,
	created_at, updated_at`

func (r *PostgresCandidateRepository) Create(ctx context.Context, p candidate.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidate_profiles (id, owner_id, full_name, email, phone, address, bio, experience_years, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.OwnerID, p.FullName, p.Email, p.Phone, p.Address, p.Bio, p.ExperienceYears, nonNilStrings(p.Skills),
	)
	if err != nil && database.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	return scanCandidate(r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidate_profiles WHERE id = $1`, id))
}

func (r *PostgresCandidateRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (candidate.Profile, error) {
	return scanCandidate(r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidate_profiles WHERE owner_id = $1`, ownerID))
}

func (r *PostgresCandidateRepository) List(ctx context.Context, limit, offset int) ([]candidate.Profile, error) {
	limit, offset = clampPage(limit, offset, 20, 100)
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidate_profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Profile, 0)
	for rows.Next() {
		p, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) Update(ctx context.Context, p candidate.Profile) error {
	n, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET full_name = $2, email = $3, phone = $4, address = $5, bio = $6,
			experience_years = $7, skills = $8, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.FullName, p.Email, p.Phone, p.Address, p.Bio, p.ExperienceYears, nonNilStrings(p.Skills),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM candidate_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func scanCandidate(row database.Row) (candidate.Profile, error) {
	var p candidate.Profile
	err := row.Scan(&p.ID, &p.OwnerID, &p.FullName, &p.Email, &p.Phone, &p.Address, &p.Bio,
		&p.ExperienceYears, &p.Skills, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, err
	}
	p.Skills = nonNilStrings(p.Skills)
	return p, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
