package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/candidacy"

	"github.com/google/uuid"
)

type CandidacyRepository interface {
	Create(ctx context.Context, c candidacy.Candidacy) error
	GetByID(ctx context.Context, id uuid.UUID) (candidacy.WithJob, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]candidacy.WithJob, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]candidacy.WithJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status candidacy.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCandidacyRepository struct {
	db database.DB
}

func NewPostgresCandidacyRepository(db database.DB) *PostgresCandidacyRepository {
	return &PostgresCandidacyRepository{db: db}
}

const candidacyWithJobSelect = `SELECT cd.id, cd.job_id, cd.candidate_id, cd.status, cd.applied_at, cd.updated_at,
	j.title, j.company_id
	FROM candidacies cd JOIN jobs j ON j.id = cd.job_id`

func (r *PostgresCandidacyRepository) Create(ctx context.Context, c candidacy.Candidacy) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidacies (id, job_id, candidate_id, status, applied_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)`,
		c.ID, c.JobID, c.CandidateID, string(c.Status), c.AppliedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		if database.IsForeignKeyViolation(err) {
			return ErrJobNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresCandidacyRepository) GetByID(ctx context.Context, id uuid.UUID) (candidacy.WithJob, error) {
	return scanCandidacy(r.db.QueryRow(ctx, candidacyWithJobSelect+` WHERE cd.id = $1`, id))
}

func (r *PostgresCandidacyRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]candidacy.WithJob, error) {
	return r.list(ctx, candidacyWithJobSelect+` WHERE cd.candidate_id = $1 ORDER BY cd.applied_at DESC`, candidateID)
}

func (r *PostgresCandidacyRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]candidacy.WithJob, error) {
	return r.list(ctx, candidacyWithJobSelect+` WHERE cd.job_id = $1 ORDER BY cd.applied_at DESC`, jobID)
}

func (r *PostgresCandidacyRepository) list(ctx context.Context, q string, arg any) ([]candidacy.WithJob, error) {
	rows, err := r.db.Query(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidacy.WithJob, 0)
	for rows.Next() {
		c, err := scanCandidacy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidacyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status candidacy.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE candidacies SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCandidacyNotFound
	}
	return nil
}

func (r *PostgresCandidacyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM candidacies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCandidacyNotFound
	}
	return nil
}

func scanCandidacy(row database.Row) (candidacy.WithJob, error) {
	var c candidacy.WithJob
	var status string
	err := row.Scan(&c.ID, &c.JobID, &c.CandidateID, &status, &c.AppliedAt, &c.UpdatedAt, &c.JobTitle, &c.JobCompany)
	if err != nil {
		if database.IsNoRows(err) {
			return candidacy.WithJob{}, ErrCandidacyNotFound
		}
		return candidacy.WithJob{}, err
	}
	c.Status = candidacy.Status(status)
	return c, nil
}
