package repository

import (
	"context"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/recommendation"

	"github.com/google/uuid"
)

type JobListParams struct {
	Status    job.Status
	CompanyID uuid.UUID
	Limit     int
	Offset    int
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.WithCompany, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, params JobListParams) ([]job.WithCompany, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]job.WithCompany, error)
	Update(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetRecommendations(ctx context.Context, id uuid.UUID, entries []recommendation.Entry) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.company_id, j.title, j.department, j.location, j.employment_type, j.work_mode,
	j.experience_level, j.salary_min, j.salary_max, j.required_skills, j.description, j.status,
	j.recommendations, j.created_at, j.updated_at`

const jobWithCompanyColumns = jobColumns + `,
	c.id, c.owner_id, c.name, c.logo, c.industry, c.location`

const jobWithCompanyFrom = ` FROM jobs j JOIN companies c ON c.id = j.company_id`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	recs, err := encodeEntries(j.Recommendations)
	if err != nil {
		return err
	}
	skills := j.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (id, company_id, title, department, location, employment_type, work_mode,
			experience_level, salary_min, salary_max, required_skills, description, status, recommendations)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14::jsonb)`,
		j.ID, j.CompanyID, j.Title, j.Department, j.Location, j.EmploymentType, j.WorkMode,
		j.ExperienceLevel, j.Salary.Min, j.Salary.Max, skills, j.Description, string(j.Status), recs,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.WithCompany, error) {
	return scanJobWithCompany(r.db.QueryRow(ctx, `SELECT `+jobWithCompanyColumns+jobWithCompanyFrom+` WHERE j.id = $1`, id))
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id).Scan(&exists); err != nil {
		if database.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, params JobListParams) ([]job.WithCompany, error) {
	limit, offset := clampPage(params.Limit, params.Offset, 20, 100)

	where := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if params.Status != "" {
		args = append(args, string(params.Status))
		where = append(where, "j.status = $1")
	}
	if params.CompanyID != uuid.Nil {
		args = append(args, params.CompanyID)
		where = append(where, "j.company_id = $"+itoa(len(args)))
	}

	q := `SELECT ` + jobWithCompanyColumns + jobWithCompanyFrom
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, limit, offset)
	q += ` ORDER BY j.created_at DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobsWithCompany(rows)
}

func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs j WHERE j.company_id = $1 ORDER BY j.created_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByIDs returns the jobs that still exist among ids, in no particular order.
func (r *PostgresJobRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]job.WithCompany, error) {
	if len(ids) == 0 {
		return []job.WithCompany{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+jobWithCompanyColumns+jobWithCompanyFrom+` WHERE j.id = ANY($1::uuid[])`,
		uuidStrings(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobsWithCompany(rows)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	skills := j.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET title = $2, department = $3, location = $4, employment_type = $5, work_mode = $6,
			experience_level = $7, salary_min = $8, salary_max = $9, required_skills = $10,
			description = $11, status = $12, updated_at = now()
		 WHERE id = $1`,
		j.ID, j.Title, j.Department, j.Location, j.EmploymentType, j.WorkMode,
		j.ExperienceLevel, j.Salary.Min, j.Salary.Max, skills, j.Description, string(j.Status),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) SetRecommendations(ctx context.Context, id uuid.UUID, entries []recommendation.Entry) error {
	recs, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx, `UPDATE jobs SET recommendations = $2::jsonb, updated_at = now() WHERE id = $1`, id, recs)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func collectJobsWithCompany(rows database.Rows) ([]job.WithCompany, error) {
	out := make([]job.WithCompany, 0)
	for rows.Next() {
		j, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func jobDest(j *job.Job, status *string, recs *[]byte) []any {
	return []any{
		&j.ID, &j.CompanyID, &j.Title, &j.Department, &j.Location, &j.EmploymentType, &j.WorkMode,
		&j.ExperienceLevel, &j.Salary.Min, &j.Salary.Max, &j.RequiredSkills, &j.Description, status,
		recs, &j.CreatedAt, &j.UpdatedAt,
	}
}

func finishJob(j *job.Job, status string, recs []byte) error {
	j.Status = job.Status(status)
	entries, err := decodeEntries(recs)
	if err != nil {
		return err
	}
	j.Recommendations = entries
	if j.RequiredSkills == nil {
		j.RequiredSkills = []string{}
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var status string
	var recs []byte
	if err := row.Scan(jobDest(&j, &status, &recs)...); err != nil {
		if database.IsNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	if err := finishJob(&j, status, recs); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func scanJobWithCompany(row database.Row) (job.WithCompany, error) {
	var out job.WithCompany
	var status string
	var recs []byte
	dest := jobDest(&out.Job, &status, &recs)
	dest = append(dest,
		&out.Company.ID, &out.Company.OwnerID, &out.Company.Name, &out.Company.Logo,
		&out.Company.Industry, &out.Company.Location,
	)
	if err := row.Scan(dest...); err != nil {
		if database.IsNoRows(err) {
			return job.WithCompany{}, ErrJobNotFound
		}
		return job.WithCompany{}, err
	}
	if err := finishJob(&out.Job, status, recs); err != nil {
		return job.WithCompany{}, err
	}
	return out, nil
}
