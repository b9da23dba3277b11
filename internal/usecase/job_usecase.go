package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobInput struct {
	Title           string
	Department      string
	Location        string
	EmploymentType  string
	WorkMode        string
	ExperienceLevel string
	Salary          job.SalaryRange
	RequiredSkills  []string
	Description     string
	Status          job.Status
}

type JobListParams struct {
	Status job.Status
	Limit  int
	Offset int
}

// JobAnnouncer is told about newly published jobs.
type JobAnnouncer interface {
	NotifyJobPosted(jobID uuid.UUID, title, companyName string)
}

// CacheInvalidator drops derived lookups that may reference a changed job.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type JobUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in JobInput) (job.WithCompany, error)
	List(ctx context.Context, params JobListParams) ([]job.WithCompany, error)
	Get(ctx context.Context, id string) (job.WithCompany, error)
	Update(ctx context.Context, actor Actor, id string, in JobInput) (job.WithCompany, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type Jobs struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	announcer JobAnnouncer
	cache     CacheInvalidator
	logger    *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, companies repository.CompanyRepository, announcer JobAnnouncer, cache CacheInvalidator, logger *zap.Logger) *Jobs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Jobs{jobs: jobs, companies: companies, announcer: announcer, cache: cache, logger: logger}
}

func (u *Jobs) Create(ctx context.Context, ownerID uuid.UUID, in JobInput) (job.WithCompany, error) {
	if ownerID == uuid.Nil {
		return job.WithCompany{}, ErrUnauthorized
	}
	co, err := u.companies.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return job.WithCompany{}, ErrCompanyNotFound
		}
		return job.WithCompany{}, ErrInternal
	}

	j, err := applyJobInput(job.Job{ID: uuid.New(), CompanyID: co.ID, Status: job.StatusActive}, in)
	if err != nil {
		return job.WithCompany{}, err
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		return job.WithCompany{}, ErrInternal
	}

	created, err := u.load(ctx, j.ID)
	if err != nil {
		return job.WithCompany{}, err
	}

	if u.announcer != nil && created.Status == job.StatusActive {
		u.announcer.NotifyJobPosted(created.ID, created.Title, created.Company.Name)
	}
	return created, nil
}

func (u *Jobs) List(ctx context.Context, params JobListParams) ([]job.WithCompany, error) {
	if params.Status != "" && !params.Status.Valid() {
		return nil, ErrInvalidInput
	}
	out, err := u.jobs.List(ctx, repository.JobListParams{
		Status: params.Status,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, ErrInternal
	}
	for i := range out {
		out[i].Recommendations = nil
	}
	return out, nil
}

func (u *Jobs) Get(ctx context.Context, id string) (job.WithCompany, error) {
	jid, err := parseID(id)
	if err != nil {
		return job.WithCompany{}, err
	}
	j, err := u.load(ctx, jid)
	if err != nil {
		return job.WithCompany{}, err
	}
	j.Recommendations = nil
	return j, nil
}

func (u *Jobs) Update(ctx context.Context, actor Actor, id string, in JobInput) (job.WithCompany, error) {
	jid, err := parseID(id)
	if err != nil {
		return job.WithCompany{}, err
	}
	existing, err := u.load(ctx, jid)
	if err != nil {
		return job.WithCompany{}, err
	}
	if !actor.CanManage(existing.Company.OwnerID) {
		return job.WithCompany{}, ErrForbidden
	}

	updated, err := applyJobInput(existing.Job, in)
	if err != nil {
		return job.WithCompany{}, err
	}
	if err := u.jobs.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.WithCompany{}, ErrJobNotFound
		}
		return job.WithCompany{}, ErrInternal
	}
	u.invalidate(ctx)

	out, err := u.load(ctx, jid)
	if err != nil {
		return job.WithCompany{}, err
	}
	out.Recommendations = nil
	return out, nil
}

func (u *Jobs) Delete(ctx context.Context, actor Actor, id string) error {
	jid, err := parseID(id)
	if err != nil {
		return err
	}
	existing, err := u.load(ctx, jid)
	if err != nil {
		return err
	}
	if !actor.CanManage(existing.Company.OwnerID) {
		return ErrForbidden
	}
	if err := u.jobs.Delete(ctx, jid); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	u.invalidate(ctx)
	return nil
}

func (u *Jobs) load(ctx context.Context, id uuid.UUID) (job.WithCompany, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.WithCompany{}, ErrJobNotFound
		}
		return job.WithCompany{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) invalidate(ctx context.Context) {
	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
}

func applyJobInput(j job.Job, in JobInput) (job.Job, error) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&j.Title, in.Title)
	set(&j.Department, in.Department)
	set(&j.Location, in.Location)
	set(&j.EmploymentType, in.EmploymentType)
	set(&j.WorkMode, in.WorkMode)
	set(&j.ExperienceLevel, in.ExperienceLevel)
	set(&j.Description, in.Description)

	if in.Salary != (job.SalaryRange{}) {
		j.Salary = in.Salary
	}
	if in.RequiredSkills != nil {
		j.RequiredSkills = normalizeSkills(in.RequiredSkills)
	}
	if in.Status != "" {
		if !in.Status.Valid() {
			return job.Job{}, ErrInvalidStatus
		}
		j.Status = in.Status
	}

	if j.Title == "" {
		return job.Job{}, ErrInvalidInput
	}
	if j.Salary.Min < 0 || j.Salary.Max < 0 || (j.Salary.Max > 0 && j.Salary.Min > j.Salary.Max) {
		return job.Job{}, ErrInvalidInput
	}
	return j, nil
}

func normalizeSkills(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}
