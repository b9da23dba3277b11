package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/company"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type CompanyInput struct {
	Name        string
	Logo        string
	Location    string
	Website     string
	Size        string
	Industry    string
	Founded     string
	Description string
	Email       string
	Phone       string
	Address     string
}

type CompanyUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CompanyInput) (company.Company, error)
	GetMine(ctx context.Context, ownerID uuid.UUID) (company.Company, error)
	Get(ctx context.Context, id string) (company.Company, error)
	List(ctx context.Context, limit, offset int) ([]company.Company, error)
	Update(ctx context.Context, actor Actor, id string, in CompanyInput) (company.Company, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type Companies struct {
	repo  repository.CompanyRepository
	cache CacheInvalidator
}

// NewCompanyUsecase takes the invalidator of cached job lookups, which embed
// the company summary and vanish with the company's jobs on delete.
func NewCompanyUsecase(repo repository.CompanyRepository, cache CacheInvalidator) *Companies {
	return &Companies{repo: repo, cache: cache}
}

// Create registers the recruiter's company. A recruiter owns at most one.
func (u *Companies) Create(ctx context.Context, ownerID uuid.UUID, in CompanyInput) (company.Company, error) {
	if ownerID == uuid.Nil {
		return company.Company{}, ErrUnauthorized
	}
	c := applyCompanyInput(company.Company{ID: uuid.New(), OwnerID: ownerID}, in)
	if c.Name == "" {
		return company.Company{}, ErrInvalidInput
	}

	if err := u.repo.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return company.Company{}, ErrCompanyExists
		}
		return company.Company{}, ErrInternal
	}
	return u.load(ctx, c.ID)
}

func (u *Companies) GetMine(ctx context.Context, ownerID uuid.UUID) (company.Company, error) {
	c, err := u.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, ErrInternal
	}
	return c, nil
}

func (u *Companies) Get(ctx context.Context, id string) (company.Company, error) {
	cid, err := parseID(id)
	if err != nil {
		return company.Company{}, err
	}
	return u.load(ctx, cid)
}

func (u *Companies) List(ctx context.Context, limit, offset int) ([]company.Company, error) {
	out, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Companies) Update(ctx context.Context, actor Actor, id string, in CompanyInput) (company.Company, error) {
	cid, err := parseID(id)
	if err != nil {
		return company.Company{}, err
	}
	existing, err := u.load(ctx, cid)
	if err != nil {
		return company.Company{}, err
	}
	if !actor.CanManage(existing.OwnerID) {
		return company.Company{}, ErrForbidden
	}

	updated := applyCompanyInput(existing, in)
	if updated.Name == "" {
		return company.Company{}, ErrInvalidInput
	}
	if err := u.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, ErrInternal
	}
	u.invalidate(ctx)
	return u.load(ctx, cid)
}

func (u *Companies) Delete(ctx context.Context, actor Actor, id string) error {
	cid, err := parseID(id)
	if err != nil {
		return err
	}
	existing, err := u.load(ctx, cid)
	if err != nil {
		return err
	}
	if !actor.CanManage(existing.OwnerID) {
		return ErrForbidden
	}
	if err := u.repo.Delete(ctx, cid); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return ErrCompanyNotFound
		}
		return ErrInternal
	}
	u.invalidate(ctx)
	return nil
}

func (u *Companies) invalidate(ctx context.Context) {
	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
}

func (u *Companies) load(ctx context.Context, id uuid.UUID) (company.Company, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, ErrInternal
	}
	return c, nil
}

// applyCompanyInput overwrites fields with non-empty input values.
func applyCompanyInput(c company.Company, in CompanyInput) company.Company {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&c.Name, in.Name)
	set(&c.Logo, in.Logo)
	set(&c.Location, in.Location)
	set(&c.Website, in.Website)
	set(&c.Size, in.Size)
	set(&c.Industry, in.Industry)
	set(&c.Founded, in.Founded)
	set(&c.Description, in.Description)
	set(&c.Email, in.Email)
	set(&c.Phone, in.Phone)
	set(&c.Address, in.Address)
	return c
}
