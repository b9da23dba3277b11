package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/candidate"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type CandidateInput struct {
	FullName        string
	Email           string
	Phone           string
	Address         string
	Bio             string
	ExperienceYears *int
	Skills          []string
}

type CandidateUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CandidateInput) (candidate.Profile, error)
	GetMine(ctx context.Context, ownerID uuid.UUID) (candidate.Profile, error)
	Get(ctx context.Context, id string) (candidate.Profile, error)
	List(ctx context.Context, limit, offset int) ([]candidate.Profile, error)
	Update(ctx context.Context, actor Actor, id string, in CandidateInput) (candidate.Profile, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type Candidates struct {
	repo repository.CandidateRepository
}

func NewCandidateUsecase(repo repository.CandidateRepository) *Candidates {
	return &Candidates{repo: repo}
}

func (u *Candidates) Create(ctx context.Context, ownerID uuid.UUID, in CandidateInput) (candidate.Profile, error) {
	if ownerID == uuid.Nil {
		return candidate.Profile{}, ErrUnauthorized
	}
	p, err := applyCandidateInput(candidate.Profile{ID: uuid.New(), OwnerID: ownerID}, in)
	if err != nil {
		return candidate.Profile{}, err
	}
	if err := u.repo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return candidate.Profile{}, ErrCandidateProfileExists
		}
		return candidate.Profile{}, ErrInternal
	}
	return u.load(ctx, p.ID)
}

func (u *Candidates) GetMine(ctx context.Context, ownerID uuid.UUID) (candidate.Profile, error) {
	p, err := u.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Profile{}, ErrCandidateProfileNotFound
		}
		return candidate.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Candidates) Get(ctx context.Context, id string) (candidate.Profile, error) {
	pid, err := parseID(id)
	if err != nil {
		return candidate.Profile{}, err
	}
	return u.load(ctx, pid)
}

func (u *Candidates) List(ctx context.Context, limit, offset int) ([]candidate.Profile, error) {
	out, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Candidates) Update(ctx context.Context, actor Actor, id string, in CandidateInput) (candidate.Profile, error) {
	pid, err := parseID(id)
	if err != nil {
		return candidate.Profile{}, err
	}
	existing, err := u.load(ctx, pid)
	if err != nil {
		return candidate.Profile{}, err
	}
	if !actor.CanManage(existing.OwnerID) {
		return candidate.Profile{}, ErrForbidden
	}
	updated, err := applyCandidateInput(existing, in)
	if err != nil {
		return candidate.Profile{}, err
	}
	if err := u.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Profile{}, ErrCandidateProfileNotFound
		}
		return candidate.Profile{}, ErrInternal
	}
	return u.load(ctx, pid)
}

func (u *Candidates) Delete(ctx context.Context, actor Actor, id string) error {
	pid, err := parseID(id)
	if err != nil {
		return err
	}
	existing, err := u.load(ctx, pid)
	if err != nil {
		return err
	}
	if !actor.CanManage(existing.OwnerID) {
		return ErrForbidden
	}
	if err := u.repo.Delete(ctx, pid); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return ErrCandidateProfileNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Candidates) load(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Profile{}, ErrCandidateProfileNotFound
		}
		return candidate.Profile{}, ErrInternal
	}
	return p, nil
}

func applyCandidateInput(p candidate.Profile, in CandidateInput) (candidate.Profile, error) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&p.FullName, in.FullName)
	set(&p.Email, in.Email)
	set(&p.Phone, in.Phone)
	set(&p.Address, in.Address)
	set(&p.Bio, in.Bio)
	if in.ExperienceYears != nil {
		if *in.ExperienceYears < 0 {
			return candidate.Profile{}, ErrInvalidInput
		}
		p.ExperienceYears = *in.ExperienceYears
	}
	if in.Skills != nil {
		p.Skills = normalizeSkills(in.Skills)
	}
	if p.FullName == "" {
		return candidate.Profile{}, ErrInvalidInput
	}
	return p, nil
}
