package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/resume"
	"jobboard/internal/repository"
	"jobboard/internal/search"

	"github.com/google/uuid"
)

type ResumeInput struct {
	Document resume.Document
	FileURL  string
}

type ResumeUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in ResumeInput) (resume.Resume, error)
	GetMine(ctx context.Context, ownerID uuid.UUID) (resume.Resume, error)
	Get(ctx context.Context, id string) (resume.Resume, error)
	List(ctx context.Context, limit, offset int) ([]resume.Resume, error)
	SearchBySkill(ctx context.Context, skill string, limit, offset int) ([]resume.Resume, error)
	Update(ctx context.Context, actor Actor, id string, in ResumeInput) (resume.Resume, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type Resumes struct {
	repo  repository.ResumeRepository
	cache CacheInvalidator
}

func NewResumeUsecase(repo repository.ResumeRepository, cache CacheInvalidator) *Resumes {
	return &Resumes{repo: repo, cache: cache}
}

func (u *Resumes) Create(ctx context.Context, ownerID uuid.UUID, in ResumeInput) (resume.Resume, error) {
	if ownerID == uuid.Nil {
		return resume.Resume{}, ErrUnauthorized
	}
	r := resume.Resume{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Document: in.Document,
		FileURL:  strings.TrimSpace(in.FileURL),
	}
	if err := u.repo.Create(ctx, r); err != nil {
		return resume.Resume{}, ErrInternal
	}
	// The newest résumé now drives the owner's matches.
	u.invalidate(ctx)
	return u.load(ctx, r.ID)
}

func (u *Resumes) GetMine(ctx context.Context, ownerID uuid.UUID) (resume.Resume, error) {
	r, err := u.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	return r, nil
}

func (u *Resumes) Get(ctx context.Context, id string) (resume.Resume, error) {
	rid, err := parseID(id)
	if err != nil {
		return resume.Resume{}, err
	}
	return u.load(ctx, rid)
}

func (u *Resumes) List(ctx context.Context, limit, offset int) ([]resume.Resume, error) {
	out, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return withoutRecommendations(out), nil
}

func (u *Resumes) SearchBySkill(ctx context.Context, skill string, limit, offset int) ([]resume.Resume, error) {
	q := search.ProcessQuery(skill)
	if q.Normalized == "" {
		return nil, ErrInvalidInput
	}
	out, err := u.repo.SearchBySkill(ctx, q.Variants, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return withoutRecommendations(out), nil
}

func (u *Resumes) Update(ctx context.Context, actor Actor, id string, in ResumeInput) (resume.Resume, error) {
	rid, err := parseID(id)
	if err != nil {
		return resume.Resume{}, err
	}
	existing, err := u.load(ctx, rid)
	if err != nil {
		return resume.Resume{}, err
	}
	if !actor.CanManage(existing.OwnerID) {
		return resume.Resume{}, ErrForbidden
	}

	existing.Document = in.Document
	if url := strings.TrimSpace(in.FileURL); url != "" {
		existing.FileURL = url
	}
	if err := u.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	u.invalidate(ctx)
	return u.load(ctx, rid)
}

func (u *Resumes) Delete(ctx context.Context, actor Actor, id string) error {
	rid, err := parseID(id)
	if err != nil {
		return err
	}
	existing, err := u.load(ctx, rid)
	if err != nil {
		return err
	}
	if !actor.CanManage(existing.OwnerID) {
		return ErrForbidden
	}
	if err := u.repo.Delete(ctx, rid); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrInternal
	}
	u.invalidate(ctx)
	return nil
}

func (u *Resumes) load(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	return r, nil
}

func (u *Resumes) invalidate(ctx context.Context) {
	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
}

func withoutRecommendations(in []resume.Resume) []resume.Resume {
	for i := range in {
		in[i].Recommendations = nil
	}
	return in
}
