package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/domain/candidacy"
	"jobboard/internal/domain/notification"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CandidacyUsecase interface {
	Apply(ctx context.Context, candidateID uuid.UUID, jobID string) (candidacy.Candidacy, error)
	ListMine(ctx context.Context, candidateID uuid.UUID) ([]candidacy.WithJob, error)
	ListByJob(ctx context.Context, actor Actor, jobID string) ([]candidacy.WithJob, error)
	UpdateStatus(ctx context.Context, actor Actor, id string, status candidacy.Status) (candidacy.WithJob, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type Candidacies struct {
	candidacies repository.CandidacyRepository
	jobs        repository.JobRepository
	companies   repository.CompanyRepository
	notifier    Notifier
	logger      *zap.Logger
	now         func() time.Time
}

func NewCandidacyUsecase(
	candidacies repository.CandidacyRepository,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	notifier Notifier,
	logger *zap.Logger,
) *Candidacies {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Candidacies{
		candidacies: candidacies,
		jobs:        jobs,
		companies:   companies,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (u *Candidacies) Apply(ctx context.Context, candidateID uuid.UUID, jobID string) (candidacy.Candidacy, error) {
	if candidateID == uuid.Nil {
		return candidacy.Candidacy{}, ErrUnauthorized
	}
	jid, err := parseID(jobID)
	if err != nil {
		return candidacy.Candidacy{}, err
	}

	j, err := u.jobs.GetByID(ctx, jid)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return candidacy.Candidacy{}, ErrJobNotFound
		}
		return candidacy.Candidacy{}, ErrInternal
	}

	now := u.now().UTC()
	c := candidacy.Candidacy{
		ID:          uuid.New(),
		JobID:       jid,
		CandidateID: candidateID,
		Status:      candidacy.StatusPending,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.candidacies.Create(ctx, c); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return candidacy.Candidacy{}, ErrAlreadyApplied
		case errors.Is(err, repository.ErrJobNotFound):
			return candidacy.Candidacy{}, ErrJobNotFound
		default:
			return candidacy.Candidacy{}, ErrInternal
		}
	}

	u.notify(ctx, NotifyInput{
		RecipientID: j.Company.OwnerID,
		Message:     fmt.Sprintf("New candidacy received for %s", strings.TrimSpace(j.Title)),
		Link:        "/jobs/" + jid.String() + "/candidacies",
		Type:        notification.TypeCandidacyReceived,
	})

	return c, nil
}

func (u *Candidacies) ListMine(ctx context.Context, candidateID uuid.UUID) ([]candidacy.WithJob, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.candidacies.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Candidacies) ListByJob(ctx context.Context, actor Actor, jobID string) ([]candidacy.WithJob, error) {
	jid, err := parseID(jobID)
	if err != nil {
		return nil, err
	}
	j, err := u.jobs.GetByID(ctx, jid)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if !actor.CanManage(j.Company.OwnerID) {
		return nil, ErrForbidden
	}

	out, err := u.candidacies.ListByJob(ctx, jid)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Candidacies) UpdateStatus(ctx context.Context, actor Actor, id string, status candidacy.Status) (candidacy.WithJob, error) {
	cid, err := parseID(id)
	if err != nil {
		return candidacy.WithJob{}, err
	}
	if !status.Valid() {
		return candidacy.WithJob{}, ErrInvalidStatus
	}

	c, err := u.candidacies.GetByID(ctx, cid)
	if err != nil {
		if errors.Is(err, repository.ErrCandidacyNotFound) {
			return candidacy.WithJob{}, ErrCandidacyNotFound
		}
		return candidacy.WithJob{}, ErrInternal
	}

	ownerID, err := u.companyOwner(ctx, c.JobCompany)
	if err != nil {
		return candidacy.WithJob{}, err
	}
	if !actor.CanManage(ownerID) {
		return candidacy.WithJob{}, ErrForbidden
	}

	if err := u.candidacies.UpdateStatus(ctx, cid, status); err != nil {
		if errors.Is(err, repository.ErrCandidacyNotFound) {
			return candidacy.WithJob{}, ErrCandidacyNotFound
		}
		return candidacy.WithJob{}, ErrInternal
	}
	c.Status = status
	c.UpdatedAt = u.now().UTC()

	u.notify(ctx, NotifyInput{
		RecipientID: c.CandidateID,
		Message:     fmt.Sprintf("Your candidacy for %s is now %s", strings.TrimSpace(c.JobTitle), status),
		Link:        "/candidacies",
		Type:        notification.TypeCandidacyStatusChanged,
	})

	return c, nil
}

// Delete lets the candidate withdraw, or the hiring company or an admin remove, a candidacy.
func (u *Candidacies) Delete(ctx context.Context, actor Actor, id string) error {
	cid, err := parseID(id)
	if err != nil {
		return err
	}
	c, err := u.candidacies.GetByID(ctx, cid)
	if err != nil {
		if errors.Is(err, repository.ErrCandidacyNotFound) {
			return ErrCandidacyNotFound
		}
		return ErrInternal
	}

	if !actor.CanManage(c.CandidateID) {
		ownerID, err := u.companyOwner(ctx, c.JobCompany)
		if err != nil {
			return err
		}
		if actor.UserID != ownerID {
			return ErrForbidden
		}
	}

	if err := u.candidacies.Delete(ctx, cid); err != nil {
		if errors.Is(err, repository.ErrCandidacyNotFound) {
			return ErrCandidacyNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Candidacies) companyOwner(ctx context.Context, companyID uuid.UUID) (uuid.UUID, error) {
	co, err := u.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return uuid.Nil, ErrCompanyNotFound
		}
		return uuid.Nil, ErrInternal
	}
	return co.OwnerID, nil
}

func (u *Candidacies) notify(ctx context.Context, in NotifyInput) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, in); err != nil {
		u.logger.Warn("candidacy notification failed",
			zap.String("recipient_id", in.RecipientID.String()),
			zap.String("type", string(in.Type)),
			zap.Error(err),
		)
	}
}
