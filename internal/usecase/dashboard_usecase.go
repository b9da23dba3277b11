package usecase

import (
	"context"
	"errors"

	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type CompanyKPI struct {
	TotalCandidates int
	Pending         int
	Accepted        int
	Rejected        int
	ByMonth         []repository.MonthCount
	ByDepartment    []repository.DepartmentCount
}

type DashboardUsecase interface {
	CompanyKPI(ctx context.Context, ownerID uuid.UUID) (CompanyKPI, error)
}

type Dashboard struct {
	companies repository.CompanyRepository
	repo      repository.DashboardRepository
}

func NewDashboardUsecase(companies repository.CompanyRepository, repo repository.DashboardRepository) *Dashboard {
	return &Dashboard{companies: companies, repo: repo}
}

func (u *Dashboard) CompanyKPI(ctx context.Context, ownerID uuid.UUID) (CompanyKPI, error) {
	if ownerID == uuid.Nil {
		return CompanyKPI{}, ErrUnauthorized
	}
	co, err := u.companies.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return CompanyKPI{}, ErrCompanyNotFound
		}
		return CompanyKPI{}, ErrInternal
	}

	k, err := u.repo.CompanyKPI(ctx, co.ID)
	if err != nil {
		return CompanyKPI{}, ErrInternal
	}

	out := CompanyKPI{
		Pending:      k.StatusCounts["pending"],
		Accepted:     k.StatusCounts["accepted"],
		Rejected:     k.StatusCounts["rejected"],
		ByMonth:      k.ByMonth,
		ByDepartment: k.ByDepartment,
	}
	out.TotalCandidates = out.Pending + out.Accepted + out.Rejected
	return out, nil
}
