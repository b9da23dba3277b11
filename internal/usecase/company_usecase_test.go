package usecase

import (
	"context"
	"testing"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/recommendation"
	"jobboard/internal/domain/resume"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCompanies_DeleteDropsCachedMatches(t *testing.T) {
	ctx := context.Background()
	recruiter := uuid.New()
	co := company.Company{ID: uuid.New(), OwnerID: recruiter, Name: "Acme"}
	j := activeJob("Go Developer", co.ID)

	candidate := uuid.New()
	res := resume.Resume{ID: uuid.New(), OwnerID: candidate, Recommendations: []recommendation.Entry{{TargetID: j.ID, Score: 0.8}}}

	companies := newFakeCompanyRepo(co)
	jobs := newFakeJobRepo(j)
	cache := newFakeCache()
	recs := NewRecommendationUsecase(newFakeResumeRepo(res), jobs, companies, cache, 0, nil, nil)
	uc := NewCompanyUsecase(companies, recs)

	before, err := recs.TopJobsForCandidate(ctx, candidate)
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, uc.Delete(ctx, Actor{UserID: recruiter, Role: user.RoleRecruiter}, co.ID.String()))
	// jobs cascade with their company
	require.NoError(t, jobs.Delete(ctx, j.ID))

	require.NotEmpty(t, cache.deleted)
	after, err := recs.TopJobsForCandidate(ctx, candidate)
	require.NoError(t, err)
	require.Empty(t, after)
}

func TestCompanies_UpdateInvalidatesOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	co := company.Company{ID: uuid.New(), OwnerID: owner, Name: "Acme"}
	inv := &countingInvalidator{}
	uc := NewCompanyUsecase(newFakeCompanyRepo(co), inv)

	_, err := uc.Update(ctx, Actor{UserID: uuid.New(), Role: user.RoleRecruiter}, co.ID.String(), CompanyInput{Name: "Other"})
	require.ErrorIs(t, err, ErrForbidden)
	require.Zero(t, inv.calls)

	got, err := uc.Update(ctx, Actor{UserID: owner, Role: user.RoleRecruiter}, co.ID.String(), CompanyInput{Name: " Acme Labs "})
	require.NoError(t, err)
	require.Equal(t, "Acme Labs", got.Name)
	require.Equal(t, 1, inv.calls)

	require.ErrorIs(t, uc.Delete(ctx, Actor{UserID: owner, Role: user.RoleRecruiter}, uuid.NewString()), ErrCompanyNotFound)
	require.Equal(t, 1, inv.calls)
}
