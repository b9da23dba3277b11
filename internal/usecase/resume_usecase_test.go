package usecase

import (
	"context"
	"testing"

	"jobboard/internal/domain/recommendation"
	"jobboard/internal/domain/resume"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestResumes_SearchBySkill_ExpandsAliases(t *testing.T) {
	repo := newFakeResumeRepo()
	uc := NewResumeUsecase(repo, nil)

	_, err := uc.SearchBySkill(context.Background(), "  Golang ", 10, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"golang", "go"}, repo.searched)

	_, err = uc.SearchBySkill(context.Background(), " ?! ", 10, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestResumes_ListHidesRecommendations(t *testing.T) {
	r := resume.Resume{ID: uuid.New(), OwnerID: uuid.New(), Recommendations: []recommendation.Entry{{TargetID: uuid.New(), Score: 1}}}
	uc := NewResumeUsecase(newFakeResumeRepo(r), nil)

	out, err := uc.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Nil(t, out[0].Recommendations)
}

func TestResumes_UpdateRequiresOwner(t *testing.T) {
	owner := uuid.New()
	r := resume.Resume{ID: uuid.New(), OwnerID: owner, FileURL: "https://cdn.example.test/a.pdf"}
	inv := &countingInvalidator{}
	uc := NewResumeUsecase(newFakeResumeRepo(r), inv)
	ctx := context.Background()

	in := ResumeInput{Document: resume.Document{PersonalInfo: resume.PersonalInfo{FullName: "Ada"}}}

	_, err := uc.Update(ctx, Actor{UserID: uuid.New(), Role: user.RoleCandidate}, r.ID.String(), in)
	require.ErrorIs(t, err, ErrForbidden)
	require.Zero(t, inv.calls)

	got, err := uc.Update(ctx, Actor{UserID: owner, Role: user.RoleCandidate}, r.ID.String(), in)
	require.NoError(t, err)
	require.Equal(t, "Ada", got.Document.PersonalInfo.FullName)
	require.Equal(t, "https://cdn.example.test/a.pdf", got.FileURL)
	require.Equal(t, 1, inv.calls)

	require.NoError(t, uc.Delete(ctx, Actor{UserID: uuid.New(), Role: user.RoleAdmin}, r.ID.String()))
	require.Equal(t, 2, inv.calls)

	_, err = uc.Get(ctx, r.ID.String())
	require.ErrorIs(t, err, ErrResumeNotFound)
}

func TestResumes_CreateRequiresUser(t *testing.T) {
	uc := NewResumeUsecase(newFakeResumeRepo(), nil)
	_, err := uc.Create(context.Background(), uuid.Nil, ResumeInput{})
	require.ErrorIs(t, err, ErrUnauthorized)

	got, err := uc.Create(context.Background(), uuid.New(), ResumeInput{FileURL: "  https://x.test/cv.pdf "})
	require.NoError(t, err)
	require.Equal(t, "https://x.test/cv.pdf", got.FileURL)
}

func TestResumes_CreateInvalidatesCachedMatches(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	j := activeJob("Go Developer", uuid.New())
	old := resume.Resume{ID: uuid.New(), OwnerID: owner, Recommendations: []recommendation.Entry{{TargetID: j.ID, Score: 0.7}}}

	resumes := newFakeResumeRepo(old)
	cache := newFakeCache()
	recs := NewRecommendationUsecase(resumes, newFakeJobRepo(j), newFakeCompanyRepo(), cache, 0, nil, nil)
	uc := NewResumeUsecase(resumes, recs)

	_, err := recs.TopJobsForCandidate(ctx, owner)
	require.NoError(t, err)
	require.NotEmpty(t, cache.data)

	_, err = uc.Create(ctx, owner, ResumeInput{})
	require.NoError(t, err)
	require.NotEmpty(t, cache.deleted)
	require.Empty(t, cache.data)
}
