package usecase

import (
	"context"
	"math"
	"testing"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/recommendation"
	"jobboard/internal/domain/resume"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func activeJob(title string, companyID uuid.UUID) job.WithCompany {
	return job.WithCompany{
		Job:     job.Job{ID: uuid.New(), CompanyID: companyID, Title: title, Status: job.StatusActive},
		Company: job.CompanySummary{ID: companyID, Name: "Acme"},
	}
}

func TestTopJobsForCandidate_RanksByScore(t *testing.T) {
	companyID := uuid.New()
	t1 := activeJob("Go Developer", companyID)
	t2 := activeJob("Platform Engineer", companyID)
	owner := uuid.New()
	res := resume.Resume{
		ID:      uuid.New(),
		OwnerID: owner,
		Recommendations: []recommendation.Entry{
			{TargetID: t1.ID, Score: 0.4},
			{TargetID: t2.ID, Score: 0.9},
		},
	}

	uc := NewRecommendationUsecase(newFakeResumeRepo(res), newFakeJobRepo(t1, t2), newFakeCompanyRepo(), nil, 0, nil, nil)
	out, err := uc.TopJobsForCandidate(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, t2.ID, out[0].Job.ID)
	require.Equal(t, 0.9, out[0].Score)
	require.Equal(t, t1.ID, out[1].Job.ID)
	require.Equal(t, 0.4, out[1].Score)
}

func TestTopJobsForCandidate_SkipsClosedAndMissingJobs(t *testing.T) {
	companyID := uuid.New()
	open := activeJob("Open", companyID)
	closed := activeJob("Closed", companyID)
	closed.Status = job.StatusClosed
	owner := uuid.New()
	res := resume.Resume{
		ID:      uuid.New(),
		OwnerID: owner,
		Recommendations: []recommendation.Entry{
			{TargetID: closed.ID, Score: 0.99},
			{TargetID: uuid.New(), Score: 0.95},
			{TargetID: open.ID, Score: 0.1},
		},
	}

	uc := NewRecommendationUsecase(newFakeResumeRepo(res), newFakeJobRepo(open, closed), newFakeCompanyRepo(), nil, 0, nil, nil)
	out, err := uc.TopJobsForCandidate(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, open.ID, out[0].Job.ID)
}

func TestTopJobsForCandidate_NoResumeAndNoRecommendations(t *testing.T) {
	owner := uuid.New()
	uc := NewRecommendationUsecase(newFakeResumeRepo(), newFakeJobRepo(), newFakeCompanyRepo(), nil, 0, nil, nil)
	_, err := uc.TopJobsForCandidate(context.Background(), owner)
	require.ErrorIs(t, err, ErrResumeNotFound)

	uc = NewRecommendationUsecase(newFakeResumeRepo(resume.Resume{ID: uuid.New(), OwnerID: owner}), newFakeJobRepo(), newFakeCompanyRepo(), nil, 0, nil, nil)
	out, err := uc.TopJobsForCandidate(context.Background(), owner)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestTopJobsForCandidate_ServesFromCache(t *testing.T) {
	j := activeJob("Go Developer", uuid.New())
	owner := uuid.New()
	res := resume.Resume{ID: uuid.New(), OwnerID: owner, Recommendations: []recommendation.Entry{{TargetID: j.ID, Score: 0.5}}}
	jobs := newFakeJobRepo(j)
	cache := newFakeCache()

	uc := NewRecommendationUsecase(newFakeResumeRepo(res), jobs, newFakeCompanyRepo(), cache, 0, nil, nil)
	first, err := uc.TopJobsForCandidate(context.Background(), owner)
	require.NoError(t, err)
	second, err := uc.TopJobsForCandidate(context.Background(), owner)
	require.NoError(t, err)

	require.Equal(t, 1, jobs.findCalls)
	require.Len(t, second, 1)
	require.Equal(t, first[0].Job.ID, second[0].Job.ID)
	require.Equal(t, first[0].Score, second[0].Score)
}

func TestTopResumesForJob(t *testing.T) {
	r1 := resume.Resume{ID: uuid.New(), OwnerID: uuid.New()}
	r2 := resume.Resume{ID: uuid.New(), OwnerID: uuid.New()}
	j := activeJob("Go Developer", uuid.New())
	j.Recommendations = []recommendation.Entry{{TargetID: r1.ID, Score: 0.2}, {TargetID: r2.ID, Score: 0.7}}

	uc := NewRecommendationUsecase(newFakeResumeRepo(r1, r2), newFakeJobRepo(j), newFakeCompanyRepo(), nil, 0, nil, nil)
	out, err := uc.TopResumesForJob(context.Background(), j.ID.String())
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, r2.ID, out[0].Resume.ID)
	require.Equal(t, r1.ID, out[1].Resume.ID)

	_, err = uc.TopResumesForJob(context.Background(), "nope")
	require.ErrorIs(t, err, ErrInvalidID)
	_, err = uc.TopResumesForJob(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestMatchScore(t *testing.T) {
	scored := activeJob("Scored", uuid.New())
	unscored := activeJob("Unscored", uuid.New())
	res := resume.Resume{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Recommendations: []recommendation.Entry{{TargetID: scored.ID, Score: 0.83}},
	}
	uc := NewRecommendationUsecase(newFakeResumeRepo(res), newFakeJobRepo(scored, unscored), newFakeCompanyRepo(), nil, 0, nil, nil)
	ctx := context.Background()

	score, err := uc.MatchScore(ctx, res.ID.String(), scored.ID.String())
	require.NoError(t, err)
	require.Equal(t, 0.83, score)

	score, err = uc.MatchScore(ctx, res.ID.String(), unscored.ID.String())
	require.NoError(t, err)
	require.Zero(t, score)

	score, err = uc.MatchScoreForCandidate(ctx, res.OwnerID, scored.ID.String())
	require.NoError(t, err)
	require.Equal(t, 0.83, score)

	_, err = uc.MatchScore(ctx, uuid.NewString(), scored.ID.String())
	require.ErrorIs(t, err, ErrResumeNotFound)
	_, err = uc.MatchScore(ctx, res.ID.String(), uuid.NewString())
	require.ErrorIs(t, err, ErrJobNotFound)
	_, err = uc.MatchScore(ctx, "bad", scored.ID.String())
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestBestMatchPerJob(t *testing.T) {
	recruiter := uuid.New()
	co := company.Company{ID: uuid.New(), OwnerID: recruiter, Name: "Acme"}
	r1 := resume.Resume{ID: uuid.New(), OwnerID: uuid.New()}
	r2 := resume.Resume{ID: uuid.New(), OwnerID: uuid.New()}

	withBest := activeJob("Backend", co.ID)
	withBest.Recommendations = []recommendation.Entry{{TargetID: r1.ID, Score: 0.3}, {TargetID: r2.ID, Score: 0.6}}
	empty := activeJob("Frontend", co.ID)
	goneBest := activeJob("Data", co.ID)
	goneBest.Recommendations = []recommendation.Entry{{TargetID: uuid.New(), Score: 0.9}}

	uc := NewRecommendationUsecase(newFakeResumeRepo(r1, r2), newFakeJobRepo(withBest, empty, goneBest), newFakeCompanyRepo(co), nil, 0, nil, nil)
	out, err := uc.BestMatchPerJob(context.Background(), recruiter)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, withBest.ID, out[0].Job.ID)
	require.Equal(t, r2.ID, out[0].Resume.ID)
	require.Equal(t, 0.6, out[0].Score)
	require.Nil(t, out[0].Job.Recommendations)

	_, err = uc.BestMatchPerJob(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestSetRecommendations_NormalizesAndInvalidatesCache(t *testing.T) {
	res := resume.Resume{ID: uuid.New(), OwnerID: uuid.New()}
	resumes := newFakeResumeRepo(res)
	cache := newFakeCache()
	uc := NewRecommendationUsecase(resumes, newFakeJobRepo(), newFakeCompanyRepo(), cache, 0, nil, nil)

	target := uuid.New()
	err := uc.SetResumeRecommendations(context.Background(), res.ID.String(), []recommendation.Entry{
		{TargetID: target, Score: math.NaN()},
	})
	require.NoError(t, err)
	require.Equal(t, []recommendation.Entry{{TargetID: target, Score: 0}}, resumes.resumes[res.ID].Recommendations)
	require.Equal(t, []string{"recommendations:*"}, cache.deleted)

	err = uc.SetResumeRecommendations(context.Background(), res.ID.String(), []recommendation.Entry{{TargetID: uuid.Nil, Score: 1}})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = uc.SetJobRecommendations(context.Background(), uuid.NewString(), nil)
	require.ErrorIs(t, err, ErrJobNotFound)
}
