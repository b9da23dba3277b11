package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/recommendation"
	"jobboard/internal/domain/resume"
	"jobboard/internal/metrics"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	recommendationKindJobs   = "jobs"
	recommendationKindResume = "resumes"
	recommendationKindBest   = "best"
)

type JobMatch struct {
	Job   job.WithCompany
	Score float64
}

type ResumeMatch struct {
	Resume resume.Resume
	Score  float64
}

type CompanyBestMatch struct {
	Resume resume.Resume
	Job    job.Job
	Score  float64
}

type RecommendationUsecase interface {
	TopJobsForCandidate(ctx context.Context, userID uuid.UUID) ([]JobMatch, error)
	TopResumesForJob(ctx context.Context, jobID string) ([]ResumeMatch, error)
	MatchScore(ctx context.Context, resumeID, jobID string) (float64, error)
	MatchScoreForCandidate(ctx context.Context, userID uuid.UUID, jobID string) (float64, error)
	BestMatchPerJob(ctx context.Context, userID uuid.UUID) ([]CompanyBestMatch, error)
	SetResumeRecommendations(ctx context.Context, resumeID string, entries []recommendation.Entry) error
	SetJobRecommendations(ctx context.Context, jobID string, entries []recommendation.Entry) error
}

type Recommendations struct {
	resumes   repository.ResumeRepository
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	cache     RecommendationCache
	ttl       time.Duration
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

func NewRecommendationUsecase(
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	cache RecommendationCache,
	ttl time.Duration,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Recommendations {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommendations{
		resumes:   resumes,
		jobs:      jobs,
		companies: companies,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
		metrics:   m,
	}
}

// TopJobsForCandidate ranks the active jobs recommended on the candidate's
// résumé. A résumé without recommendations yields an empty list.
func (u *Recommendations) TopJobsForCandidate(ctx context.Context, userID uuid.UUID) ([]JobMatch, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	key := recommendationCacheKey(recommendationKindJobs, userID)
	var cached []JobMatch
	if u.cacheGet(ctx, key, &cached) {
		u.metrics.RecommendationRequest(recommendationKindJobs, true)
		return cached, nil
	}
	u.metrics.RecommendationRequest(recommendationKindJobs, false)

	res, err := u.resumes.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, ErrInternal
	}

	ids := recommendation.TargetIDs(res.Recommendations)
	if len(ids) == 0 {
		return []JobMatch{}, nil
	}

	found, err := u.jobs.FindByIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}
	records := make(map[uuid.UUID]job.WithCompany, len(found))
	for _, j := range found {
		if j.Status != job.StatusActive {
			continue
		}
		records[j.ID] = j
	}

	ranked := recommendation.Rank(res.Recommendations, records)
	out := make([]JobMatch, 0, len(ranked))
	for _, s := range ranked {
		j := s.Item
		j.Recommendations = nil
		out = append(out, JobMatch{Job: j, Score: s.Score})
	}

	u.cacheSet(ctx, key, out)
	return out, nil
}

func (u *Recommendations) TopResumesForJob(ctx context.Context, jobID string) ([]ResumeMatch, error) {
	jid, err := parseID(jobID)
	if err != nil {
		return nil, err
	}

	key := recommendationCacheKey(recommendationKindResume, jid)
	var cached []ResumeMatch
	if u.cacheGet(ctx, key, &cached) {
		u.metrics.RecommendationRequest(recommendationKindResume, true)
		return cached, nil
	}
	u.metrics.RecommendationRequest(recommendationKindResume, false)

	j, err := u.jobs.GetByID(ctx, jid)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	ids := recommendation.TargetIDs(j.Recommendations)
	if len(ids) == 0 {
		return []ResumeMatch{}, nil
	}

	found, err := u.resumes.FindByIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}
	records := make(map[uuid.UUID]resume.Resume, len(found))
	for _, r := range found {
		r.Recommendations = nil
		records[r.ID] = r
	}

	ranked := recommendation.Rank(j.Recommendations, records)
	out := make([]ResumeMatch, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, ResumeMatch{Resume: s.Item, Score: s.Score})
	}

	u.cacheSet(ctx, key, out)
	return out, nil
}

// MatchScore returns the score stored on the résumé for the job. Both must
// exist; an unscored pair is 0.
func (u *Recommendations) MatchScore(ctx context.Context, resumeID, jobID string) (float64, error) {
	rid, err := parseID(resumeID)
	if err != nil {
		return 0, err
	}
	jid, err := parseID(jobID)
	if err != nil {
		return 0, err
	}

	res, err := u.resumes.GetByID(ctx, rid)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return 0, ErrResumeNotFound
		}
		return 0, ErrInternal
	}
	return u.scoreAgainstJob(ctx, res, jid)
}

func (u *Recommendations) MatchScoreForCandidate(ctx context.Context, userID uuid.UUID, jobID string) (float64, error) {
	if userID == uuid.Nil {
		return 0, ErrUnauthorized
	}
	jid, err := parseID(jobID)
	if err != nil {
		return 0, err
	}

	res, err := u.resumes.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return 0, ErrResumeNotFound
		}
		return 0, ErrInternal
	}
	return u.scoreAgainstJob(ctx, res, jid)
}

func (u *Recommendations) scoreAgainstJob(ctx context.Context, res resume.Resume, jobID uuid.UUID) (float64, error) {
	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return 0, ErrInternal
	}
	if !exists {
		return 0, ErrJobNotFound
	}
	return recommendation.ScoreOf(res.Recommendations, jobID), nil
}

// BestMatchPerJob returns, for each job of the recruiter's company, the
// résumé with the highest score. Jobs without recommendations, or whose best
// résumé no longer exists, are left out.
func (u *Recommendations) BestMatchPerJob(ctx context.Context, userID uuid.UUID) ([]CompanyBestMatch, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	co, err := u.companies.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, ErrInternal
	}

	key := recommendationCacheKey(recommendationKindBest, co.ID)
	var cached []CompanyBestMatch
	if u.cacheGet(ctx, key, &cached) {
		u.metrics.RecommendationRequest(recommendationKindBest, true)
		return cached, nil
	}
	u.metrics.RecommendationRequest(recommendationKindBest, false)

	jobs, err := u.jobs.ListByCompany(ctx, co.ID)
	if err != nil {
		return nil, ErrInternal
	}

	items := make([]recommendation.Item[job.Job], 0, len(jobs))
	for _, j := range jobs {
		items = append(items, recommendation.Item[job.Job]{Value: j, Entries: j.Recommendations})
	}
	best := recommendation.BestPerItem(items)
	if len(best) == 0 {
		return []CompanyBestMatch{}, nil
	}

	targets := make([]recommendation.Entry, 0, len(best))
	for _, b := range best {
		targets = append(targets, b.Best)
	}
	found, err := u.resumes.FindByIDs(ctx, recommendation.TargetIDs(targets))
	if err != nil {
		return nil, ErrInternal
	}
	byID := make(map[uuid.UUID]resume.Resume, len(found))
	for _, r := range found {
		r.Recommendations = nil
		byID[r.ID] = r
	}

	out := make([]CompanyBestMatch, 0, len(best))
	for _, b := range best {
		r, ok := byID[b.Best.TargetID]
		if !ok {
			continue
		}
		j := b.Item
		j.Recommendations = nil
		out = append(out, CompanyBestMatch{Resume: r, Job: j, Score: b.Best.Score})
	}

	u.cacheSet(ctx, key, out)
	return out, nil
}

func (u *Recommendations) SetResumeRecommendations(ctx context.Context, resumeID string, entries []recommendation.Entry) error {
	rid, err := parseID(resumeID)
	if err != nil {
		return err
	}
	clean, err := cleanEntries(entries)
	if err != nil {
		return err
	}
	if err := u.resumes.SetRecommendations(ctx, rid, clean); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrInternal
	}
	u.Invalidate(ctx)
	return nil
}

func (u *Recommendations) SetJobRecommendations(ctx context.Context, jobID string, entries []recommendation.Entry) error {
	jid, err := parseID(jobID)
	if err != nil {
		return err
	}
	clean, err := cleanEntries(entries)
	if err != nil {
		return err
	}
	if err := u.jobs.SetRecommendations(ctx, jid, clean); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	u.Invalidate(ctx)
	return nil
}

// Invalidate drops every cached recommendation lookup.
func (u *Recommendations) Invalidate(ctx context.Context) {
	if u == nil || u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, RecommendationCachePattern()); err != nil {
		u.logger.Warn("recommendation cache invalidation failed", zap.Error(err))
	}
}

func cleanEntries(entries []recommendation.Entry) ([]recommendation.Entry, error) {
	out := make([]recommendation.Entry, 0, len(entries))
	for _, e := range entries {
		if e.TargetID == uuid.Nil {
			return nil, ErrInvalidInput
		}
		e.Score = recommendation.Normalize(e.Score)
		out = append(out, e)
	}
	return out, nil
}

func (u *Recommendations) cacheGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		u.logger.Debug("recommendation cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (u *Recommendations) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, u.ttl); err != nil {
		u.logger.Debug("recommendation cache write failed", zap.String("key", key), zap.Error(err))
	}
}
