package app

import (
	"context"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/maintenance"
	"jobboard/internal/metrics"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
	"jobboard/internal/ws"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Repositories struct {
	Users         *repository.PostgresUserRepository
	Companies     *repository.PostgresCompanyRepository
	Jobs          *repository.PostgresJobRepository
	Resumes       *repository.PostgresResumeRepository
	Candidates    *repository.PostgresCandidateRepository
	Candidacies   *repository.PostgresCandidacyRepository
	Notifications *repository.PostgresNotificationRepository
	Quizzes       *repository.PostgresQuizRepository
	Dashboard     *repository.PostgresDashboardRepository
}

type Usecases struct {
	Auth           *usecase.Auth
	User           *usecase.User
	Company        *usecase.Companies
	Job            *usecase.Jobs
	Resume         *usecase.Resumes
	Candidate      *usecase.Candidates
	Candidacy      *usecase.Candidacies
	Notification   *usecase.Notifications
	Recommendation *usecase.Recommendations
	Quiz           *usecase.Quizzes
	Dashboard      *usecase.Dashboard
}

// Container holds every long-lived dependency of the server.
type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	DB       database.DB
	Redis    *cache.Redis
	JWT      jwt.Service
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Hub      *ws.Hub
	Cleaner  *maintenance.Cleaner

	Repos    Repositories
	Usecases Usecases
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New()
	if err := m.Register(reg); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Redis:    cache.NewRedis(ctx, cfg.Redis, logger),
		JWT:      jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn, jwt.WithIssuer(cfg.App.AppName)),
		Metrics:  m,
		Gatherer: reg,
	}
	c.Hub = ws.NewHub(ws.NewRegistry(), c.JWT, cfg.Realtime, logger.Named("ws"), m)

	c.Repos = Repositories{
		Users:         repository.NewPostgresUserRepository(db),
		Companies:     repository.NewPostgresCompanyRepository(db),
		Jobs:          repository.NewPostgresJobRepository(db),
		Resumes:       repository.NewPostgresResumeRepository(db),
		Candidates:    repository.NewPostgresCandidateRepository(db),
		Candidacies:   repository.NewPostgresCandidacyRepository(db),
		Notifications: repository.NewPostgresNotificationRepository(db),
		Quizzes:       repository.NewPostgresQuizRepository(db),
		Dashboard:     repository.NewPostgresDashboardRepository(db),
	}
	c.wireUsecases()

	c.Cleaner = maintenance.NewCleaner(
		c.Repos.Notifications,
		logger,
		maintenance.WithSchedule(cfg.Maintenance.Schedule),
		maintenance.WithRetentionDays(cfg.Maintenance.ReadRetentionDays),
		maintenance.WithMetrics(m),
		maintenance.WithTask("recommendation-cache", func(ctx context.Context) error {
			return c.Redis.DeleteByPattern(ctx, usecase.RecommendationCachePattern())
		}),
	)

	return c, nil
}

func (c *Container) wireUsecases() {
	r := c.Repos
	log := c.Logger

	notifications := usecase.NewNotificationUsecase(r.Notifications, c.Hub, log.Named("notifications"), c.Metrics)
	recommendations := usecase.NewRecommendationUsecase(r.Resumes, r.Jobs, r.Companies, c.Redis, c.Config.Redis.TTL, log.Named("recommendations"), c.Metrics)

	c.Usecases = Usecases{
		Auth:           usecase.NewAuthUsecase(r.Users, c.JWT),
		User:           usecase.NewUserUsecase(r.Users),
		Company:        usecase.NewCompanyUsecase(r.Companies, recommendations),
		Job:            usecase.NewJobUsecase(r.Jobs, r.Companies, c.Hub, recommendations, log.Named("jobs")),
		Resume:         usecase.NewResumeUsecase(r.Resumes, recommendations),
		Candidate:      usecase.NewCandidateUsecase(r.Candidates),
		Candidacy:      usecase.NewCandidacyUsecase(r.Candidacies, r.Jobs, r.Companies, notifications, log.Named("candidacies")),
		Notification:   notifications,
		Recommendation: recommendations,
		Quiz:           usecase.NewQuizUsecase(r.Quizzes, r.Jobs, notifications, log.Named("quizzes")),
		Dashboard:      usecase.NewDashboardUsecase(r.Companies, r.Dashboard),
	}
}

// Close stops background work and releases connections.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cleaner != nil {
		<-c.Cleaner.Stop().Done()
	}
	var err error
	if c.Redis != nil {
		err = multierr.Append(err, c.Redis.Close())
	}
	if c.DB != nil {
		err = multierr.Append(err, c.DB.Close())
	}
	return err
}
