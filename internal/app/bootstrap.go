package app

import (
	"fmt"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the HTTP app and starts scheduled
// maintenance. The returned cleanup releases everything Bootstrap acquired.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Maintenance.Enabled {
		if err := c.Cleaner.Start(); err != nil {
			_ = c.Close()
			return nil, nil, err
		}
	}

	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	uc := c.Usecases
	api := v1.Handlers{
		Auth:           handler.NewAuthHandler(uc.Auth),
		User:           handler.NewUserHandler(uc.User),
		Company:        handler.NewCompanyHandler(uc.Company),
		Job:            handler.NewJobHandler(uc.Job),
		Resume:         handler.NewResumeHandler(uc.Resume),
		Candidate:      handler.NewCandidateHandler(uc.Candidate),
		Candidacy:      handler.NewCandidacyHandler(uc.Candidacy),
		Notification:   handler.NewNotificationHandler(uc.Notification),
		Recommendation: handler.NewRecommendationHandler(uc.Recommendation),
		Quiz:           handler.NewQuizHandler(uc.Quiz),
		Dashboard:      handler.NewDashboardHandler(uc.Dashboard),
	}

	auth := middleware.NewAuthMiddleware(c.JWT).Middleware()
	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Redis),
		ws.NewHandler(c.Hub),
		promhttp.HandlerFor(c.Gatherer, promhttp.HandlerOpts{}),
		api,
		auth,
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
