package v1

import (
	"jobboard/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth           *handler.AuthHandler
	User           *handler.UserHandler
	Company        *handler.CompanyHandler
	Job            *handler.JobHandler
	Resume         *handler.ResumeHandler
	Candidate      *handler.CandidateHandler
	Candidacy      *handler.CandidacyHandler
	Notification   *handler.NotificationHandler
	Recommendation *handler.RecommendationHandler
	Quiz           *handler.QuizHandler
	Dashboard      *handler.DashboardHandler
}

// Register mounts the v1 API on r. Groups that are fully private get auth
// up front; companies and jobs mix public reads with private writes.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Company != nil {
		h.Company.RegisterRoutes(r.Group("/companies"), auth)
	}
	if h.Job != nil {
		h.Job.RegisterRoutes(r.Group("/jobs"), auth)
	}

	if h.User != nil {
		h.User.RegisterRoutes(r.Group("/users", auth))
	}
	if h.Resume != nil {
		h.Resume.RegisterRoutes(r.Group("/resumes", auth))
	}
	if h.Candidate != nil {
		h.Candidate.RegisterRoutes(r.Group("/candidates", auth))
	}
	if h.Candidacy != nil {
		h.Candidacy.RegisterRoutes(r.Group("/candidacies", auth))
	}
	if h.Notification != nil {
		h.Notification.RegisterRoutes(r.Group("/notifications", auth))
	}
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(r.Group("/recommendations", auth))
	}
	if h.Quiz != nil {
		h.Quiz.RegisterRoutes(r.Group("/quizzes", auth))
	}
	if h.Dashboard != nil {
		h.Dashboard.RegisterRoutes(r.Group("/dashboard", auth))
	}
}
