package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// RegisterRoutes expects r to already carry the auth middleware.
func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	candidate := middleware.RequireRoles(user.RoleCandidate)
	recruiter := middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin)
	admin := middleware.RequireRoles(user.RoleAdmin)

	r.Get("/jobs", candidate, h.TopJobs)
	r.Get("/resumes/:jobId", recruiter, h.TopResumes)
	r.Get("/company/resumes", recruiter, h.BestPerJob)
	r.Get("/match/:jobId", candidate, h.MyMatchScore)
	r.Get("/match/:resumeId/:jobId", h.MatchScore)
	r.Put("/resumes/:resumeId", admin, h.SetResume)
	r.Put("/jobs/:jobId", admin, h.SetJob)
}

func (h *RecommendationHandler) TopJobs(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	out, err := h.uc.TopJobsForCandidate(c.Context(), actor.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobMatches(out))
}

func (h *RecommendationHandler) TopResumes(c fiber.Ctx) error {
	out, err := h.uc.TopResumesForJob(c.Context(), c.Params("jobId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResumeMatches(out))
}

func (h *RecommendationHandler) BestPerJob(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	out, err := h.uc.BestMatchPerJob(c.Context(), actor.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromBestMatches(out))
}

func (h *RecommendationHandler) MyMatchScore(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	score, err := h.uc.MatchScoreForCandidate(c.Context(), actor.UserID, c.Params("jobId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchScoreResponse{Score: score})
}

func (h *RecommendationHandler) MatchScore(c fiber.Ctx) error {
	score, err := h.uc.MatchScore(c.Context(), c.Params("resumeId"), c.Params("jobId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchScoreResponse{Score: score})
}

func (h *RecommendationHandler) SetResume(c fiber.Ctx) error {
	var req dto.SetRecommendationsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.uc.SetResumeRecommendations(c.Context(), c.Params("resumeId"), req.ToEntries()); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *RecommendationHandler) SetJob(c fiber.Ctx) error {
	var req dto.SetRecommendationsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.uc.SetJobRecommendations(c.Context(), c.Params("jobId"), req.ToEntries()); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
