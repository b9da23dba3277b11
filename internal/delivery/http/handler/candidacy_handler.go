package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/candidacy"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidacyHandler struct {
	uc usecase.CandidacyUsecase
}

func NewCandidacyHandler(uc usecase.CandidacyUsecase) *CandidacyHandler {
	return &CandidacyHandler{uc: uc}
}

// RegisterRoutes expects r to already carry the auth middleware.
func (h *CandidacyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	candidate := middleware.RequireRoles(user.RoleCandidate)
	manage := middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin)

	r.Post("/", candidate, h.Apply)
	r.Get("/me", candidate, h.ListMine)
	r.Get("/job/:jobId", manage, h.ListByJob)
	r.Put("/:id", manage, h.UpdateStatus)
	r.Delete("/:id", h.Delete)
}

func (h *CandidacyHandler) Apply(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.ApplyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.uc.Apply(c.Context(), actor.UserID, req.JobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, response.MessageOK, dto.FromCandidacy(out))
}

func (h *CandidacyHandler) ListMine(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	items, err := h.uc.ListMine(c.Context(), actor.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidacies(items))
}

func (h *CandidacyHandler) ListByJob(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	items, err := h.uc.ListByJob(c.Context(), actor, c.Params("jobId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidacies(items))
}

func (h *CandidacyHandler) UpdateStatus(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.CandidacyStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.uc.UpdateStatus(c.Context(), actor, c.Params("id"), candidacy.Status(req.Status))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidacyWithJob(out))
}

func (h *CandidacyHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
