package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

// RegisterRoutes expects r to already carry the auth middleware.
func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	owner := middleware.RequireRoles(user.RoleCandidate, user.RoleAdmin)
	browse := middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin)

	r.Post("/", owner, h.Create)
	r.Get("/", browse, h.List)
	r.Get("/me", owner, h.GetMine)
	r.Get("/search", browse, h.Search)
	r.Get("/:id", h.Get)
	r.Put("/:id", owner, h.Update)
	r.Delete("/:id", owner, h.Delete)
}

func (h *ResumeHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.ResumeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.Create(c.Context(), actor.UserID, usecase.ResumeInput{Document: req.Document, FileURL: req.FileURL})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, response.MessageOK, dto.FromResume(res))
}

func (h *ResumeHandler) GetMine(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	res, err := h.uc.GetMine(c.Context(), actor.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResume(res))
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	res, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResume(res))
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}
	items, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return page(c, dto.FromResumes(items), limit, offset, len(items))
}

// Search matches résumés listing the ?skill= query among their skills.
func (h *ResumeHandler) Search(c fiber.Ctx) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}
	items, err := h.uc.SearchBySkill(c.Context(), c.Query("skill"), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return page(c, dto.FromResumes(items), limit, offset, len(items))
}

func (h *ResumeHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.ResumeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.Update(c.Context(), actor, c.Params("id"), usecase.ResumeInput{Document: req.Document, FileURL: req.FileURL})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResume(res))
}

func (h *ResumeHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
