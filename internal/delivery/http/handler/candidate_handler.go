package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// RegisterRoutes expects r to already carry the auth middleware.
func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	owner := middleware.RequireRoles(user.RoleCandidate, user.RoleAdmin)

	r.Post("/", middleware.RequireRoles(user.RoleCandidate), h.Create)
	r.Get("/", middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin), h.List)
	r.Get("/me", owner, h.GetMine)
	r.Get("/:id", h.Get)
	r.Put("/:id", owner, h.Update)
	r.Delete("/:id", owner, h.Delete)
}

func toCandidateInput(req dto.CandidateRequest) usecase.CandidateInput {
	return usecase.CandidateInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
	}
}

func (h *CandidateHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.CandidateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.Create(c.Context(), actor.UserID, toCandidateInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, response.MessageOK, dto.FromCandidate(p))
}

func (h *CandidateHandler) GetMine(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	p, err := h.uc.GetMine(c.Context(), actor.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidate(p))
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidate(p))
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}
	items, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return page(c, dto.FromCandidates(items), limit, offset, len(items))
}

func (h *CandidateHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.CandidateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.Update(c.Context(), actor, c.Params("id"), toCandidateInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidate(p))
}

func (h *CandidateHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
