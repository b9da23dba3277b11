package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	manage := middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin)

	r.Get("/", h.List)
	r.Post("/", auth, manage, h.Create)
	r.Get("/me", auth, manage, h.GetMine)
	r.Get("/:id", h.Get)
	r.Put("/:id", auth, manage, h.Update)
	r.Delete("/:id", auth, manage, h.Delete)
}

func toCompanyInput(req dto.CompanyRequest) usecase.CompanyInput {
	return usecase.CompanyInput{
		Name:        req.Name,
		Logo:        req.Logo,
		Location:    req.Location,
		Website:     req.Website,
		Size:        req.Size,
		Industry:    req.Industry,
		Founded:     req.Founded,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	}
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.CompanyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	co, err := h.uc.Create(c.Context(), actor.UserID, toCompanyInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, response.MessageOK, dto.FromCompany(co))
}

func (h *CompanyHandler) GetMine(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	co, err := h.uc.GetMine(c.Context(), actor.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompany(co))
}

func (h *CompanyHandler) Get(c fiber.Ctx) error {
	co, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompany(co))
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}
	items, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return page(c, dto.FromCompanies(items), limit, offset, len(items))
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.CompanyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	co, err := h.uc.Update(c.Context(), actor, c.Params("id"), toCompanyInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompany(co))
}

func (h *CompanyHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
