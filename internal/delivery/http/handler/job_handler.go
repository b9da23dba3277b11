package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	manage := middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin)

	r.Get("/", h.List)
	r.Post("/", auth, middleware.RequireRoles(user.RoleRecruiter), h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", auth, manage, h.Update)
	r.Delete("/:id", auth, manage, h.Delete)
}

func toJobInput(req dto.JobRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:           req.Title,
		Department:      req.Department,
		Location:        req.Location,
		EmploymentType:  req.EmploymentType,
		WorkMode:        req.WorkMode,
		ExperienceLevel: req.ExperienceLevel,
		Salary:          job.SalaryRange{Min: req.Salary.Min, Max: req.Salary.Max},
		RequiredSkills:  req.RequiredSkills,
		Description:     req.Description,
		Status:          job.Status(req.Status),
	}
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Create(c.Context(), actor.UserID, toJobInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, response.MessageOK, dto.FromJobWithCompany(j))
}

// List accepts ?status=Active|Closed alongside limit and offset.
func (h *JobHandler) List(c fiber.Ctx) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}
	items, err := h.uc.List(c.Context(), usecase.JobListParams{
		Status: job.Status(c.Query("status")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return page(c, dto.FromJobsWithCompany(items), limit, offset, len(items))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	j, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobWithCompany(j))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Update(c.Context(), actor, c.Params("id"), toJobInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobWithCompany(j))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
