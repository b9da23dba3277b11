package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/quiz"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type QuizHandler struct {
	uc usecase.QuizUsecase
}

func NewQuizHandler(uc usecase.QuizUsecase) *QuizHandler {
	return &QuizHandler{uc: uc}
}

// RegisterRoutes expects r to already carry the auth middleware.
func (h *QuizHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	manage := middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin)

	r.Post("/", manage, h.Create)
	r.Get("/", h.List)
	r.Get("/job/:jobId", h.ListByJob)
	r.Get("/:id", h.Get)
	r.Put("/:id", manage, h.Update)
	r.Delete("/:id", manage, h.Delete)
	r.Post("/:id/responses", middleware.RequireRoles(user.RoleCandidate), h.Submit)
	r.Get("/:id/responses/:candidateId", h.GetScore)
}

func toQuizInput(req dto.QuizRequest) usecase.QuizInput {
	return usecase.QuizInput{
		JobID:           req.JobID,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Questions:       req.Questions,
	}
}

// revealFor shows correct answers to the quiz author and admins only.
func revealFor(actor usecase.Actor) func(quiz.Quiz) bool {
	return func(q quiz.Quiz) bool {
		return actor.CanManage(q.CreatedBy)
	}
}

func (h *QuizHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.QuizRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.JobID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", map[string]string{"job_id": "required"}, nil)
	}

	q, err := h.uc.Create(c.Context(), actor, toQuizInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, response.MessageOK, dto.FromQuiz(q, true))
}

func (h *QuizHandler) List(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}
	items, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return page(c, dto.FromQuizzes(items, revealFor(actor)), limit, offset, len(items))
}

func (h *QuizHandler) ListByJob(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	items, err := h.uc.ListByJob(c.Context(), c.Params("jobId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromQuizzes(items, revealFor(actor)))
}

func (h *QuizHandler) Get(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	q, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromQuiz(q, revealFor(actor)(q)))
}

func (h *QuizHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.QuizRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	q, err := h.uc.Update(c.Context(), actor, c.Params("id"), toQuizInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromQuiz(q, true))
}

func (h *QuizHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *QuizHandler) Submit(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	var req dto.SubmitQuizRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.Submit(c.Context(), actor.UserID, c.Params("id"), usecase.SubmitQuizInput{
		Answers:          req.Answers,
		TimeTakenSeconds: req.TimeTakenSeconds,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, response.MessageOK, dto.FromQuizResponse(res))
}

func (h *QuizHandler) GetScore(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	res, err := h.uc.GetScore(c.Context(), actor, c.Params("id"), c.Params("candidateId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromQuizResponse(res))
}
