package handler

import (
	"errors"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// bindBody decodes the JSON body into dst and runs its validation rules.
func bindBody(c fiber.Ctx, dst any) error {
	if err := c.Bind().Body(dst); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if err := validation.Struct(dst); err != nil {
		var ve validation.Errors
		if errors.As(err, &ve) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", ve.Fields(), err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	return nil
}

func actorFromCtx(c fiber.Ctx) (usecase.Actor, error) {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return usecase.Actor{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return usecase.Actor{UserID: p.UserID, Role: p.Role}, nil
}

func pageParams(c fiber.Ctx) (limit, offset int, err error) {
	limit = fiber.Query[int](c, "limit", defaultPageLimit)
	offset = fiber.Query[int](c, "offset", 0)
	if limit <= 0 || limit > maxPageLimit || offset < 0 {
		return 0, 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid pagination", nil, nil)
	}
	return limit, offset, nil
}

func page(c fiber.Ctx, items any, limit, offset, count int) error {
	return response.Page(c, response.MessageOK, items, response.PageMeta{Limit: limit, Offset: offset, Count: count})
}

// mapUsecaseError turns usecase sentinels into http errors. Unknown errors
// surface as 500 with their detail hidden by the error middleware.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidID):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)

	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate profile not found", nil, err)
	case errors.Is(err, usecase.ErrCandidacyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidacy not found", nil, err)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
	case errors.Is(err, usecase.ErrQuizNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Quiz not found", nil, err)
	case errors.Is(err, usecase.ErrQuizResponseNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Quiz response not found", nil, err)

	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrCompanyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Company already exists", nil, err)
	case errors.Is(err, usecase.ErrCandidateProfileExists):
		return middleware.NewAppError(fiber.StatusConflict, "Candidate profile already exists", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrQuizAlreadySubmitted):
		return middleware.NewAppError(fiber.StatusConflict, "Quiz already submitted", nil, err)

	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
