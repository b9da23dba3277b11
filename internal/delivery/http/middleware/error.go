package middleware

import (
	"errors"

	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware renders returned errors and recovered panics as envelopes.
// Anything at 500 or above is logged and reported without detail.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				err = response.Error(c, fiber.StatusInternalServerError, "", nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		out := resolve(err)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", out.StatusCode),
			zap.Error(err),
		}
		if out.StatusCode >= fiber.StatusInternalServerError {
			m.logger.Error("request failed", fields...)
		} else {
			m.logger.Debug("request rejected", fields...)
		}
		return response.Error(c, out.StatusCode, out.Message, out.Data)
	}
}

// resolve turns err into the public status, message and data.
func resolve(err error) AppError {
	internal := AppError{StatusCode: fiber.StatusInternalServerError, Message: response.MessageInternalServerError}

	var status int
	var msg string
	var data any

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status, msg, data = appErr.StatusCode, appErr.Message, appErr.Data
	case errors.As(err, &fiberErr):
		status, msg = fiberErr.Code, fiberErr.Message
	default:
		return internal
	}

	if status <= 0 || status >= fiber.StatusInternalServerError {
		return internal
	}
	if msg == "" {
		msg = response.DefaultMessage(status)
	}
	return AppError{StatusCode: status, Message: msg, Data: data}
}
