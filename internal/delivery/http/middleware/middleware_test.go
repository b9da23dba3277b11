package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body io.Reader) response.SemanticResponse {
	t.Helper()
	var out response.SemanticResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	return app
}

func TestErrorMiddleware_AppErrorEnvelope(t *testing.T) {
	app := newApp()
	app.Get("/conflict", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "already applied", nil, errors.New("dup"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/conflict", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decode(t, resp.Body)
	require.Equal(t, fiber.StatusConflict, body.Status)
	require.Equal(t, "already applied", body.Message)
}

func TestErrorMiddleware_HidesInternalDetail(t *testing.T) {
	app := newApp()
	app.Get("/boom", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "pq: relation missing", nil, nil)
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("raw failure")
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("nope")
	})

	for _, path := range []string{"/boom", "/plain", "/panic"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, path)
		require.Equal(t, response.MessageInternalServerError, decode(t, resp.Body).Message, path)
	}
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("access", "refresh", time.Minute, time.Hour)
	userID := uuid.New()

	app := newApp()
	auth := NewAuthMiddleware(svc)
	app.Get("/me", auth.Middleware(), func(c fiber.Ctx) error {
		id, ok := UserIDFromCtx(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		role, _ := RoleFromCtx(c)
		return c.SendString(id.String() + ":" + string(role))
	})
	app.Get("/admin", auth.Middleware(), RequireRoles(user.RoleAdmin), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	access, err := svc.GenerateAccessToken(userID, "a@b.c", string(user.RoleRecruiter))
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	require.Equal(t, userID.String()+":recruiter", string(b))

	req = httptest.NewRequest("GET", "/me", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestBearerTokenFromHeader(t *testing.T) {
	tok, ok := BearerToken("bearer abc")
	require.True(t, ok)
	require.Equal(t, "abc", tok)

	_, ok = BearerToken("Basic abc")
	require.False(t, ok)
	_, ok = BearerToken("Bearer ")
	require.False(t, ok)
}

func TestResolve(t *testing.T) {
	out := resolve(fiber.ErrNotFound)
	require.Equal(t, fiber.StatusNotFound, out.StatusCode)
	require.Equal(t, "Not Found", out.Message)

	out = resolve(NewAppError(fiber.StatusForbidden, "", map[string]string{"k": "v"}, nil))
	require.Equal(t, response.MessageForbidden, out.Message)
	require.Equal(t, map[string]string{"k": "v"}, out.Data)

	out = resolve(NewAppError(0, "odd", nil, nil))
	require.Equal(t, fiber.StatusInternalServerError, out.StatusCode)
}
