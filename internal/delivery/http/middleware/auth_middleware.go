package middleware

import (
	"errors"
	"strings"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type principalKey struct{}

// Principal is the caller identity taken from a verified access token.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects requests without a valid bearer access token and
// stores the Principal for later handlers.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateAccessToken(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		case err != nil:
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		SetPrincipal(c, Principal{UserID: claims.UserID, Email: claims.Email, Role: user.Role(claims.Role)})
		return c.Next()
	}
}

func SetPrincipal(c fiber.Ctx, p Principal) {
	c.Locals(principalKey{}, p)
}

func PrincipalFromCtx(c fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(principalKey{}).(Principal)
	if !ok || p.UserID == uuid.Nil {
		return Principal{}, false
	}
	return p, true
}

func UserIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	p, ok := PrincipalFromCtx(c)
	return p.UserID, ok
}

func RoleFromCtx(c fiber.Ctx) (user.Role, bool) {
	p, ok := PrincipalFromCtx(c)
	if !ok || p.Role == "" {
		return "", false
	}
	return p.Role, true
}

// RequireRoles must run after AuthMiddleware.
func RequireRoles(roles ...user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := RoleFromCtx(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
