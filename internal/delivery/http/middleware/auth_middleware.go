package middleware

import (
	"slices"
	"strings"

	"estagiohub/internal/delivery/http/response"
	"estagiohub/internal/domain/entity"
	"estagiohub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
	ContextKeyUser   = "user"
)

// TokenCookieName is the HTTP-only cookie carrying the access token.
const TokenCookieName = "token"

// AuthMiddleware resolves the opaque access token of each request to an
// account and guards routes by role.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC}
}

// ExtractToken pulls the access token from the token cookie, falling back to
// the Authorization Bearer header. Empty string means no credentials.
func ExtractToken(c echo.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}

// Authenticate validates the access token and stores the resolved account on
// the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Autenticação necessária.")
		}

		authenticated, err := m.userUC.AuthenticateToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada.")
		}

		c.Set(ContextKeyUserID, authenticated.User.ID)
		c.Set(ContextKeyRole, authenticated.User.Role)
		c.Set(ContextKeyUser, authenticated.User)

		return next(c)
	}
}

// RequireRole allows the request through only when the authenticated account
// holds one of the given roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permissão negada: perfil não identificado.")
			}

			if !slices.Contains(allowed, role) {
				return response.Forbidden(c, "ROLE_FORBIDDEN", "Permissão negada para este perfil.")
			}

			return next(c)
		}
	}
}
