package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	mockUC "estagiohub/internal/mocks/usecase"
	"estagiohub/internal/usecase"
)

func newAuthTestContext(t *testing.T, configure func(req *http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internships", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_CookieToken(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	m := NewAuthMiddleware(userUC)

	account := &entity.User{ID: uuid.New(), Email: "aluno@example.edu.br", Role: entity.RoleStudent}
	userUC.EXPECT().
		AuthenticateToken(mock.Anything, "opaque-token").
		Return(&usecase.AuthenticatedUser{User: account}, nil)

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "opaque-token"})
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, account.ID, c.Get(ContextKeyUserID))
	assert.Equal(t, entity.RoleStudent, c.Get(ContextKeyRole))
}

func TestAuthMiddleware_Authenticate_BearerFallback(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	m := NewAuthMiddleware(userUC)

	account := &entity.User{ID: uuid.New(), Email: "orientador@example.edu.br", Role: entity.RoleSupervisor}
	userUC.EXPECT().
		AuthenticateToken(mock.Anything, "header-token").
		Return(&usecase.AuthenticatedUser{User: account}, nil)

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer header-token")
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RoleSupervisor, c.Get(ContextKeyRole))
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	m := NewAuthMiddleware(userUC)

	c, rec := newAuthTestContext(t, nil)

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	m := NewAuthMiddleware(userUC)

	userUC.EXPECT().
		AuthenticateToken(mock.Anything, "stale").
		Return(nil, domainerrors.ErrTokenInvalid)

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "stale"})
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     any
		allowed  []entity.Role
		wantCode int
	}{
		{
			name:     "allowed role passes",
			role:     entity.RoleAdmin,
			allowed:  []entity.Role{entity.RoleAdmin, entity.RoleSupervisor},
			wantCode: http.StatusOK,
		},
		{
			name:     "role outside the allow list is rejected",
			role:     entity.RoleStudent,
			allowed:  []entity.Role{entity.RoleSupervisor},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "missing role is rejected",
			role:     nil,
			allowed:  []entity.Role{entity.RoleSupervisor},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userUC := mockUC.NewMockUserUsecase(t)
			m := NewAuthMiddleware(userUC)

			c, rec := newAuthTestContext(t, nil)
			if tt.role != nil {
				c.Set(ContextKeyRole, tt.role)
			}

			err := m.RequireRole(tt.allowed...)(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
