package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estagiohub/config"
	"estagiohub/internal/delivery/http/middleware"
	"estagiohub/internal/delivery/http/response"
	"estagiohub/internal/delivery/http/validator"
	"estagiohub/internal/domain/entity"
	mockUC "estagiohub/internal/mocks/usecase"
	"estagiohub/internal/usecase"
)

type userHandlerFixtures struct {
	handler *UserHandler
	userUC  *mockUC.MockUserUsecase
	echo    *echo.Echo
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	t.Helper()

	userUC := mockUC.NewMockUserUsecase(t)
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return userHandlerFixtures{
		handler: NewUserHandler(userUC, cfg, logger),
		userUC:  userUC,
		echo:    e,
	}
}

func (f userHandlerFixtures) jsonRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestUserHandler_RegisterStudent_Success(t *testing.T) {
	f := createTestUserHandler(t)

	account := &entity.User{
		ID:        uuid.New(),
		Email:     "aluno@example.edu.br",
		Role:      entity.RoleStudent,
		CreatedAt: time.Now(),
	}
	f.userUC.EXPECT().
		RegisterStudent(mock.Anything, mock.AnythingOfType("*usecase.RegisterStudentInput")).
		RunAndReturn(func(_ context.Context, input *usecase.RegisterStudentInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, "aluno@example.edu.br", input.Email)
			assert.Equal(t, "Maria da Silva", input.FullName)
			assert.Equal(t, "Campinas", input.Address.City)

			return &usecase.RegisterOutput{User: account}, nil
		})

	body := `{
		"email": "aluno@example.edu.br",
		"password": "segredo-forte",
		"full_name": "Maria da Silva",
		"rg": "123456789",
		"phone": "1999990000",
		"academic_id": "20260001",
		"academic_class": "INFO-2026",
		"address": {
			"street": "Rua das Laranjeiras",
			"number": "42",
			"district": "Centro",
			"city": "Campinas",
			"state": "SP",
			"postal_code": "13000000"
		}
	}`
	c, rec := f.jsonRequest(http.MethodPost, "/auth/register/student", body)

	require.NoError(t, f.handler.RegisterStudent(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestUserHandler_RegisterStudent_ValidationFailure(t *testing.T) {
	f := createTestUserHandler(t)

	// Password shorter than the minimum, no usecase call expected.
	body := `{"email": "aluno@example.edu.br", "password": "curta", "full_name": "Maria", "rg": "1", "academic_id": "1", "address": {"street": "r", "number": "1", "district": "d", "city": "c", "state": "SP", "postal_code": "1"}}`
	c, rec := f.jsonRequest(http.MethodPost, "/auth/register/student", body)

	require.NoError(t, f.handler.RegisterStudent(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
}

func TestUserHandler_Login_SetsHTTPOnlyCookie(t *testing.T) {
	f := createTestUserHandler(t)

	account := &entity.User{ID: uuid.New(), Email: "admin@example.edu.br", Role: entity.RoleAdmin}
	expiresAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	f.userUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		RunAndReturn(func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, entity.RoleAdmin, input.Role)

			return &usecase.LoginOutput{
				AccessToken: "opaque-token",
				ExpiresAt:   expiresAt.Unix(),
				User:        account,
			}, nil
		})

	body := `{"email": "admin@example.edu.br", "password": "segredo-forte", "role": "admin"}`
	c, rec := f.jsonRequest(http.MethodPost, "/auth/login", body)

	require.NoError(t, f.handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "opaque-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.TokenCookieName, cookies[0].Name)
	assert.Equal(t, "opaque-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure) // plain HTTP outside production
}

func TestUserHandler_Login_UnknownRoleRejectedByValidation(t *testing.T) {
	f := createTestUserHandler(t)

	body := `{"email": "x@example.edu.br", "password": "segredo-forte", "role": "professor"}`
	c, rec := f.jsonRequest(http.MethodPost, "/auth/login", body)

	require.NoError(t, f.handler.Login(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUserHandler_Logout_ClearsCookie(t *testing.T) {
	f := createTestUserHandler(t)

	f.userUC.EXPECT().
		Logout(mock.Anything, "opaque-token").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: "opaque-token"})
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.handler.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestUserHandler_Logout_WithoutTokenStillSucceeds(t *testing.T) {
	f := createTestUserHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.handler.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_ForgotPassword_AlwaysGeneric(t *testing.T) {
	f := createTestUserHandler(t)

	f.userUC.EXPECT().
		ForgotPassword(mock.Anything, &usecase.ForgotPasswordInput{Email: "quem@example.edu.br"}).
		Return(nil)

	body := `{"email": "quem@example.edu.br"}`
	c, rec := f.jsonRequest(http.MethodPost, "/auth/forgot-password", body)

	require.NoError(t, f.handler.ForgotPassword(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Se o e-mail estiver cadastrado")
}

func TestUserHandler_SearchStudents_ForwardsPagination(t *testing.T) {
	f := createTestUserHandler(t)

	student := &entity.Student{
		ID:         uuid.New(),
		User:       entity.User{Email: "aluno@example.edu.br"},
		FullName:   "Maria da Silva",
		AcademicID: "20260001",
	}
	f.userUC.EXPECT().
		SearchStudents(mock.Anything, &usecase.SearchStudentsInput{Term: "maria", Limit: 5, Offset: 10}).
		Return([]*entity.Student{student}, nil)

	req := httptest.NewRequest(http.MethodGet, "/students/search?q=maria&limit=5&offset=10", nil)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.handler.SearchStudents(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Maria da Silva")
}
