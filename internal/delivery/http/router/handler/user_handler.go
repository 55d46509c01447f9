// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"estagiohub/config"
	"estagiohub/internal/delivery/http/middleware"
	"estagiohub/internal/delivery/http/response"
	"estagiohub/internal/domain/entity"
	"estagiohub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// --- Request payloads ---

type addressRequest struct {
	Street         string `json:"street" validate:"required"`
	Number         string `json:"number" validate:"required"`
	AdditionalInfo string `json:"additional_info"`
	District       string `json:"district" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	PostalCode     string `json:"postal_code" validate:"required"`
}

type registerStudentRequest struct {
	Email         string         `json:"email" validate:"required,email"`
	Password      string         `json:"password" validate:"required,min=8"`
	FullName      string         `json:"full_name" validate:"required"`
	RG            string         `json:"rg" validate:"required"`
	Phone         string         `json:"phone"`
	WhatsApp      string         `json:"whatsapp"`
	AcademicID    string         `json:"academic_id" validate:"required"`
	AcademicClass string         `json:"academic_class"`
	Address       addressRequest `json:"address" validate:"required"`
}

type registerAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student supervisor admin"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// --- Response views ---

type userView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type studentView struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	AcademicID    string `json:"academic_id"`
	AcademicClass string `json:"academic_class"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func newStudentViews(students []*entity.Student) []studentView {
	views := make([]studentView, 0, len(students))
	for _, student := range students {
		views = append(views, studentView{
			ID:            student.ID.String(),
			FullName:      student.FullName,
			Email:         student.User.Email,
			AcademicID:    student.AcademicID,
			AcademicClass: student.AcademicClass,
		})
	}

	return views
}

// RegisterStudent handles the student self-registration request.
func (h *UserHandler) RegisterStudent(c echo.Context) error {
	var req registerStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cadastro inválidos.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "Dados de cadastro inválidos.", err.Error())
	}

	output, err := h.uc.RegisterStudent(c.Request().Context(), &usecase.RegisterStudentInput{
		Email:         req.Email,
		Password:      req.Password,
		FullName:      req.FullName,
		RG:            req.RG,
		Phone:         req.Phone,
		WhatsApp:      req.WhatsApp,
		AcademicID:    req.AcademicID,
		AcademicClass: req.AcademicClass,
		Address: usecase.AddressInput{
			Street:         req.Address.Street,
			Number:         req.Address.Number,
			AdditionalInfo: req.Address.AdditionalInfo,
			District:       req.Address.District,
			City:           req.Address.City,
			State:          req.Address.State,
			PostalCode:     req.Address.PostalCode,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newUserView(output.User), "Aluno cadastrado com sucesso.")
}

// RegisterSupervisor handles the supervisor self-registration request.
func (h *UserHandler) RegisterSupervisor(c echo.Context) error {
	var req registerAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cadastro inválidos.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "Dados de cadastro inválidos.", err.Error())
	}

	output, err := h.uc.RegisterSupervisor(c.Request().Context(), &usecase.RegisterSupervisorInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newUserView(output.User), "Orientador cadastrado com sucesso.")
}

// RegisterAdmin handles the creation of a new administrator account.
// Only reachable by authenticated admins.
func (h *UserHandler) RegisterAdmin(c echo.Context) error {
	var req registerAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cadastro inválidos.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "Dados de cadastro inválidos.", err.Error())
	}

	output, err := h.uc.RegisterAdmin(c.Request().Context(), &usecase.RegisterAdminInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newUserView(output.User), "Administrador cadastrado com sucesso.")
}

// Login authenticates an account and issues an access token. The token is
// returned in the body and also set as an HTTP-only cookie for browsers.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de login inválidos.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "Dados de login inválidos.", err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	expiresAt := time.Unix(output.ExpiresAt, 0)
	c.SetCookie(h.tokenCookie(output.AccessToken, expiresAt))

	return response.Success(c, http.StatusOK, map[string]any{
		"token":      output.AccessToken,
		"expires_at": expiresAt.Format(time.RFC3339),
		"user":       newUserView(output.User),
	}, "Login realizado com sucesso.")
}

// Logout invalidates the current access token and clears the auth cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	token := middleware.ExtractToken(c)
	if token != "" {
		if err := h.uc.Logout(c.Request().Context(), token); err != nil {
			return errors.WithStack(err)
		}
	}

	// Expire the cookie regardless of whether a token was presented.
	c.SetCookie(h.tokenCookie("", time.Unix(0, 0)))

	return response.Success(c, http.StatusOK, nil, "Sessão encerrada com sucesso.")
}

// ForgotPassword starts a password reset. It always answers 200 so the
// endpoint cannot be used to probe which e-mails are registered.
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "E-mail inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "E-mail inválido.", err.Error())
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Se o e-mail estiver cadastrado, um código de recuperação foi enviado.")
}

// ResetPassword completes a password reset using the e-mailed code.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de redefinição inválidos.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "Dados de redefinição inválidos.", err.Error())
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       req.Email,
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Senha redefinida com sucesso.")
}

// SearchStudents searches registered students by name or e-mail fragment.
func (h *UserHandler) SearchStudents(c echo.Context) error {
	limit, offset := paginationParams(c)

	students, err := h.uc.SearchStudents(c.Request().Context(), &usecase.SearchStudentsInput{
		Term:   c.QueryParam("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStudentViews(students), "")
}

// tokenCookie builds the HTTP-only auth cookie. Secure is only set in
// production so local development over plain HTTP keeps working.
func (h *UserHandler) tokenCookie(value string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

// paginationParams reads limit/offset query parameters, tolerating absence
// and garbage. Range clamping happens in the usecase layer.
func paginationParams(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))

	return limit, offset
}
