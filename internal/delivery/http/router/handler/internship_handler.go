package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"estagiohub/internal/delivery/http/middleware"
	"estagiohub/internal/delivery/http/response"
	"estagiohub/internal/domain/entity"
	"estagiohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InternshipHandler holds dependencies for internship workflow handlers.
type InternshipHandler struct {
	uc     usecase.InternshipUsecase
	logger *slog.Logger
}

// NewInternshipHandler is the constructor for InternshipHandler, injected by Fx.
func NewInternshipHandler(uc usecase.InternshipUsecase, logger *slog.Logger) *InternshipHandler {
	return &InternshipHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request payloads ---

type timeRangeRequest struct {
	StartTime int `json:"start_time" validate:"gte=0,lt=1440"`
	EndTime   int `json:"end_time" validate:"gt=0,lte=1440"`
}

type weeklyHoursRequest struct {
	MondayToFriday          timeRangeRequest  `json:"monday_to_friday" validate:"required"`
	MondayToFridaySecondary *timeRangeRequest `json:"monday_to_friday_secondary"`
	Saturday                *timeRangeRequest `json:"saturday"`
}

type taskRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type organizationSupervisorRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Position string `json:"position"`
}

type internshipDetailsRequest struct {
	OrganizationCnpj       string                        `json:"organization_cnpj" validate:"required"`
	OrganizationSupervisor organizationSupervisorRequest `json:"organization_supervisor" validate:"required"`
	Division               string                        `json:"division"`
	Classification         string                        `json:"classification" validate:"required,oneof=mandatory non_mandatory"`
	MonthlyStipend         float64                       `json:"monthly_stipend" validate:"gte=0"`
	TransportationAid      float64                       `json:"transportation_aid" validate:"gte=0"`
	WorkSituation          string                        `json:"work_situation" validate:"required,oneof=onsite hybrid remote"`
	WeeklyHours            weeklyHoursRequest            `json:"weekly_hours" validate:"required"`
	StartDate              string                        `json:"start_date" validate:"required,datetime=2006-01-02"`
	ExpectedEndDate        string                        `json:"expected_end_date" validate:"required,datetime=2006-01-02"`
	Tasks                  []taskRequest                 `json:"tasks" validate:"dive"`
}

type startInternshipRequest struct {
	StudentID    string                   `json:"student_id" validate:"required,uuid"`
	SupervisorID string                   `json:"supervisor_id" validate:"required,uuid"`
	Details      internshipDetailsRequest `json:"details" validate:"required"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

type requiredReasonRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// --- Response views ---

type timeRangeView struct {
	StartTime int `json:"start_time"`
	EndTime   int `json:"end_time"`
}

type weeklyHoursView struct {
	MondayToFriday          timeRangeView  `json:"monday_to_friday"`
	MondayToFridaySecondary *timeRangeView `json:"monday_to_friday_secondary,omitempty"`
	Saturday                *timeRangeView `json:"saturday,omitempty"`
}

type taskView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type documentView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	ConfirmedAt *string `json:"confirmed_at"`
	CreatedAt   string  `json:"created_at"`
}

type organizationView struct {
	CNPJ          string `json:"cnpj"`
	CorporateName string `json:"corporate_name"`
	BusinessName  string `json:"business_name"`
	Phone1        string `json:"phone1,omitempty"`
	Phone2        string `json:"phone2,omitempty"`
	Website       string `json:"website,omitempty"`
}

type internshipView struct {
	ID                     string           `json:"id"`
	Status                 string           `json:"status"`
	StudentID              string           `json:"student_id"`
	StudentName            string           `json:"student_name,omitempty"`
	SupervisorID           string           `json:"supervisor_id"`
	SupervisorName         string           `json:"supervisor_name,omitempty"`
	Organization           organizationView `json:"organization"`
	OrganizationSupervisor struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Position string `json:"position"`
	} `json:"organization_supervisor"`
	Division          string          `json:"division"`
	Classification    string          `json:"classification"`
	MonthlyStipend    float64         `json:"monthly_stipend"`
	TransportationAid float64         `json:"transportation_aid"`
	WorkSituation     string          `json:"work_situation"`
	WeeklyHours       weeklyHoursView `json:"weekly_hours"`
	StartDate         string          `json:"start_date"`
	ExpectedEndDate   string          `json:"expected_end_date"`
	Tasks             []taskView      `json:"tasks"`
	CloseReason       *string         `json:"close_reason,omitempty"`
	Documents         []documentView  `json:"documents"`
	Version           int64           `json:"version"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

func newTimeRangeView(r entity.TimeRange) timeRangeView {
	return timeRangeView{StartTime: r.StartTime, EndTime: r.EndTime}
}

func newInternshipView(internship *entity.Internship) internshipView {
	view := internshipView{
		ID:           internship.ID.String(),
		Status:       internship.Status.String(),
		StudentID:    internship.StudentID.String(),
		SupervisorID: internship.SupervisorID.String(),
		Organization: organizationView{
			CNPJ:          internship.Organization.CNPJ,
			CorporateName: internship.Organization.CorporateName,
			BusinessName:  internship.Organization.BusinessName,
			Phone1:        internship.Organization.Phone1,
			Phone2:        internship.Organization.Phone2,
			Website:       internship.Organization.Website,
		},
		Division:          internship.Division,
		Classification:    string(internship.Classification),
		MonthlyStipend:    internship.MonthlyStipend,
		TransportationAid: internship.TransportationAid,
		WorkSituation:     string(internship.WorkSituation),
		WeeklyHours: weeklyHoursView{
			MondayToFriday: newTimeRangeView(internship.WeeklyHours.MondayToFriday),
		},
		StartDate:       internship.Period.StartDate.Format("2006-01-02"),
		ExpectedEndDate: internship.Period.ExpectedEndDate.Format("2006-01-02"),
		Tasks:           make([]taskView, 0, len(internship.Tasks)),
		CloseReason:     internship.CloseReason,
		Documents:       make([]documentView, 0, len(internship.Documents)),
		Version:         internship.Version,
		CreatedAt:       internship.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       internship.UpdatedAt.Format(time.RFC3339),
	}

	view.StudentName = internship.Student.FullName
	view.SupervisorName = internship.Supervisor.Name
	view.OrganizationSupervisor.Name = internship.OrganizationSupervisor.Name
	view.OrganizationSupervisor.Email = internship.OrganizationSupervisor.Email
	view.OrganizationSupervisor.Position = internship.OrganizationSupervisor.Position

	if secondary := internship.WeeklyHours.MondayToFridaySecondary; secondary != nil {
		v := newTimeRangeView(*secondary)
		view.WeeklyHours.MondayToFridaySecondary = &v
	}
	if saturday := internship.WeeklyHours.Saturday; saturday != nil {
		v := newTimeRangeView(*saturday)
		view.WeeklyHours.Saturday = &v
	}

	for _, task := range internship.Tasks {
		view.Tasks = append(view.Tasks, taskView{Name: task.Name, Description: task.Description})
	}

	for _, document := range internship.Documents {
		docView := documentView{
			ID:        document.ID.String(),
			Name:      document.Name,
			Type:      string(document.Type),
			CreatedAt: document.CreatedAt.Format(time.RFC3339),
		}
		if document.ConfirmedAt != nil {
			confirmedAt := document.ConfirmedAt.Format(time.RFC3339)
			docView.ConfirmedAt = &confirmedAt
		}
		view.Documents = append(view.Documents, docView)
	}

	return view
}

func newInternshipViews(internships []*entity.Internship) []internshipView {
	views := make([]internshipView, 0, len(internships))
	for _, internship := range internships {
		views = append(views, newInternshipView(internship))
	}

	return views
}

func toDetailsInput(req internshipDetailsRequest) usecase.InternshipDetailsInput {
	details := usecase.InternshipDetailsInput{
		OrganizationCnpj: req.OrganizationCnpj,
		OrganizationSupervisor: usecase.OrganizationSupervisorInput{
			Name:     req.OrganizationSupervisor.Name,
			Email:    req.OrganizationSupervisor.Email,
			Position: req.OrganizationSupervisor.Position,
		},
		Division:          req.Division,
		Classification:    entity.Classification(req.Classification),
		MonthlyStipend:    req.MonthlyStipend,
		TransportationAid: req.TransportationAid,
		WorkSituation:     entity.WorkSituation(req.WorkSituation),
		WeeklyHours: usecase.WeeklyHoursInput{
			MondayToFriday: usecase.TimeRangeInput{
				StartTime: req.WeeklyHours.MondayToFriday.StartTime,
				EndTime:   req.WeeklyHours.MondayToFriday.EndTime,
			},
		},
		StartDate:       req.StartDate,
		ExpectedEndDate: req.ExpectedEndDate,
		Tasks:           make([]usecase.TaskInput, 0, len(req.Tasks)),
	}

	if secondary := req.WeeklyHours.MondayToFridaySecondary; secondary != nil {
		details.WeeklyHours.MondayToFridaySecondary = &usecase.TimeRangeInput{
			StartTime: secondary.StartTime,
			EndTime:   secondary.EndTime,
		}
	}
	if saturday := req.WeeklyHours.Saturday; saturday != nil {
		details.WeeklyHours.Saturday = &usecase.TimeRangeInput{
			StartTime: saturday.StartTime,
			EndTime:   saturday.EndTime,
		}
	}

	for _, task := range req.Tasks {
		details.Tasks = append(details.Tasks, usecase.TaskInput{
			Name:        task.Name,
			Description: task.Description,
		})
	}

	return details
}

// actorFromContext rebuilds the acting identity stored by the auth middleware.
func actorFromContext(c echo.Context) usecase.Actor {
	actor := usecase.Actor{}
	if userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok {
		actor.UserID = userID
	}
	if role, ok := c.Get(middleware.ContextKeyRole).(entity.Role); ok {
		actor.Role = role
	}

	return actor
}

func internshipIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// StartInternship opens a new internship request.
func (h *InternshipHandler) StartInternship(c echo.Context) error {
	var req startInternshipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do estágio inválidos.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "Dados do estágio inválidos.", err.Error())
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de aluno inválido.")
	}
	supervisorID, err := uuid.Parse(req.SupervisorID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de orientador inválido.")
	}

	internship, err := h.uc.StartNewInternship(c.Request().Context(), &usecase.StartInternshipInput{
		StudentID:    studentID,
		SupervisorID: supervisorID,
		Details:      toDetailsInput(req.Details),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newInternshipView(internship), "Solicitação de estágio criada com sucesso.")
}

// GetInternship returns one internship with its tasks and documents.
func (h *InternshipHandler) GetInternship(c echo.Context) error {
	internshipID, err := internshipIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de estágio inválido.")
	}

	internship, err := h.uc.GetInternshipByID(c.Request().Context(), internshipID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInternshipView(internship), "")
}

// UpdateInternship edits the body of a request still open to changes.
func (h *InternshipHandler) UpdateInternship(c echo.Context) error {
	internshipID, err := internshipIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de estágio inválido.")
	}

	var req internshipDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do estágio inválidos.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "Dados do estágio inválidos.", err.Error())
	}

	internship, err := h.uc.UpdateInternship(c.Request().Context(), &usecase.UpdateInternshipInput{
		InternshipID: internshipID,
		Details:      toDetailsInput(req),
		Actor:        actorFromContext(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInternshipView(internship), "Estágio atualizado com sucesso.")
}

// ApproveInternship passes a fresh request through the initial approval.
func (h *InternshipHandler) ApproveInternship(c echo.Context) error {
	internshipID, err := internshipIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de estágio inválido.")
	}

	if err := h.uc.ApproveInternship(c.Request().Context(), internshipID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Estágio aprovado com sucesso.")
}

// RejectInternship sends a request back to the student with a reason.
func (h *InternshipHandler) RejectInternship(c echo.Context) error {
	internshipID, err := internshipIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de estágio inválido.")
	}

	var req requiredReasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Motivo da rejeição inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "O motivo da rejeição é obrigatório.", err.Error())
	}

	if err := h.uc.RejectInternship(c.Request().Context(), &usecase.RejectInternshipInput{
		InternshipID: internshipID,
		Reason:       req.Reason,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Estágio rejeitado.")
}

// CancelInternship withdraws a pending request.
func (h *InternshipHandler) CancelInternship(c echo.Context) error {
	internshipID, err := internshipIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de estágio inválido.")
	}

	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cancelamento inválidos.")
	}

	if err := h.uc.CancelInternship(c.Request().Context(), &usecase.CancelInternshipInput{
		InternshipID: internshipID,
		Reason:       req.Reason,
		Actor:        actorFromContext(c),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Estágio cancelado.")
}

// CloseInternship ends an active internship abnormally.
func (h *InternshipHandler) CloseInternship(c echo.Context) error {
	internshipID, err := internshipIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de estágio inválido.")
	}

	var req requiredReasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Motivo do encerramento inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, "O motivo do encerramento é obrigatório.", err.Error())
	}

	if err := h.uc.CloseInternship(c.Request().Context(), &usecase.CloseInternshipInput{
		InternshipID: internshipID,
		Reason:       req.Reason,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Estágio encerrado.")
}

// FinishInternship ends an active internship normally and issues the final
// documents.
func (h *InternshipHandler) FinishInternship(c echo.Context) error {
	internshipID, err := internshipIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de estágio inválido.")
	}

	if err := h.uc.FinishInternship(c.Request().Context(), internshipID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Estágio finalizado com sucesso.")
}

// ConfirmDocument toggles the confirmation state of one document.
func (h *InternshipHandler) ConfirmDocument(c echo.Context) error {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de documento inválido.")
	}

	if err := h.uc.ConfirmDocument(c.Request().Context(), documentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Confirmação do documento alternada.")
}

// FindByStudent lists every internship of one student, newest first.
func (h *InternshipHandler) FindByStudent(c echo.Context) error {
	studentID, err := uuid.Parse(c.Param("studentId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de aluno inválido.")
	}

	internships, err := h.uc.FindInternshipsByStudent(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInternshipViews(internships), "")
}

// SearchInternships searches internships by a free-text fragment.
func (h *InternshipHandler) SearchInternships(c echo.Context) error {
	limit, offset := paginationParams(c)

	internships, err := h.uc.SearchInternships(c.Request().Context(), &usecase.SearchInternshipsInput{
		Term:   c.QueryParam("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInternshipViews(internships), "")
}

// UploadStartDoc forwards an uploaded start document to the supervisor.
func (h *InternshipHandler) UploadStartDoc(c echo.Context) error {
	return h.uploadDocument(c, h.uc.UploadStartDoc)
}

// UploadProgressDoc forwards an uploaded progress document to the supervisor.
func (h *InternshipHandler) UploadProgressDoc(c echo.Context) error {
	return h.uploadDocument(c, h.uc.UploadProgressDoc)
}

// UploadEndDoc forwards an uploaded end document to the supervisor.
func (h *InternshipHandler) UploadEndDoc(c echo.Context) error {
	return h.uploadDocument(c, h.uc.UploadEndDoc)
}

func (h *InternshipHandler) uploadDocument(c echo.Context, upload func(ctx context.Context, input *usecase.UploadDocumentInput) error) error {
	internshipID, err := internshipIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de estágio inválido.")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Nenhum arquivo foi enviado.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	if err := upload(c.Request().Context(), &usecase.UploadDocumentInput{
		InternshipID: internshipID,
		Filename:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Content:      content,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Documento enviado ao orientador com sucesso.")
}
