package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estagiohub/internal/delivery/http/middleware"
	"estagiohub/internal/delivery/http/validator"
	"estagiohub/internal/domain/entity"
	mockUC "estagiohub/internal/mocks/usecase"
	"estagiohub/internal/usecase"
)

type internshipHandlerFixtures struct {
	handler *InternshipHandler
	uc      *mockUC.MockInternshipUsecase
	echo    *echo.Echo
}

func createTestInternshipHandler(t *testing.T) internshipHandlerFixtures {
	t.Helper()

	uc := mockUC.NewMockInternshipUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return internshipHandlerFixtures{
		handler: NewInternshipHandler(uc, logger),
		uc:      uc,
		echo:    e,
	}
}

func sampleInternship() *entity.Internship {
	return &entity.Internship{
		ID:           uuid.New(),
		StudentID:    uuid.New(),
		SupervisorID: uuid.New(),
		Status:       entity.StatusAwaitingInitialApproval,
		Organization: entity.Organization{
			CNPJ:          "12345678000190",
			CorporateName: "ACME Tecnologia LTDA",
		},
		Classification: entity.ClassificationMandatory,
		WorkSituation:  entity.WorkSituationHybrid,
		WeeklyHours: entity.WeeklyHours{
			MondayToFriday: entity.TimeRange{StartTime: 480, EndTime: 720},
		},
		Period: entity.Period{
			StartDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			ExpectedEndDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

const validDetailsJSON = `{
	"organization_cnpj": "12345678000190",
	"organization_supervisor": {"name": "Carlos Souza", "email": "carlos@acme.com.br", "position": "Gerente"},
	"division": "TI",
	"classification": "mandatory",
	"monthly_stipend": 1200.50,
	"transportation_aid": 200,
	"work_situation": "hybrid",
	"weekly_hours": {"monday_to_friday": {"start_time": 480, "end_time": 720}},
	"start_date": "2026-03-01",
	"expected_end_date": "2026-09-01",
	"tasks": [{"name": "Suporte", "description": "Atendimento interno"}]
}`

func TestInternshipHandler_StartInternship_Success(t *testing.T) {
	f := createTestInternshipHandler(t)

	studentID := uuid.New()
	supervisorID := uuid.New()
	f.uc.EXPECT().
		StartNewInternship(mock.Anything, mock.AnythingOfType("*usecase.StartInternshipInput")).
		RunAndReturn(func(_ context.Context, input *usecase.StartInternshipInput) (*entity.Internship, error) {
			assert.Equal(t, studentID, input.StudentID)
			assert.Equal(t, supervisorID, input.SupervisorID)
			assert.Equal(t, "12345678000190", input.Details.OrganizationCnpj)
			assert.Equal(t, entity.ClassificationMandatory, input.Details.Classification)
			assert.Equal(t, 480, input.Details.WeeklyHours.MondayToFriday.StartTime)
			require.Len(t, input.Details.Tasks, 1)
			assert.Equal(t, "Suporte", input.Details.Tasks[0].Name)

			return sampleInternship(), nil
		})

	body := `{"student_id": "` + studentID.String() + `", "supervisor_id": "` + supervisorID.String() + `", "details": ` + validDetailsJSON + `}`
	req := httptest.NewRequest(http.MethodPost, "/internships", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.handler.StartInternship(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "awaiting_initial_approval")
}

func TestInternshipHandler_StartInternship_MalformedDateRejected(t *testing.T) {
	f := createTestInternshipHandler(t)

	body := `{"student_id": "` + uuid.NewString() + `", "supervisor_id": "` + uuid.NewString() + `", "details": {
		"organization_cnpj": "12345678000190",
		"organization_supervisor": {"name": "Carlos", "email": "carlos@acme.com.br"},
		"classification": "mandatory",
		"work_situation": "hybrid",
		"weekly_hours": {"monday_to_friday": {"start_time": 480, "end_time": 720}},
		"start_date": "01/03/2026",
		"expected_end_date": "2026-09-01"
	}}`
	req := httptest.NewRequest(http.MethodPost, "/internships", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.handler.StartInternship(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInternshipHandler_CancelInternship_ForwardsActor(t *testing.T) {
	f := createTestInternshipHandler(t)

	internshipID := uuid.New()
	actorID := uuid.New()
	f.uc.EXPECT().
		CancelInternship(mock.Anything, &usecase.CancelInternshipInput{
			InternshipID: internshipID,
			Reason:       "desisti da vaga",
			Actor:        usecase.Actor{UserID: actorID, Role: entity.RoleStudent},
		}).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/internships/"+internshipID.String()+"/cancel",
		bytes.NewBufferString(`{"reason": "desisti da vaga"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(internshipID.String())
	c.Set(middleware.ContextKeyUserID, actorID)
	c.Set(middleware.ContextKeyRole, entity.RoleStudent)

	require.NoError(t, f.handler.CancelInternship(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInternshipHandler_RejectInternship_ReasonRequired(t *testing.T) {
	f := createTestInternshipHandler(t)

	internshipID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/internships/"+internshipID.String()+"/reject",
		bytes.NewBufferString(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(internshipID.String())

	require.NoError(t, f.handler.RejectInternship(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInternshipHandler_ConfirmDocument_InvalidID(t *testing.T) {
	f := createTestInternshipHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/internships/documents/not-a-uuid/confirm", nil)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, f.handler.ConfirmDocument(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestInternshipHandler_UploadStartDoc_MissingFile(t *testing.T) {
	f := createTestInternshipHandler(t)

	internshipID := uuid.New()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/internships/"+internshipID.String()+"/docs/start", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(internshipID.String())

	require.NoError(t, f.handler.UploadStartDoc(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_FILE")
}

func TestInternshipHandler_UploadStartDoc_ForwardsContent(t *testing.T) {
	f := createTestInternshipHandler(t)

	internshipID := uuid.New()
	f.uc.EXPECT().
		UploadStartDoc(mock.Anything, mock.AnythingOfType("*usecase.UploadDocumentInput")).
		RunAndReturn(func(_ context.Context, input *usecase.UploadDocumentInput) error {
			assert.Equal(t, internshipID, input.InternshipID)
			assert.Equal(t, "plano.pdf", input.Filename)
			assert.Equal(t, []byte("%PDF-fake"), input.Content)

			return nil
		})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "plano.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-fake"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/internships/"+internshipID.String()+"/docs/start", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(internshipID.String())

	require.NoError(t, f.handler.UploadStartDoc(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInternshipHandler_SearchInternships_ForwardsPagination(t *testing.T) {
	f := createTestInternshipHandler(t)

	f.uc.EXPECT().
		SearchInternships(mock.Anything, &usecase.SearchInternshipsInput{Term: "acme", Limit: 20, Offset: 0}).
		Return([]*entity.Internship{sampleInternship()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/internships?q=acme&limit=20", nil)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.handler.SearchInternships(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACME Tecnologia LTDA")
}
