package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/repository"
	mockRepo "estagiohub/internal/mocks/repository"
	mockSvc "estagiohub/internal/mocks/service"
	mockUC "estagiohub/internal/mocks/usecase"
	"estagiohub/internal/usecase"
)

// internshipServiceFixtures holds all test dependencies for internship service tests.
type internshipServiceFixtures struct {
	service        usecase.InternshipUsecase
	txManager      *mockRepo.MockTransactionManager
	internshipRepo *mockRepo.MockInternshipRepository
	userRepo       *mockRepo.MockUserRepository
	documents      *mockUC.MockDocumentUsecase
	resolver       *mockSvc.MockOrganizationResolver
	mailer         *mockSvc.MockMailerService

	// Transaction-bound repositories handed out by the factory passthrough.
	factory          *mockRepo.MockRepositoryFactory
	txInternshipRepo *mockRepo.MockInternshipRepository
	txDocumentRepo   *mockRepo.MockDocumentRepository
}

func createTestInternshipService(t *testing.T) internshipServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	internshipRepo := mockRepo.NewMockInternshipRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	documents := mockUC.NewMockDocumentUsecase(t)
	resolver := mockSvc.NewMockOrganizationResolver(t)
	mailer := mockSvc.NewMockMailerService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewInternshipService(InternshipServiceParams{
		TxManager:      txManager,
		InternshipRepo: internshipRepo,
		UserRepo:       userRepo,
		Documents:      documents,
		Resolver:       resolver,
		Mailer:         mailer,
		Logger:         logger,
	})

	return internshipServiceFixtures{
		service:          service,
		txManager:        txManager,
		internshipRepo:   internshipRepo,
		userRepo:         userRepo,
		documents:        documents,
		resolver:         resolver,
		mailer:           mailer,
		factory:          mockRepo.NewMockRepositoryFactory(t),
		txInternshipRepo: mockRepo.NewMockInternshipRepository(t),
		txDocumentRepo:   mockRepo.NewMockDocumentRepository(t),
	}
}

// expectTransaction runs the transactional callback against the fixture's
// factory and propagates its error, mirroring a real commit/rollback.
func (f *internshipServiceFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func validDetailsInput() usecase.InternshipDetailsInput {
	return usecase.InternshipDetailsInput{
		OrganizationCnpj: "11222333000181",
		OrganizationSupervisor: usecase.OrganizationSupervisorInput{
			Name:     "Carla Dias",
			Email:    "carla@aurora.example",
			Position: "Gerente de TI",
		},
		Division:          "Engenharia",
		Classification:    entity.ClassificationMandatory,
		MonthlyStipend:    1200,
		TransportationAid: 200,
		WorkSituation:     entity.WorkSituationOnsite,
		WeeklyHours: usecase.WeeklyHoursInput{
			MondayToFriday: usecase.TimeRangeInput{StartTime: 480, EndTime: 720},
		},
		StartDate:       "2026-03-01",
		ExpectedEndDate: "2026-09-01",
		Tasks: []usecase.TaskInput{
			{Name: "Suporte", Description: "Atendimento interno"},
		},
	}
}

func newTestInternship(status entity.InternshipStatus) *entity.Internship {
	return &entity.Internship{
		ID:           uuid.New(),
		StudentID:    uuid.New(),
		SupervisorID: uuid.New(),
		Status:       status,
		Student: entity.Student{
			FullName: "João Silva",
			User:     entity.User{Email: "joao@aluno.example"},
		},
		Supervisor: entity.Supervisor{
			Name: "Profa. Ana",
			User: entity.User{Email: "ana@docente.example"},
		},
		Version: 3,
	}
}

func TestInternshipService_StartNewInternship_Success(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	student := &entity.Student{ID: uuid.New(), FullName: "João Silva"}
	supervisor := &entity.Supervisor{ID: uuid.New(), Name: "Profa. Ana"}
	input := &usecase.StartInternshipInput{
		StudentID:    student.ID,
		SupervisorID: supervisor.ID,
		Details:      validDetailsInput(),
	}

	fx.userRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)
	fx.userRepo.EXPECT().FindSupervisorByID(ctx, supervisor.ID).Return(supervisor, nil)
	fx.internshipRepo.EXPECT().HasActiveInternship(ctx, student.ID).Return(false, nil)
	fx.resolver.EXPECT().FetchByCnpj(ctx, "11222333000181").Return(&entity.Organization{
		CNPJ:          "11222333000181",
		CorporateName: "Aurora Sistemas LTDA",
	}, nil)
	fx.internshipRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Internship")).
		Run(func(_ context.Context, internship *entity.Internship) {
			internship.ID = uuid.New()
		}).
		Return(nil)

	internship, err := fx.service.StartNewInternship(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAwaitingInitialApproval, internship.Status)
	assert.Equal(t, "Aurora Sistemas LTDA", internship.Organization.CorporateName)
	assert.Empty(t, internship.Documents)
	assert.Len(t, internship.Tasks, 1)
}

func TestInternshipService_StartNewInternship_StudentNotFound(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	studentID := uuid.New()
	fx.userRepo.EXPECT().FindStudentByID(ctx, studentID).Return(nil, repository.ErrStudentNotFound)

	internship, err := fx.service.StartNewInternship(ctx, &usecase.StartInternshipInput{
		StudentID:    studentID,
		SupervisorID: uuid.New(),
		Details:      validDetailsInput(),
	})

	assert.Nil(t, internship)
	assert.True(t, errors.Is(err, domainerrors.ErrStudentNotFound))
}

func TestInternshipService_StartNewInternship_AlreadyInterning(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	student := &entity.Student{ID: uuid.New()}
	supervisor := &entity.Supervisor{ID: uuid.New()}

	fx.userRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)
	fx.userRepo.EXPECT().FindSupervisorByID(ctx, supervisor.ID).Return(supervisor, nil)
	fx.internshipRepo.EXPECT().HasActiveInternship(ctx, student.ID).Return(true, nil)

	internship, err := fx.service.StartNewInternship(ctx, &usecase.StartInternshipInput{
		StudentID:    student.ID,
		SupervisorID: supervisor.ID,
		Details:      validDetailsInput(),
	})

	assert.Nil(t, internship)
	assert.True(t, errors.Is(err, domainerrors.ErrStudentAlreadyInterning))
}

func TestInternshipService_StartNewInternship_InvalidPeriod(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	student := &entity.Student{ID: uuid.New()}
	supervisor := &entity.Supervisor{ID: uuid.New()}
	details := validDetailsInput()
	details.ExpectedEndDate = details.StartDate

	fx.userRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)
	fx.userRepo.EXPECT().FindSupervisorByID(ctx, supervisor.ID).Return(supervisor, nil)
	fx.internshipRepo.EXPECT().HasActiveInternship(ctx, student.ID).Return(false, nil)

	_, err := fx.service.StartNewInternship(ctx, &usecase.StartInternshipInput{
		StudentID:    student.ID,
		SupervisorID: supervisor.ID,
		Details:      details,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPeriod))
}

func TestInternshipService_ApproveInternship_IssuesStartDocuments(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusAwaitingInitialApproval)
	issued := []*entity.InternshipDocument{{
		ID:           uuid.New(),
		InternshipID: internship.ID,
		Name:         "Plano de Atividades - Ficha de Início",
		Type:         entity.DocumentTypeStart,
	}}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.documents.EXPECT().IssueStartDocuments(ctx, fx.factory, internship.ID).Return(issued, nil)
	fx.txInternshipRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Internship")).
		Run(func(_ context.Context, updated *entity.Internship) {
			assert.Equal(t, entity.StatusAwaitingInternshipApproval, updated.Status)
		}).
		Return(nil)
	fx.mailer.EXPECT().SendInternshipApproved(ctx, internship).Return(nil)

	err := fx.service.ApproveInternship(ctx, internship.ID)

	require.NoError(t, err)
	assert.Len(t, internship.Documents, 1)
}

func TestInternshipService_ApproveInternship_NotifyFailureDegrades(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusAwaitingInitialApproval)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.documents.EXPECT().IssueStartDocuments(ctx, fx.factory, internship.ID).Return(nil, nil)
	fx.txInternshipRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Internship")).Return(nil)
	fx.mailer.EXPECT().SendInternshipApproved(ctx, internship).Return(errors.New("smtp down"))

	err := fx.service.ApproveInternship(ctx, internship.ID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOTIFICATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Message(), "aprovado com sucesso")
}

func TestInternshipService_ApproveInternship_GuardRejectsWrongStatus(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusInProgress)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	// Neither the document issuer nor Update may run on a guard failure.

	err := fx.service.ApproveInternship(ctx, internship.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	assert.Equal(t, entity.StatusInProgress, internship.Status)
}

func TestInternshipService_RejectInternship_NotifiesWithReason(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusAwaitingInternshipApproval)
	input := &usecase.RejectInternshipInput{
		InternshipID: internship.ID,
		Reason:       "plano de atividades incompleto",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.txInternshipRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Internship")).
		Run(func(_ context.Context, updated *entity.Internship) {
			assert.Equal(t, entity.StatusRejected, updated.Status)
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendInternshipRejected(ctx, internship, "plano de atividades incompleto").
		Return(nil)

	err := fx.service.RejectInternship(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, internship.Status)
}

func TestInternshipService_RejectInternship_NotifyFailureDegrades(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusAwaitingInitialApproval)
	input := &usecase.RejectInternshipInput{
		InternshipID: internship.ID,
		Reason:       "dados da empresa divergentes",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.txInternshipRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Internship")).Return(nil)
	fx.mailer.EXPECT().
		SendInternshipRejected(ctx, internship, "dados da empresa divergentes").
		Return(errors.New("smtp down"))

	err := fx.service.RejectInternship(ctx, input)

	// The rejection committed; only the notification failed.
	assert.Equal(t, entity.StatusRejected, internship.Status)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOTIFICATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Message(), "rejeitado com sucesso")
}

func TestInternshipService_CancelInternship_ByStudentSkipsNotification(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusAwaitingInitialApproval)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.txInternshipRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Internship")).Return(nil)

	err := fx.service.CancelInternship(ctx, &usecase.CancelInternshipInput{
		InternshipID: internship.ID,
		Reason:       "desisti da vaga",
		Actor:        usecase.Actor{UserID: uuid.New(), Role: entity.RoleStudent},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCanceled, internship.Status)
}

func TestInternshipService_CancelInternship_NotifyFailureDegrades(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusRejected)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.txInternshipRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Internship")).Return(nil)
	fx.mailer.EXPECT().SendInternshipCanceled(ctx, internship, "turma encerrada").Return(errors.New("smtp down"))

	err := fx.service.CancelInternship(ctx, &usecase.CancelInternshipInput{
		InternshipID: internship.ID,
		Reason:       "turma encerrada",
		Actor:        usecase.Actor{UserID: uuid.New(), Role: entity.RoleSupervisor},
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOTIFICATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "O estágio foi cancelado com sucesso, mas não foi possível notificar o aluno.", appErr.Message())
}

func TestInternshipService_CloseInternship_MailFailureIsSwallowed(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusInProgress)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.txInternshipRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Internship")).
		Run(func(_ context.Context, updated *entity.Internship) {
			require.NotNil(t, updated.CloseReason)
			assert.Equal(t, "pedido de demissão", *updated.CloseReason)
		}).
		Return(nil)
	fx.mailer.EXPECT().SendInternshipClosed(ctx, internship, "pedido de demissão").Return(errors.New("smtp down"))

	err := fx.service.CloseInternship(ctx, &usecase.CloseInternshipInput{
		InternshipID: internship.ID,
		Reason:       "pedido de demissão",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusClosed, internship.Status)
}

func TestInternshipService_CloseInternship_ReasonRequired(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusInProgress)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)

	err := fx.service.CloseInternship(ctx, &usecase.CloseInternshipInput{
		InternshipID: internship.ID,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrCloseReasonRequired))
	assert.Equal(t, entity.StatusInProgress, internship.Status)
}

func TestInternshipService_FinishInternship_IssuesFinalDocuments(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusInProgress)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.documents.EXPECT().IssueFinishedDocuments(ctx, fx.factory, internship.ID).Return([]*entity.InternshipDocument{
		{Name: "Avaliação de Desempenho", Type: entity.DocumentTypeFinished},
		{Name: "Relatório Final", Type: entity.DocumentTypeFinished},
	}, nil)
	fx.txInternshipRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Internship")).Return(nil)

	err := fx.service.FinishInternship(ctx, internship.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusFinished, internship.Status)
	assert.Len(t, internship.Documents, 2)
}

func TestInternshipService_ConfirmDocument_AutoAdvancesWhenAllStartConfirmed(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	documentID := uuid.New()
	internship := newTestInternship(entity.StatusAwaitingInternshipApproval)
	internship.Documents = []entity.InternshipDocument{{
		ID:           documentID,
		InternshipID: internship.ID,
		Name:         "Plano de Atividades - Ficha de Início",
		Type:         entity.DocumentTypeStart,
	}}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.factory.EXPECT().NewDocumentRepository().Return(fx.txDocumentRepo)
	fx.txInternshipRepo.EXPECT().FindByDocumentID(ctx, documentID).Return(internship, nil)
	fx.txDocumentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.InternshipDocument")).
		Run(func(_ context.Context, document *entity.InternshipDocument) {
			assert.NotNil(t, document.ConfirmedAt)
		}).
		Return(nil)
	fx.txInternshipRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Internship")).
		Run(func(_ context.Context, updated *entity.Internship) {
			assert.Equal(t, entity.StatusInProgress, updated.Status)
		}).
		Return(nil)

	err := fx.service.ConfirmDocument(ctx, documentID)

	require.NoError(t, err)
}

func TestInternshipService_ConfirmDocument_UnconfirmDoesNotRevertStatus(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	documentID := uuid.New()
	confirmedAt := time.Now().Add(-time.Hour)
	internship := newTestInternship(entity.StatusInProgress)
	internship.Documents = []entity.InternshipDocument{{
		ID:           documentID,
		InternshipID: internship.ID,
		Name:         "Plano de Atividades - Ficha de Início",
		Type:         entity.DocumentTypeStart,
		ConfirmedAt:  &confirmedAt,
	}}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.factory.EXPECT().NewDocumentRepository().Return(fx.txDocumentRepo)
	fx.txInternshipRepo.EXPECT().FindByDocumentID(ctx, documentID).Return(internship, nil)
	fx.txDocumentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.InternshipDocument")).
		Run(func(_ context.Context, document *entity.InternshipDocument) {
			assert.Nil(t, document.ConfirmedAt)
		}).
		Return(nil)
	// No internship update: the status stays in_progress.

	err := fx.service.ConfirmDocument(ctx, documentID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, internship.Status)
}

func TestInternshipService_UpdateInternship_ForbiddenForNonSupervisor(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateInternship(ctx, &usecase.UpdateInternshipInput{
		InternshipID: uuid.New(),
		Details:      validDetailsInput(),
		Actor:        usecase.Actor{UserID: uuid.New(), Role: entity.RoleStudent},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInternshipService_UpdateInternship_NotEditableInFlight(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusInProgress)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)

	_, err := fx.service.UpdateInternship(ctx, &usecase.UpdateInternshipInput{
		InternshipID: internship.ID,
		Details:      validDetailsInput(),
		Actor:        usecase.Actor{UserID: uuid.New(), Role: entity.RoleSupervisor},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInternshipNotEditable))
}

func TestInternshipService_UploadStartDoc_ForwardsToSupervisor(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusAwaitingInternshipApproval)
	fx.internshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.mailer.EXPECT().
		SendInternshipDocument(ctx, internship, entity.DocumentTypeStart, mock.AnythingOfType("service.DocumentAttachment")).
		Return(nil)

	err := fx.service.UploadStartDoc(ctx, &usecase.UploadDocumentInput{
		InternshipID: internship.ID,
		Filename:     "plano.pdf",
		ContentType:  "application/pdf",
		Content:      []byte("%PDF-1.7"),
	})

	require.NoError(t, err)
}

func TestInternshipService_UploadProgressDoc_RejectedOutsideInProgress(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusAwaitingInternshipApproval)
	fx.internshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)

	err := fx.service.UploadProgressDoc(ctx, &usecase.UploadDocumentInput{
		InternshipID: internship.ID,
		Filename:     "relatorio.pdf",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestInternshipService_SearchInternships_ClampsPagination(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: -5, wantLimit: 10, wantOffset: 0},
		{name: "capped", limit: 1000, offset: 20, wantLimit: 100, wantOffset: 20},
		{name: "passthrough", limit: 25, offset: 50, wantLimit: 25, wantOffset: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.internshipRepo.EXPECT().
				Search(ctx, repository.SearchInternshipsFilter{
					Term:   "ana",
					Limit:  tt.wantLimit,
					Offset: tt.wantOffset,
				}).
				Return([]*entity.Internship{}, nil).
				Once()

			_, err := fx.service.SearchInternships(ctx, &usecase.SearchInternshipsInput{
				Term:   "ana",
				Limit:  tt.limit,
				Offset: tt.offset,
			})

			require.NoError(t, err)
		})
	}
}

func TestInternshipService_Transition_VersionConflictSurfacesAsConflict(t *testing.T) {
	fx := createTestInternshipService(t)
	ctx := context.Background()

	internship := newTestInternship(entity.StatusAwaitingInitialApproval)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewInternshipRepository().Return(fx.txInternshipRepo)
	fx.txInternshipRepo.EXPECT().FindByID(ctx, internship.ID).Return(internship, nil)
	fx.txInternshipRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Internship")).Return(repository.ErrVersionConflict)

	err := fx.service.RejectInternship(ctx, &usecase.RejectInternshipInput{
		InternshipID: internship.ID,
		Reason:       "dados incompletos",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}
