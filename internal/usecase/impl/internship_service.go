// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "estagiohub/internal/delivery/context"
	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/repository"
	"estagiohub/internal/domain/service"
	"estagiohub/internal/usecase"
)

const internshipDateLayout = "2006-01-02"

// internshipService implements the InternshipUsecase interface.
type internshipService struct {
	txManager      repository.TransactionManager
	internshipRepo repository.InternshipRepository
	userRepo       repository.UserRepository
	documents      usecase.DocumentUsecase
	resolver       service.OrganizationResolver
	mailer         service.MailerService
	logger         *slog.Logger
}

// InternshipServiceParams holds dependencies for InternshipService, injected by Fx.
type InternshipServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	InternshipRepo repository.InternshipRepository
	UserRepo       repository.UserRepository
	Documents      usecase.DocumentUsecase
	Resolver       service.OrganizationResolver
	Mailer         service.MailerService
	Logger         *slog.Logger
}

// NewInternshipService is the constructor for internshipService. It receives all dependencies as interfaces.
func NewInternshipService(params InternshipServiceParams) usecase.InternshipUsecase {
	return &internshipService{
		txManager:      params.TxManager,
		internshipRepo: params.InternshipRepo,
		userRepo:       params.UserRepo,
		documents:      params.Documents,
		resolver:       params.Resolver,
		mailer:         params.Mailer,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *internshipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartNewInternship opens a new request for a student. The student must not
// already count as interning, and the host organization is resolved from the
// CNPJ registry chain before anything is persisted.
func (srv *internshipService) StartNewInternship(ctx context.Context, input *usecase.StartInternshipInput) (*entity.Internship, error) {
	srv.log(ctx).Info("Starting new internship request",
		slog.Any("studentID", input.StudentID),
		slog.Any("supervisorID", input.SupervisorID))

	student, err := srv.userRepo.FindStudentByID(ctx, input.StudentID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, domainerrors.ErrStudentNotFound.WrapMessage("student not found for new internship")
		}

		return nil, errors.Wrap(err, "failed to load student for new internship")
	}

	supervisor, err := srv.userRepo.FindSupervisorByID(ctx, input.SupervisorID)
	if err != nil {
		if errors.Is(err, repository.ErrSupervisorNotFound) {
			return nil, domainerrors.ErrSupervisorNotFound.WrapMessage("supervisor not found for new internship")
		}

		return nil, errors.Wrap(err, "failed to load supervisor for new internship")
	}

	interning, err := srv.internshipRepo.HasActiveInternship(ctx, student.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check active internships")
	}
	if interning {
		return nil, domainerrors.ErrStudentAlreadyInterning.WrapMessage("student already has an active internship")
	}

	internship := &entity.Internship{
		StudentID:    student.ID,
		SupervisorID: supervisor.ID,
		Status:       entity.StatusAwaitingInitialApproval,
	}
	if err := srv.applyDetails(ctx, internship, &input.Details); err != nil {
		return nil, err
	}

	if err := srv.internshipRepo.Create(ctx, internship); err != nil {
		srv.log(ctx).Error("Failed to create internship", slog.Any("studentID", student.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create internship")
	}

	internship.Student = *student
	internship.Supervisor = *supervisor

	srv.log(ctx).Info("Internship request created", slog.Any("internshipID", internship.ID))

	return internship, nil
}

// applyDetails validates and copies the editable body of a request onto the
// entity, resolving the organization snapshot when the CNPJ changed.
func (srv *internshipService) applyDetails(ctx context.Context, internship *entity.Internship, details *usecase.InternshipDetailsInput) error {
	if !details.Classification.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown internship classification")
	}
	if !details.WorkSituation.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown work situation")
	}

	period, err := parsePeriod(details.StartDate, details.ExpectedEndDate)
	if err != nil {
		return err
	}

	if internship.Organization.CNPJ != details.OrganizationCnpj {
		organization, err := srv.resolver.FetchByCnpj(ctx, details.OrganizationCnpj)
		if err != nil {
			return errors.Wrap(err, "failed to resolve organization for internship")
		}
		internship.Organization = *organization
	}

	internship.OrganizationSupervisor = entity.OrganizationSupervisor{
		Name:     details.OrganizationSupervisor.Name,
		Email:    details.OrganizationSupervisor.Email,
		Position: details.OrganizationSupervisor.Position,
	}
	internship.Division = details.Division
	internship.Classification = details.Classification
	internship.MonthlyStipend = details.MonthlyStipend
	internship.TransportationAid = details.TransportationAid
	internship.WorkSituation = details.WorkSituation
	internship.WeeklyHours = toWeeklyHours(&details.WeeklyHours)
	internship.Period = period

	internship.Tasks = internship.Tasks[:0]
	for _, task := range details.Tasks {
		internship.Tasks = append(internship.Tasks, entity.Task{
			Name:        task.Name,
			Description: task.Description,
		})
	}

	return nil
}

func parsePeriod(startDate, expectedEndDate string) (entity.Period, error) {
	start, err := time.Parse(internshipDateLayout, startDate)
	if err != nil {
		return entity.Period{}, domainerrors.ErrValidationFailed.WrapMessage("invalid start date")
	}

	end, err := time.Parse(internshipDateLayout, expectedEndDate)
	if err != nil {
		return entity.Period{}, domainerrors.ErrValidationFailed.WrapMessage("invalid expected end date")
	}

	period := entity.Period{StartDate: start, ExpectedEndDate: end}
	if err := period.Validate(); err != nil {
		return entity.Period{}, err
	}

	return period, nil
}

func toWeeklyHours(input *usecase.WeeklyHoursInput) entity.WeeklyHours {
	hours := entity.WeeklyHours{
		MondayToFriday: entity.TimeRange{
			StartTime: input.MondayToFriday.StartTime,
			EndTime:   input.MondayToFriday.EndTime,
		},
	}
	if input.MondayToFridaySecondary != nil {
		hours.MondayToFridaySecondary = &entity.TimeRange{
			StartTime: input.MondayToFridaySecondary.StartTime,
			EndTime:   input.MondayToFridaySecondary.EndTime,
		}
	}
	if input.Saturday != nil {
		hours.Saturday = &entity.TimeRange{
			StartTime: input.Saturday.StartTime,
			EndTime:   input.Saturday.EndTime,
		}
	}

	return hours
}

// transition loads an internship inside a transaction, applies the given
// change and persists it under the optimistic-lock guard. The change callback
// receives the transaction's repository factory for any extra writes that
// must commit atomically with the status.
func (srv *internshipService) transition(
	ctx context.Context,
	internshipID uuid.UUID,
	change func(factory repository.RepositoryFactory, internship *entity.Internship) error,
) (*entity.Internship, error) {
	var internship *entity.Internship
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		internshipRepo := repoFactory.NewInternshipRepository()

		loaded, err := internshipRepo.FindByID(ctx, internshipID)
		if err != nil {
			if errors.Is(err, repository.ErrInternshipNotFound) {
				return domainerrors.ErrInternshipNotFound.WrapMessage("internship not found")
			}

			return errors.Wrap(err, "failed to load internship")
		}

		if err := change(repoFactory, loaded); err != nil {
			return err
		}

		if err := internshipRepo.Update(ctx, loaded); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				return domainerrors.ErrConflict.WrapMessage("internship changed concurrently, reload and retry")
			}

			return errors.Wrap(err, "failed to persist internship")
		}

		internship = loaded

		return nil
	})
	if err != nil {
		return nil, err
	}

	return internship, nil
}

// ApproveInternship passes a fresh request through initial approval and
// issues the start document batch in the same transaction. The student
// notification runs after commit and degrades instead of rolling back.
func (srv *internshipService) ApproveInternship(ctx context.Context, internshipID uuid.UUID) error {
	internship, err := srv.transition(ctx, internshipID, func(factory repository.RepositoryFactory, internship *entity.Internship) error {
		if err := internship.Approve(); err != nil {
			return err
		}

		documents, err := srv.documents.IssueStartDocuments(ctx, factory, internship.ID)
		if err != nil {
			return err
		}
		for _, document := range documents {
			internship.Documents = append(internship.Documents, *document)
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Internship approved", slog.Any("internshipID", internshipID))

	if mailErr := srv.mailer.SendInternshipApproved(ctx, internship); mailErr != nil {
		srv.log(ctx).Error("Approved but failed to notify student", slog.Any("internshipID", internshipID), slog.Any("error", mailErr))

		return domainerrors.NewNotificationFailedError(
			"O estágio foi aprovado com sucesso, mas não foi possível notificar o aluno.",
			mailErr.Error(),
		)
	}

	return nil
}

// RejectInternship sends a request back to the student. The notification runs
// after commit and degrades instead of rolling back.
func (srv *internshipService) RejectInternship(ctx context.Context, input *usecase.RejectInternshipInput) error {
	internship, err := srv.transition(ctx, input.InternshipID, func(_ repository.RepositoryFactory, internship *entity.Internship) error {
		return internship.Reject()
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Internship rejected", slog.Any("internshipID", input.InternshipID))

	if mailErr := srv.mailer.SendInternshipRejected(ctx, internship, input.Reason); mailErr != nil {
		srv.log(ctx).Error("Rejected but failed to notify student", slog.Any("internshipID", input.InternshipID), slog.Any("error", mailErr))

		return domainerrors.NewNotificationFailedError(
			"O estágio foi rejeitado com sucesso, mas não foi possível notificar o aluno.",
			mailErr.Error(),
		)
	}

	return nil
}

// CancelInternship withdraws a pending request. The student is only notified
// when someone else canceled on their behalf; that notification degrades
// instead of rolling back.
func (srv *internshipService) CancelInternship(ctx context.Context, input *usecase.CancelInternshipInput) error {
	internship, err := srv.transition(ctx, input.InternshipID, func(_ repository.RepositoryFactory, internship *entity.Internship) error {
		return internship.Cancel()
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Internship canceled",
		slog.Any("internshipID", input.InternshipID),
		slog.Any("actorRole", input.Actor.Role))

	if input.Actor.Role == entity.RoleStudent {
		return nil
	}

	if mailErr := srv.mailer.SendInternshipCanceled(ctx, internship, input.Reason); mailErr != nil {
		srv.log(ctx).Error("Canceled but failed to notify student", slog.Any("internshipID", input.InternshipID), slog.Any("error", mailErr))

		return domainerrors.NewNotificationFailedError(
			"O estágio foi cancelado com sucesso, mas não foi possível notificar o aluno.",
			mailErr.Error(),
		)
	}

	return nil
}

// CloseInternship ends an active internship abnormally. The notification is
// fire-and-forget: a mail failure is logged and never surfaces to the caller.
func (srv *internshipService) CloseInternship(ctx context.Context, input *usecase.CloseInternshipInput) error {
	internship, err := srv.transition(ctx, input.InternshipID, func(_ repository.RepositoryFactory, internship *entity.Internship) error {
		return internship.Close(input.Reason)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Internship closed", slog.Any("internshipID", input.InternshipID))

	if mailErr := srv.mailer.SendInternshipClosed(ctx, internship, input.Reason); mailErr != nil {
		srv.log(ctx).Warn("Closed but failed to notify student", slog.Any("internshipID", input.InternshipID), slog.Any("error", mailErr))
	}

	return nil
}

// FinishInternship ends an active internship normally and issues the final
// document batch in the same transaction.
func (srv *internshipService) FinishInternship(ctx context.Context, internshipID uuid.UUID) error {
	_, err := srv.transition(ctx, internshipID, func(factory repository.RepositoryFactory, internship *entity.Internship) error {
		if err := internship.Finish(); err != nil {
			return err
		}

		documents, err := srv.documents.IssueFinishedDocuments(ctx, factory, internship.ID)
		if err != nil {
			return err
		}
		for _, document := range documents {
			internship.Documents = append(internship.Documents, *document)
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Internship finished", slog.Any("internshipID", internshipID))

	return nil
}

// ConfirmDocument toggles the confirmation state of one document. When every
// start document of an awaiting internship becomes confirmed the internship
// auto-advances to in_progress. Un-confirming later never rolls the status
// back.
func (srv *internshipService) ConfirmDocument(ctx context.Context, documentID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		internshipRepo := repoFactory.NewInternshipRepository()
		documentRepo := repoFactory.NewDocumentRepository()

		internship, err := internshipRepo.FindByDocumentID(ctx, documentID)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentNotFound) {
				return domainerrors.ErrInternshipDocumentNotFound.WrapMessage("document not found")
			}

			return errors.Wrap(err, "failed to load internship for document")
		}

		var document *entity.InternshipDocument
		for i := range internship.Documents {
			if internship.Documents[i].ID == documentID {
				document = &internship.Documents[i]

				break
			}
		}
		if document == nil {
			return domainerrors.ErrInternshipDocumentNotFound.WrapMessage("document not found on internship")
		}

		document.ToggleConfirmation(time.Now())
		if err := documentRepo.Update(ctx, document); err != nil {
			return errors.Wrap(err, "failed to persist document confirmation")
		}

		if internship.Status == entity.StatusAwaitingInternshipApproval && internship.StartDocumentsConfirmed() {
			if err := internship.BeginProgress(); err != nil {
				return err
			}
			if err := internshipRepo.Update(ctx, internship); err != nil {
				if errors.Is(err, repository.ErrVersionConflict) {
					return domainerrors.ErrConflict.WrapMessage("internship changed concurrently, reload and retry")
				}

				return errors.Wrap(err, "failed to advance internship to in progress")
			}

			srv.log(ctx).Info("All start documents confirmed, internship now in progress",
				slog.Any("internshipID", internship.ID))
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to confirm document", slog.Any("documentID", documentID), slog.Any("error", err))

		return err
	}

	return nil
}

// UpdateInternship edits the body of a request still open to changes. Only
// supervisors may edit, and only before initial approval or after a
// rejection.
func (srv *internshipService) UpdateInternship(ctx context.Context, input *usecase.UpdateInternshipInput) (*entity.Internship, error) {
	if input.Actor.Role != entity.RoleSupervisor {
		return nil, domainerrors.ErrForbidden.WrapMessage("only supervisors may edit internships")
	}

	internship, err := srv.transition(ctx, input.InternshipID, func(_ repository.RepositoryFactory, internship *entity.Internship) error {
		if !internship.CanEditDetails() {
			return domainerrors.ErrInternshipNotEditable.WrapMessage("internship is past the editable stages")
		}

		return srv.applyDetails(ctx, internship, &input.Details)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Internship updated", slog.Any("internshipID", input.InternshipID))

	return internship, nil
}

// uploadGates maps each upload stage to the only status accepting it.
var uploadGates = map[entity.DocumentType]entity.InternshipStatus{
	entity.DocumentTypeStart:    entity.StatusAwaitingInternshipApproval,
	entity.DocumentTypeProgress: entity.StatusInProgress,
	entity.DocumentTypeFinished: entity.StatusFinished,
}

// UploadStartDoc forwards an uploaded start document to the academic supervisor.
func (srv *internshipService) UploadStartDoc(ctx context.Context, input *usecase.UploadDocumentInput) error {
	return srv.uploadDocument(ctx, input, entity.DocumentTypeStart)
}

// UploadProgressDoc forwards an uploaded progress report to the academic supervisor.
func (srv *internshipService) UploadProgressDoc(ctx context.Context, input *usecase.UploadDocumentInput) error {
	return srv.uploadDocument(ctx, input, entity.DocumentTypeProgress)
}

// UploadEndDoc forwards an uploaded final document to the academic supervisor.
func (srv *internshipService) UploadEndDoc(ctx context.Context, input *usecase.UploadDocumentInput) error {
	return srv.uploadDocument(ctx, input, entity.DocumentTypeFinished)
}

// uploadDocument checks the stage gate and e-mails the file to the academic
// supervisor. The internship status never changes here.
func (srv *internshipService) uploadDocument(ctx context.Context, input *usecase.UploadDocumentInput, docType entity.DocumentType) error {
	internship, err := srv.GetInternshipByID(ctx, input.InternshipID)
	if err != nil {
		return err
	}

	if internship.Status != uploadGates[docType] {
		return domainerrors.ErrInvalidStatusTransition.WrapMessage("internship does not accept this document stage")
	}

	attachment := service.DocumentAttachment{
		Filename:    input.Filename,
		ContentType: input.ContentType,
		Content:     input.Content,
	}
	if err := srv.mailer.SendInternshipDocument(ctx, internship, docType, attachment); err != nil {
		srv.log(ctx).Error("Failed to forward internship document",
			slog.Any("internshipID", input.InternshipID),
			slog.String("type", string(docType)),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to forward internship document")
	}

	srv.log(ctx).Info("Internship document forwarded",
		slog.Any("internshipID", input.InternshipID),
		slog.String("type", string(docType)))

	return nil
}

// GetInternshipByID retrieves one internship with its associations loaded.
func (srv *internshipService) GetInternshipByID(ctx context.Context, internshipID uuid.UUID) (*entity.Internship, error) {
	internship, err := srv.internshipRepo.FindByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, repository.ErrInternshipNotFound) {
			return nil, domainerrors.ErrInternshipNotFound.WrapMessage("internship not found")
		}

		return nil, errors.Wrap(err, "failed to load internship")
	}

	return internship, nil
}

// FindInternshipsByStudent retrieves every internship of a student, newest first.
func (srv *internshipService) FindInternshipsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Internship, error) {
	internships, err := srv.internshipRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load student internships")
	}

	return internships, nil
}

// SearchInternships matches the term over people and company fields,
// paginated with clamped limits.
func (srv *internshipService) SearchInternships(ctx context.Context, input *usecase.SearchInternshipsInput) ([]*entity.Internship, error) {
	limit, offset := clampPagination(input.Limit, input.Offset)

	internships, err := srv.internshipRepo.Search(ctx, repository.SearchInternshipsFilter{
		Term:   input.Term,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search internships")
	}

	return internships, nil
}
