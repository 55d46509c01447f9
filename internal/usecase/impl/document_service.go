// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "estagiohub/internal/delivery/context"
	"estagiohub/internal/domain/entity"
	"estagiohub/internal/domain/repository"
	"estagiohub/internal/usecase"
)

// Institutional document names, one batch per lifecycle stage. The names are
// fixed by the institution's internship regulations.
var (
	startDocumentNames    = []string{"Plano de Atividades - Ficha de Início"}
	progressDocumentNames = []string{"Relatório de Progresso"}
	finishedDocumentNames = []string{"Avaliação de Desempenho", "Relatório Final"}
)

// documentService implements the DocumentUsecase interface.
type documentService struct {
	logger *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{logger: params.Logger}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueStartDocuments creates the document records requested when a request
// passes initial approval.
func (srv *documentService) IssueStartDocuments(ctx context.Context, factory repository.RepositoryFactory, internshipID uuid.UUID) ([]*entity.InternshipDocument, error) {
	return srv.issueBatch(ctx, factory, internshipID, entity.DocumentTypeStart, startDocumentNames)
}

// IssueProgressDocuments creates the midway progress report records.
func (srv *documentService) IssueProgressDocuments(ctx context.Context, factory repository.RepositoryFactory, internshipID uuid.UUID) ([]*entity.InternshipDocument, error) {
	return srv.issueBatch(ctx, factory, internshipID, entity.DocumentTypeProgress, progressDocumentNames)
}

// IssueFinishedDocuments creates the end-of-internship document records.
func (srv *documentService) IssueFinishedDocuments(ctx context.Context, factory repository.RepositoryFactory, internshipID uuid.UUID) ([]*entity.InternshipDocument, error) {
	return srv.issueBatch(ctx, factory, internshipID, entity.DocumentTypeFinished, finishedDocumentNames)
}

// issueBatch builds and persists one batch of documents. The insert happens
// through the caller's repository factory so it shares the caller's
// transaction and stays all-or-nothing with the surrounding status change.
func (srv *documentService) issueBatch(
	ctx context.Context,
	factory repository.RepositoryFactory,
	internshipID uuid.UUID,
	docType entity.DocumentType,
	names []string,
) ([]*entity.InternshipDocument, error) {
	documents := make([]*entity.InternshipDocument, 0, len(names))
	for _, name := range names {
		documents = append(documents, &entity.InternshipDocument{
			InternshipID: internshipID,
			Name:         name,
			Type:         docType,
		})
	}

	documentRepo := factory.NewDocumentRepository()
	if err := documentRepo.CreateBatch(ctx, documents); err != nil {
		srv.log(ctx).Error("Failed to issue document batch",
			slog.Any("internshipID", internshipID),
			slog.String("type", string(docType)),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue document batch")
	}

	srv.log(ctx).Debug("Issued document batch",
		slog.Any("internshipID", internshipID),
		slog.String("type", string(docType)),
		slog.Int("count", len(documents)))

	return documents, nil
}
