package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estagiohub/internal/domain/entity"
	mockRepo "estagiohub/internal/mocks/repository"
	"estagiohub/internal/usecase"
)

func createTestDocumentService(t *testing.T) (usecase.DocumentUsecase, *mockRepo.MockRepositoryFactory, *mockRepo.MockDocumentRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewDocumentService(DocumentServiceParams{Logger: logger})

	factory := mockRepo.NewMockRepositoryFactory(t)
	documentRepo := mockRepo.NewMockDocumentRepository(t)
	factory.EXPECT().NewDocumentRepository().Return(documentRepo)

	return service, factory, documentRepo
}

func TestDocumentService_IssueBatches(t *testing.T) {
	tests := []struct {
		name      string
		issue     func(ctx context.Context, srv usecase.DocumentUsecase, factory *mockRepo.MockRepositoryFactory, id uuid.UUID) ([]*entity.InternshipDocument, error)
		wantType  entity.DocumentType
		wantNames []string
	}{
		{
			name: "start",
			issue: func(ctx context.Context, srv usecase.DocumentUsecase, factory *mockRepo.MockRepositoryFactory, id uuid.UUID) ([]*entity.InternshipDocument, error) {
				return srv.IssueStartDocuments(ctx, factory, id)
			},
			wantType:  entity.DocumentTypeStart,
			wantNames: []string{"Plano de Atividades - Ficha de Início"},
		},
		{
			name: "progress",
			issue: func(ctx context.Context, srv usecase.DocumentUsecase, factory *mockRepo.MockRepositoryFactory, id uuid.UUID) ([]*entity.InternshipDocument, error) {
				return srv.IssueProgressDocuments(ctx, factory, id)
			},
			wantType:  entity.DocumentTypeProgress,
			wantNames: []string{"Relatório de Progresso"},
		},
		{
			name: "finished",
			issue: func(ctx context.Context, srv usecase.DocumentUsecase, factory *mockRepo.MockRepositoryFactory, id uuid.UUID) ([]*entity.InternshipDocument, error) {
				return srv.IssueFinishedDocuments(ctx, factory, id)
			},
			wantType:  entity.DocumentTypeFinished,
			wantNames: []string{"Avaliação de Desempenho", "Relatório Final"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, factory, documentRepo := createTestDocumentService(t)
			ctx := context.Background()
			internshipID := uuid.New()

			documentRepo.EXPECT().
				CreateBatch(ctx, mock.AnythingOfType("[]*entity.InternshipDocument")).
				Return(nil)

			documents, err := tt.issue(ctx, service, factory, internshipID)

			require.NoError(t, err)
			require.Len(t, documents, len(tt.wantNames))
			for i, document := range documents {
				assert.Equal(t, tt.wantNames[i], document.Name)
				assert.Equal(t, tt.wantType, document.Type)
				assert.Equal(t, internshipID, document.InternshipID)
				assert.Nil(t, document.ConfirmedAt)
			}
		})
	}
}

func TestDocumentService_IssueBatch_PropagatesInsertFailure(t *testing.T) {
	service, factory, documentRepo := createTestDocumentService(t)
	ctx := context.Background()

	insertErr := errors.New("insert failed")
	documentRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.InternshipDocument")).
		Return(insertErr)

	documents, err := service.IssueStartDocuments(ctx, factory, uuid.New())

	assert.Nil(t, documents)
	assert.True(t, errors.Is(err, insertErr))
}
