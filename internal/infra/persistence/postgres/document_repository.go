package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/repository"
	"estagiohub/internal/infra/persistence/model"
)

// documentRepository implements the domain's DocumentRepository interface using GORM.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

// CreateBatch persists a batch of documents in a single insert so the batch is
// all-or-nothing even outside an explicit transaction.
func (repo *documentRepository) CreateBatch(ctx context.Context, documents []*entity.InternshipDocument) error {
	if len(documents) == 0 {
		return nil
	}

	documentMs := make([]model.InternshipDocumentModel, 0, len(documents))
	for _, document := range documents {
		documentMs = append(documentMs, *fromDocumentDomain(document))
	}

	if err := repo.db.WithContext(ctx).Create(&documentMs).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInternshipNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create internship documents")
	}

	for i, document := range documents {
		document.ID = documentMs[i].ID
		document.CreatedAt = documentMs[i].CreatedAt
	}

	return nil
}

// FindByID retrieves a single document record.
func (repo *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InternshipDocument, error) {
	var documentM model.InternshipDocumentModel
	if err := repo.db.WithContext(ctx).First(&documentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find internship document")
	}

	return toDocumentDomain(&documentM), nil
}

// Update persists the confirmation state of a document.
func (repo *documentRepository) Update(ctx context.Context, document *entity.InternshipDocument) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InternshipDocumentModel{}).
		Where("id = ?", document.ID).
		Update("confirmed_at", document.ConfirmedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update internship document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDocumentDomain(data *model.InternshipDocumentModel) *entity.InternshipDocument {
	if data == nil {
		return nil
	}

	return &entity.InternshipDocument{
		ID:           data.ID,
		InternshipID: data.InternshipID,
		Name:         data.Name,
		Type:         entity.DocumentType(data.Type),
		ConfirmedAt:  data.ConfirmedAt,
		CreatedAt:    data.CreatedAt,
	}
}

func fromDocumentDomain(data *entity.InternshipDocument) *model.InternshipDocumentModel {
	if data == nil {
		return nil
	}

	return &model.InternshipDocumentModel{
		ID:           data.ID,
		InternshipID: data.InternshipID,
		Name:         data.Name,
		Type:         string(data.Type),
		ConfirmedAt:  data.ConfirmedAt,
	}
}
