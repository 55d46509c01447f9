// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"estagiohub/internal/domain/entity"
)

// ErrDocumentNotFound is returned when an internship document is not found.
var ErrDocumentNotFound = errors.New("internship document not found")

// DocumentRepository defines the standard operations for internship document persistence.
type DocumentRepository interface {
	// CreateBatch persists a batch of documents. The insert is all-or-nothing:
	// when any row fails, none may persist. Callers run it through the
	// TransactionManager.
	CreateBatch(ctx context.Context, documents []*entity.InternshipDocument) error

	// FindByID retrieves a single document record.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InternshipDocument, error)

	// Update persists the confirmation state of a document.
	Update(ctx context.Context, document *entity.InternshipDocument) error
}
