// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"estagiohub/internal/domain/entity"
)

// Domain-specific errors for internship persistence.
var (
	// ErrInternshipNotFound is returned when an internship is not found.
	ErrInternshipNotFound = errors.New("internship not found")
	// ErrVersionConflict is returned when an optimistic-lock check fails,
	// meaning the internship changed between read and write.
	ErrVersionConflict = errors.New("internship was modified concurrently")
)

// SearchInternshipsFilter narrows and paginates an internship search.
type SearchInternshipsFilter struct {
	// Term is matched as a case-insensitive substring against student
	// name/e-mail, supervisor name/e-mail, organization supervisor
	// name/e-mail, monthly stipend and division.
	Term   string
	Limit  int
	Offset int
}

// InternshipRepository defines the standard operations for internship persistence.
type InternshipRepository interface {
	// Create persists a new internship request with its organization snapshot.
	Create(ctx context.Context, internship *entity.Internship) error

	// FindByID retrieves an internship with its student, supervisor and
	// documents loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Internship, error)

	// FindByDocumentID retrieves the internship owning the given document.
	FindByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Internship, error)

	// FindByStudentID retrieves every internship of a student, newest first.
	FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]*entity.Internship, error)

	// Update persists the current state of an internship. The write is
	// guarded by the entity's Version: ErrVersionConflict is returned when
	// the stored row no longer carries the version the entity was read at.
	Update(ctx context.Context, internship *entity.Internship) error

	// HasActiveInternship reports whether the student currently counts as
	// interning, i.e. owns an internship outside the released statuses.
	HasActiveInternship(ctx context.Context, studentID uuid.UUID) (bool, error)

	// Search returns internships matching the filter term, paginated.
	Search(ctx context.Context, filter SearchInternshipsFilter) ([]*entity.Internship, error)
}
