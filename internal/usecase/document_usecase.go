// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"estagiohub/internal/domain/entity"
	"estagiohub/internal/domain/repository"
)

// DocumentUsecase issues the required document batches of each internship
// lifecycle stage. Each batch insert is all-or-nothing.
type DocumentUsecase interface {
	// IssueStartDocuments creates the document records requested when a
	// request passes initial approval.
	IssueStartDocuments(ctx context.Context, factory repository.RepositoryFactory, internshipID uuid.UUID) ([]*entity.InternshipDocument, error)

	// IssueProgressDocuments creates the midway progress report records.
	IssueProgressDocuments(ctx context.Context, factory repository.RepositoryFactory, internshipID uuid.UUID) ([]*entity.InternshipDocument, error)

	// IssueFinishedDocuments creates the end-of-internship document records.
	IssueFinishedDocuments(ctx context.Context, factory repository.RepositoryFactory, internshipID uuid.UUID) ([]*entity.InternshipDocument, error)
}
