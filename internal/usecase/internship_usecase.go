// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"estagiohub/internal/domain/entity"
)

// --- Input DTOs ---

// Actor identifies who is performing an operation, as resolved by the auth
// middleware. Authorization decisions inside the workflow depend on it.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TimeRangeInput carries a daily working window in minutes from midnight.
type TimeRangeInput struct {
	StartTime int
	EndTime   int
}

// WeeklyHoursInput carries the recurring weekly working windows.
type WeeklyHoursInput struct {
	MondayToFriday          TimeRangeInput
	MondayToFridaySecondary *TimeRangeInput
	Saturday                *TimeRangeInput
}

// TaskInput carries one planned activity.
type TaskInput struct {
	Name        string
	Description string
}

// OrganizationSupervisorInput carries the contact person at the host company.
type OrganizationSupervisorInput struct {
	Name     string
	Email    string
	Position string
}

// InternshipDetailsInput carries the editable body of an internship request.
// It is shared between creation and update.
type InternshipDetailsInput struct {
	OrganizationCnpj       string
	OrganizationSupervisor OrganizationSupervisorInput
	Division               string
	Classification         entity.Classification
	MonthlyStipend         float64
	TransportationAid      float64
	WorkSituation          entity.WorkSituation
	WeeklyHours            WeeklyHoursInput
	StartDate              string // ISO date, e.g. "2026-03-01".
	ExpectedEndDate        string // ISO date, must be after StartDate.
	Tasks                  []TaskInput
}

// StartInternshipInput defines the data required to open a new request.
type StartInternshipInput struct {
	StudentID    uuid.UUID
	SupervisorID uuid.UUID
	Details      InternshipDetailsInput
}

// CancelInternshipInput withdraws a pending request.
type CancelInternshipInput struct {
	InternshipID uuid.UUID
	Reason       string
	Actor        Actor
}

// RejectInternshipInput sends a request back to the student with a reason.
type RejectInternshipInput struct {
	InternshipID uuid.UUID
	Reason       string
}

// CloseInternshipInput ends an active internship abnormally.
type CloseInternshipInput struct {
	InternshipID uuid.UUID
	Reason       string
}

// UpdateInternshipInput edits the body of a request still open to changes.
type UpdateInternshipInput struct {
	InternshipID uuid.UUID
	Details      InternshipDetailsInput
	Actor        Actor
}

// UploadDocumentInput forwards an uploaded internship document to the
// academic supervisor by e-mail.
type UploadDocumentInput struct {
	InternshipID uuid.UUID
	Filename     string
	ContentType  string
	Content      []byte
}

// SearchInternshipsInput narrows and paginates an internship search.
type SearchInternshipsInput struct {
	Term   string
	Limit  int
	Offset int
}

// InternshipUsecase defines the interface for the internship workflow.
// Every status transition is guarded: an operation invoked from a source
// status outside its allowed set fails without touching persisted state.
type InternshipUsecase interface {
	StartNewInternship(ctx context.Context, input *StartInternshipInput) (*entity.Internship, error)
	CancelInternship(ctx context.Context, input *CancelInternshipInput) error
	ApproveInternship(ctx context.Context, internshipID uuid.UUID) error
	RejectInternship(ctx context.Context, input *RejectInternshipInput) error
	CloseInternship(ctx context.Context, input *CloseInternshipInput) error
	FinishInternship(ctx context.Context, internshipID uuid.UUID) error

	// ConfirmDocument toggles the confirmation state of one document. When
	// every start document of an awaiting internship becomes confirmed, the
	// internship auto-advances to in_progress. Un-confirming afterwards does
	// not roll the status back.
	ConfirmDocument(ctx context.Context, documentID uuid.UUID) error

	UpdateInternship(ctx context.Context, input *UpdateInternshipInput) (*entity.Internship, error)

	UploadStartDoc(ctx context.Context, input *UploadDocumentInput) error
	UploadProgressDoc(ctx context.Context, input *UploadDocumentInput) error
	UploadEndDoc(ctx context.Context, input *UploadDocumentInput) error

	GetInternshipByID(ctx context.Context, internshipID uuid.UUID) (*entity.Internship, error)
	FindInternshipsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Internship, error)
	SearchInternships(ctx context.Context, input *SearchInternshipsInput) ([]*entity.Internship, error)
}
