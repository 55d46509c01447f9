// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "estagiohub/internal/domain/errors"
)

// InternshipStatus represents where an internship sits in its lifecycle.
type InternshipStatus string

const (
	// StatusAwaitingInitialApproval is the initial status of a freshly created request.
	StatusAwaitingInitialApproval InternshipStatus = "awaiting_initial_approval"
	// StatusAwaitingInternshipApproval means the supervisor validated the basic
	// information and the start documents were requested.
	StatusAwaitingInternshipApproval InternshipStatus = "awaiting_internship_approval"
	// StatusInProgress covers the active internship period.
	StatusInProgress InternshipStatus = "in_progress"
	// StatusFinished means the internship reached its expected end.
	StatusFinished InternshipStatus = "finished"
	// StatusRejected means the request was rejected and the student must review
	// and fix the submitted information.
	StatusRejected InternshipStatus = "rejected"
	// StatusClosed means the internship ended abnormally (resignation,
	// dismissal and the like). A close reason is always recorded.
	StatusClosed InternshipStatus = "closed"
	// StatusCanceled means the student or supervisor canceled the request.
	StatusCanceled InternshipStatus = "canceled"
)

// String returns the string representation of the status.
func (s InternshipStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s InternshipStatus) IsValid() bool {
	switch s {
	case StatusAwaitingInitialApproval, StatusAwaitingInternshipApproval,
		StatusInProgress, StatusFinished, StatusRejected, StatusClosed, StatusCanceled:
		return true
	default:
		return false
	}
}

// CountsAsInterning reports whether an internship in this status still counts
// as the student being currently engaged. Students with an internship in such
// a status cannot open a new request.
func (s InternshipStatus) CountsAsInterning() bool {
	switch s {
	case StatusCanceled, StatusClosed, StatusRejected, StatusFinished:
		return false
	default:
		return true
	}
}

// Classification tells whether the internship is part of the mandatory curriculum.
type Classification string

const (
	// ClassificationMandatory marks a curriculum-required internship.
	ClassificationMandatory Classification = "mandatory"
	// ClassificationNonMandatory marks an elective internship.
	ClassificationNonMandatory Classification = "non_mandatory"
)

// IsValid checks if the classification is a known value.
func (c Classification) IsValid() bool {
	return c == ClassificationMandatory || c == ClassificationNonMandatory
}

// WorkSituation tells how the student attends the internship.
type WorkSituation string

const (
	// WorkSituationOnsite means fully in person.
	WorkSituationOnsite WorkSituation = "onsite"
	// WorkSituationHybrid means partly in person, partly remote.
	WorkSituationHybrid WorkSituation = "hybrid"
	// WorkSituationRemote means fully remote.
	WorkSituationRemote WorkSituation = "remote"
)

// IsValid checks if the work situation is a known value.
func (w WorkSituation) IsValid() bool {
	switch w {
	case WorkSituationOnsite, WorkSituationHybrid, WorkSituationRemote:
		return true
	default:
		return false
	}
}

// TimeRange is a daily working window in minutes from midnight.
type TimeRange struct {
	StartTime int // Minutes from midnight, e.g. 480 for 08:00.
	EndTime   int // Minutes from midnight, must be greater than StartTime.
}

// WeeklyHours describes the recurring weekly working windows of an internship.
type WeeklyHours struct {
	MondayToFriday          TimeRange  // The primary weekday window.
	MondayToFridaySecondary *TimeRange // An optional second weekday window (split shifts).
	Saturday                *TimeRange // An optional Saturday window.
}

// Period bounds the internship in calendar time.
type Period struct {
	StartDate       time.Time // First day of the internship.
	ExpectedEndDate time.Time // Expected last day. Must be strictly after StartDate.
}

// Validate checks the period ordering constraint.
func (p Period) Validate() error {
	if !p.ExpectedEndDate.After(p.StartDate) {
		return domainerrors.ErrInvalidPeriod
	}

	return nil
}

// Task is one activity the student performs during the internship.
type Task struct {
	Name        string // Short activity name.
	Description string // What the activity consists of.
}

// OrganizationSupervisor is the contact person at the host company. It is a
// snapshot taken at creation time, not a live reference.
type OrganizationSupervisor struct {
	Name     string
	Email    string
	Position string
}

// Internship is the central entity of the system: the tracked engagement
// between a student and a host organization, supervised by an academic
// supervisor. Its status moves exclusively through the transition methods
// below, which guard against invalid source statuses.
type Internship struct {
	ID                     uuid.UUID              // The Global Unique Identifier for the internship.
	StudentID              uuid.UUID              // The student doing the internship.
	Student                Student                // Loaded student profile.
	SupervisorID           uuid.UUID              // The academic supervisor responsible for it.
	Supervisor             Supervisor             // Loaded supervisor profile.
	Status                 InternshipStatus       // Current lifecycle status.
	Organization           Organization           // Snapshot of the host organization at creation time.
	OrganizationSupervisor OrganizationSupervisor // Contact person at the host company.
	Division               string                 // Division/department inside the organization.
	Classification         Classification         // Mandatory or elective.
	MonthlyStipend         float64                // Monthly stipend in BRL, non-negative.
	TransportationAid      float64                // Transportation aid in BRL, non-negative.
	WorkSituation          WorkSituation          // Onsite, hybrid or remote.
	WeeklyHours            WeeklyHours            // Recurring weekly working windows.
	Period                 Period                 // Start and expected end dates.
	Tasks                  []Task                 // Ordered list of planned activities.
	CloseReason            *string                // Why the internship was closed. Only set while Status is closed.
	Documents              []InternshipDocument   // Documents issued for this internship.
	Version                int64                  // Optimistic-lock version, bumped on every status write.
	CreatedAt              time.Time              // Timestamp of when the request was created.
	UpdatedAt              time.Time              // Timestamp of the last modification.
}

// setStatus applies a new status and keeps the close reason consistent with
// it: the reason only survives while the internship is closed.
func (i *Internship) setStatus(status InternshipStatus) {
	i.Status = status
	if status != StatusClosed {
		i.CloseReason = nil
	}
}

// Approve moves a freshly created request to awaiting internship approval.
// The start documents are requested at this point.
func (i *Internship) Approve() error {
	if i.Status != StatusAwaitingInitialApproval {
		return domainerrors.ErrInvalidStatusTransition
	}

	i.setStatus(StatusAwaitingInternshipApproval)

	return nil
}

// Reject marks the request as rejected so the student can review and fix it.
func (i *Internship) Reject() error {
	if i.Status != StatusAwaitingInitialApproval && i.Status != StatusAwaitingInternshipApproval {
		return domainerrors.ErrInvalidStatusTransition
	}

	i.setStatus(StatusRejected)

	return nil
}

// Cancel withdraws a request that has not started yet.
func (i *Internship) Cancel() error {
	switch i.Status {
	case StatusAwaitingInitialApproval, StatusAwaitingInternshipApproval, StatusRejected:
		i.setStatus(StatusCanceled)

		return nil
	default:
		return domainerrors.ErrInvalidStatusTransition
	}
}

// BeginProgress starts the active period once every start document is confirmed.
func (i *Internship) BeginProgress() error {
	if i.Status != StatusAwaitingInternshipApproval {
		return domainerrors.ErrInvalidStatusTransition
	}

	i.setStatus(StatusInProgress)

	return nil
}

// Finish ends an active internship normally.
func (i *Internship) Finish() error {
	if i.Status != StatusInProgress {
		return domainerrors.ErrInvalidStatusTransition
	}

	i.setStatus(StatusFinished)

	return nil
}

// Close ends an active internship abnormally, recording the reason.
func (i *Internship) Close(reason string) error {
	if i.Status != StatusInProgress {
		return domainerrors.ErrInvalidStatusTransition
	}

	if reason == "" {
		return domainerrors.ErrCloseReasonRequired
	}

	i.setStatus(StatusClosed)
	i.CloseReason = &reason

	return nil
}

// CanEditDetails reports whether general field edits are still permitted.
// Edits are only allowed before the initial approval or after a rejection.
func (i *Internship) CanEditDetails() bool {
	return i.Status == StatusAwaitingInitialApproval || i.Status == StatusRejected
}

// StartDocumentsConfirmed reports whether every start-type document has been
// confirmed. It is false when no start document exists yet.
func (i *Internship) StartDocumentsConfirmed() bool {
	found := false
	for _, doc := range i.Documents {
		if doc.Type != DocumentTypeStart {
			continue
		}
		if doc.ConfirmedAt == nil {
			return false
		}
		found = true
	}

	return found
}
