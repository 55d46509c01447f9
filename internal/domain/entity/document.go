// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType tells at which lifecycle stage a document is required.
type DocumentType string

const (
	// DocumentTypeStart documents are requested when the request passes initial approval.
	DocumentTypeStart DocumentType = "start"
	// DocumentTypeProgress documents are requested midway through the internship.
	DocumentTypeProgress DocumentType = "progress"
	// DocumentTypeFinished documents are requested when the internship ends.
	DocumentTypeFinished DocumentType = "finished"
)

// IsValid checks if the document type is a known value.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeStart, DocumentTypeProgress, DocumentTypeFinished:
		return true
	default:
		return false
	}
}

// InternshipDocument is one required document of an internship. It is owned by
// exactly one internship and removed together with it.
type InternshipDocument struct {
	ID           uuid.UUID    // The unique ID for this document record.
	InternshipID uuid.UUID    // The internship this document belongs to.
	Name         string       // The institutional document name, e.g. "Relatório de Progresso".
	Type         DocumentType // The lifecycle stage this document belongs to.
	ConfirmedAt  *time.Time   // When the supervisor confirmed receipt. Nil while pending.
	CreatedAt    time.Time    // Timestamp of when the document record was issued.
}

// ToggleConfirmation flips the confirmation state: a pending document becomes
// confirmed at the given time, a confirmed one is reopened.
func (d *InternshipDocument) ToggleConfirmation(now time.Time) {
	if d.ConfirmedAt == nil {
		d.ConfirmedAt = &now

		return
	}

	d.ConfirmedAt = nil
}
