package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "estagiohub/internal/domain/errors"
)

func allStatuses() []InternshipStatus {
	return []InternshipStatus{
		StatusAwaitingInitialApproval,
		StatusAwaitingInternshipApproval,
		StatusInProgress,
		StatusFinished,
		StatusRejected,
		StatusClosed,
		StatusCanceled,
	}
}

func TestInternshipStatus_CountsAsInterning(t *testing.T) {
	engaged := []InternshipStatus{
		StatusAwaitingInitialApproval,
		StatusAwaitingInternshipApproval,
		StatusInProgress,
	}
	for _, status := range engaged {
		assert.True(t, status.CountsAsInterning(), "status %s should block a new request", status)
	}

	released := []InternshipStatus{StatusFinished, StatusRejected, StatusClosed, StatusCanceled}
	for _, status := range released {
		assert.False(t, status.CountsAsInterning(), "status %s should not block a new request", status)
	}
}

func TestInternship_TransitionGuards(t *testing.T) {
	testCases := []struct {
		name    string
		apply   func(i *Internship) error
		allowed []InternshipStatus
		target  InternshipStatus
	}{
		{
			name:    "approve",
			apply:   func(i *Internship) error { return i.Approve() },
			allowed: []InternshipStatus{StatusAwaitingInitialApproval},
			target:  StatusAwaitingInternshipApproval,
		},
		{
			name:    "reject",
			apply:   func(i *Internship) error { return i.Reject() },
			allowed: []InternshipStatus{StatusAwaitingInitialApproval, StatusAwaitingInternshipApproval},
			target:  StatusRejected,
		},
		{
			name:    "cancel",
			apply:   func(i *Internship) error { return i.Cancel() },
			allowed: []InternshipStatus{StatusAwaitingInitialApproval, StatusAwaitingInternshipApproval, StatusRejected},
			target:  StatusCanceled,
		},
		{
			name:    "begin progress",
			apply:   func(i *Internship) error { return i.BeginProgress() },
			allowed: []InternshipStatus{StatusAwaitingInternshipApproval},
			target:  StatusInProgress,
		},
		{
			name:    "finish",
			apply:   func(i *Internship) error { return i.Finish() },
			allowed: []InternshipStatus{StatusInProgress},
			target:  StatusFinished,
		},
		{
			name:    "close",
			apply:   func(i *Internship) error { return i.Close("desistência do aluno") },
			allowed: []InternshipStatus{StatusInProgress},
			target:  StatusClosed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			allowed := make(map[InternshipStatus]bool, len(tc.allowed))
			for _, status := range tc.allowed {
				allowed[status] = true
			}

			for _, source := range allStatuses() {
				internship := &Internship{Status: source}
				err := tc.apply(internship)

				if allowed[source] {
					require.NoError(t, err, "expected %s from %s to succeed", tc.name, source)
					assert.Equal(t, tc.target, internship.Status)
				} else {
					// The status must be left untouched on a refused transition.
					assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
					assert.Equal(t, source, internship.Status)
				}
			}
		})
	}
}

func TestInternship_CloseRequiresReason(t *testing.T) {
	internship := &Internship{Status: StatusInProgress}

	err := internship.Close("")
	assert.ErrorIs(t, err, domainerrors.ErrCloseReasonRequired)
	assert.Equal(t, StatusInProgress, internship.Status)

	err = internship.Close("demissão")
	require.NoError(t, err)
	require.NotNil(t, internship.CloseReason)
	assert.Equal(t, "demissão", *internship.CloseReason)
}

func TestInternship_CloseReasonClearedOnTransition(t *testing.T) {
	// A stale close reason must not survive any move to a non-closed status.
	stale := "problema resolvido"
	internship := &Internship{Status: StatusRejected, CloseReason: &stale}

	require.NoError(t, internship.Cancel())
	assert.Nil(t, internship.CloseReason)

	internship = &Internship{Status: StatusInProgress, CloseReason: &stale}
	require.NoError(t, internship.Finish())
	assert.Nil(t, internship.CloseReason)
}

func TestInternship_CanEditDetails(t *testing.T) {
	for _, source := range allStatuses() {
		internship := &Internship{Status: source}
		editable := source == StatusAwaitingInitialApproval || source == StatusRejected
		assert.Equal(t, editable, internship.CanEditDetails(), "status %s", source)
	}
}

func TestInternship_StartDocumentsConfirmed(t *testing.T) {
	now := time.Now()

	// No documents issued yet.
	internship := &Internship{Status: StatusAwaitingInternshipApproval}
	assert.False(t, internship.StartDocumentsConfirmed())

	// One pending start document.
	internship.Documents = []InternshipDocument{
		{Type: DocumentTypeStart, Name: "Plano de Atividades - Ficha de Início"},
	}
	assert.False(t, internship.StartDocumentsConfirmed())

	// Confirmed start document alongside an unrelated pending progress document.
	internship.Documents[0].ConfirmedAt = &now
	internship.Documents = append(internship.Documents, InternshipDocument{
		Type: DocumentTypeProgress,
		Name: "Relatório de Progresso",
	})
	assert.True(t, internship.StartDocumentsConfirmed())
}

func TestPeriod_Validate(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, Period{StartDate: start, ExpectedEndDate: start.AddDate(0, 6, 0)}.Validate())
	assert.ErrorIs(t, Period{StartDate: start, ExpectedEndDate: start}.Validate(), domainerrors.ErrInvalidPeriod)
	assert.ErrorIs(t, Period{StartDate: start, ExpectedEndDate: start.AddDate(0, -1, 0)}.Validate(), domainerrors.ErrInvalidPeriod)
}
