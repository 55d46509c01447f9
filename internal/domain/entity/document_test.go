package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternshipDocument_ToggleConfirmation(t *testing.T) {
	doc := &InternshipDocument{Name: "Relatório Final", Type: DocumentTypeFinished}
	now := time.Now()

	// First toggle confirms.
	doc.ToggleConfirmation(now)
	require.NotNil(t, doc.ConfirmedAt)
	assert.Equal(t, now, *doc.ConfirmedAt)

	// Second toggle reopens, back to the original pending state.
	doc.ToggleConfirmation(now.Add(time.Minute))
	assert.Nil(t, doc.ConfirmedAt)
}

func TestDocumentType_IsValid(t *testing.T) {
	assert.True(t, DocumentTypeStart.IsValid())
	assert.True(t, DocumentTypeProgress.IsValid())
	assert.True(t, DocumentTypeFinished.IsValid())
	assert.False(t, DocumentType("midterm").IsValid())
}
