package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpaqueTokenGenerator_NewAccessToken(t *testing.T) {
	generator := NewOpaqueTokenGenerator(24 * time.Hour)

	token := generator.NewAccessToken()
	_, err := uuid.Parse(token)
	assert.NoError(t, err, "access tokens are UUID strings")

	// Two issues never collide.
	assert.NotEqual(t, token, generator.NewAccessToken())
}

func TestOpaqueTokenGenerator_NewResetPasswordToken(t *testing.T) {
	generator := NewOpaqueTokenGenerator(24 * time.Hour)

	code, err := generator.NewResetPasswordToken()
	require.NoError(t, err)
	assert.Len(t, code, 64, "32 random bytes, hex encoded")
	assert.Regexp(t, "^[0-9a-f]+$", code)

	other, err := generator.NewResetPasswordToken()
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestOpaqueTokenGenerator_TTL(t *testing.T) {
	generator := NewOpaqueTokenGenerator(24 * time.Hour)
	assert.Equal(t, 24*time.Hour, generator.TTL())
}
