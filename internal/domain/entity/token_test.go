package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessToken_IsValid(t *testing.T) {
	now := time.Now()

	token := &AccessToken{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, token.IsValid(now))

	// Boundary: exactly at expiry is still accepted, one second past is not.
	token = &AccessToken{ExpiresAt: now}
	assert.True(t, token.IsValid(now))

	token = &AccessToken{ExpiresAt: now.Add(-time.Second)}
	assert.False(t, token.IsValid(now))

	// An explicitly invalidated token never validates, even before expiry.
	expired := now.Add(-time.Minute)
	token = &AccessToken{ExpiresAt: now.Add(time.Hour), ExpiredAt: &expired}
	assert.False(t, token.IsValid(now))
}

func TestResetPasswordToken_IsValid(t *testing.T) {
	now := time.Now()

	token := &ResetPasswordToken{ExpiresAt: now.Add(24 * time.Hour)}
	assert.True(t, token.IsValid(now))

	token = &ResetPasswordToken{ExpiresAt: now.Add(-time.Second)}
	assert.False(t, token.IsValid(now))
}
