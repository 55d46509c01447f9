package service

import "time"

// TokenGenerator defines the interface for minting opaque credentials.
// Values are random and carry no claims; validity lives in the database.
type TokenGenerator interface {
	// NewAccessToken returns a fresh opaque access token value.
	NewAccessToken() string

	// NewResetPasswordToken returns a fresh opaque password-reset code.
	NewResetPasswordToken() (string, error)

	// TTL returns how long freshly issued tokens stay valid.
	TTL() time.Duration
}
