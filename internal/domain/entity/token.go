// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is an opaque bearer credential proving authentication. It is
// delivered to browsers as an HTTP-only cookie and expires after 24 hours.
type AccessToken struct {
	ID        uuid.UUID  // The unique ID for this token record.
	Token     string     // The opaque token value handed to the client.
	UserID    uuid.UUID  // The account this token authenticates.
	ExpiresAt time.Time  // When the token stops being accepted.
	ExpiredAt *time.Time // Set on logout or on first validation after expiry.
	CreatedAt time.Time  // Timestamp of when the token was issued.
}

// IsValid reports whether the token is still usable at the given time.
func (t *AccessToken) IsValid(now time.Time) bool {
	return t.ExpiredAt == nil && !now.After(t.ExpiresAt)
}

// ResetPasswordToken is an opaque one-time code enabling a password reset.
// It is e-mailed to the account holder and expires after 24 hours.
type ResetPasswordToken struct {
	ID        uuid.UUID  // The unique ID for this token record.
	Email     string     // The account e-mail the reset was requested for.
	Token     string     // The opaque code e-mailed to the user.
	ExpiresAt time.Time  // When the code stops being accepted.
	ExpiredAt *time.Time // Set on use or on first validation after expiry.
	CreatedAt time.Time  // Timestamp of when the code was issued.
}

// IsValid reports whether the code is still usable at the given time.
func (t *ResetPasswordToken) IsValid(now time.Time) bool {
	return t.ExpiredAt == nil && !now.After(t.ExpiresAt)
}
