// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"estagiohub/internal/domain/entity"
)

// Domain-specific errors for token persistence.
var (
	// ErrAccessTokenNotFound is returned when an access token is not found.
	ErrAccessTokenNotFound = errors.New("access token not found")
	// ErrResetTokenNotFound is returned when a reset password token is not found.
	ErrResetTokenNotFound = errors.New("reset password token not found")
)

// TokenRepository defines the operations for opaque credential persistence.
// Both access tokens and password reset tokens live in the database so any
// instance can validate or revoke them.
type TokenRepository interface {
	// CreateAccessToken persists a freshly issued access token.
	CreateAccessToken(ctx context.Context, token *entity.AccessToken) error

	// FindAccessToken retrieves an access token record by its opaque value.
	FindAccessToken(ctx context.Context, token string) (*entity.AccessToken, error)

	// UpdateAccessToken persists changes to an access token record, such as
	// stamping ExpiredAt on invalidation or on a stale validation.
	UpdateAccessToken(ctx context.Context, token *entity.AccessToken) error

	// CreateResetPasswordToken persists a freshly issued reset code.
	CreateResetPasswordToken(ctx context.Context, token *entity.ResetPasswordToken) error

	// FindResetPasswordToken retrieves a reset code issued for the given e-mail.
	FindResetPasswordToken(ctx context.Context, email, token string) (*entity.ResetPasswordToken, error)

	// UpdateResetPasswordToken persists changes to a reset code record.
	UpdateResetPasswordToken(ctx context.Context, token *entity.ResetPasswordToken) error
}
