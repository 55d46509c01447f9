// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"estagiohub/internal/domain/entity"
)

// --- Input DTOs ---

// AddressInput carries a residential address as submitted by the client.
type AddressInput struct {
	Street         string
	Number         string
	AdditionalInfo string
	District       string
	City           string
	State          string
	PostalCode     string
}

// RegisterStudentInput defines the data required to register a new student.
type RegisterStudentInput struct {
	Email         string
	Password      string
	FullName      string
	RG            string
	Phone         string
	WhatsApp      string
	AcademicID    string
	AcademicClass string
	Address       AddressInput
}

// RegisterSupervisorInput defines the data required to register a new supervisor.
type RegisterSupervisorInput struct {
	Email    string
	Password string
	Name     string
}

// RegisterAdminInput defines the data required to register a new admin.
type RegisterAdminInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// ForgotPasswordInput starts a password reset for the given account e-mail.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput completes a password reset using the e-mailed code.
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// SearchStudentsInput narrows and paginates a student search.
type SearchStudentsInput struct {
	Term   string
	Limit  int
	Offset int
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   int64
	User        *entity.User
}

// AuthenticatedUser is the resolved identity of a valid access token.
type AuthenticatedUser struct {
	User  *entity.User
	Token *entity.AccessToken
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*RegisterOutput, error)
	RegisterSupervisor(ctx context.Context, input *RegisterSupervisorInput) (*RegisterOutput, error)
	RegisterAdmin(ctx context.Context, input *RegisterAdminInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// AuthenticateToken resolves an opaque access token to its account. It is
	// the backing call of the auth middleware.
	AuthenticateToken(ctx context.Context, token string) (*AuthenticatedUser, error)

	SearchStudents(ctx context.Context, input *SearchStudentsInput) ([]*entity.Student, error)
}
