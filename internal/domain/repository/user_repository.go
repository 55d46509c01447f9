// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"estagiohub/internal/domain/entity"
)

// Domain-specific errors for account persistence.
var (
	// ErrUserNotFound is returned when a user account is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrStudentNotFound is returned when a student profile is not found.
	ErrStudentNotFound = errors.New("student not found")
	// ErrSupervisorNotFound is returned when a supervisor profile is not found.
	ErrSupervisorNotFound = errors.New("supervisor not found")
	// ErrAdminNotFound is returned when an admin profile is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrDuplicateEmail is returned when the e-mail unique constraint is violated.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindUserByID retrieves a core user account by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a core user account by e-mail.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateUserPassword replaces the stored password hash of a user.
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// CreateStudent persists a new student profile together with its user account.
	CreateStudent(ctx context.Context, student *entity.Student) error

	// CreateSupervisor persists a new supervisor profile together with its user account.
	CreateSupervisor(ctx context.Context, supervisor *entity.Supervisor) error

	// CreateAdmin persists a new admin profile together with its user account.
	CreateAdmin(ctx context.Context, admin *entity.Admin) error

	// FindStudentByID retrieves a student profile by its profile ID.
	FindStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)

	// FindStudentByUserID retrieves the student profile owned by a user account.
	FindStudentByUserID(ctx context.Context, userID uuid.UUID) (*entity.Student, error)

	// FindStudentByEmail retrieves a student profile by the account e-mail.
	FindStudentByEmail(ctx context.Context, email string) (*entity.Student, error)

	// FindSupervisorByID retrieves a supervisor profile by its profile ID.
	FindSupervisorByID(ctx context.Context, id uuid.UUID) (*entity.Supervisor, error)

	// FindSupervisorByEmail retrieves a supervisor profile by the account e-mail.
	FindSupervisorByEmail(ctx context.Context, email string) (*entity.Supervisor, error)

	// FindAdminByEmail retrieves an admin profile by the account e-mail or name.
	FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// SearchStudents matches term as a case-insensitive substring of the
	// student full name or account e-mail. Results are paginated.
	SearchStudents(ctx context.Context, term string, limit, offset int) ([]*entity.Student, error)
}
