package errors

import (
	"net/http"

	"estagiohub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in pt-BR, the language of
// the institution this system serves.
var (
	// Account-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado na base de dados.",
		"",
	)

	ErrStudentNotFound = NewBaseError(
		http.StatusNotFound,
		"STUDENT_NOT_FOUND",
		"Aluno não encontrado na base de dados.",
		"",
	)

	ErrSupervisorNotFound = NewBaseError(
		http.StatusNotFound,
		"SUPERVISOR_NOT_FOUND",
		"Orientador não encontrado na base de dados.",
		"",
	)

	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Administrador não encontrado na base de dados.",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"Este e-mail já está cadastrado.",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Não foi possível criar o usuário.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erro ao processar a senha.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha incorretos.",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token de acesso inválido ou expirado.",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Código de redefinição de senha inválido ou expirado.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"É necessário estar autenticado para acessar este recurso.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Você não tem permissão para realizar esta operação.",
		"",
	)

	// Internship-related errors
	ErrInternshipNotFound = NewBaseError(
		http.StatusNotFound,
		"INTERNSHIP_NOT_FOUND",
		"Estágio não encontrado na base de dados.",
		"",
	)

	ErrInternshipDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"INTERNSHIP_DOCUMENT_NOT_FOUND",
		"Documento de estágio não encontrado na base de dados.",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS_TRANSITION",
		"Este estágio não pode ser alterado neste momento.",
		"",
	)

	ErrStudentAlreadyInterning = NewBaseError(
		http.StatusBadRequest,
		"STUDENT_ALREADY_INTERNING",
		"O aluno já está estagiando.",
		"",
	)

	ErrInternshipNotEditable = NewBaseError(
		http.StatusBadRequest,
		"INTERNSHIP_NOT_EDITABLE",
		"O estágio não pode mais ser editado.",
		"",
	)

	ErrCloseReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"CLOSE_REASON_REQUIRED",
		"É necessário informar o motivo do encerramento do estágio.",
		"",
	)

	ErrInvalidPeriod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PERIOD",
		"A data de término deve ser posterior à data de início.",
		"",
	)

	// Organization-related errors
	ErrOrganizationNotFound = NewBaseError(
		http.StatusNotFound,
		"ORGANIZATION_NOT_FOUND",
		"Nenhuma empresa foi encontrada com este CNPJ.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Os dados enviados são inválidos.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falha na transação com o banco de dados.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Não foi possível completar a requisição porque ocorreu um erro inesperado!",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflito ao processar a requisição.",
		"",
	)
)

// NewNotificationFailedError reports that the primary operation committed but
// the follow-up e-mail did not. The message must state the success explicitly
// so the caller never assumes a rollback.
func NewNotificationFailedError(message, details string) AppError {
	return NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_FAILED",
		message,
		details,
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha ao acessar o banco de dados."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
