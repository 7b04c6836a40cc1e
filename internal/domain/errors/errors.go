// Package errors holds the application error taxonomy. Each value carries the
// HTTP status it maps to, so the delivery layer never guesses.
package errors

import (
	"net/http"

	"ondeta/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Diagnostic detail, optional
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same code, so copies made by WithDetails
// and WithMessage still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying diagnostic details.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

// WithMessage returns a copy with a more specific user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	cp := *e
	cp.message = message

	return &cp
}

// Validation errors (400)
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"Este email já está em uso",
		"",
	)

	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Por favor, forneça um email e senha",
		"",
	)

	ErrInvalidMediaType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MEDIA_TYPE",
		"Tipo de mídia inválido (deve ser movie ou tv)",
		"",
	)

	ErrMissingMediaFields = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Forneça ID e tipo de mídia válido (movie ou tv)",
		"",
	)

	ErrMissingFile = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FILE",
		"Nenhuma imagem enviada",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"O arquivo enviado não é uma imagem válida",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"A imagem deve ter no máximo 2MB",
		"",
	)

	ErrMissingQuery = NewBaseError(
		http.StatusBadRequest,
		"MISSING_QUERY",
		"Parâmetro de busca é obrigatório",
		"",
	)
)

// Conflict errors. Duplicate collection entries map to 400 like validation failures.
var (
	ErrDuplicateEntry = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_ENTRY",
		"Este item já está na lista",
		"",
	)

	// ErrVersionConflict signals a lost optimistic write. It is retried before reaching a client.
	ErrVersionConflict = NewBaseError(
		http.StatusConflict,
		"VERSION_CONFLICT",
		"Os dados foram alterados por outra requisição",
		"",
	)
)

// Authentication errors (401)
var (
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciais inválidas",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Não autorizado, faça login para continuar",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Token inválido ou expirado",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)
)

// Provider and infrastructure errors
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Muitas requisições, tente novamente em instantes",
		"",
	)

	ErrProviderUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PROVIDER_UNAVAILABLE",
		"Serviço externo indisponível no momento",
		"",
	)

	ErrAssistantUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ASSISTANT_UNAVAILABLE",
		"Desculpe, não consegui processar sua mensagem no momento. Tente novamente!",
		"",
	)

	ErrImageStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_STORE_FAILED",
		"Falha ao salvar a imagem",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do servidor",
		"",
	)
)

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
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Erro ao acessar o banco de dados"
}

// Details returns the underlying driver message for diagnostics.
func (e *DatabaseExecuteError) Details() string {
	if e.err == nil {
		return e.details
	}

	return e.details + ": " + e.err.Error()
}
