// Package errors defines the application error taxonomy: typed errors that
// carry an HTTP status, a stable business code and a user-facing message.
package errors

import (
	"net/http"

	"clinica/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error with a different user-facing
// message, keeping the HTTP status and business code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types. User-facing messages are in Spanish, matching the
// voice of the administration frontend.
var (
	// Authentication / authorization
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"No autenticado",
		"",
	)

	ErrTokenRequired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REQUIRED",
		"Token requerido",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido o expirado",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tienes permisos",
		"",
	)

	ErrDeptScopeForbidden = NewBaseError(
		http.StatusForbidden,
		"DEPT_SCOPE_FORBIDDEN",
		"No tienes acceso a este departamento",
		"",
	)

	ErrSpecialtyScopeForbidden = NewBaseError(
		http.StatusForbidden,
		"SPECIALTY_SCOPE_FORBIDDEN",
		"No tienes acceso a esta especialidad",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciales inválidas",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"Cuenta deshabilitada, contacta al administrador",
		"",
	)

	ErrAccountNotVerified = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_NOT_VERIFIED",
		"La cuenta no está verificada",
		"",
	)

	// Verification codes
	ErrCodeInvalid = NewBaseError(
		http.StatusUnauthorized,
		"CODE_INVALID",
		"Código de verificación inválido",
		"",
	)

	ErrCodeExpired = NewBaseError(
		http.StatusUnauthorized,
		"CODE_EXPIRED",
		"El código de verificación ha expirado",
		"",
	)

	ErrAlreadyVerified = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_VERIFIED",
		"La cuenta ya está verificada",
		"",
	)

	// Validation
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de entrada inválidos",
		"",
	)

	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Faltan datos obligatorios",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"El correo electrónico no es válido",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"La contraseña debe tener al menos 8 caracteres, una mayúscula, una minúscula y un número",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"La contraseña actual es incorrecta",
		"",
	)

	ErrPasswordUnchanged = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_UNCHANGED",
		"La nueva contraseña no puede ser igual a la actual",
		"",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"El correo ya está registrado",
		"",
	)

	ErrSignupDisabled = NewBaseError(
		http.StatusForbidden,
		"SIGNUP_DISABLED",
		"Registro deshabilitado. Pide a un administrador que te cree.",
		"",
	)

	// Departments / specialties
	ErrDepartmentNotFound = NewBaseError(
		http.StatusNotFound,
		"DEPARTMENT_NOT_FOUND",
		"Departamento no encontrado",
		"",
	)

	ErrDepartmentExists = NewBaseError(
		http.StatusConflict,
		"DEPARTMENT_EXISTS",
		"El departamento ya existe",
		"",
	)

	ErrSpecialtyNotFound = NewBaseError(
		http.StatusNotFound,
		"SPECIALTY_NOT_FOUND",
		"Especialidad no encontrada",
		"",
	)

	ErrSpecialtyExists = NewBaseError(
		http.StatusConflict,
		"SPECIALTY_EXISTS",
		"La especialidad ya existe",
		"",
	)

	ErrSpecialtyDeptMismatch = NewBaseError(
		http.StatusBadRequest,
		"SPECIALTY_DEPT_MISMATCH",
		"El departamento no coincide con la especialidad",
		"",
	)

	// Affiliations
	ErrAffiliationNotFound = NewBaseError(
		http.StatusNotFound,
		"AFFILIATION_NOT_FOUND",
		"Afiliación no encontrada",
		"",
	)

	ErrAffiliationExists = NewBaseError(
		http.StatusConflict,
		"AFFILIATION_EXISTS",
		"La afiliación ya existe",
		"",
	)

	ErrAffiliationScope = NewBaseError(
		http.StatusBadRequest,
		"AFFILIATION_SCOPE_REQUIRED",
		"Debes enviar specialtyId o departmentId",
		"",
	)

	// Delivery / infrastructure
	ErrEmailDelivery = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_DELIVERY_FAILED",
		"No se pudo enviar el correo de verificación",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error en el servidor",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return "Error en el servidor"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
