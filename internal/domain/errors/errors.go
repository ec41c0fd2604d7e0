package errors

import (
	"net/http"

	"trackio/internal/errors"
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

// Is matches another BaseError with the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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

// Predefined error types
var (
	// Account-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"password is too short",
		"",
	)

	ErrPasswordUnchanged = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_UNCHANGED",
		"new password must differ from the current password",
		"",
	)

	ErrEmailUnchanged = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_UNCHANGED",
		"new email must differ from the current email",
		"",
	)

	ErrInvalidRecoveryToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_RECOVERY_TOKEN",
		"invalid or expired recovery link",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"user profile not found",
		"",
	)

	// Tracking-service errors
	ErrTrackingConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"TRACKING_CONFIGURATION",
		"tracking service administrator credentials are not configured",
		"",
	)

	ErrTrackingAdminRejected = NewBaseError(
		http.StatusInternalServerError,
		"TRACKING_ADMIN_REJECTED",
		"tracking service rejected the administrator credentials",
		"",
	)

	ErrTrackingUserRejected = NewBaseError(
		http.StatusBadRequest,
		"TRACKING_USER_REJECTED",
		"tracking service rejected the user; check that the email is not already in use",
		"",
	)

	ErrTrackingCredentialsInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TRACKING_CREDENTIALS_INVALID",
		"invalid credentials for the tracking service",
		"",
	)

	ErrTrackingNotSynchronized = NewBaseError(
		http.StatusNotFound,
		"TRACKING_NOT_SYNCHRONIZED",
		"account is not synchronized with the tracking service",
		"",
	)

	ErrTrackingTokenUnavailable = NewBaseError(
		http.StatusUnauthorized,
		"TRACKING_TOKEN_UNAVAILABLE",
		"tracking session token is not available",
		"",
	)

	ErrTrackingTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TRACKING_TOKEN_EXPIRED",
		"tracking session token has expired",
		"",
	)

	ErrTrackingSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"TRACKING_SESSION_EXPIRED",
		"tracking session expired, please sign in again",
		"",
	)

	ErrTrackingSessionUnavailable = NewBaseError(
		http.StatusBadGateway,
		"TRACKING_SESSION_UNAVAILABLE",
		"could not obtain a tracking session token",
		"",
	)

	ErrTrackingUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"TRACKING_UNAVAILABLE",
		"tracking service is unavailable, please retry later",
		"",
	)

	ErrTrackingRequestRejected = NewBaseError(
		http.StatusBadRequest,
		"TRACKING_REQUEST_REJECTED",
		"tracking service rejected the request",
		"",
	)

	ErrTrackingForbidden = NewBaseError(
		http.StatusForbidden,
		"TRACKING_FORBIDDEN",
		"access to the tracking resource was denied",
		"",
	)

	ErrTrackingResourceNotFound = NewBaseError(
		http.StatusNotFound,
		"TRACKING_RESOURCE_NOT_FOUND",
		"tracking resource not found",
		"",
	)

	ErrTrackingMappingPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRACKING_MAPPING_PERSIST_FAILED",
		"tracking identity was created but could not be saved",
		"",
	)

	ErrTrackingUnknown = NewBaseError(
		http.StatusBadGateway,
		"TRACKING_UNKNOWN",
		"unexpected tracking service error",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
