package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4001
	CodeInvalidAmount      = 4002
	CodeInvalidUserID      = 4003
	CodeDuplicateUser      = 4004
	CodeInvalidCredentials = 4005
	CodeUnauthorized       = 4010
	CodeInvalidToken       = 4011
	CodeForbidden          = 4030
	CodeRoleMismatch       = 4031
	CodeUserNotFound       = 4040
	CodeNotFound           = 4041

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrValidation is returned when a required field is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when a monetary amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidKind is returned when a record kind is neither income nor expense
	ErrInvalidKind = errors.New("invalid record kind")

	// ErrInvalidRole is returned when a role is neither user nor admin
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when an email is already registered
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned when a login cannot be matched to a user
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongPassword is returned when the password does not match the stored hash
	ErrWrongPassword = errors.New("wrong password")

	// ErrRoleMismatch is returned when the requested login role differs from the stored role
	ErrRoleMismatch = errors.New("role mismatch")

	// ErrUnauthorized is returned when a request carries no usable credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken is returned when a bearer token is malformed, forged or expired
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden is returned when the caller is authenticated but not allowed
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidKind), errors.Is(err, ErrInvalidRole):
		return CodeValidation
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrWrongPassword):
		return CodeInvalidCredentials
	case errors.Is(err, ErrRoleMismatch):
		return CodeRoleMismatch
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// ValidationError reports a missing or malformed input field.
// Message is safe to show to API clients.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error, defaulting to ErrValidation
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// Is lets every ValidationError match ErrValidation regardless of its cause
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"message":    e.Message,
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWrap creates a validation error wrapping a more specific cause
func NewValidationErrorWrap(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// AuthError carries the client-facing message of an authentication or
// authorization failure together with its sentinel cause
type AuthError struct {
	Email   string
	Message string
	Err     error
}

// Error implements the error interface for AuthError
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AuthError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "auth_error",
		"email":      e.Email,
		"message":    e.Message,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewAuthError creates a detailed authentication error
func NewAuthError(email, message string, err error) error {
	return &AuthError{Email: email, Message: message, Err: err}
}

// PublicMessage extracts the client-facing message carried by a typed error.
// The second result is false when err carries no such message.
func PublicMessage(err error) (string, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Message, true
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message, true
	}
	return "", false
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidRole)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsDuplicateUserError checks if the error is a duplicate email error
func IsDuplicateUserError(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}

// IsCredentialsError checks if the error is a failed credential check
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrWrongPassword)
}

// IsUnauthorizedError checks if the error means the caller is not authenticated
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidToken)
}

// IsForbiddenError checks if the error means the caller lacks permission
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden) || errors.Is(err, ErrRoleMismatch)
}
