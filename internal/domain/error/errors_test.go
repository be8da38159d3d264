package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrDuplicateUser.Error() != "user already exists" {
		t.Errorf("ErrDuplicateUser has unexpected message: %s", ErrDuplicateUser.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", ErrValidation, 4001},
		{"InvalidKind", ErrInvalidKind, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"DuplicateUser", ErrDuplicateUser, 4004},
		{"WrongPassword", ErrWrongPassword, 4005},
		{"Unauthorized", ErrUnauthorized, 4010},
		{"InvalidToken", ErrInvalidToken, 4011},
		{"Forbidden", ErrForbidden, 4030},
		{"RoleMismatch", ErrRoleMismatch, 4031},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
		{"ValidationErrorType", NewValidationError("category", "Category is required"), 4001},
		{"ValidationErrorWrappingAmount", NewValidationErrorWrap("amount", "Invalid amount", ErrInvalidAmount), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("category", "Category is required")

	if err.Error() != "category: Category is required" {
		t.Errorf("ValidationError.Error() = %s", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	if !IsValidationError(err) {
		t.Errorf("IsValidationError(err) = false, want true")
	}

	wrapped := NewValidationErrorWrap("amount", "Invalid amount", ErrInvalidAmount)
	if !errors.Is(wrapped, ErrInvalidAmount) {
		t.Errorf("errors.Is(wrapped, ErrInvalidAmount) = false, want true")
	}
	if !errors.Is(wrapped, ErrValidation) {
		t.Errorf("errors.Is(wrapped, ErrValidation) = false, want true")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, want true")
	}
	fields := validationErr.LogFields()
	if fields["field"] != "category" || fields["error_code"] != CodeValidation {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestAuthError(t *testing.T) {
	err := NewAuthError("ann@example.com", "Invalid credentials (wrong password)", ErrWrongPassword)

	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("errors.Is(err, ErrWrongPassword) = false, want true")
	}
	if !IsCredentialsError(err) {
		t.Errorf("IsCredentialsError(err) = false, want true")
	}
	if IsForbiddenError(err) {
		t.Errorf("IsForbiddenError(err) = true, want false")
	}

	msg, ok := PublicMessage(err)
	if !ok || msg != "Invalid credentials (wrong password)" {
		t.Errorf("PublicMessage(err) = %q, %v", msg, ok)
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("errors.As(err, *AuthError) = false, want true")
	}
	if authErr.LogFields()["email"] != "ann@example.com" {
		t.Errorf("unexpected log fields: %v", authErr.LogFields())
	}
}

func TestPublicMessageWithPlainError(t *testing.T) {
	if _, ok := PublicMessage(errors.New("boom")); ok {
		t.Errorf("PublicMessage(plain) reported a message")
	}
}

func TestHelperFunctions(t *testing.T) {
	wrappedNotFound := fmt.Errorf("lookup: %w", ErrUserNotFound)
	if !IsUserNotFoundError(wrappedNotFound) || !IsNotFoundError(wrappedNotFound) {
		t.Errorf("not found helpers failed for %v", wrappedNotFound)
	}
	if !IsDuplicateUserError(fmt.Errorf("insert: %w", ErrDuplicateUser)) {
		t.Errorf("IsDuplicateUserError failed")
	}
	if !IsUnauthorizedError(ErrInvalidToken) || !IsUnauthorizedError(ErrUnauthorized) {
		t.Errorf("IsUnauthorizedError failed")
	}
	if !IsForbiddenError(ErrRoleMismatch) || !IsForbiddenError(ErrForbidden) {
		t.Errorf("IsForbiddenError failed")
	}
}
