package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	NotFoundError     ErrorType = "not_found"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier classifies driver errors by message, which works for
// both postgres and sqlite without importing driver error types
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" when unknown
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return ""
	}
}

// Wrap maps a driver error onto the matching domain sentinel
func (c *ErrorClassifier) Wrap(err error) error {
	switch c.Classify(err) {
	case "":
		if err == nil {
			return nil
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	case DuplicateKeyError:
		return fmt.Errorf("%w: %s", errs.ErrDuplicateUser, err.Error())
	case NotFoundError:
		return errs.ErrNotFound
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return containsAny(err, "duplicate key", "UNIQUE constraint", "Duplicate entry", "SQLSTATE 23505")
}

// IsLockError checks if the error is due to locking or serialization
func (c *ErrorClassifier) IsLockError(err error) bool {
	return containsAny(err, "deadlock", "lock wait timeout", "could not serialize access",
		"serialization failure", "database is locked", "SQLITE_BUSY")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	return containsAny(err, "connection", "dial", "network", "broken pipe", "EOF", "timeout", "database is closed")
}

// IsConstraintError checks if the error is a non-unique constraint violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	return containsAny(err, "violates", "foreign key", "FOREIGN KEY constraint", "NOT NULL constraint", "CHECK constraint")
}

func containsAny(err error, fragments ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}
