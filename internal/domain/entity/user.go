package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// Role distinguishes regular users from administrators
type Role string

// Roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a role string. An empty string yields RoleUser.
func ParseRole(role string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(role))) {
	case "", RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", errs.NewValidationErrorWrap("role", "Role must be user or admin", fmt.Errorf("%w: %s", errs.ErrInvalidRole, role))
	}
}

// User is an account that owns income and expense records
type User struct {
	ID           uint64
	FullName     string
	Email        string
	PasswordHash string // never rendered in any response
	Role         Role
	Avatar       string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a user from already hashed credentials
func NewUser(fullName, email, passwordHash string, role Role, timeProvider coreport.TimeProvider) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	email = NormalizeEmail(email)

	if fullName == "" {
		return nil, errs.NewValidationError("fullName", "Full name is required")
	}
	if email == "" {
		return nil, errs.NewValidationError("email", "Email is required")
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "Password is required")
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, errs.NewValidationErrorWrap("role", "Role must be user or admin", errs.ErrInvalidRole)
	}

	now := timeProvider.Now()
	return &User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsAdmin reports whether the stored role is admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ApplyProfile replaces only the non-empty fields and reports whether anything changed
func (u *User) ApplyProfile(fullName, email, avatar string, timeProvider coreport.TimeProvider) bool {
	changed := false
	if name := strings.TrimSpace(fullName); name != "" && name != u.FullName {
		u.FullName = name
		changed = true
	}
	if mail := NormalizeEmail(email); mail != "" && mail != u.Email {
		u.Email = mail
		changed = true
	}
	if avatar != "" && avatar != u.Avatar {
		u.Avatar = avatar
		changed = true
	}
	if changed {
		u.UpdatedAt = timeProvider.Now()
	}
	return changed
}
