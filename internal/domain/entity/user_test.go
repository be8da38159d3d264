package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("  Ann Lee ", " Ann@Example.COM ", "hash", RoleUser, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Ann Lee", user.FullName)
		assert.Equal(t, "ann@example.com", user.Email)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Equal(t, RoleUser, user.Role)
		assert.False(t, user.IsAdmin())
		assert.Nil(t, user.LastLoginAt)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Admin user", func(t *testing.T) {
		user, err := NewUser("Root", "root@example.com", "hash", RoleAdmin, mockTime)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})

	t.Run("Missing fields", func(t *testing.T) {
		testCases := []struct {
			name     string
			fullName string
			email    string
			hash     string
		}{
			{"No name", " ", "a@b.c", "hash"},
			{"No email", "Ann", "", "hash"},
			{"No password", "Ann", "a@b.c", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				user, err := NewUser(tc.fullName, tc.email, tc.hash, RoleUser, mockTime)
				assert.Nil(t, user)
				assert.True(t, errs.IsValidationError(err))
			})
		}
	})

	t.Run("Unknown role", func(t *testing.T) {
		user, err := NewUser("Ann", "a@b.c", "hash", Role("owner"), mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	role, err = ParseRole("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("superuser")
	assert.ErrorIs(t, err, errs.ErrInvalidRole)
	assert.True(t, errs.IsValidationError(err))
}

func TestUserApplyProfile(t *testing.T) {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(created).Once()

	user, err := NewUser("Ann", "ann@example.com", "hash", RoleUser, mockTime)
	require.NoError(t, err)

	t.Run("Empty fields keep stored values", func(t *testing.T) {
		changed := user.ApplyProfile("", "", "", mockTime)

		assert.False(t, changed)
		assert.Equal(t, "Ann", user.FullName)
		assert.Equal(t, "ann@example.com", user.Email)
		assert.Equal(t, created, user.UpdatedAt)
	})

	t.Run("Non-empty fields replace stored values", func(t *testing.T) {
		mockTime.EXPECT().Now().Return(updated).Once()

		changed := user.ApplyProfile("Ann Smith", "", "data:image/png;base64,AAAA", mockTime)

		assert.True(t, changed)
		assert.Equal(t, "Ann Smith", user.FullName)
		assert.Equal(t, "ann@example.com", user.Email)
		assert.Equal(t, "data:image/png;base64,AAAA", user.Avatar)
		assert.Equal(t, updated, user.UpdatedAt)
	})
}
