//go:build unit

package user_test

import (
	"testing"

	"booking-crm/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"admin", "sales", "warehouse", "printer", "support"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, role.String())
	}

	for _, invalid := range []string{"", "Admin", "superuser", "sales "} {
		_, err := user.NewRole(invalid)
		assert.ErrorIs(t, err, user.ErrInvalidRole, invalid)
	}

	assert.Equal(t, user.RoleSales, user.FallbackRole)
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("12345")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", pw.Value())
}

func TestNewEmail(t *testing.T) {
	email, err := user.NewEmail("  anna@example.se  ")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.se", email.Value())

	for _, invalid := range []string{"", "no-at-sign", "a@b", "a b@example.com"} {
		_, err := user.NewEmail(invalid)
		assert.ErrorIs(t, err, user.ErrInvalidEmail, invalid)
	}
}

func TestNewCredentials(t *testing.T) {
	creds, err := user.NewCredentials("anna@example.se", "hemligt123")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.se", creds.Email().Value())
	assert.Equal(t, "hemligt123", creds.Password().Value())

	_, err = user.NewCredentials("bad", "hemligt123")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	_, err = user.NewCredentials("anna@example.se", "kort")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}
