//go:build unit

package booking_test

import (
	"encoding/hex"
	"testing"
	"time"

	"booking-crm/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken(t *testing.T) {
	token, err := booking.NewAccessToken()
	require.NoError(t, err)

	assert.Len(t, token, 32)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "token must be lowercase hex")

	seen := make(map[string]struct{})
	for range 100 {
		tok, err := booking.NewAccessToken()
		require.NoError(t, err)
		_, dup := seen[tok]
		assert.False(t, dup, "token collision")
		seen[tok] = struct{}{}
	}
}

func TestAccessTokenTTL(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, booking.AccessTokenTTL)
}
