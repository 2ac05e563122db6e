package booking

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// AccessTokenTTL is the uniform lifetime for customer portal tokens.
const AccessTokenTTL = 7 * 24 * time.Hour

const accessTokenBytes = 16

// NewAccessToken returns a 32-character hex token for the unauthenticated
// customer link. Uniqueness is backed by the store's unique constraint on
// booking_tokens.token; the generator itself carries no time component.
func NewAccessToken() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
