package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// TokenLen is the length of a session token in hex characters.
// 32 random bytes gives 256 bits of entropy, far beyond guessability.
const TokenLen = 64

var tokenFormatRegex = regexp.MustCompile(`^[a-f0-9]{64}$`)

// NewSessionToken generates an opaque session token.
// The token is the only session reference the client ever holds.
func NewSessionToken() (string, error) {
	buf := make([]byte, TokenLen/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ValidTokenFormat checks whether a client-presented token looks like one
// we issued. A cheap pre-filter before hitting the session store.
func ValidTokenFormat(token string) bool {
	return tokenFormatRegex.MatchString(token)
}
