package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const sessionCookieName = "folio_session"

// SessionDuration is how long a login session stays valid.
const SessionDuration = 7 * 24 * time.Hour

// SessionCookieName returns the name of the session cookie.
func SessionCookieName() string {
	return sessionCookieName
}

// GenerateSessionToken returns a new opaque session token (32 random bytes,
// hex encoded).
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
