package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// CSRFGenerator derives per-session CSRF tokens with HMAC-SHA256. A token is
// a pure function of the session ID and the server secret, so validation
// needs no token store and survives restarts; the session ID comes from the
// sid claim of the player's session token.
type CSRFGenerator struct {
	secret []byte
}

// NewCSRFGenerator creates a generator keyed with the given secret.
func NewCSRFGenerator(secret string) *CSRFGenerator {
	return &CSRFGenerator{secret: []byte(secret)}
}

// GenerateToken returns the CSRF token for a session. The client echoes it
// in the X-CSRF-Token header on mutating requests.
func (g *CSRFGenerator) GenerateToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session ID is required")
	}
	return g.sign(sessionID), nil
}

// ValidateToken reports whether token is the expected token for sessionID.
func (g *CSRFGenerator) ValidateToken(sessionID, token string) bool {
	if sessionID == "" || token == "" {
		return false
	}
	return hmac.Equal([]byte(g.sign(sessionID)), []byte(token))
}

func (g *CSRFGenerator) sign(sessionID string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}
