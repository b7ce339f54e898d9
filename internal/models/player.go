package models

import "time"

// Player is an account that accumulates game history. Email and password
// are empty for OAuth-only accounts; OAuthProvider/OAuthSubject are empty
// for local accounts.
type Player struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  string
	OAuthProvider string
	OAuthSubject  string
	CreatedAt     time.Time
}

// IsOAuth reports whether the player signed up through an OAuth provider.
func (p *Player) IsOAuth() bool {
	return p.OAuthProvider != ""
}
