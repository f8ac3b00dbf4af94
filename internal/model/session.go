package model

import "time"

type Session struct {
	Token     string    `db:"token" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
}

// Expired reports whether the session expiry is strictly before now.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

type CreateSessionParams struct {
	Token     string
	ExpiresAt time.Time
}
