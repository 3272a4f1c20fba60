package domain

import "time"

// Session is a server-issued proof of authentication bound to an opaque
// token. It carries a snapshot of the identity so resolving a session does
// not require an identity lookup. Sessions are owned exclusively by the
// session store.
type Session struct {
	Token     string    `json:"token"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
