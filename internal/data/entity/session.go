package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session. The token travels in an HttpOnly
// cookie; expiry and revocation live on this row, never in the cookie.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// Active reports whether the session is usable at the given time.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
