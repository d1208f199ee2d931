package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a revocable login. The session id doubles as the JWT's jti
// claim; a token is only accepted while its session is active and unexpired.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Active    bool      `json:"active"`
}

func (s Session) Valid(now time.Time) bool {
	return s.Active && now.Before(s.ExpiresAt)
}
