package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a comment left by a user who completed a stay at a destination.
// At most one review exists per (user, destination) pair. UserName is a
// snapshot of the author's display name at posting time.
type Review struct {
	ID            uuid.UUID `json:"id"`
	DestinationID string    `json:"destinationId"`
	UserID        uuid.UUID `json:"userId"`
	UserName      string    `json:"userName"`
	Comment       string    `json:"comment"`
	Rating        *int      `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
}
