package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the denormalized per-user counters. TotalTrips and
// ReviewsCount are bumped as side effects of booking and review writes; the
// store gives no transactional guarantee, so concurrent writers can lose an
// increment (accepted, see DESIGN.md).
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	AvatarURL    *string   `json:"avatarUrl,omitempty"`
	MemberSince  time.Time `json:"memberSince"`
	TotalTrips   int       `json:"totalTrips"`
	ReviewsCount int       `json:"reviewsCount"`
}
