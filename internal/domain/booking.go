package domain

import (
	"time"

	"github.com/google/uuid"
)

const BookingStatusConfirmed = "confirmed"

// DateLayout is the calendar-date format used for check-in and check-out.
const DateLayout = "2006-01-02"

// Booking is one element of a user's booking ledger. DestinationName,
// DestinationImage and TotalPrice are snapshots taken at booking time and do
// not follow later catalog changes. CanReview flips to true at most once,
// when the ledger is read after the check-out date has passed.
type Booking struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	DestinationID    string    `json:"destinationId"`
	DestinationName  string    `json:"destinationName"`
	DestinationImage string    `json:"destinationImage"`
	CheckIn          string    `json:"checkIn"`
	CheckOut         string    `json:"checkOut"`
	Guests           int       `json:"guests"`
	Status           string    `json:"status"`
	BookingDate      time.Time `json:"bookingDate"`
	TotalPrice       float64   `json:"totalPrice"`
	CanReview        bool      `json:"canReview"`
}

// CheckOutBefore reports whether the booking's check-out date lies strictly
// before the given instant. Unparseable dates report false.
func (b Booking) CheckOutBefore(now time.Time) bool {
	checkOut, err := time.Parse(DateLayout, b.CheckOut)
	if err != nil {
		return false
	}
	return checkOut.Before(now)
}
