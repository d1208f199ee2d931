package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

var ErrBookingValidation = errors.New("booking validation failed")

type BookingCreateInput struct {
	CheckIn  string
	CheckOut string
	Guests   int
}

// BookingService owns the per-user booking ledger and the review-eligibility
// state it derives. Eligibility advances lazily: canReview flips to true only
// when the ledger is read after check-out has passed, and never flips back.
type BookingService struct {
	bookings     ports.BookingRepository
	destinations ports.DestinationRepository
	profiles     ports.ProfileRepository
	now          func() time.Time
}

func NewBookingService(bookingRepo ports.BookingRepository, destRepo ports.DestinationRepository, profileRepo ports.ProfileRepository) *BookingService {
	return &BookingService{
		bookings:     bookingRepo,
		destinations: destRepo,
		profiles:     profileRepo,
		now:          time.Now,
	}
}

// Create appends a confirmed booking to the user's ledger, snapshotting the
// destination's name, cover image and price, and bumps the profile's trip
// counter. No overlap or capacity checks are applied server-side.
func (s *BookingService) Create(ctx context.Context, user *domain.User, destinationID string, input BookingCreateInput) (*domain.Booking, error) {
	checkIn := strings.TrimSpace(input.CheckIn)
	checkOut := strings.TrimSpace(input.CheckOut)
	if checkIn == "" || checkOut == "" || input.Guests == 0 {
		return nil, fmt.Errorf("%w: checkIn, checkOut and guests are required", ErrBookingValidation)
	}
	if _, err := time.Parse(domain.DateLayout, checkIn); err != nil {
		return nil, fmt.Errorf("%w: checkIn must be a YYYY-MM-DD date", ErrBookingValidation)
	}
	if _, err := time.Parse(domain.DateLayout, checkOut); err != nil {
		return nil, fmt.Errorf("%w: checkOut must be a YYYY-MM-DD date", ErrBookingValidation)
	}
	if input.Guests < 1 {
		return nil, fmt.Errorf("%w: guests must be at least 1", ErrBookingValidation)
	}

	dest, err := s.destinations.FindByID(ctx, destinationID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}

	bookings, err := s.bookings.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	booking := domain.Booking{
		ID:               uuid.New(),
		UserID:           user.ID,
		DestinationID:    dest.ID,
		DestinationName:  dest.Name,
		DestinationImage: dest.CoverImage(),
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           input.Guests,
		Status:           domain.BookingStatusConfirmed,
		BookingDate:      s.now().UTC(),
		TotalPrice:       dest.Price,
		CanReview:        false,
	}

	bookings = append(bookings, booking)
	if err := s.bookings.SaveForUser(ctx, user.ID, bookings); err != nil {
		return nil, err
	}

	if err := s.bumpTripCount(ctx, user); err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns the user's ledger with eligibility refreshed. Confirmed
// bookings whose check-out lies strictly before now gain canReview=true; the
// updated ledger is persisted before returning, but only when something
// actually changed.
func (s *BookingService) List(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	changed := false
	for i := range bookings {
		b := &bookings[i]
		if !b.CanReview && b.Status == domain.BookingStatusConfirmed && b.CheckOutBefore(now) {
			b.CanReview = true
			changed = true
		}
	}
	if changed {
		if err := s.bookings.SaveForUser(ctx, userID, bookings); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

// HasVisited reports whether the user holds a review-eligible booking for
// the destination. It fails open to false: any resolution problem reads as
// "cannot review", never as an error.
func (s *BookingService) HasVisited(ctx context.Context, userID uuid.UUID, destinationID string) bool {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return false
	}
	now := s.now()
	for _, b := range bookings {
		if b.DestinationID == destinationID && b.CanReview && b.CheckOutBefore(now) {
			return true
		}
	}
	return false
}

func (s *BookingService) bumpTripCount(ctx context.Context, user *domain.User) error {
	profile, err := s.profiles.Find(ctx, user.ID)
	if err != nil {
		if !isNotFound(err) {
			return err
		}
		profile = defaultProfile(user, s.now().UTC())
	}
	profile.TotalTrips++
	return s.profiles.Save(ctx, profile)
}
