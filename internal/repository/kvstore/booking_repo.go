package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

type BookingRepository struct {
	kv ports.KV
}

func NewBookingRepo(kv ports.KV) *BookingRepository {
	return &BookingRepository{kv: kv}
}

// ListByUser returns the user's ledger, empty when the user has never booked.
func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	value, err := r.kv.Get(ctx, bookingsKey(userID))
	if err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return []domain.Booking{}, nil
		}
		return nil, err
	}
	var bookings []domain.Booking
	if err := json.Unmarshal(value, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) SaveForUser(ctx context.Context, userID uuid.UUID, bookings []domain.Booking) error {
	value, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, bookingsKey(userID), value)
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
