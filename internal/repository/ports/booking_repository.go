package ports

import (
	"context"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
)

// BookingRepository loads and stores a user's ledger as a whole. Mutations are
// read-modify-write of the full list; the service layer owns the rules.
type BookingRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	SaveForUser(ctx context.Context, userID uuid.UUID, bookings []domain.Booking) error
}
