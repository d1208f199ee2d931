package ports

import (
	"context"

	"wanderlust-backend/internal/domain"
)

type ReviewRepository interface {
	ListByDestination(ctx context.Context, destinationID string) ([]domain.Review, error)
	SaveForDestination(ctx context.Context, destinationID string, reviews []domain.Review) error
}
