package ports

import (
	"context"

	"wanderlust-backend/internal/domain"
)

type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	FindByID(ctx context.Context, id string) (*domain.Destination, error)
	SaveAll(ctx context.Context, destinations []domain.Destination) error
}
