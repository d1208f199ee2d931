package ports

import (
	"context"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
)

type ProfileRepository interface {
	Find(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
}
