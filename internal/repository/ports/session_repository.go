package ports

import (
	"context"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
