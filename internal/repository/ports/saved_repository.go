package ports

import (
	"context"

	"github.com/google/uuid"
)

// SavedRepository persists the per-user set of saved destination ids. The set
// is stored as an ordered list; idempotence is enforced by the service.
type SavedRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	SaveForUser(ctx context.Context, userID uuid.UUID, destinationIDs []string) error
}
