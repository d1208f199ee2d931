package service

import (
	"context"

	"github.com/google/uuid"

	"wanderlust-backend/internal/repository/ports"
)

// SavedService maintains the per-user set of saved destination ids. Save and
// Unsave are idempotent: re-saving a present id and removing an absent one
// are both no-ops. The list holds raw ids; callers join against the catalog
// themselves.
type SavedService struct {
	saved ports.SavedRepository
}

func NewSavedService(savedRepo ports.SavedRepository) *SavedService {
	return &SavedService{saved: savedRepo}
}

func (s *SavedService) Save(ctx context.Context, userID uuid.UUID, destinationID string) ([]string, error) {
	ids, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id == destinationID {
			return ids, nil
		}
	}
	ids = append(ids, destinationID)
	if err := s.saved.SaveForUser(ctx, userID, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SavedService) Unsave(ctx context.Context, userID uuid.UUID, destinationID string) ([]string, error) {
	ids, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != destinationID {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == len(ids) {
		return ids, nil
	}
	if err := s.saved.SaveForUser(ctx, userID, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

func (s *SavedService) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.saved.ListByUser(ctx, userID)
}
