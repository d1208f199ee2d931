package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"wanderlust-backend/internal/repository/ports"
)

type SavedRepository struct {
	kv ports.KV
}

func NewSavedRepo(kv ports.KV) *SavedRepository {
	return &SavedRepository{kv: kv}
}

func (r *SavedRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	value, err := r.kv.Get(ctx, savedKey(userID))
	if err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(value, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SavedRepository) SaveForUser(ctx context.Context, userID uuid.UUID, destinationIDs []string) error {
	value, err := json.Marshal(destinationIDs)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, savedKey(userID), value)
}

var _ ports.SavedRepository = (*SavedRepository)(nil)
