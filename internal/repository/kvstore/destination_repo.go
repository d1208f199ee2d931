package kvstore

import (
	"context"
	"encoding/json"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

type DestinationRepository struct {
	kv ports.KV
}

func NewDestinationRepo(kv ports.KV) *DestinationRepository {
	return &DestinationRepository{kv: kv}
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	values, err := r.kv.ListByPrefix(ctx, destinationPrefix)
	if err != nil {
		return nil, err
	}

	destinations := make([]domain.Destination, 0, len(values))
	for _, value := range values {
		var dest domain.Destination
		if err := json.Unmarshal(value, &dest); err != nil {
			return nil, err
		}
		destinations = append(destinations, dest)
	}
	return destinations, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id string) (*domain.Destination, error) {
	value, err := r.kv.Get(ctx, destinationKey(id))
	if err != nil {
		return nil, err
	}
	var dest domain.Destination
	if err := json.Unmarshal(value, &dest); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) SaveAll(ctx context.Context, destinations []domain.Destination) error {
	keys := make([]string, 0, len(destinations))
	values := make([][]byte, 0, len(destinations))
	for _, dest := range destinations {
		value, err := json.Marshal(dest)
		if err != nil {
			return err
		}
		keys = append(keys, destinationKey(dest.ID))
		values = append(values, value)
	}
	return r.kv.SetMany(ctx, keys, values)
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
