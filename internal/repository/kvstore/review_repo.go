package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

type ReviewRepository struct {
	kv ports.KV
}

func NewReviewRepo(kv ports.KV) *ReviewRepository {
	return &ReviewRepository{kv: kv}
}

func (r *ReviewRepository) ListByDestination(ctx context.Context, destinationID string) ([]domain.Review, error) {
	value, err := r.kv.Get(ctx, commentsKey(destinationID))
	if err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return []domain.Review{}, nil
		}
		return nil, err
	}
	var reviews []domain.Review
	if err := json.Unmarshal(value, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) SaveForDestination(ctx context.Context, destinationID string, reviews []domain.Review) error {
	value, err := json.Marshal(reviews)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, commentsKey(destinationID), value)
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
