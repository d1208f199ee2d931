package kvstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

type ProfileRepository struct {
	kv ports.KV
}

func NewProfileRepo(kv ports.KV) *ProfileRepository {
	return &ProfileRepository{kv: kv}
}

// Find returns ports.ErrKeyNotFound for users without a stored profile; the
// service layer creates the default lazily.
func (r *ProfileRepository) Find(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	value, err := r.kv.Get(ctx, profileKey(userID))
	if err != nil {
		return nil, err
	}
	var profile domain.Profile
	if err := json.Unmarshal(value, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	value, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, profileKey(profile.ID), value)
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)
