package kvstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

type UserRepository struct {
	kv ports.KV
}

func NewUserRepo(kv ports.KV) *UserRepository {
	return &UserRepository{kv: kv}
}

// emailIndex is the document stored under the email index key so lookups by
// address can resolve the primary user key.
type emailIndex struct {
	ID uuid.UUID `json:"id"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.Save(ctx, user)
}

// Save writes the user document and its email index in one batch. There is
// no uniqueness guarantee in the store itself; callers check FindByEmail
// first, and a racing duplicate signup resolves last-write-wins.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	userDoc, err := json.Marshal(user)
	if err != nil {
		return err
	}
	indexDoc, err := json.Marshal(emailIndex{ID: user.ID})
	if err != nil {
		return err
	}
	return r.kv.SetMany(ctx,
		[]string{userKey(user.ID), userEmailKey(user.Email)},
		[][]byte{userDoc, indexDoc},
	)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	value, err := r.kv.Get(ctx, userKey(id))
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	value, err := r.kv.Get(ctx, userEmailKey(email))
	if err != nil {
		return nil, err
	}
	var index emailIndex
	if err := json.Unmarshal(value, &index); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, index.ID)
}

var _ ports.UserRepository = (*UserRepository)(nil)
