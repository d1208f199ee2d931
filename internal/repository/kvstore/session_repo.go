package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

type SessionRepository struct {
	kv ports.KV
}

func NewSessionRepo(kv ports.KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	value, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, sessionKey(session.ID), value)
}

func (r *SessionRepository) Find(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	value, err := r.kv.Get(ctx, sessionKey(id))
	if err != nil {
		return nil, err
	}
	var session domain.Session
	if err := json.Unmarshal(value, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Deactivate marks the session inactive. A missing session is already
// logged out, not an error.
func (r *SessionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	session, err := r.Find(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return nil
		}
		return err
	}
	session.Active = false
	return r.Create(ctx, session)
}

var _ ports.SessionRepository = (*SessionRepository)(nil)
