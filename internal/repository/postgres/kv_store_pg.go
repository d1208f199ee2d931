package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"wanderlust-backend/internal/repository/ports"
)

// KVStore is the Postgres-backed key→JSON store. One row per key; Set is an
// upsert, so concurrent writers to the same key resolve last-write-wins.
type KVStore struct {
	db *sqlx.DB
}

func NewKVStore(db *sqlx.DB) *KVStore {
	return &KVStore{db: db}
}

// Migrate creates the backing table. Safe to run on every start.
func (s *KVStore) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("kv migrate: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	if err := s.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *KVStore) SetMany(ctx context.Context, keys []string, values [][]byte) error {
	if len(keys) != len(values) {
		return fmt.Errorf("kv set many: %d keys for %d values", len(keys), len(values))
	}
	if len(keys) == 0 {
		return nil
	}

	encoded := make([]string, len(values))
	for i, value := range values {
		encoded[i] = string(value)
	}

	const query = `
		INSERT INTO kv_store (key, value)
		SELECT k, v::jsonb FROM UNNEST($1::text[], $2::text[]) AS pairs(k, v)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := s.db.ExecContext(ctx, query, pq.StringArray(keys), pq.StringArray(encoded))
	return err
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_store WHERE key = $1`
	_, err := s.db.ExecContext(ctx, query, key)
	return err
}

func (s *KVStore) ListByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	const query = `
		SELECT value FROM kv_store
		WHERE key LIKE $1
		ORDER BY key
	`
	rows, err := s.db.QueryxContext(ctx, query, likePrefix(prefix))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([][]byte, 0)
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// likePrefix escapes LIKE metacharacters so prefixes containing '%' or '_'
// match literally.
func likePrefix(prefix string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(prefix) + "%"
}

var _ ports.KV = (*KVStore)(nil)
