package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// KV is the key→JSON persistence service behind every repository. Values are
// opaque JSON documents; the store offers no relational guarantees and no
// compare-and-swap, so callers doing read-modify-write get last-write-wins.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, keys []string, values [][]byte) error
	Delete(ctx context.Context, key string) error
	ListByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
