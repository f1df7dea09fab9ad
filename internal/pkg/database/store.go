package database

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when a key is absent or expired
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the shared state store contract: single-key reads and
// writes with per-key expiry and no multi-key transactions.
type KeyValueStore interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
