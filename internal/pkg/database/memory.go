package database

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryStore is an in-process KeyValueStore with the same expiry
// semantics as Redis. It is meant for single-instance runs and tests.
type MemoryStore struct {
	cache *ttlcache.Cache[string, string]
}

// NewMemoryStore creates an empty store and starts its expiry janitor.
// Close stops the janitor.
func NewMemoryStore() *MemoryStore {
	// reads must not extend a record's lifetime
	cache := ttlcache.New[string, string](
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go cache.Start()

	return &MemoryStore{cache: cache}
}

// Set stores a key-value pair; a non-positive expiration keeps it forever
func (m *MemoryStore) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	if expiration <= 0 {
		expiration = ttlcache.NoTTL
	}
	m.cache.Set(key, value, expiration)
	return nil
}

// Get retrieves a value by key, treating expired entries as absent
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	item := m.cache.Get(key)
	if item == nil || item.IsExpired() {
		return "", ErrKeyNotFound
	}
	return item.Value(), nil
}

// Delete removes a key
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

// Ping always succeeds
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Len returns the number of live keys
func (m *MemoryStore) Len() int {
	n := 0
	for _, item := range m.cache.Items() {
		if !item.IsExpired() {
			n++
		}
	}
	return n
}

// Close stops the expiry janitor
func (m *MemoryStore) Close() error {
	m.cache.Stop()
	return nil
}
