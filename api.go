package polycache

import (
	"context"

	c "github.com/unkn0wn-root/polycache/codec"
	st "github.com/unkn0wn-root/polycache/store"
)

// Codec is an alias for codec.Codec so callers constructing Options do not
// need the extra import.
type Codec[V any] = c.Codec[V]

// Cache is the typed, backend-agnostic view over a store.Store. V is the
// caller's value type; serialization is handled by a pluggable Codec[V].
// The operation semantics mirror the Store contract exactly: misses are
// ErrNotFound, deletes are idempotent, GetAll is a best-effort snapshot.
type Cache[V any] interface {
	// Set unconditionally stores value under key.
	Set(ctx context.Context, key string, value V) error

	// Get returns the current value for key, or ErrNotFound. An entry whose
	// payload no longer decodes is removed (best effort) and reported as
	// ErrNotFound rather than poisoning every later read.
	Get(ctx context.Context, key string) (V, error)

	// Delete removes the entry for key if present; absent keys succeed.
	Delete(ctx context.Context, key string) error

	// GetAll returns every decodable entry. Entries whose payloads fail to
	// decode are skipped, not fatal.
	GetAll(ctx context.Context) (map[string]V, error)

	// Close releases the underlying store.
	Close(ctx context.Context) error
}

// Options configure a Cache. Store and Codec are required; the rest default
// to no-ops.
type Options[V any] struct {
	Store  st.Store
	Codec  c.Codec[V]
	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks
}

func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}
