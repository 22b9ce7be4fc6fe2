// Package store defines the backend contract for polycache.
//
// A Store is a flat key-value space with byte-slice values and no expiry.
// Implementations MUST be safe for concurrent use and MUST be byte-for-byte
// transparent: Get returns exactly the []byte previously passed to Set for
// the same key (no prepended metadata, no re-encoding, no mutation).
//
// All backends agree on the error taxonomy: an absent key surfaces exactly
// ErrNotFound (never a wrapped or backend-specific variant), and every other
// failure propagates verbatim so callers can tell a cache miss from a
// backend fault with errors.Is alone.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no entry exists for the key.
// Backends must return this exact value; callers branch with errors.Is.
var ErrNotFound = errors.New("store: key not found")

// Store is the capability contract shared by all backends. Callers hold a
// Store chosen at construction time and never depend on which backend is
// behind it.
type Store interface {
	// Set unconditionally stores value under key, overwriting any previous
	// entry. It never fails because the key already exists.
	Set(ctx context.Context, key string, value []byte) error

	// Get returns the current value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the entry for key if present. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// GetAll returns every entry currently present, in no particular order.
	// The snapshot is best-effort: entries mutated while the traversal runs
	// may or may not appear. An empty store yields an empty map, not an
	// error.
	GetAll(ctx context.Context) (map[string][]byte, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
