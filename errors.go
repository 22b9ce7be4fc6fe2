package polycache

import "github.com/unkn0wn-root/polycache/store"

// ErrNotFound is the shared cache-miss sentinel, re-exported from the store
// package. It is the same value every backend returns for an absent key, so
// errors.Is(err, polycache.ErrNotFound) and errors.Is(err, store.ErrNotFound)
// are interchangeable.
var ErrNotFound = store.ErrNotFound
