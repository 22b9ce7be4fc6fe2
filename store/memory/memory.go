// Package memory provides a process-local Store backed by a mutex-guarded
// map. Entries live for as long as the process does; there is no
// persistence and no eviction.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/unkn0wn-root/polycache/store"
)

// Store keeps entries in an RWMutex-guarded map. Single-key operations are
// linearizable; GetAll snapshots the whole map under the read lock, so it is
// consistent at the moment of the call but not with respect to writes that
// land while the caller inspects the result.
type Store struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ store.Store = (*Store)(nil)

// New returns an empty ready-to-use in-memory store.
func New() *Store {
	return &Store{m: make(map[string][]byte)}
}

// Set stores a private copy of value so later caller mutations of the slice
// cannot leak into the store.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	v := bytes.Clone(value)
	s.mu.Lock()
	s.m[key] = v
	s.mu.Unlock()
	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	return bytes.Clone(v), nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) GetAll(_ context.Context) (map[string][]byte, error) {
	s.mu.RLock()
	out := make(map[string][]byte, len(s.m))
	for k, v := range s.m {
		out[k] = bytes.Clone(v)
	}
	s.mu.RUnlock()
	return out, nil
}

// Close discards all entries. The store must not be used afterwards.
func (s *Store) Close(_ context.Context) error {
	s.mu.Lock()
	s.m = make(map[string][]byte)
	s.mu.Unlock()
	return nil
}
