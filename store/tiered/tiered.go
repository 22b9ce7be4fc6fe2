// Package tiered layers a fast in-process Ristretto front over any
// authoritative back Store. Reads are served from the front when possible
// and promoted on a back-store hit; writes go through to the back store
// first. Not-found decisions and enumeration always come from the back
// store. The front is a best-effort accelerator: entries carry a short TTL
// and promotions are skipped when they race a delete, so a front entry can
// lag the back store only within that bounded window.
package tiered

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/polycache/store"
)

type Store struct {
	front *rc.Cache
	back  store.Store

	// delEpoch invalidates in-flight front writes: a Get or Set that
	// observed an older epoch after its back-store call must not populate
	// the front, because a delete may already have purged both levels.
	delEpoch atomic.Uint64

	frontTTL time.Duration
}

var _ store.Store = (*Store)(nil)

type Config struct {
	// Back is the authoritative store. Required.
	Back store.Store

	// PromoteTTL caps how long a front entry lives before the next read
	// goes back to the authoritative store. 0 => 1 minute.
	PromoteTTL time.Duration

	// Ristretto sizing. Zero values pick defaults suitable for a
	// front cache of ~64 MiB and ~100k tracked keys.
	NumCounters int64
	MaxCost     int64 // bytes
	BufferItems int64
}

const (
	defaultNumCounters = 1_000_000
	defaultMaxCost     = 64 << 20
	defaultBufferItems = 64
	defaultPromoteTTL  = time.Minute
)

var ErrNoBack = errors.New("tiered store: back store is required")

func New(cfg Config) (*Store, error) {
	if cfg.Back == nil {
		return nil, ErrNoBack
	}
	if cfg.NumCounters <= 0 {
		cfg.NumCounters = defaultNumCounters
	}
	if cfg.MaxCost <= 0 {
		cfg.MaxCost = defaultMaxCost
	}
	if cfg.BufferItems <= 0 {
		cfg.BufferItems = defaultBufferItems
	}
	if cfg.PromoteTTL <= 0 {
		cfg.PromoteTTL = defaultPromoteTTL
	}
	front, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &Store{front: front, back: cfg.Back, frontTTL: cfg.PromoteTTL}, nil
}

// Set writes the back store first; the front is only refreshed once the
// authoritative write succeeded, and not at all when a delete landed in
// between.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	epoch := s.delEpoch.Load()
	if err := s.back.Set(ctx, key, value); err != nil {
		return err
	}
	if s.delEpoch.Load() == epoch {
		s.front.SetWithTTL(key, bytes.Clone(value), int64(len(value)), s.frontTTL)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := s.front.Get(key); ok {
		if b, ok := v.([]byte); ok {
			return bytes.Clone(b), nil
		}
		s.front.Del(key) // unexpected entry shape; drop it
	}
	epoch := s.delEpoch.Load()
	b, err := s.back.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	// Skip the promotion when a delete completed while the back read was
	// in flight: the value just read may no longer exist, and caching it
	// would serve it until the TTL runs out.
	if s.delEpoch.Load() == epoch {
		s.front.SetWithTTL(key, bytes.Clone(b), int64(len(b)), s.frontTTL)
	}
	return b, nil
}

// Delete removes the authoritative entry first so a concurrent reader
// cannot re-promote a value the back store still had, then invalidates
// in-flight promotions before clearing the front.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.back.Delete(ctx, key); err != nil {
		return err
	}
	s.delEpoch.Add(1)
	s.front.Del(key)
	return nil
}

// GetAll bypasses the front entirely; only the back store knows the full
// key set.
func (s *Store) GetAll(ctx context.Context) (map[string][]byte, error) {
	return s.back.GetAll(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	s.front.Wait()
	s.front.Close()
	return s.back.Close(ctx)
}
