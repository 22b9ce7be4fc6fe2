// Package bigcache provides a process-local Store on top of
// allegro/bigcache. Compared to store/memory it trades strict retention for
// GC-friendly storage of large entry counts: BigCache may shed entries
// under its own capacity rules, which the contract treats like any other
// absence.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/polycache/store"
)

type Store struct {
	c *bc.BigCache
}

var _ store.Store = (*Store)(nil)

type Config struct {
	// LifeWindow is BigCache's global entry lifetime. Zero keeps entries
	// for as long as capacity allows.
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory ceiling; 0 = unlimited
}

// BigCache treats LifeWindow 0 as "already expired", so the no-expiry
// default maps to a window longer than any process lifetime.
const noExpiry = 100 * 365 * 24 * time.Hour

func New(cfg Config) (*Store, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.LifeWindow <= 0 {
		conf.LifeWindow = noExpiry
		conf.CleanWindow = 0 // nothing to sweep
	}
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	return s.c.Set(key, value)
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	b, err := s.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Delete swallows BigCache's not-found reply; removing an absent key is a
// success per the contract.
func (s *Store) Delete(_ context.Context, key string) error {
	if err := s.c.Delete(key); err != nil && !errors.Is(err, bc.ErrEntryNotFound) {
		return err
	}
	return nil
}

// GetAll walks the BigCache iterator. The iterator is weakly consistent
// under concurrent mutation, which matches the contract's best-effort
// snapshot semantics: an entry deleted or evicted after its key was yielded
// but before its value is read is skipped, not fatal.
func (s *Store) GetAll(_ context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte)
	it := s.c.Iterator()
	for it.SetNext() {
		e, err := it.Value()
		if err != nil {
			continue // gone between yield and read
		}
		out[e.Key()] = e.Value()
	}
	return out, nil
}

func (s *Store) Close(_ context.Context) error {
	return s.c.Close()
}
