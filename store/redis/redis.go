// Package redis provides a Store backed by a remote Redis (or compatible)
// server. The store owns no data itself; it is a thin command adapter over
// a go-redis client.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/polycache/internal/keys"
	"github.com/unkn0wn-root/polycache/store"
)

const defaultScanCount = 100

// ErrNoClient is returned by New when the config carries neither a client
// nor an address to build one from.
var ErrNoClient = errors.New("redis store: no client and no address")

// client is the slice of redis.UniversalClient this store actually issues.
// Narrow on purpose: tests script it without a live server.
type client interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Get(ctx context.Context, key string) *goredis.StringCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *goredis.ScanCmd
	MGet(ctx context.Context, keys ...string) *goredis.SliceCmd
	Close() error
}

var _ client = (goredis.UniversalClient)(nil)

// Config configures the Redis-backed store.
//
// Either supply a pre-built Client (shared with the rest of the
// application) or an Addr plus credentials from which the store builds and
// owns its own client. Connection tuning beyond these fields belongs on the
// supplied client.
type Config struct {
	// Client, when non-nil, is used as-is and Addr/Username/Password/DB are
	// ignored. Set CloseClient only if this store exclusively owns it.
	Client      goredis.UniversalClient
	CloseClient bool

	Addr     string
	Username string
	Password string
	DB       int

	// Namespace prefixes every key as "<Namespace>:<key>" so multiple
	// stores can share one server. Empty means the whole keyspace.
	Namespace string

	// ScanCount bounds the page size of the SCAN loop in GetAll.
	// 0 => 100.
	ScanCount int64
}

// Store is a store.Store whose entries live on a remote Redis server.
// Concurrency safety is the client's: go-redis clients are safe for
// concurrent use by multiple goroutines.
type Store struct {
	rdb       client
	ns        string
	scanCount int64
	ownClient bool
}

var _ store.Store = (*Store)(nil)

// New validates cfg and returns a ready store. Validation is structural
// only: an unreachable server does not fail here, it surfaces on the first
// operation.
func New(cfg Config) (*Store, error) {
	s := &Store{
		ns:        cfg.Namespace,
		scanCount: cfg.ScanCount,
		ownClient: cfg.CloseClient,
	}
	if s.scanCount <= 0 {
		s.scanCount = defaultScanCount
	}

	switch {
	case cfg.Client != nil:
		s.rdb = cfg.Client
	case cfg.Addr != "":
		s.rdb = goredis.NewClient(&goredis.Options{
			Addr:     cfg.Addr,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		s.ownClient = true
	default:
		return nil, ErrNoClient
	}
	return s, nil
}

// Set issues SET with no expiry. Pre-existing keys are overwritten.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, keys.Join(s.ns, key), value, 0).Err()
}

// Get translates the server's absent-key reply (redis.Nil) into
// store.ErrNotFound; every other error propagates unchanged.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, keys.Join(s.ns, key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Delete issues DEL. Removing zero or one keys is equally a success.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, keys.Join(s.ns, key)).Err()
}

// GetAll enumerates the namespace with a SCAN cursor loop and fetches each
// page of keys with one MGET. The result mixes states between cycle start
// and cycle end: a key deleted after its SCAN page but before the MGET
// comes back nil and is skipped rather than failing the enumeration. The
// loop terminates when the server returns the zero cursor.
func (s *Store) GetAll(ctx context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte)
	pattern := keys.Pattern(s.ns)

	var cursor uint64
	for {
		page, next, err := s.rdb.Scan(ctx, cursor, pattern, s.scanCount).Result()
		if err != nil {
			return nil, err
		}

		if len(page) > 0 {
			vals, err := s.rdb.MGet(ctx, page...).Result()
			if err != nil {
				return nil, err
			}
			for i, v := range vals {
				k := keys.Strip(s.ns, page[i])
				switch vv := v.(type) {
				case nil:
					// gone between SCAN and MGET
				case string:
					out[k] = []byte(vv)
				case []byte:
					out[k] = vv
				default:
					out[k] = []byte(fmt.Sprint(vv))
				}
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}
	return out, nil
}

// Close releases the client only when this store owns it (built from Addr,
// or CloseClient set). Repeated calls are no-ops.
func (s *Store) Close(context.Context) error {
	if !s.ownClient {
		return nil
	}
	if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
		return err
	}
	return nil
}
