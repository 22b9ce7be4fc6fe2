package polycache

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/polycache/store"
)

type cache[V any] struct {
	store store.Store
	codec Codec[V]
	log   Logger
	hooks Hooks
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("polycache: store is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("polycache: codec is required")
	}

	c := &cache[V]{
		store: opts.Store,
		codec: opts.Codec,
		log:   opts.Logger,
		hooks: opts.Hooks,
	}
	if c.log == nil {
		c.log = NopLogger{}
	}
	if c.hooks == nil {
		c.hooks = NopHooks{}
	}
	return c, nil
}

func (c *cache[V]) Set(ctx context.Context, key string, value V) error {
	payload, err := c.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("polycache: encode %q: %w", key, err)
	}
	return c.store.Set(ctx, key, payload)
}

func (c *cache[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		return zero, err // ErrNotFound or a backend fault, verbatim
	}
	v, err := c.codec.Decode(raw)
	if err != nil {
		// self-heal: an undecodable payload is as good as absent
		_ = c.store.Delete(ctx, key)
		c.hooks.SelfHeal(key, "decode")
		c.log.Debug("dropped undecodable entry", Fields{"key": key, "err": err})
		return zero, store.ErrNotFound
	}
	return v, nil
}

func (c *cache[V]) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

func (c *cache[V]) GetAll(ctx context.Context) (map[string]V, error) {
	raw, err := c.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]V, len(raw))
	for k, b := range raw {
		v, err := c.codec.Decode(b)
		if err != nil {
			c.hooks.EntrySkipped(k, "decode")
			c.log.Warn("skipping undecodable entry in enumeration", Fields{"key": k, "err": err})
			continue
		}
		out[k] = v
	}
	return out, nil
}

func (c *cache[V]) Close(ctx context.Context) error {
	return c.store.Close(ctx)
}
