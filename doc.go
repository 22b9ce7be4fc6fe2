// Package polycache is a typed key-value cache over interchangeable
// backends. Callers program against one contract and pick the backend at
// construction time: an in-process map, BigCache, a remote Redis server, or
// a Ristretto-fronted tier over any of them. Swapping one backend for
// another (or for a test double) never touches call sites.
//
// Components:
//   - store.Store: the backend contract. Byte values, no expiry, a single
//     shared ErrNotFound sentinel for absent keys.
//   - Backends: store/memory, store/bigcache, store/redis, store/tiered.
//   - codec.Codec[V]: (de)serializes V <-> []byte (JSON, msgpack, CBOR,
//     protobuf, or identity codecs for raw bytes and strings).
//   - Cache[V]: the typed view this package exposes over a Store + Codec.
//
// A string-valued cache over Redis:
//
//	st, _ := redisstore.New(redisstore.Config{Addr: "localhost:6379", Namespace: "app"})
//	pc, _ := polycache.New[string](polycache.Options[string]{
//	    Store: st,
//	    Codec: codec.String{},
//	})
//	_ = pc.Set(ctx, "greeting", "hello")
//	v, err := pc.Get(ctx, "greeting")
//	if errors.Is(err, polycache.ErrNotFound) { /* miss */ }
//
// Error taxonomy: exactly one condition is contractual, ErrNotFound. Any
// other error from any operation is a backend fault, surfaced verbatim with
// no retries and no fallback between backends.
package polycache
