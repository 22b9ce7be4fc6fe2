package codec

import "fmt"

// Limit wraps another codec to cap the payload size accepted at Decode
// time; Encode forwards to Inner unchanged. MaxDecode <= 0 disables the
// cap.
//
// Typical use: a store shared with other writers, where an oversized entry
// should fail fast instead of being handed to the inner decoder.
type Limit[V any] struct {
	// Inner is the wrapped codec. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted payload length in bytes.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
