// Package codec turns caller values into the byte payloads backends store.
// Codecs must round-trip: Decode(Encode(v)) yields an equivalent v.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
