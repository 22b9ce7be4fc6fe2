package codec

// Bytes is an identity codec for []byte values; Encode and Decode return
// the input unchanged. Use it when the caller already holds raw payloads
// and only needs the typed API surface.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts between string and []byte. By convention the content is
// UTF-8; no validation is performed.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
