package compress

import (
	"errors"
	"fmt"
)

// ErrUnknownCodec is returned by New for an unsupported codec name.
var ErrUnknownCodec = errors.New("unknown compression codec")

// Compress encodes cached payloads.
type Compress interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

var (
	_ Compress = Nop{}
	_ Compress = GZip{}
	_ Compress = Brotli{}
	_ Compress = LZ4{}
)

// New returns the codec called name: "none", "gzip", "brotli" or "lz4". An empty name selects none.
func New(name string) (Compress, error) {
	switch name {
	case "", "none":
		return NewNop(), nil
	case "gzip":
		return NewGZip(), nil
	case "brotli":
		return NewBrotli(), nil
	case "lz4":
		return NewLZ4(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, name)
	}
}

// Nop stores payloads as they are.
type Nop struct{}

func NewNop() Nop {
	return Nop{}
}

func (Nop) Encode(data []byte) ([]byte, error) {
	return data, nil
}

func (Nop) Decode(data []byte) ([]byte, error) {
	return data, nil
}
