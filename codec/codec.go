// Package codec wraps the scale codec used for every payload this module signs or hashes.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/spacemeshos/go-scale"
)

// ErrTrailingBytes is returned when a buffer holds more data than the decoded value consumed.
var ErrTrailingBytes = errors.New("codec: trailing bytes after decoding")

// Encodable is an interface that must be implemented by a struct to be encoded.
type Encodable = scale.Encodable

// Decodable is an interface that must be implemented by a struct to be decoded.
type Decodable = scale.Decodable

var encoderPool = sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(128)
		return b
	},
}

func getEncoderBuffer() *bytes.Buffer {
	return encoderPool.Get().(*bytes.Buffer)
}

func putEncoderBuffer(b *bytes.Buffer) {
	b.Reset()
	encoderPool.Put(b)
}

// Encode value to a byte buffer.
func Encode(value Encodable) ([]byte, error) {
	b := getEncoderBuffer()
	defer putEncoderBuffer(b)
	if _, err := value.EncodeScale(scale.NewEncoder(b)); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	buf := make([]byte, b.Len())
	copy(buf, b.Bytes())
	return buf, nil
}

// Decode value from a byte buffer. The whole buffer must be consumed.
func Decode(buf []byte, value Decodable) error {
	n, err := value.DecodeScale(scale.NewDecoder(bytes.NewReader(buf)))
	if err != nil {
		return fmt.Errorf("decode from buffer: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("%w: consumed %d of %d", ErrTrailingBytes, n, len(buf))
	}
	return nil
}
