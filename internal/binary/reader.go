// Package binary provides the bounds-checked byte cursor used by the LAS
// record and point codecs.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Errors
var (
	// ErrInvalidSize is returned when an invalid length size is specified.
	ErrInvalidSize = errors.New("invalid length size: must be 1, 2, 4, or 8")

	// ErrShortBuffer is returned when a destination cannot hold a value.
	ErrShortBuffer = errors.New("insufficient buffer")

	// ErrTruncated is returned when fewer bytes remain than a read needs.
	ErrTruncated = errors.New("truncated record")
)

// Config holds cursor configuration.
type Config struct {
	ByteOrder  binary.ByteOrder
	LengthSize int // 1, 2, 4, or 8 bytes
}

// DefaultConfig returns the LAS configuration: little-endian with 2-byte
// lengths, as used by variable length record headers.
func DefaultConfig() Config {
	return Config{
		ByteOrder:  binary.LittleEndian,
		LengthSize: 2,
	}
}

// Reader reads little- or big-endian values from a byte slice. Every read is
// bounds-checked against the slice; nothing past len(buf) is ever touched.
type Reader struct {
	buf        []byte
	order      binary.ByteOrder
	lengthSize int
	pos        int
}

// NewReader creates a reader over buf with the given configuration.
func NewReader(buf []byte, cfg Config) *Reader {
	return &Reader{
		buf:        buf,
		order:      cfg.ByteOrder,
		lengthSize: cfg.LengthSize,
		pos:        0,
	}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying slice but has independent position.
func (r *Reader) At(offset int) *Reader {
	return &Reader{
		buf:        r.buf,
		order:      r.order,
		lengthSize: r.lengthSize,
		pos:        offset,
	}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// remaining returns the number of unread bytes.
func (r *Reader) remaining() int {
	if r.pos >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.pos
}

// need checks that n bytes are available at the current position.
func (r *Reader) need(n int) error {
	if n < 0 || r.pos < 0 || r.remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.pos, r.remaining())
	}
	return nil
}

// ReadBytes reads exactly n bytes from the current position.
// The returned slice is a copy and does not alias the reader's buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if err := r.need(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	copy(buf, r.buf[r.pos:r.pos+n])
	r.pos += n
	return buf, nil
}

// next returns the next n bytes without copying and advances.
func (r *Reader) next(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads a signed 8-bit integer.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadInt16 reads a signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

// ReadFloat32 reads an IEEE-754 single precision value.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE-754 double precision value.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadUintN reads an unsigned integer of n bytes (1, 2, 4, or 8).
func (r *Reader) ReadUintN(n int) (uint64, error) {
	if !validSize(n) {
		return 0, ErrInvalidSize
	}
	b, err := r.next(n)
	if err != nil {
		return 0, err
	}
	return r.decodeUint(b, n), nil
}

// ReadLength reads a length value using the configured length size.
func (r *Reader) ReadLength() (uint64, error) {
	return r.ReadUintN(r.lengthSize)
}

// ReadFixedString reads an n-byte, NUL padded text field. Only trailing NUL
// bytes are removed, so bytes after an interior NUL survive a round trip.
func (r *Reader) ReadFixedString(n int) (string, error) {
	b, err := r.next(n)
	if err != nil {
		return "", err
	}
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end]), nil
}

// decodeUint decodes a variable-width unsigned integer.
func (r *Reader) decodeUint(buf []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(r.order.Uint16(buf))
	case 4:
		return uint64(r.order.Uint32(buf))
	default:
		return r.order.Uint64(buf)
	}
}

func validSize(n int) bool {
	return n == 1 || n == 2 || n == 4 || n == 8
}
