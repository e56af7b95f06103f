package binary

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Writer writes values into a caller-supplied byte slice. It never grows the
// slice: a write that does not fit fails with ErrShortBuffer and leaves the
// slice untouched.
type Writer struct {
	buf        []byte
	order      binary.ByteOrder
	lengthSize int
	pos        int
}

// NewWriter creates a writer over buf with the given configuration.
func NewWriter(buf []byte, cfg Config) *Writer {
	return &Writer{
		buf:        buf,
		order:      cfg.ByteOrder,
		lengthSize: cfg.LengthSize,
		pos:        0,
	}
}

// Pos returns the current write position.
func (w *Writer) Pos() int {
	return w.pos
}

// available returns the number of bytes left in the destination.
func (w *Writer) available() int {
	if w.pos >= len(w.buf) {
		return 0
	}
	return len(w.buf) - w.pos
}

// reserve returns the next n bytes of the destination and advances.
func (w *Writer) reserve(n int) ([]byte, error) {
	if n < 0 || w.pos < 0 || w.available() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, w.pos, w.available())
	}
	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b, nil
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	b, err := w.reserve(len(data))
	if err != nil {
		return err
	}
	copy(b, data)
	return nil
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) error {
	b, err := w.reserve(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// WriteInt8 writes a signed 8-bit integer.
func (w *Writer) WriteInt8(v int8) error {
	return w.WriteUint8(uint8(v))
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	b, err := w.reserve(2)
	if err != nil {
		return err
	}
	w.order.PutUint16(b, v)
	return nil
}

// WriteInt16 writes a signed 16-bit integer.
func (w *Writer) WriteInt16(v int16) error {
	return w.WriteUint16(uint16(v))
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	b, err := w.reserve(4)
	if err != nil {
		return err
	}
	w.order.PutUint32(b, v)
	return nil
}

// WriteInt32 writes a signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteUint64 writes an unsigned 64-bit integer.
func (w *Writer) WriteUint64(v uint64) error {
	b, err := w.reserve(8)
	if err != nil {
		return err
	}
	w.order.PutUint64(b, v)
	return nil
}

// WriteFloat32 writes an IEEE-754 single precision value.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes an IEEE-754 double precision value.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// WriteUintN writes an unsigned integer of n bytes (1, 2, 4, or 8).
func (w *Writer) WriteUintN(v uint64, n int) error {
	if !validSize(n) {
		return ErrInvalidSize
	}
	b, err := w.reserve(n)
	if err != nil {
		return err
	}
	w.encodeUint(b, v, n)
	return nil
}

// WriteLength writes a length value using the configured length size.
func (w *Writer) WriteLength(v uint64) error {
	return w.WriteUintN(v, w.lengthSize)
}

// WriteFixedString writes s into an n-byte field, padding with NUL bytes.
// s must not be longer than n.
func (w *Writer) WriteFixedString(s string, n int) error {
	if len(s) > n {
		return fmt.Errorf("string of %d bytes does not fit a %d-byte field", len(s), n)
	}
	b, err := w.reserve(n)
	if err != nil {
		return err
	}
	copy(b, s)
	clear(b[len(s):])
	return nil
}

// encodeUint encodes a variable-width unsigned integer into a buffer.
func (w *Writer) encodeUint(buf []byte, v uint64, size int) {
	switch size {
	case 1:
		buf[0] = uint8(v)
	case 2:
		w.order.PutUint16(buf, uint16(v))
	case 4:
		w.order.PutUint32(buf, uint32(v))
	default:
		w.order.PutUint64(buf, v)
	}
}

// MaxUint returns the largest unsigned value representable in size bytes.
func MaxUint(size int) uint64 {
	switch size {
	case 1:
		return 0xFF
	case 2:
		return 0xFFFF
	case 4:
		return 0xFFFFFFFF
	default:
		return 0xFFFFFFFFFFFFFFFF
	}
}
