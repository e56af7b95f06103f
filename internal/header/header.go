// Package header implements the fixed-size header that precedes the payload
// of every LAS variable length record.
//
// Standard and extended records share the same fields and differ only in the
// width of the payload length: 2 bytes for records in the header area and
// 8 bytes for records stored after the point data. A [Layout] captures that
// single difference; everything else is encoded by the same code.
package header

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-las/internal/binary"
)

// Field sizes shared by both layouts.
const (
	ReservedSize    = 2
	UserIDSize      = 16
	RecordIDSize    = 2
	DescriptionSize = 32
)

// Errors
var (
	ErrMalformed       = errors.New("malformed record header")
	ErrPayloadTooLarge = errors.New("payload too large for record header")
)

// Fields holds the logical content of a record header.
type Fields struct {
	Reserved      uint16
	UserID        string
	RecordID      uint16
	PayloadLength uint64
	Description   string
}

// Layout describes one on-disk header shape.
type Layout struct {
	LengthSize int
}

// The two header shapes defined by LAS 1.4.
var (
	VLR  = Layout{LengthSize: 2}
	EVLR = Layout{LengthSize: 8}
)

// Size returns the encoded header size in bytes.
func (l Layout) Size() int {
	return ReservedSize + UserIDSize + RecordIDSize + l.LengthSize + DescriptionSize
}

// MaxPayload returns the largest payload length the layout can declare.
func (l Layout) MaxPayload() uint64 {
	return binary.MaxUint(l.LengthSize)
}

func (l Layout) config() binary.Config {
	cfg := binary.DefaultConfig()
	cfg.LengthSize = l.LengthSize
	return cfg
}

// Validate checks that f can be encoded with this layout.
func (l Layout) Validate(f Fields) error {
	if err := checkUserID(f.UserID); err != nil {
		return err
	}
	if len(f.Description) > DescriptionSize {
		return fmt.Errorf("%w: description is %d bytes, limit %d", ErrMalformed, len(f.Description), DescriptionSize)
	}
	if f.PayloadLength > l.MaxPayload() {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, f.PayloadLength, l.MaxPayload())
	}
	return nil
}

// Decode parses a header from the start of b and returns the number of bytes
// consumed, which is always l.Size() on success.
func (l Layout) Decode(b []byte) (Fields, int, error) {
	if len(b) < l.Size() {
		return Fields{}, 0, fmt.Errorf("%w: have %d bytes, need %d", ErrMalformed, len(b), l.Size())
	}

	r := binary.NewReader(b[:l.Size()], l.config())

	var f Fields
	var err error
	if f.Reserved, err = r.ReadUint16(); err != nil {
		return Fields{}, 0, err
	}
	if f.UserID, err = r.ReadFixedString(UserIDSize); err != nil {
		return Fields{}, 0, err
	}
	if f.RecordID, err = r.ReadUint16(); err != nil {
		return Fields{}, 0, err
	}
	if f.PayloadLength, err = r.ReadLength(); err != nil {
		return Fields{}, 0, err
	}
	if f.Description, err = r.ReadFixedString(DescriptionSize); err != nil {
		return Fields{}, 0, err
	}

	if err := checkUserID(f.UserID); err != nil {
		return Fields{}, 0, err
	}
	return f, r.Pos(), nil
}

// Encode writes f into dst. Nothing is written unless the whole header fits
// and f is valid.
func (l Layout) Encode(f Fields, dst []byte) (int, error) {
	if len(dst) < l.Size() {
		return 0, fmt.Errorf("%w: record header needs %d bytes, have %d", binary.ErrShortBuffer, l.Size(), len(dst))
	}
	if err := l.Validate(f); err != nil {
		return 0, err
	}

	w := binary.NewWriter(dst[:l.Size()], l.config())
	if err := w.WriteUint16(f.Reserved); err != nil {
		return 0, err
	}
	if err := w.WriteFixedString(f.UserID, UserIDSize); err != nil {
		return 0, err
	}
	if err := w.WriteUint16(f.RecordID); err != nil {
		return 0, err
	}
	if err := w.WriteLength(f.PayloadLength); err != nil {
		return 0, err
	}
	if err := w.WriteFixedString(f.Description, DescriptionSize); err != nil {
		return 0, err
	}
	return w.Pos(), nil
}

// checkUserID enforces the user id rules: at most 16 bytes of ASCII.
func checkUserID(id string) error {
	if len(id) > UserIDSize {
		return fmt.Errorf("%w: user id %q is %d bytes, limit %d", ErrMalformed, id, len(id), UserIDSize)
	}
	for i := 0; i < len(id); i++ {
		if id[i] >= 0x80 {
			return fmt.Errorf("%w: user id has non-ASCII byte 0x%02x at %d", ErrMalformed, id[i], i)
		}
	}
	return nil
}
