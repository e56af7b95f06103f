package las

import (
	"github.com/robert-malhotra/go-las/internal/header"
)

// Header sizes in bytes.
const (
	VLRHeaderSize  = 54
	EVLRHeaderSize = 60

	// MaxVLRPayload is the largest payload a VLR header can declare.
	MaxVLRPayload = 65535
)

// VLRHeader is the 54-byte header of a variable length record.
//
// Layout: reserved (2), user id (16, NUL padded), record id (2),
// payload length (2), description (32, NUL padded).
type VLRHeader struct {
	Reserved      uint16
	UserID        string
	RecordID      uint16
	PayloadLength uint16
	Description   string
}

// EVLRHeader is the 60-byte header of an extended variable length record.
// It differs from VLRHeader only in the 8-byte payload length.
type EVLRHeader struct {
	Reserved      uint16
	UserID        string
	RecordID      uint16
	PayloadLength uint64
	Description   string
}

// DecodeVLRHeader parses a VLR header from the start of b.
// It fails with ErrMalformedHeader if b is shorter than VLRHeaderSize or the
// user id is not ASCII.
func DecodeVLRHeader(b []byte) (VLRHeader, int, error) {
	f, n, err := header.VLR.Decode(b)
	if err != nil {
		return VLRHeader{}, 0, err
	}
	return VLRHeader{
		Reserved:      f.Reserved,
		UserID:        f.UserID,
		RecordID:      f.RecordID,
		PayloadLength: uint16(f.PayloadLength),
		Description:   f.Description,
	}, n, nil
}

// Encode writes h into dst and returns VLRHeaderSize. It fails with
// ErrInsufficientBuffer if dst is too small and ErrMalformedHeader if a text
// field is too long or the user id is not ASCII; nothing is written on failure.
func (h VLRHeader) Encode(dst []byte) (int, error) {
	return header.VLR.Encode(h.fields(), dst)
}

func (h VLRHeader) fields() header.Fields {
	return header.Fields{
		Reserved:      h.Reserved,
		UserID:        h.UserID,
		RecordID:      h.RecordID,
		PayloadLength: uint64(h.PayloadLength),
		Description:   h.Description,
	}
}

// DecodeEVLRHeader parses an EVLR header from the start of b.
func DecodeEVLRHeader(b []byte) (EVLRHeader, int, error) {
	f, n, err := header.EVLR.Decode(b)
	if err != nil {
		return EVLRHeader{}, 0, err
	}
	return EVLRHeader{
		Reserved:      f.Reserved,
		UserID:        f.UserID,
		RecordID:      f.RecordID,
		PayloadLength: f.PayloadLength,
		Description:   f.Description,
	}, n, nil
}

// Encode writes h into dst and returns EVLRHeaderSize.
func (h EVLRHeader) Encode(dst []byte) (int, error) {
	return header.EVLR.Encode(h.fields(), dst)
}

func (h EVLRHeader) fields() header.Fields {
	return header.Fields{
		Reserved:      h.Reserved,
		UserID:        h.UserID,
		RecordID:      h.RecordID,
		PayloadLength: h.PayloadLength,
		Description:   h.Description,
	}
}
