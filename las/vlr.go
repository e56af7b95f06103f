package las

import (
	"bytes"
	"fmt"

	"github.com/robert-malhotra/go-las/internal/header"
)

// VLR is a variable length record stored in the header area of a LAS file.
//
// A VLR is a value: its header is derived from Payload on demand, so the
// declared payload length always matches what Write emits. Write always
// emits the header followed by the payload.
type VLR struct {
	Reserved    uint16
	Description string
	Payload     Payload
}

var _ Record = VLR{}

// NewVLR wraps a payload in a VLR.
func NewVLR(p Payload, opts ...Option) VLR {
	o := defaultRecordOptions()
	for _, opt := range opts {
		opt(o)
	}
	return VLR{
		Reserved:    o.reserved,
		Description: o.description,
		Payload:     p,
	}
}

// Header returns the header Write would emit. The payload length saturates
// at MaxVLRPayload; Write rejects payloads larger than that.
func (v VLR) Header() VLRHeader {
	n := v.Payload.PayloadSize()
	if n > MaxVLRPayload {
		n = MaxVLRPayload
	}
	return VLRHeader{
		Reserved:      v.Reserved,
		UserID:        v.Payload.UserID(),
		RecordID:      v.Payload.RecordID(),
		PayloadLength: uint16(n),
		Description:   v.Description,
	}
}

// Size returns the encoded size: header plus payload.
func (v VLR) Size() int {
	return VLRHeaderSize + v.Payload.PayloadSize()
}

// Write encodes the header and payload into dst.
func (v VLR) Write(dst []byte) (int, error) {
	return frame(header.VLR, v.fields(), v.Payload, dst)
}

// Validate reports whether Write would reject v for any reason other than
// the destination size.
func (v VLR) Validate() error {
	return validateFrame(header.VLR, v.fields(), v.Payload)
}

// WithDescription returns a copy of v with a new description.
func (v VLR) WithDescription(s string) VLR {
	v.Description = s
	return v
}

// WithPayload returns a copy of v carrying p.
func (v VLR) WithPayload(p Payload) VLR {
	v.Payload = p
	return v
}

func (v VLR) String() string {
	return fmt.Sprintf("VLR %s (%d bytes) %q", kindName(v.Payload.UserID(), v.Payload.RecordID()), v.Payload.PayloadSize(), v.Description)
}

func (v VLR) fields() header.Fields {
	return header.Fields{
		Reserved:      v.Reserved,
		UserID:        v.Payload.UserID(),
		RecordID:      v.Payload.RecordID(),
		PayloadLength: uint64(v.Payload.PayloadSize()),
		Description:   v.Description,
	}
}

// frame writes a header of the given layout followed by p. Every check runs
// before the first byte is written. The payload goes first and the header
// only after it succeeded; a failing payload leaves dst as it was.
func frame(l header.Layout, f header.Fields, p Payload, dst []byte) (int, error) {
	n := l.Size()
	total := n + p.PayloadSize()
	if err := checkDst(dst, total, kindName(f.UserID, f.RecordID)+" record"); err != nil {
		return 0, err
	}
	if err := validateFrame(l, f, p); err != nil {
		return 0, err
	}

	body := dst[n:total]
	saved := bytes.Clone(body)
	m, err := writePayload(p, body)
	if err != nil {
		copy(body, saved)
		return 0, err
	}
	if _, err := l.Encode(f, dst); err != nil {
		copy(body, saved)
		return 0, err
	}
	return n + m, nil
}

func validateFrame(l header.Layout, f header.Fields, p Payload) error {
	if err := l.Validate(f); err != nil {
		return err
	}
	return validate(p)
}
