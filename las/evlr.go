package las

import (
	"fmt"

	"github.com/robert-malhotra/go-las/internal/header"
)

// EVLR is an extended variable length record, stored after the point data.
// It has the same shape as VLR but a 64-bit payload length, so payloads such
// as waveform data can exceed 64 KiB. An EVLR is never written with a VLR
// header or decoded by the VLR path.
type EVLR struct {
	Reserved    uint16
	Description string
	Payload     Payload
}

var _ Record = EVLR{}

// NewEVLR wraps a payload in an EVLR.
func NewEVLR(p Payload, opts ...Option) EVLR {
	o := defaultRecordOptions()
	for _, opt := range opts {
		opt(o)
	}
	return EVLR{
		Reserved:    o.reserved,
		Description: o.description,
		Payload:     p,
	}
}

// Header returns the header Write would emit.
func (e EVLR) Header() EVLRHeader {
	return EVLRHeader{
		Reserved:      e.Reserved,
		UserID:        e.Payload.UserID(),
		RecordID:      e.Payload.RecordID(),
		PayloadLength: uint64(e.Payload.PayloadSize()),
		Description:   e.Description,
	}
}

// Size returns the encoded size: header plus payload.
func (e EVLR) Size() int {
	return EVLRHeaderSize + e.Payload.PayloadSize()
}

// Write encodes the header and payload into dst.
func (e EVLR) Write(dst []byte) (int, error) {
	return frame(header.EVLR, e.Header().fields(), e.Payload, dst)
}

// Validate reports whether Write would reject e for any reason other than
// the destination size.
func (e EVLR) Validate() error {
	return validateFrame(header.EVLR, e.Header().fields(), e.Payload)
}

// WithDescription returns a copy of e with a new description.
func (e EVLR) WithDescription(s string) EVLR {
	e.Description = s
	return e
}

// WithPayload returns a copy of e carrying p.
func (e EVLR) WithPayload(p Payload) EVLR {
	e.Payload = p
	return e
}

func (e EVLR) String() string {
	return fmt.Sprintf("EVLR %s (%d bytes) %q", kindName(e.Payload.UserID(), e.Payload.RecordID()), e.Payload.PayloadSize(), e.Description)
}
