package las

import (
	"fmt"

	"github.com/robert-malhotra/go-las/internal/binary"
)

// Well-known user ids.
const (
	UserIDSpec       = "LASF_Spec"
	UserIDProjection = "LASF_Projection"
)

// Well-known record ids.
const (
	RecordClassificationLookup uint16 = 0
	RecordTextAreaDescription  uint16 = 3
	RecordExtraBytes           uint16 = 4
	RecordSuperseded           uint16 = 7
	RecordWaveformDescriptor   uint16 = 100 // first of 100..354
	RecordWaveformDescriptorN  uint16 = 354 // last of 100..354
	RecordWaveformData         uint16 = 65535
	RecordMathTransformWKT     uint16 = 2111
	RecordCoordinateSystemWKT  uint16 = 2112
	RecordGeoKeyDirectory      uint16 = 34735
	RecordGeoDoubleParams      uint16 = 34736
	RecordGeoASCIIParams       uint16 = 34737
)

// Record is implemented by every value that encodes itself into a
// caller-supplied buffer: VLRs, EVLRs and point records.
//
// Write returns Size() on success. When dst is shorter than Size() it fails
// with ErrInsufficientBuffer and leaves dst untouched.
type Record interface {
	Size() int
	Write(dst []byte) (int, error)
}

// Payload is the body of a VLR or EVLR. Each record kind is a Payload that
// knows its own user id, record id and encoding.
//
// WritePayload writes exactly PayloadSize() bytes. The framing layer derives
// the header's length field from PayloadSize, so a WritePayload that returns
// a different count is a bug in the kind and panics the writer.
type Payload interface {
	UserID() string
	RecordID() uint16
	PayloadSize() int
	WritePayload(dst []byte) (int, error)
}

// Validator is implemented by payloads with constraints beyond their size.
// Writers call Validate before emitting any byte.
type Validator interface {
	Validate() error
}

// DecodeFunc decodes a payload whose header has already been parsed. The
// record id is passed so that one function can serve a range of ids.
type DecodeFunc func(recordID uint16, data []byte) (Payload, error)

// kindName formats a (user id, record id) pair for messages.
func kindName(userID string, recordID uint16) string {
	return fmt.Sprintf("%s/%d", userID, recordID)
}

// checkDst fails with ErrInsufficientBuffer when dst cannot hold n bytes.
func checkDst(dst []byte, n int, what string) error {
	if len(dst) < n {
		return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrInsufficientBuffer, what, n, len(dst))
	}
	return nil
}

// validate runs p's own checks if it has any.
func validate(p Payload) error {
	if v, ok := p.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// writeRaw copies data to the start of dst.
func writeRaw(dst, data []byte, what string) (int, error) {
	w := binary.NewWriter(dst, binary.DefaultConfig())
	if err := w.WriteBytes(data); err != nil {
		return 0, fmt.Errorf("%s payload: %w", what, err)
	}
	return w.Pos(), nil
}

// writePayload writes p and enforces the size contract.
func writePayload(p Payload, dst []byte) (int, error) {
	n, err := p.WritePayload(dst)
	if err != nil {
		return 0, err
	}
	if n != p.PayloadSize() {
		panic(fmt.Sprintf("las: %s payload wrote %d bytes, declared %d",
			kindName(p.UserID(), p.RecordID()), n, p.PayloadSize()))
	}
	return n, nil
}
