package las

import (
	"fmt"
	"strings"
)

// WKT is an OGC well-known-text record: LASF_Projection/2112 for the
// coordinate system or LASF_Projection/2111 for a math transform. The
// payload is kept as read, usually with a terminating NUL.
type WKT struct {
	id  uint16
	raw string
}

// NewCoordinateSystemWKT returns a 2112 record holding text plus a NUL
// terminator.
func NewCoordinateSystemWKT(text string) WKT {
	return WKT{id: RecordCoordinateSystemWKT, raw: text + "\x00"}
}

// NewMathTransformWKT returns a 2111 record holding text plus a NUL
// terminator.
func NewMathTransformWKT(text string) WKT {
	return WKT{id: RecordMathTransformWKT, raw: text + "\x00"}
}

func (WKT) UserID() string     { return UserIDProjection }
func (w WKT) RecordID() uint16 { return w.id }
func (w WKT) PayloadSize() int { return len(w.raw) }

// Text returns the WKT string without trailing NULs.
func (w WKT) Text() string {
	return strings.TrimRight(w.raw, "\x00")
}

// Validate rejects a zero WKT whose record id was never set.
func (w WKT) Validate() error {
	if w.id != RecordCoordinateSystemWKT && w.id != RecordMathTransformWKT {
		return fmt.Errorf("%w: record id %d is not a WKT record", ErrMalformedRecord, w.id)
	}
	return nil
}

// WritePayload writes the WKT bytes, including the NUL terminator.
func (w WKT) WritePayload(dst []byte) (int, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return writeRaw(dst, []byte(w.raw), "wkt")
}

func decodeWKT(recordID uint16, data []byte) (Payload, error) {
	w := WKT{id: recordID, raw: string(data)}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
