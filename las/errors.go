package las

import (
	"errors"

	"github.com/robert-malhotra/go-las/internal/binary"
	"github.com/robert-malhotra/go-las/internal/header"
)

// Common errors
var (
	// ErrInsufficientBuffer means a destination slice is too small for an
	// atomic write. Nothing was written; retry with a larger buffer.
	ErrInsufficientBuffer = binary.ErrShortBuffer

	// ErrTruncatedRecord means the input is shorter than the record declares.
	ErrTruncatedRecord = binary.ErrTruncated

	// ErrMalformedHeader means a record header is too short or violates the
	// user id / description constraints.
	ErrMalformedHeader = header.ErrMalformed

	// ErrPayloadTooLarge means a payload does not fit the header's length field.
	ErrPayloadTooLarge = header.ErrPayloadTooLarge

	// ErrMalformedRecord means the payload of a known record kind is
	// inconsistent with that kind's layout.
	ErrMalformedRecord = errors.New("malformed record payload")
)
