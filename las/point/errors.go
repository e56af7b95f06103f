package point

import (
	"errors"

	"github.com/robert-malhotra/go-las/internal/binary"
)

// Errors
var (
	// ErrInsufficientBuffer means dst is smaller than the point size.
	// Nothing was written.
	ErrInsufficientBuffer = binary.ErrShortBuffer

	// ErrTruncatedRecord means fewer bytes than the point size were given.
	ErrTruncatedRecord = binary.ErrTruncated

	// ErrUnknownFormat means no layout is registered for a format number.
	ErrUnknownFormat = errors.New("unknown point format")

	// ErrOutOfRange means a value does not fit the target format's field.
	ErrOutOfRange = errors.New("value out of range for point format")
)
