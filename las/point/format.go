package point

import (
	"fmt"
	"sort"

	"github.com/robert-malhotra/go-las/internal/binary"
)

// Format is a LAS point data record format number.
type Format uint8

// Record sizes of the built-in formats.
const (
	Format0Size  = LegacyCoreSize
	Format1Size  = Format0Size + gpsTimeSize
	Format2Size  = Format0Size + colorSize
	Format3Size  = Format1Size + colorSize
	Format4Size  = Format1Size + wavePacketSize
	Format5Size  = Format3Size + wavePacketSize
	Format6Size  = ExtendedCoreSize
	Format7Size  = Format6Size + colorSize
	Format8Size  = Format7Size + nirSize
	Format9Size  = Format6Size + wavePacketSize
	Format10Size = Format8Size + wavePacketSize
)

// Layout describes how to decode and build one point format.
type Layout struct {
	// Size is the fixed record size in bytes.
	Size int

	// Decode parses a point from b, which holds at least Size bytes.
	Decode func(b []byte) (Point, error)

	// Build creates a point of this format from unpacked fields. It may be
	// nil, in which case Convert cannot target the format.
	Build func(f Fields) (Point, error)
}

// layouts maps format numbers to their layouts. It is filled at init and by
// Register during setup, and only read afterwards.
var layouts = map[Format]Layout{
	0:  {Size: Format0Size, Decode: decodeAs(DecodeFormat0), Build: buildFormat0},
	1:  {Size: Format1Size, Decode: decodeAs(DecodeFormat1), Build: buildFormat1},
	2:  {Size: Format2Size, Decode: decodeAs(DecodeFormat2), Build: buildFormat2},
	3:  {Size: Format3Size, Decode: decodeAs(DecodeFormat3), Build: buildFormat3},
	4:  {Size: Format4Size, Decode: decodeAs(DecodeFormat4), Build: buildFormat4},
	5:  {Size: Format5Size, Decode: decodeAs(DecodeFormat5), Build: buildFormat5},
	6:  {Size: Format6Size, Decode: decodeAs(DecodeFormat6), Build: buildFormat6},
	7:  {Size: Format7Size, Decode: decodeAs(DecodeFormat7), Build: buildFormat7},
	8:  {Size: Format8Size, Decode: decodeAs(DecodeFormat8), Build: buildFormat8},
	9:  {Size: Format9Size, Decode: decodeAs(DecodeFormat9), Build: buildFormat9},
	10: {Size: Format10Size, Decode: decodeAs(DecodeFormat10), Build: buildFormat10},
}

// decodeAs adapts a typed decoder to the table's signature.
func decodeAs[P Point](fn func([]byte) (P, error)) func([]byte) (Point, error) {
	return func(b []byte) (Point, error) {
		p, err := fn(b)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// Register adds a point format. Existing formats cannot be replaced.
func Register(f Format, l Layout) error {
	if _, ok := layouts[f]; ok {
		return fmt.Errorf("point format %d is already registered", f)
	}
	if l.Size <= 0 || l.Decode == nil {
		return fmt.Errorf("point format %d: layout needs a positive size and a decoder", f)
	}
	layouts[f] = l
	return nil
}

// Lookup returns the layout of a format.
func Lookup(f Format) (Layout, bool) {
	l, ok := layouts[f]
	return l, ok
}

// Formats returns the registered format numbers in ascending order.
func Formats() []Format {
	out := make([]Format, 0, len(layouts))
	for f := range layouts {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Size returns the record size of f, or 0 if f is not registered.
func (f Format) Size() int {
	return layouts[f].Size
}

func (f Format) String() string {
	return fmt.Sprintf("point format %d", uint8(f))
}

// Decode parses one point of format f from the start of b and returns it
// with the number of bytes consumed.
func Decode(f Format, b []byte) (Point, int, error) {
	l, ok := layouts[f]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	if len(b) < l.Size {
		return nil, 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncatedRecord, f, l.Size, len(b))
	}
	p, err := l.Decode(b[:l.Size])
	if err != nil {
		return nil, 0, err
	}
	return p, l.Size, nil
}

// reader checks that b holds a full record of format f and returns a cursor
// over it.
func reader(f Format, size int, b []byte) (*binary.Reader, error) {
	if len(b) < size {
		return nil, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncatedRecord, f, size, len(b))
	}
	return binary.NewReader(b[:size], binary.DefaultConfig()), nil
}

// writer checks that dst can hold a full record of format f and returns a
// cursor over it. Nothing is written when the check fails.
func writer(f Format, size int, dst []byte) (*binary.Writer, error) {
	if len(dst) < size {
		return nil, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrInsufficientBuffer, f, size, len(dst))
	}
	return binary.NewWriter(dst[:size], binary.DefaultConfig()), nil
}
