// Package alloc plans the placement of consecutive records in a destination
// buffer.
package alloc

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a plan would exceed the addressable range.
var ErrOverflow = errors.New("allocation overflows address range")

// Allocator hands out append-only byte ranges starting at a base offset.
// It is not safe for concurrent use; each encode call owns its allocator.
type Allocator struct {
	// end is the next allocation point
	end uint64

	// base is the first offset that can be allocated
	base uint64

	allocations []Allocation
}

// Allocation represents a single allocation made.
type Allocation struct {
	Offset uint64
	Size   uint64
	Tag    string // Optional tag for error messages
}

// End returns the offset one past the allocation.
func (a Allocation) End() uint64 {
	return a.Offset + a.Size
}

// New creates a new Allocator starting at the given base offset.
func New(base uint64) *Allocator {
	return &Allocator{
		end:  base,
		base: base,
	}
}

// AllocTagged allocates a block of the given size and returns its offset.
// The tag names the block in error messages. Zero-sized blocks share the
// current end offset and are not recorded.
func (a *Allocator) AllocTagged(size uint64, tag string) (uint64, error) {
	if size > math.MaxUint64-a.end {
		return 0, fmt.Errorf("%w: %s needs %d bytes at offset %d", ErrOverflow, tag, size, a.end)
	}
	if size == 0 {
		return a.end, nil
	}

	offset := a.end
	a.end += size
	a.allocations = append(a.allocations, Allocation{
		Offset: offset,
		Size:   size,
		Tag:    tag,
	})
	return offset, nil
}

// End returns the offset one past the last allocation.
func (a *Allocator) End() uint64 {
	return a.end
}

// Fits reports whether every allocation lies within a buffer of size n.
func (a *Allocator) Fits(n int) bool {
	return n >= 0 && a.end <= uint64(n)
}

// Validate checks that allocations don't overlap and are within bounds.
func (a *Allocator) Validate() error {
	for _, alloc := range a.allocations {
		if alloc.Offset < a.base {
			return fmt.Errorf("%s at %d is before base offset %d", alloc.Tag, alloc.Offset, a.base)
		}
		if alloc.End() > a.end {
			return fmt.Errorf("%s at %d size %d extends past end %d", alloc.Tag, alloc.Offset, alloc.Size, a.end)
		}
	}

	// Allocations are append-only, so checking neighbours is enough.
	for i := 1; i < len(a.allocations); i++ {
		prev, cur := a.allocations[i-1], a.allocations[i]
		if cur.Offset < prev.End() {
			return fmt.Errorf("overlapping allocations: %s [%d, size %d] and %s [%d, size %d]",
				prev.Tag, prev.Offset, prev.Size, cur.Tag, cur.Offset, cur.Size)
		}
	}

	return nil
}
