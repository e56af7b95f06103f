package point

import (
	"fmt"
)

// Convert re-shapes p into format f. Core attributes carry over; optional
// fields the target lacks are dropped and ones it adds are zero. It fails
// with ErrOutOfRange when an attribute does not fit the target, for example
// return number 9 going to a legacy format.
func Convert(p Point, f Format) (Point, error) {
	l, ok := layouts[f]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	if l.Build == nil {
		return nil, fmt.Errorf("%w: %s cannot be built from fields", ErrUnknownFormat, f)
	}
	if p.Format() == f {
		return p, nil
	}
	q, err := l.Build(FieldsOf(p))
	if err != nil {
		return nil, fmt.Errorf("converting %s to %s: %w", p.Format(), f, err)
	}
	return q, nil
}

// Build creates a point of format f from unpacked fields.
func Build(f Format, fields Fields) (Point, error) {
	l, ok := layouts[f]
	if !ok || l.Build == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	return l.Build(fields)
}
