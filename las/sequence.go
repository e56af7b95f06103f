package las

import (
	"bytes"
	"fmt"

	"github.com/robert-malhotra/go-las/internal/alloc"
)

// EncodeAll writes recs back to back into dst and returns the total number
// of bytes written. Sizes and record contents are checked for the whole
// sequence first; if any check fails, nothing is written. If a record fails
// while writing, dst is restored to its previous contents.
func EncodeAll(dst []byte, recs ...Record) (int, error) {
	a := alloc.New(0)
	offsets := make([]uint64, len(recs))
	for i, rec := range recs {
		off, err := a.AllocTagged(uint64(rec.Size()), fmt.Sprintf("record %d", i))
		if err != nil {
			return 0, err
		}
		offsets[i] = off
	}
	if !a.Fits(len(dst)) {
		return 0, fmt.Errorf("%w: %d records need %d bytes, have %d",
			ErrInsufficientBuffer, len(recs), a.End(), len(dst))
	}
	for i, rec := range recs {
		if v, ok := rec.(Validator); ok {
			if err := v.Validate(); err != nil {
				return 0, fmt.Errorf("record %d: %w", i, err)
			}
		}
	}

	if err := a.Validate(); err != nil {
		return 0, err
	}

	out := dst[:a.End()]
	saved := bytes.Clone(out)
	for i, rec := range recs {
		off := offsets[i]
		end := off + uint64(rec.Size())
		if _, err := rec.Write(dst[off:end]); err != nil {
			copy(out, saved)
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return len(out), nil
}

// DecodeVLRs decodes n consecutive VLRs from the start of b. It returns the
// records and the number of bytes consumed.
func (r *Registry) DecodeVLRs(b []byte, n int) ([]VLR, int, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: negative record count %d", ErrMalformedHeader, n)
	}
	out := make([]VLR, 0, min(n, len(b)/VLRHeaderSize))
	pos := 0
	for i := 0; i < n; i++ {
		v, m, err := r.DecodeVLR(b[pos:])
		if err != nil {
			return nil, 0, fmt.Errorf("VLR %d at offset %d: %w", i, pos, err)
		}
		out = append(out, v)
		pos += m
	}
	return out, pos, nil
}

// DecodeEVLRs decodes n consecutive EVLRs from the start of b.
func (r *Registry) DecodeEVLRs(b []byte, n int) ([]EVLR, int, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: negative record count %d", ErrMalformedHeader, n)
	}
	out := make([]EVLR, 0, min(n, len(b)/EVLRHeaderSize))
	pos := 0
	for i := 0; i < n; i++ {
		e, m, err := r.DecodeEVLR(b[pos:])
		if err != nil {
			return nil, 0, fmt.Errorf("EVLR %d at offset %d: %w", i, pos, err)
		}
		out = append(out, e)
		pos += m
	}
	return out, pos, nil
}
