package las

import (
	"fmt"
)

// DecodeVLR decodes one VLR from the start of b using the standard registry.
// It returns the record and the number of bytes consumed (header + payload).
func DecodeVLR(b []byte) (VLR, int, error) {
	return standard.DecodeVLR(b)
}

// DecodeEVLR decodes one EVLR from the start of b using the standard registry.
func DecodeEVLR(b []byte) (EVLR, int, error) {
	return standard.DecodeEVLR(b)
}

// DecodeVLR decodes one VLR from the start of b.
func (r *Registry) DecodeVLR(b []byte) (VLR, int, error) {
	h, n, err := DecodeVLRHeader(b)
	if err != nil {
		return VLR{}, 0, err
	}
	end := n + int(h.PayloadLength)
	if len(b) < end {
		return VLR{}, 0, fmt.Errorf("%w: %s payload declares %d bytes, have %d",
			ErrTruncatedRecord, kindName(h.UserID, h.RecordID), h.PayloadLength, len(b)-n)
	}
	v, err := r.DecodeVLRPayload(h, b[n:end])
	if err != nil {
		return VLR{}, 0, err
	}
	return v, end, nil
}

// DecodeVLRPayload builds a VLR from an already parsed header and exactly
// h.PayloadLength bytes of payload.
func (r *Registry) DecodeVLRPayload(h VLRHeader, payload []byte) (VLR, error) {
	if len(payload) != int(h.PayloadLength) {
		return VLR{}, payloadLengthError(h.UserID, h.RecordID, uint64(h.PayloadLength), len(payload))
	}
	p, err := decodePayload(r.vlr, h.UserID, h.RecordID, payload)
	if err != nil {
		return VLR{}, err
	}
	return VLR{
		Reserved:    h.Reserved,
		Description: h.Description,
		Payload:     p,
	}, nil
}

// DecodeEVLR decodes one EVLR from the start of b.
func (r *Registry) DecodeEVLR(b []byte) (EVLR, int, error) {
	h, n, err := DecodeEVLRHeader(b)
	if err != nil {
		return EVLR{}, 0, err
	}
	if h.PayloadLength > uint64(len(b)-n) {
		return EVLR{}, 0, fmt.Errorf("%w: %s payload declares %d bytes, have %d",
			ErrTruncatedRecord, kindName(h.UserID, h.RecordID), h.PayloadLength, len(b)-n)
	}
	end := n + int(h.PayloadLength)
	e, err := r.DecodeEVLRPayload(h, b[n:end])
	if err != nil {
		return EVLR{}, 0, err
	}
	return e, end, nil
}

// DecodeEVLRPayload builds an EVLR from an already parsed header and exactly
// h.PayloadLength bytes of payload.
func (r *Registry) DecodeEVLRPayload(h EVLRHeader, payload []byte) (EVLR, error) {
	if uint64(len(payload)) != h.PayloadLength {
		return EVLR{}, payloadLengthError(h.UserID, h.RecordID, h.PayloadLength, len(payload))
	}
	p, err := decodePayload(r.evlr, h.UserID, h.RecordID, payload)
	if err != nil {
		return EVLR{}, err
	}
	return EVLR{
		Reserved:    h.Reserved,
		Description: h.Description,
		Payload:     p,
	}, nil
}

func payloadLengthError(userID string, recordID uint16, declared uint64, have int) error {
	if uint64(have) < declared {
		return fmt.Errorf("%w: %s payload declares %d bytes, have %d",
			ErrTruncatedRecord, kindName(userID, recordID), declared, have)
	}
	return fmt.Errorf("%w: %s payload declares %d bytes, got %d",
		ErrMalformedRecord, kindName(userID, recordID), declared, have)
}
