package las

import (
	"fmt"
	"strings"
)

// kindKey identifies a record kind.
type kindKey struct {
	userID   string
	recordID uint16
}

// keyOf builds the lookup key for a user id as stored in a header. Only the
// text before the first NUL names the kind; some writers leave junk in the
// padding after it.
func keyOf(userID string, recordID uint16) kindKey {
	if i := strings.IndexByte(userID, 0); i >= 0 {
		userID = userID[:i]
	}
	return kindKey{userID, recordID}
}

// Registry maps (user id, record id) pairs to payload decoders. VLRs and
// EVLRs have separate tables, so a kind can be limited to one of them.
//
// A Registry is populated during setup and then only read; it does no
// locking of its own.
type Registry struct {
	vlr  map[kindKey]DecodeFunc
	evlr map[kindKey]DecodeFunc
}

// NewRegistry returns an empty registry. Every record decoded through it is
// an *Unknown.
func NewRegistry() *Registry {
	return &Registry{
		vlr:  make(map[kindKey]DecodeFunc),
		evlr: make(map[kindKey]DecodeFunc),
	}
}

// StandardRegistry returns a new registry holding the LAS 1.4 record kinds.
// The result can be extended with further Register calls.
func StandardRegistry() *Registry {
	r := NewRegistry()

	r.Register(UserIDSpec, RecordClassificationLookup, decodeClassificationLookup)
	r.Register(UserIDSpec, RecordTextAreaDescription, decodeTextAreaDescription)
	for id := RecordWaveformDescriptor; id <= RecordWaveformDescriptorN; id++ {
		r.Register(UserIDSpec, id, decodeWaveformPacketDescriptor)
	}
	r.RegisterEVLR(UserIDSpec, RecordWaveformData, decodeWaveformData)

	r.Register(UserIDProjection, RecordGeoKeyDirectory, decodeGeoKeyDirectory)
	r.Register(UserIDProjection, RecordGeoDoubleParams, decodeGeoDoubleParams)
	r.Register(UserIDProjection, RecordGeoASCIIParams, decodeGeoASCIIParams)
	r.Register(UserIDProjection, RecordMathTransformWKT, decodeWKT)
	r.Register(UserIDProjection, RecordCoordinateSystemWKT, decodeWKT)

	return r
}

// standard backs the package-level decode functions.
var standard = StandardRegistry()

// RegisterVLR adds a decoder used only for VLRs.
func (r *Registry) RegisterVLR(userID string, recordID uint16, fn DecodeFunc) {
	r.vlr[keyOf(userID, recordID)] = fn
}

// RegisterEVLR adds a decoder used only for EVLRs.
func (r *Registry) RegisterEVLR(userID string, recordID uint16, fn DecodeFunc) {
	r.evlr[keyOf(userID, recordID)] = fn
}

// Register adds a decoder used for both VLRs and EVLRs.
func (r *Registry) Register(userID string, recordID uint16, fn DecodeFunc) {
	r.RegisterVLR(userID, recordID, fn)
	r.RegisterEVLR(userID, recordID, fn)
}

// LookupVLR returns the VLR decoder for a kind.
func (r *Registry) LookupVLR(userID string, recordID uint16) (DecodeFunc, bool) {
	fn, ok := r.vlr[keyOf(userID, recordID)]
	return fn, ok
}

// LookupEVLR returns the EVLR decoder for a kind.
func (r *Registry) LookupEVLR(userID string, recordID uint16) (DecodeFunc, bool) {
	fn, ok := r.evlr[keyOf(userID, recordID)]
	return fn, ok
}

// decodePayload dispatches data to the decoder in table, falling back to
// Unknown for unregistered kinds. Unknown keeps the user id exactly as read;
// known kinds re-encode with their canonical id.
func decodePayload(table map[kindKey]DecodeFunc, userID string, recordID uint16, data []byte) (Payload, error) {
	fn, ok := table[keyOf(userID, recordID)]
	if !ok {
		return NewUnknown(userID, recordID, data), nil
	}
	p, err := fn(recordID, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kindName(userID, recordID), err)
	}
	return p, nil
}
