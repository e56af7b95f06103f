package las

import (
	"encoding/binary"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a test record kind: a single little-endian uint32.
type counter struct {
	n uint32
}

func (counter) UserID() string   { return "test" }
func (counter) RecordID() uint16 { return 9 }
func (counter) PayloadSize() int { return 4 }

func (c counter) WritePayload(dst []byte) (int, error) {
	if err := checkDst(dst, 4, "counter"); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint32(dst, c.n)
	return 4, nil
}

func decodeCounter(_ uint16, data []byte) (Payload, error) {
	if len(data) != 4 {
		return nil, fmt.Errorf("%w: counter is %d bytes", ErrMalformedRecord, len(data))
	}
	return counter{n: binary.LittleEndian.Uint32(data)}, nil
}

func TestRegistryCustomKind(t *testing.T) {
	r := StandardRegistry()
	r.Register("test", 9, decodeCounter)

	v := NewVLR(counter{n: 0xCAFE})
	buf := make([]byte, v.Size())
	_, err := v.Write(buf)
	require.NoError(t, err)

	got, _, err := r.DecodeVLR(buf)
	require.NoError(t, err)
	assert.Equal(t, counter{n: 0xCAFE}, got.Payload)

	// The standard registry is untouched.
	std, _, err := DecodeVLR(buf)
	require.NoError(t, err)
	assert.IsType(t, Unknown{}, std.Payload)
}

func TestRegistryTablesAreSeparate(t *testing.T) {
	r := NewRegistry()
	r.RegisterEVLR("test", 9, decodeCounter)

	_, ok := r.LookupVLR("test", 9)
	assert.False(t, ok)
	_, ok = r.LookupEVLR("test", 9)
	assert.True(t, ok)

	payload := []byte{1, 0, 0, 0}
	v, _, err := r.DecodeVLR(rawVLR("test", 9, "", payload))
	require.NoError(t, err)
	assert.IsType(t, Unknown{}, v.Payload)

	e, _, err := r.DecodeEVLR(rawEVLR("test", 9, "", payload))
	require.NoError(t, err)
	assert.Equal(t, counter{n: 1}, e.Payload)
}

func TestRegistryDecoderError(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 9, decodeCounter)

	_, _, err := r.DecodeVLR(rawVLR("test", 9, "", []byte{1, 2}))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestStandardRegistryKinds(t *testing.T) {
	r := StandardRegistry()
	both := []struct {
		userID   string
		recordID uint16
	}{
		{UserIDSpec, RecordClassificationLookup},
		{UserIDSpec, RecordTextAreaDescription},
		{UserIDSpec, RecordWaveformDescriptor},
		{UserIDSpec, 200},
		{UserIDSpec, RecordWaveformDescriptorN},
		{UserIDProjection, RecordGeoKeyDirectory},
		{UserIDProjection, RecordGeoDoubleParams},
		{UserIDProjection, RecordGeoASCIIParams},
		{UserIDProjection, RecordMathTransformWKT},
		{UserIDProjection, RecordCoordinateSystemWKT},
	}
	for _, k := range both {
		_, okV := r.LookupVLR(k.userID, k.recordID)
		_, okE := r.LookupEVLR(k.userID, k.recordID)
		if !okV || !okE {
			t.Errorf("%s: VLR %v EVLR %v, want both", kindName(k.userID, k.recordID), okV, okE)
		}
	}

	if _, ok := r.LookupVLR(UserIDSpec, RecordWaveformData); ok {
		t.Error("waveform data registered for VLRs")
	}
	if _, ok := r.LookupVLR(UserIDSpec, RecordExtraBytes); ok {
		t.Error("extra bytes should decode as Unknown")
	}
	if _, ok := r.LookupVLR(UserIDSpec, 99); ok {
		t.Error("record 99 registered")
	}
}

func TestDecodeVLRPayloadLength(t *testing.T) {
	h := VLRHeader{UserID: "test", RecordID: 1, PayloadLength: 4}

	_, err := standard.DecodeVLRPayload(h, []byte{1, 2, 3})
	if !errors.Is(err, ErrTruncatedRecord) {
		t.Errorf("short: err = %v, want ErrTruncatedRecord", err)
	}
	_, err = standard.DecodeVLRPayload(h, []byte{1, 2, 3, 4, 5})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("long: err = %v, want ErrMalformedRecord", err)
	}

	v, err := standard.DecodeVLRPayload(h, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("DecodeVLRPayload: %v", err)
	}
	if v.Header() != h {
		t.Errorf("Header = %+v, want %+v", v.Header(), h)
	}

	eh := EVLRHeader{UserID: "test", RecordID: 1, PayloadLength: 2}
	e, err := standard.DecodeEVLRPayload(eh, []byte{7, 8})
	if err != nil {
		t.Fatalf("DecodeEVLRPayload: %v", err)
	}
	if e.Header() != eh {
		t.Errorf("Header = %+v, want %+v", e.Header(), eh)
	}
}

func TestRegistryIgnoresUserIDPadding(t *testing.T) {
	entry := make([]byte, 16)
	entry[0] = 2
	copy(entry[1:], "Ground")

	in := rawVLR("LASF_Spec\x00\x00junk", RecordClassificationLookup, "", entry)
	v, _, err := DecodeVLR(in)
	require.NoError(t, err)
	c, ok := v.Payload.(ClassificationLookup)
	require.True(t, ok, "payload is %T, want ClassificationLookup", v.Payload)
	desc, ok := c.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, "Ground", desc)
	assert.Equal(t, UserIDSpec, v.Header().UserID)

	// Unregistered kinds keep the padding so they re-encode byte for byte.
	in = rawVLR("vendor\x00xy", 5, "", []byte{1, 2})
	v, _, err = DecodeVLR(in)
	require.NoError(t, err)
	assert.Equal(t, "vendor\x00xy", v.Header().UserID)
	out := make([]byte, v.Size())
	_, err = v.Write(out)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
