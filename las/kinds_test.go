package las

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// roundTripVLR writes p in a VLR, decodes it with the standard registry and
// returns the decoded payload.
func roundTripVLR(t *testing.T, p Payload) Payload {
	t.Helper()
	v := NewVLR(p, WithDescription("test"))
	buf := make([]byte, v.Size())
	n, err := v.Write(buf)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != v.Size() {
		t.Fatalf("wrote %d, want %d", n, v.Size())
	}
	got, m, err := DecodeVLR(buf)
	if err != nil {
		t.Fatalf("DecodeVLR: %v", err)
	}
	if m != n {
		t.Fatalf("consumed %d, want %d", m, n)
	}

	again := make([]byte, got.Size())
	if _, err := got.Write(again); err != nil {
		t.Fatalf("re-Write: %v", err)
	}
	if diff := cmp.Diff(buf, again); diff != "" {
		t.Errorf("re-encoded bytes differ (-first +second):\n%s", diff)
	}
	return got.Payload
}

func TestRecordKindsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    Payload
	}{
		{"classification lookup", ClassificationLookup{Entries: []ClassificationEntry{
			{Class: 2, Description: "Ground"},
			{Class: 6, Description: "Building"},
			{Class: 9, Description: "fifteen bytes!!"},
		}}},
		{"empty classification lookup", ClassificationLookup{Entries: []ClassificationEntry{}}},
		{"text area", TextAreaDescription{Text: "flown 2024-05-01\x00"}},
		{"waveform descriptor first", WaveformPacketDescriptor{
			Index: 1, BitsPerSample: 8, Samples: 256, TemporalSpacing: 1000,
			DigitizerGain: 0.5, DigitizerOffset: -1.25,
		}},
		{"waveform descriptor last", WaveformPacketDescriptor{Index: 255, Compression: 1}},
		{"geokey directory", NewGeoKeyDirectory(
			GeoKeyEntry{KeyID: 1024, TIFFTagLocation: 0, Count: 1, ValueOffset: 1},
			GeoKeyEntry{KeyID: 3072, TIFFTagLocation: 0, Count: 1, ValueOffset: 32617},
		)},
		{"geo double params", GeoDoubleParams{Values: []float64{6378137, 298.257223563}}},
		{"geo ascii params", GeoASCIIParams{Text: "WGS 84|NAD83|\x00"}},
		{"coordinate system wkt", NewCoordinateSystemWKT(`GEOGCS["WGS 84"]`)},
		{"math transform wkt", NewMathTransformWKT(`PARAM_MT["Affine"]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTripVLR(t, tt.p)
			if diff := cmp.Diff(tt.p, got, cmp.AllowUnexported(WKT{}), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMalformedPayloads(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		recordID uint16
		payload  []byte
	}{
		{"classification not multiple of 16", UserIDSpec, RecordClassificationLookup, make([]byte, 17)},
		{"waveform descriptor short", UserIDSpec, 101, make([]byte, 25)},
		{"geokey directory short", UserIDProjection, RecordGeoKeyDirectory, make([]byte, 6)},
		{"geokey count mismatch", UserIDProjection, RecordGeoKeyDirectory, []byte{1, 0, 1, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"geo doubles not multiple of 8", UserIDProjection, RecordGeoDoubleParams, make([]byte, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeVLR(rawVLR(tt.userID, tt.recordID, "", tt.payload))
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("err = %v, want ErrMalformedRecord", err)
			}
		})
	}
}

func TestWaveformDescriptorRecordID(t *testing.T) {
	for _, idx := range []uint8{1, 2, 128, 255} {
		w := WaveformPacketDescriptor{Index: idx}
		if got, want := w.RecordID(), uint16(idx)+99; got != want {
			t.Errorf("Index %d: RecordID = %d, want %d", idx, got, want)
		}
	}
	if got := (WaveformPacketDescriptor{DigitizerGain: 2, DigitizerOffset: 1}).Volts(3); got != 7 {
		t.Errorf("Volts = %v, want 7", got)
	}
}

func TestClassificationLookup(t *testing.T) {
	c := ClassificationLookup{Entries: []ClassificationEntry{{Class: 2, Description: "Ground"}}}
	if d, ok := c.Lookup(2); !ok || d != "Ground" {
		t.Errorf("Lookup(2) = %q, %v", d, ok)
	}
	if _, ok := c.Lookup(3); ok {
		t.Error("Lookup(3) found an entry")
	}

	bad := ClassificationLookup{Entries: []ClassificationEntry{{Description: "sixteen bytes!!!"}}}
	if err := bad.Validate(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Validate = %v, want ErrMalformedRecord", err)
	}
}

func TestGeoKeyResolve(t *testing.T) {
	dir := NewGeoKeyDirectory(
		GeoKeyEntry{KeyID: 1024, TIFFTagLocation: 0, Count: 1, ValueOffset: 2},
		GeoKeyEntry{KeyID: 2057, TIFFTagLocation: RecordGeoDoubleParams, Count: 1, ValueOffset: 1},
		GeoKeyEntry{KeyID: 1026, TIFFTagLocation: RecordGeoASCIIParams, Count: 7, ValueOffset: 0},
		GeoKeyEntry{KeyID: 3073, TIFFTagLocation: RecordGeoASCIIParams, Count: 6, ValueOffset: 7},
		GeoKeyEntry{KeyID: 9999, TIFFTagLocation: RecordGeoDoubleParams, Count: 4, ValueOffset: 1},
	)
	doubles := GeoDoubleParams{Values: []float64{6378137, 298.257223563}}
	ascii := GeoASCIIParams{Text: "WGS 84|NAD83|\x00"}

	tests := []struct {
		key  uint16
		want GeoKeyValue
	}{
		{1024, GeoKeyValue{Short: 2}},
		{2057, GeoKeyValue{Doubles: []float64{298.257223563}}},
		{1026, GeoKeyValue{ASCII: "WGS 84"}},
		{3073, GeoKeyValue{ASCII: "NAD83"}},
	}
	for _, tt := range tests {
		k, ok := dir.Key(tt.key)
		if !ok {
			t.Fatalf("Key(%d) not found", tt.key)
		}
		got, err := k.Resolve(doubles, ascii)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", tt.key, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Resolve(%d) (-want +got):\n%s", tt.key, diff)
		}
	}

	k, _ := dir.Key(9999)
	if _, err := k.Resolve(doubles, ascii); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("out of range: err = %v, want ErrMalformedRecord", err)
	}
	if _, ok := dir.Key(1); ok {
		t.Error("Key(1) found an entry")
	}
}

func TestWKTText(t *testing.T) {
	w := NewCoordinateSystemWKT(`PROJCS["x"]`)
	if w.Text() != `PROJCS["x"]` {
		t.Errorf("Text = %q", w.Text())
	}
	if w.PayloadSize() != len(`PROJCS["x"]`)+1 {
		t.Errorf("PayloadSize = %d", w.PayloadSize())
	}
	if err := (WKT{}).Validate(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("zero WKT Validate = %v, want ErrMalformedRecord", err)
	}
}
