package las

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-las/internal/binary"
)

const geoKeyEntrySize = 8

// GeoKeyEntry is one key of a GeoKeyDirectory. TIFFTagLocation says where
// the value lives: 0 means ValueOffset is the value itself, 34736 and 34737
// point into the GeoDoubleParams and GeoASCIIParams records.
type GeoKeyEntry struct {
	KeyID           uint16
	TIFFTagLocation uint16
	Count           uint16
	ValueOffset     uint16
}

// GeoKeyValue is a resolved key value. Exactly one field is meaningful,
// chosen by the entry's TIFFTagLocation.
type GeoKeyValue struct {
	Short   uint16
	Doubles []float64
	ASCII   string
}

// Resolve looks up the value of e in the parameter records.
func (e GeoKeyEntry) Resolve(doubles GeoDoubleParams, ascii GeoASCIIParams) (GeoKeyValue, error) {
	off, end := int(e.ValueOffset), int(e.ValueOffset)+int(e.Count)
	switch e.TIFFTagLocation {
	case 0:
		return GeoKeyValue{Short: e.ValueOffset}, nil
	case RecordGeoDoubleParams:
		if end > len(doubles.Values) {
			return GeoKeyValue{}, fmt.Errorf("%w: geokey %d reads doubles %d..%d of %d",
				ErrMalformedRecord, e.KeyID, off, end, len(doubles.Values))
		}
		return GeoKeyValue{Doubles: append([]float64(nil), doubles.Values[off:end]...)}, nil
	case RecordGeoASCIIParams:
		if end > len(ascii.Text) {
			return GeoKeyValue{}, fmt.Errorf("%w: geokey %d reads ascii %d..%d of %d",
				ErrMalformedRecord, e.KeyID, off, end, len(ascii.Text))
		}
		// Values in the ASCII record are terminated by '|'.
		return GeoKeyValue{ASCII: strings.TrimRight(ascii.Text[off:end], "|\x00")}, nil
	default:
		return GeoKeyValue{}, fmt.Errorf("%w: geokey %d has unknown tag location %d",
			ErrMalformedRecord, e.KeyID, e.TIFFTagLocation)
	}
}

// GeoKeyDirectory is the LASF_Projection/34735 record, a GeoTIFF key
// directory. It is a header of four shorts followed by one 8-byte entry per
// key.
type GeoKeyDirectory struct {
	KeyDirectoryVersion uint16
	KeyRevision         uint16
	MinorRevision       uint16
	Keys                []GeoKeyEntry
}

// NewGeoKeyDirectory returns a version 1.1.0 directory holding keys.
func NewGeoKeyDirectory(keys ...GeoKeyEntry) GeoKeyDirectory {
	return GeoKeyDirectory{
		KeyDirectoryVersion: 1,
		KeyRevision:         1,
		MinorRevision:       0,
		Keys:                keys,
	}
}

func (GeoKeyDirectory) UserID() string   { return UserIDProjection }
func (GeoKeyDirectory) RecordID() uint16 { return RecordGeoKeyDirectory }

func (g GeoKeyDirectory) PayloadSize() int {
	return geoKeyEntrySize * (1 + len(g.Keys))
}

// Validate checks that the key count fits the header's count field.
func (g GeoKeyDirectory) Validate() error {
	if len(g.Keys) > 0xFFFF {
		return fmt.Errorf("%w: geokey directory has %d keys", ErrMalformedRecord, len(g.Keys))
	}
	return nil
}

// Key returns the entry with the given key id.
func (g GeoKeyDirectory) Key(id uint16) (GeoKeyEntry, bool) {
	for _, k := range g.Keys {
		if k.KeyID == id {
			return k, true
		}
	}
	return GeoKeyEntry{}, false
}

// WritePayload writes the directory header followed by one 8-byte entry
// per key.
func (g GeoKeyDirectory) WritePayload(dst []byte) (int, error) {
	if err := checkDst(dst, g.PayloadSize(), "geokey directory"); err != nil {
		return 0, err
	}
	if err := g.Validate(); err != nil {
		return 0, err
	}
	w := binary.NewWriter(dst, binary.DefaultConfig())
	w.WriteUint16(g.KeyDirectoryVersion)
	w.WriteUint16(g.KeyRevision)
	w.WriteUint16(g.MinorRevision)
	w.WriteUint16(uint16(len(g.Keys)))
	for _, k := range g.Keys {
		w.WriteUint16(k.KeyID)
		w.WriteUint16(k.TIFFTagLocation)
		w.WriteUint16(k.Count)
		w.WriteUint16(k.ValueOffset)
	}
	return w.Pos(), nil
}

func decodeGeoKeyDirectory(_ uint16, data []byte) (Payload, error) {
	if len(data) < geoKeyEntrySize {
		return nil, fmt.Errorf("%w: geokey directory is %d bytes, need at least %d",
			ErrMalformedRecord, len(data), geoKeyEntrySize)
	}
	r := binary.NewReader(data, binary.DefaultConfig())
	g := GeoKeyDirectory{}
	g.KeyDirectoryVersion, _ = r.ReadUint16()
	g.KeyRevision, _ = r.ReadUint16()
	g.MinorRevision, _ = r.ReadUint16()
	n, _ := r.ReadUint16()

	if want := geoKeyEntrySize * (1 + int(n)); len(data) != want {
		return nil, fmt.Errorf("%w: geokey directory declares %d keys (%d bytes), payload is %d bytes",
			ErrMalformedRecord, n, want, len(data))
	}

	g.Keys = make([]GeoKeyEntry, n)
	for i := range g.Keys {
		k := &g.Keys[i]
		k.KeyID, _ = r.ReadUint16()
		k.TIFFTagLocation, _ = r.ReadUint16()
		k.Count, _ = r.ReadUint16()
		k.ValueOffset, _ = r.ReadUint16()
	}
	return g, nil
}

// GeoDoubleParams is the LASF_Projection/34736 record: an array of doubles
// referenced by GeoKeyDirectory entries.
type GeoDoubleParams struct {
	Values []float64
}

func (GeoDoubleParams) UserID() string     { return UserIDProjection }
func (GeoDoubleParams) RecordID() uint16   { return RecordGeoDoubleParams }
func (p GeoDoubleParams) PayloadSize() int { return 8 * len(p.Values) }

// WritePayload writes the values as little-endian float64s.
func (p GeoDoubleParams) WritePayload(dst []byte) (int, error) {
	if err := checkDst(dst, p.PayloadSize(), "geo double params"); err != nil {
		return 0, err
	}
	w := binary.NewWriter(dst, binary.DefaultConfig())
	for _, v := range p.Values {
		w.WriteFloat64(v)
	}
	return w.Pos(), nil
}

func decodeGeoDoubleParams(_ uint16, data []byte) (Payload, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("%w: geo double params length %d is not a multiple of 8",
			ErrMalformedRecord, len(data))
	}
	r := binary.NewReader(data, binary.DefaultConfig())
	p := GeoDoubleParams{Values: make([]float64, len(data)/8)}
	for i := range p.Values {
		p.Values[i], _ = r.ReadFloat64()
	}
	return p, nil
}

// GeoASCIIParams is the LASF_Projection/34737 record: '|'-terminated
// strings referenced by GeoKeyDirectory entries. The text is kept as read.
type GeoASCIIParams struct {
	Text string
}

func (GeoASCIIParams) UserID() string     { return UserIDProjection }
func (GeoASCIIParams) RecordID() uint16   { return RecordGeoASCIIParams }
func (p GeoASCIIParams) PayloadSize() int { return len(p.Text) }

// WritePayload writes the text as is, '|' separators and NULs included.
func (p GeoASCIIParams) WritePayload(dst []byte) (int, error) {
	return writeRaw(dst, []byte(p.Text), "geo ascii params")
}

func decodeGeoASCIIParams(_ uint16, data []byte) (Payload, error) {
	return GeoASCIIParams{Text: string(data)}, nil
}
