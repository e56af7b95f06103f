package point

import (
	"fmt"
	"math"

	"github.com/robert-malhotra/go-las/internal/binary"
)

// Core sizes in bytes.
const (
	LegacyCoreSize   = 20
	ExtendedCoreSize = 30 // includes the GPS time
	colorSize        = 6
	nirSize          = 2
	gpsTimeSize      = 8
	wavePacketSize   = 29
)

// ExtendedScanAngleUnit is the size in degrees of one step of the extended
// formats' scan angle.
const ExtendedScanAngleUnit = 0.006

// Attributes is the unpacked, format-independent view of a point's core
// fields.
type Attributes struct {
	X, Y, Z          int32
	Intensity        uint16
	ReturnNumber     uint8
	NumberOfReturns  uint8
	Classification   uint8
	Synthetic        bool
	KeyPoint         bool
	Withheld         bool
	Overlap          bool  // extended formats only
	ScannerChannel   uint8 // extended formats only
	ScanDirection    bool
	EdgeOfFlightLine bool
	ScanAngle        float64 // degrees
	UserData         uint8
	PointSourceID    uint16
}

// LegacyCore holds the fields shared by formats 0 to 5.
//
// ReturnByte packs return number (bits 0-2), number of returns (3-5), scan
// direction (6) and edge of flight line (7). ClassByte packs classification
// (bits 0-4), synthetic (5), key-point (6) and withheld (7). Both are kept
// raw so decoding and re-encoding reproduces every bit.
type LegacyCore struct {
	X, Y, Z       int32
	Intensity     uint16
	ReturnByte    uint8
	ClassByte     uint8
	ScanAngleRank int8 // degrees, -90..90
	UserData      uint8
	PointSourceID uint16
}

func (c LegacyCore) ReturnNumber() uint8    { return c.ReturnByte & 0x07 }
func (c LegacyCore) NumberOfReturns() uint8 { return c.ReturnByte >> 3 & 0x07 }
func (c LegacyCore) ScanDirection() bool    { return c.ReturnByte&0x40 != 0 }
func (c LegacyCore) EdgeOfFlightLine() bool { return c.ReturnByte&0x80 != 0 }
func (c LegacyCore) Classification() uint8  { return c.ClassByte & 0x1F }
func (c LegacyCore) Synthetic() bool        { return c.ClassByte&0x20 != 0 }
func (c LegacyCore) KeyPoint() bool         { return c.ClassByte&0x40 != 0 }
func (c LegacyCore) Withheld() bool         { return c.ClassByte&0x80 != 0 }

// Attributes unpacks c.
func (c LegacyCore) Attributes() Attributes {
	return Attributes{
		X:                c.X,
		Y:                c.Y,
		Z:                c.Z,
		Intensity:        c.Intensity,
		ReturnNumber:     c.ReturnNumber(),
		NumberOfReturns:  c.NumberOfReturns(),
		Classification:   c.Classification(),
		Synthetic:        c.Synthetic(),
		KeyPoint:         c.KeyPoint(),
		Withheld:         c.Withheld(),
		ScanDirection:    c.ScanDirection(),
		EdgeOfFlightLine: c.EdgeOfFlightLine(),
		ScanAngle:        float64(c.ScanAngleRank),
		UserData:         c.UserData,
		PointSourceID:    c.PointSourceID,
	}
}

// NewLegacyCore packs a into a LegacyCore. It fails with ErrOutOfRange if a
// return count exceeds 7 or the classification exceeds 31. The overlap flag
// and scanner channel have no legacy field and are dropped; the scan angle
// is rounded to whole degrees and clamped to -90..90. A NaN angle is out of
// range.
func NewLegacyCore(a Attributes) (LegacyCore, error) {
	if a.ReturnNumber > 7 || a.NumberOfReturns > 7 {
		return LegacyCore{}, fmt.Errorf("%w: return %d of %d, legacy formats allow 7",
			ErrOutOfRange, a.ReturnNumber, a.NumberOfReturns)
	}
	if a.Classification > 31 {
		return LegacyCore{}, fmt.Errorf("%w: classification %d, legacy formats allow 31",
			ErrOutOfRange, a.Classification)
	}
	if math.IsNaN(a.ScanAngle) {
		return LegacyCore{}, fmt.Errorf("%w: scan angle is NaN", ErrOutOfRange)
	}

	ret := a.ReturnNumber | a.NumberOfReturns<<3
	ret |= flag(a.ScanDirection, 0x40) | flag(a.EdgeOfFlightLine, 0x80)
	class := a.Classification
	class |= flag(a.Synthetic, 0x20) | flag(a.KeyPoint, 0x40) | flag(a.Withheld, 0x80)

	return LegacyCore{
		X:             a.X,
		Y:             a.Y,
		Z:             a.Z,
		Intensity:     a.Intensity,
		ReturnByte:    ret,
		ClassByte:     class,
		ScanAngleRank: int8(math.Round(clamp(a.ScanAngle, -90, 90))),
		UserData:      a.UserData,
		PointSourceID: a.PointSourceID,
	}, nil
}

func (c LegacyCore) write(w *binary.Writer) {
	w.WriteInt32(c.X)
	w.WriteInt32(c.Y)
	w.WriteInt32(c.Z)
	w.WriteUint16(c.Intensity)
	w.WriteUint8(c.ReturnByte)
	w.WriteUint8(c.ClassByte)
	w.WriteInt8(c.ScanAngleRank)
	w.WriteUint8(c.UserData)
	w.WriteUint16(c.PointSourceID)
}

func readLegacyCore(r *binary.Reader) LegacyCore {
	var c LegacyCore
	c.X, _ = r.ReadInt32()
	c.Y, _ = r.ReadInt32()
	c.Z, _ = r.ReadInt32()
	c.Intensity, _ = r.ReadUint16()
	c.ReturnByte, _ = r.ReadUint8()
	c.ClassByte, _ = r.ReadUint8()
	c.ScanAngleRank, _ = r.ReadInt8()
	c.UserData, _ = r.ReadUint8()
	c.PointSourceID, _ = r.ReadUint16()
	return c
}

// ExtendedCore holds the fields shared by formats 6 to 10, except the GPS
// time, which every extended format carries through its time field.
//
// ReturnByte packs return number (bits 0-3) and number of returns (4-7).
// FlagByte packs the synthetic, key-point, withheld and overlap flags (bits
// 0-3), scanner channel (4-5), scan direction (6) and edge of flight line
// (7).
type ExtendedCore struct {
	X, Y, Z        int32
	Intensity      uint16
	ReturnByte     uint8
	FlagByte       uint8
	Classification uint8
	UserData       uint8
	ScanAngle      int16 // units of ExtendedScanAngleUnit
	PointSourceID  uint16
}

func (c ExtendedCore) ReturnNumber() uint8    { return c.ReturnByte & 0x0F }
func (c ExtendedCore) NumberOfReturns() uint8 { return c.ReturnByte >> 4 }
func (c ExtendedCore) Synthetic() bool        { return c.FlagByte&0x01 != 0 }
func (c ExtendedCore) KeyPoint() bool         { return c.FlagByte&0x02 != 0 }
func (c ExtendedCore) Withheld() bool         { return c.FlagByte&0x04 != 0 }
func (c ExtendedCore) Overlap() bool          { return c.FlagByte&0x08 != 0 }
func (c ExtendedCore) ScannerChannel() uint8  { return c.FlagByte >> 4 & 0x03 }
func (c ExtendedCore) ScanDirection() bool    { return c.FlagByte&0x40 != 0 }
func (c ExtendedCore) EdgeOfFlightLine() bool { return c.FlagByte&0x80 != 0 }

// ScanAngleDegrees returns the scan angle in degrees.
func (c ExtendedCore) ScanAngleDegrees() float64 {
	return float64(c.ScanAngle) * ExtendedScanAngleUnit
}

// Attributes unpacks c.
func (c ExtendedCore) Attributes() Attributes {
	return Attributes{
		X:                c.X,
		Y:                c.Y,
		Z:                c.Z,
		Intensity:        c.Intensity,
		ReturnNumber:     c.ReturnNumber(),
		NumberOfReturns:  c.NumberOfReturns(),
		Classification:   c.Classification,
		Synthetic:        c.Synthetic(),
		KeyPoint:         c.KeyPoint(),
		Withheld:         c.Withheld(),
		Overlap:          c.Overlap(),
		ScannerChannel:   c.ScannerChannel(),
		ScanDirection:    c.ScanDirection(),
		EdgeOfFlightLine: c.EdgeOfFlightLine(),
		ScanAngle:        c.ScanAngleDegrees(),
		UserData:         c.UserData,
		PointSourceID:    c.PointSourceID,
	}
}

// NewExtendedCore packs a into an ExtendedCore. It fails with ErrOutOfRange
// if a return count exceeds 15 or the scanner channel exceeds 3. The scan
// angle is rounded to the nearest unit and clamped to -180..180 degrees; a
// NaN angle is out of range.
func NewExtendedCore(a Attributes) (ExtendedCore, error) {
	if a.ReturnNumber > 15 || a.NumberOfReturns > 15 {
		return ExtendedCore{}, fmt.Errorf("%w: return %d of %d, extended formats allow 15",
			ErrOutOfRange, a.ReturnNumber, a.NumberOfReturns)
	}
	if a.ScannerChannel > 3 {
		return ExtendedCore{}, fmt.Errorf("%w: scanner channel %d, max 3", ErrOutOfRange, a.ScannerChannel)
	}
	if math.IsNaN(a.ScanAngle) {
		return ExtendedCore{}, fmt.Errorf("%w: scan angle is NaN", ErrOutOfRange)
	}

	flags := flag(a.Synthetic, 0x01) | flag(a.KeyPoint, 0x02) | flag(a.Withheld, 0x04) | flag(a.Overlap, 0x08)
	flags |= a.ScannerChannel<<4 | flag(a.ScanDirection, 0x40) | flag(a.EdgeOfFlightLine, 0x80)

	return ExtendedCore{
		X:              a.X,
		Y:              a.Y,
		Z:              a.Z,
		Intensity:      a.Intensity,
		ReturnByte:     a.ReturnNumber | a.NumberOfReturns<<4,
		FlagByte:       flags,
		Classification: a.Classification,
		UserData:       a.UserData,
		ScanAngle:      int16(math.Round(clamp(a.ScanAngle, -180, 180) / ExtendedScanAngleUnit)),
		PointSourceID:  a.PointSourceID,
	}, nil
}

// write encodes the core and the GPS time, which sits between the core
// fields and any optional ones.
func (c ExtendedCore) write(w *binary.Writer, gpsTime float64) {
	w.WriteInt32(c.X)
	w.WriteInt32(c.Y)
	w.WriteInt32(c.Z)
	w.WriteUint16(c.Intensity)
	w.WriteUint8(c.ReturnByte)
	w.WriteUint8(c.FlagByte)
	w.WriteUint8(c.Classification)
	w.WriteUint8(c.UserData)
	w.WriteInt16(c.ScanAngle)
	w.WriteUint16(c.PointSourceID)
	w.WriteFloat64(gpsTime)
}

func readExtendedCore(r *binary.Reader) (ExtendedCore, timeField) {
	var c ExtendedCore
	c.X, _ = r.ReadInt32()
	c.Y, _ = r.ReadInt32()
	c.Z, _ = r.ReadInt32()
	c.Intensity, _ = r.ReadUint16()
	c.ReturnByte, _ = r.ReadUint8()
	c.FlagByte, _ = r.ReadUint8()
	c.Classification, _ = r.ReadUint8()
	c.UserData, _ = r.ReadUint8()
	c.ScanAngle, _ = r.ReadInt16()
	c.PointSourceID, _ = r.ReadUint16()
	t, _ := r.ReadFloat64()
	return c, timeField{gpsTime: t}
}

func (t timeField) write(w *binary.Writer) {
	w.WriteFloat64(t.gpsTime)
}

func readTime(r *binary.Reader) timeField {
	t, _ := r.ReadFloat64()
	return timeField{gpsTime: t}
}

func (c colorField) write(w *binary.Writer) {
	w.WriteUint16(c.rgb.Red)
	w.WriteUint16(c.rgb.Green)
	w.WriteUint16(c.rgb.Blue)
}

func readColor(r *binary.Reader) colorField {
	var c colorField
	c.rgb.Red, _ = r.ReadUint16()
	c.rgb.Green, _ = r.ReadUint16()
	c.rgb.Blue, _ = r.ReadUint16()
	return c
}

func (n nirField) write(w *binary.Writer) {
	n.colorField.write(w)
	w.WriteUint16(n.nir)
}

func readNIR(r *binary.Reader) nirField {
	n := nirField{colorField: readColor(r)}
	n.nir, _ = r.ReadUint16()
	return n
}

func (f waveField) write(w *binary.Writer) {
	w.WriteUint8(f.wave.DescriptorIndex)
	w.WriteUint64(f.wave.ByteOffset)
	w.WriteUint32(f.wave.PacketSize)
	w.WriteFloat32(f.wave.ReturnPointLocation)
	w.WriteFloat32(f.wave.Xt)
	w.WriteFloat32(f.wave.Yt)
	w.WriteFloat32(f.wave.Zt)
}

func readWave(r *binary.Reader) waveField {
	var f waveField
	f.wave.DescriptorIndex, _ = r.ReadUint8()
	f.wave.ByteOffset, _ = r.ReadUint64()
	f.wave.PacketSize, _ = r.ReadUint32()
	f.wave.ReturnPointLocation, _ = r.ReadFloat32()
	f.wave.Xt, _ = r.ReadFloat32()
	f.wave.Yt, _ = r.ReadFloat32()
	f.wave.Zt, _ = r.ReadFloat32()
	return f
}

func flag(set bool, mask uint8) uint8 {
	if set {
		return mask
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
