package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestReaderReadUint8(t *testing.T) {
	data := []byte{0x42, 0xFF, 0x00}
	r := NewReader(data, DefaultConfig())

	v, err := r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02x", v)
	}

	v, err = r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0xFF {
		t.Errorf("expected 0xFF, got 0x%02x", v)
	}
}

func TestReaderReadUint16(t *testing.T) {
	// Little-endian: 0x0102 stored as [0x02, 0x01]
	data := []byte{0x02, 0x01, 0xFF, 0xFF}
	r := NewReader(data, DefaultConfig())

	v, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v != 0x0102 {
		t.Errorf("expected 0x0102, got 0x%04x", v)
	}

	v, err = r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v != 0xFFFF {
		t.Errorf("expected 0xFFFF, got 0x%04x", v)
	}
}

func TestReaderReadUint32(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(0x12345678))
	binary.Write(&buf, binary.LittleEndian, uint32(0xDEADBEEF))

	r := NewReader(buf.Bytes(), DefaultConfig())

	v, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08x", v)
	}

	v, err = r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v != 0xDEADBEEF {
		t.Errorf("expected 0xDEADBEEF, got 0x%08x", v)
	}
}

func TestReaderReadUint64(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint64(0x123456789ABCDEF0))

	r := NewReader(buf.Bytes(), DefaultConfig())

	v, err := r.ReadUint64()
	if err != nil {
		t.Fatalf("ReadUint64 failed: %v", err)
	}
	if v != 0x123456789ABCDEF0 {
		t.Errorf("expected 0x123456789ABCDEF0, got 0x%016x", v)
	}
}

func TestReaderSignedAndFloat(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int8(-90))
	binary.Write(&buf, binary.LittleEndian, int16(-15000))
	binary.Write(&buf, binary.LittleEndian, int32(-123456789))
	binary.Write(&buf, binary.LittleEndian, float32(1.5))
	binary.Write(&buf, binary.LittleEndian, float64(123456.789))

	r := NewReader(buf.Bytes(), DefaultConfig())

	i8, _ := r.ReadInt8()
	i16, _ := r.ReadInt16()
	i32, _ := r.ReadInt32()
	f32, _ := r.ReadFloat32()
	f64, err := r.ReadFloat64()
	if err != nil {
		t.Fatalf("ReadFloat64 failed: %v", err)
	}

	if i8 != -90 || i16 != -15000 || i32 != -123456789 {
		t.Errorf("signed mismatch: %d %d %d", i8, i16, i32)
	}
	if f32 != 1.5 || f64 != 123456.789 {
		t.Errorf("float mismatch: %v %v", f32, f64)
	}
	if r.remaining() != 0 {
		t.Errorf("expected no bytes remaining, got %d", r.remaining())
	}
}

func TestReaderReadFloat64NaNBits(t *testing.T) {
	bits := uint64(0x7FF8_0000_0000_0001)
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, bits)

	v, err := NewReader(data, DefaultConfig()).ReadFloat64()
	if err != nil {
		t.Fatalf("ReadFloat64 failed: %v", err)
	}
	if math.Float64bits(v) != bits {
		t.Errorf("expected bits 0x%x, got 0x%x", bits, math.Float64bits(v))
	}
}

func TestReaderReadLength(t *testing.T) {
	tests := []struct {
		name       string
		lengthSize int
		data       []byte
		expected   uint64
	}{
		{"2-byte", 2, []byte{0x34, 0x12}, 0x1234},
		{"4-byte", 4, []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{"8-byte", 8, []byte{0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12}, 0x123456789ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				ByteOrder:  binary.LittleEndian,
				LengthSize: tt.lengthSize,
			}
			r := NewReader(tt.data, cfg)

			v, err := r.ReadLength()
			if err != nil {
				t.Fatalf("ReadLength failed: %v", err)
			}
			if v != tt.expected {
				t.Errorf("expected 0x%x, got 0x%x", tt.expected, v)
			}
			if r.Pos() != tt.lengthSize {
				t.Errorf("expected position %d, got %d", tt.lengthSize, r.Pos())
			}
		})
	}
}

func TestReaderReadUintNInvalidSize(t *testing.T) {
	r := NewReader([]byte{1, 2, 3}, DefaultConfig())
	if _, err := r.ReadUintN(3); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestReaderReadFixedString(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"padded", []byte{'L', 'A', 'S', 'F', 0, 0, 0, 0}, "LASF"},
		{"full", []byte("ABCDEFGH"), "ABCDEFGH"},
		{"empty", make([]byte, 8), ""},
		{"interior NUL kept", []byte{'A', 0, 'B', 0, 0, 0, 0, 0}, "A\x00B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data, DefaultConfig())
			s, err := r.ReadFixedString(8)
			if err != nil {
				t.Fatalf("ReadFixedString failed: %v", err)
			}
			if s != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, s)
			}
		})
	}
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03}, DefaultConfig())

	if _, err := r.ReadUint32(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	// A failed read does not move the cursor.
	if r.Pos() != 0 {
		t.Errorf("expected position 0 after failed read, got %d", r.Pos())
	}

	v, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v != 0x0201 {
		t.Errorf("expected 0x0201, got 0x%04x", v)
	}
	if _, err := r.ReadBytes(2); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated from ReadBytes, got %v", err)
	}
}

func TestReaderBytesAreCopied(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	r := NewReader(data, DefaultConfig())

	b, err := r.ReadBytes(4)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	data[0] = 0xFF
	if b[0] != 1 {
		t.Errorf("ReadBytes result aliases the source buffer")
	}
}

func TestReaderAt(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04}
	r := NewReader(data, DefaultConfig())

	r2 := r.At(3)
	if r2.Pos() != 3 {
		t.Errorf("expected position 3, got %d", r2.Pos())
	}
	if r.Pos() != 0 {
		t.Errorf("expected original position 0, got %d", r.Pos())
	}

	v, err := r2.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v != 0x0403 {
		t.Errorf("expected 0x0403, got 0x%04x", v)
	}
	if _, err := r.At(5).ReadUint8(); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated past the end, got %v", err)
	}
}
