package point

import (
	"bytes"
	"errors"
	"testing"
)

// pattern returns n bytes with distinct values that keep every float field
// finite, with the packed bit-field bytes set to all ones.
func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i + 1)
	}
	b[14], b[15] = 0xFF, 0xFF
	return b
}

func TestFormatSizes(t *testing.T) {
	want := map[Format]int{
		0: 20, 1: 28, 2: 26, 3: 34, 4: 57, 5: 63,
		6: 30, 7: 36, 8: 38, 9: 59, 10: 67,
	}
	for f, size := range want {
		if got := f.Size(); got != size {
			t.Errorf("%s: Size = %d, want %d", f, got, size)
		}
		p, n, err := Decode(f, make([]byte, size))
		if err != nil {
			t.Fatalf("%s: Decode: %v", f, err)
		}
		if n != size || p.Size() != size {
			t.Errorf("%s: consumed %d, point size %d, want %d", f, n, p.Size(), size)
		}
		if p.Format() != f {
			t.Errorf("%s: decoded format %d", f, p.Format())
		}
	}
}

func TestRoundTripAllFormats(t *testing.T) {
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			in := pattern(f.Size())

			p, n, err := Decode(f, in)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if n != len(in) {
				t.Fatalf("consumed %d, want %d", n, len(in))
			}

			out := make([]byte, p.Size())
			m, err := p.Write(out)
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			if m != len(in) {
				t.Errorf("wrote %d, want %d", m, len(in))
			}
			if !bytes.Equal(in, out) {
				t.Errorf("round trip differs:\n got %x\nwant %x", out, in)
			}
		})
	}
}

func TestDecodeFormat3(t *testing.T) {
	in := pattern(34)

	p, err := DecodeFormat3(in)
	if err != nil {
		t.Fatalf("DecodeFormat3: %v", err)
	}
	if p.Size() != 34 {
		t.Errorf("Size = %d, want 34", p.Size())
	}

	_, err = DecodeFormat3(in[:33])
	if !errors.Is(err, ErrTruncatedRecord) {
		t.Errorf("33 bytes: err = %v, want ErrTruncatedRecord", err)
	}
	_, _, err = Decode(3, in[:33])
	if !errors.Is(err, ErrTruncatedRecord) {
		t.Errorf("Decode 33 bytes: err = %v, want ErrTruncatedRecord", err)
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	in := append(pattern(Format0Size), 0xAA, 0xBB)
	_, n, err := Decode(0, in)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != Format0Size {
		t.Errorf("consumed %d, want %d", n, Format0Size)
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, _, err := Decode(99, make([]byte, 100))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
	if Format(99).Size() != 0 {
		t.Errorf("Size of unknown format = %d", Format(99).Size())
	}
}

func TestWriteShortBuffer(t *testing.T) {
	for _, f := range Formats() {
		p, _, err := Decode(f, pattern(f.Size()))
		if err != nil {
			t.Fatalf("%s: Decode: %v", f, err)
		}
		buf := bytes.Repeat([]byte{0xEE}, p.Size()-1)
		n, err := p.Write(buf)
		if !errors.Is(err, ErrInsufficientBuffer) {
			t.Errorf("%s: err = %v, want ErrInsufficientBuffer", f, err)
		}
		if n != 0 || !bytes.Equal(buf, bytes.Repeat([]byte{0xEE}, len(buf))) {
			t.Errorf("%s: short write modified the buffer", f)
		}
	}
}

func TestRegister(t *testing.T) {
	const custom Format = 200
	t.Cleanup(func() { delete(layouts, custom) })

	// Format 0 followed by two bytes of extra attributes.
	l := Layout{
		Size: Format0Size + 2,
		Decode: func(b []byte) (Point, error) {
			return DecodeFormat0(b)
		},
	}
	if err := Register(custom, l); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := Register(custom, l); err == nil {
		t.Error("second Register succeeded")
	}
	if err := Register(3, l); err == nil {
		t.Error("Register replaced format 3")
	}
	if err := Register(201, Layout{Size: 4}); err == nil {
		t.Error("Register accepted a layout without a decoder")
	}

	_, n, err := Decode(custom, make([]byte, 22))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 22 {
		t.Errorf("consumed %d, want 22", n)
	}
	if _, err := Convert(NewFormat0(LegacyCore{}), custom); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Convert to format without Build: err = %v", err)
	}

	// Built-in formats are unchanged.
	if Format(3).Size() != 34 {
		t.Errorf("format 3 size = %d", Format(3).Size())
	}
}
