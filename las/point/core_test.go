package point

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLegacyCoreBits(t *testing.T) {
	// return 3 of 5, scan direction set, edge clear
	// class 6, synthetic clear, key-point set, withheld set
	c := LegacyCore{ReturnByte: 0b0_1_101_011, ClassByte: 0b1_1_0_00110, ScanAngleRank: -12}

	a := c.Attributes()
	want := Attributes{
		ReturnNumber:    3,
		NumberOfReturns: 5,
		ScanDirection:   true,
		Classification:  6,
		KeyPoint:        true,
		Withheld:        true,
		ScanAngle:       -12,
	}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("Attributes (-want +got):\n%s", diff)
	}

	packed, err := NewLegacyCore(a)
	if err != nil {
		t.Fatalf("NewLegacyCore: %v", err)
	}
	if packed != c {
		t.Errorf("NewLegacyCore = %+v, want %+v", packed, c)
	}
}

func TestExtendedCoreBits(t *testing.T) {
	// return 9 of 12; withheld, overlap, channel 2, edge set
	c := ExtendedCore{ReturnByte: 0xC9, FlagByte: 0b1_0_10_1100, Classification: 200, ScanAngle: -5000}

	a := c.Attributes()
	want := Attributes{
		ReturnNumber:     9,
		NumberOfReturns:  12,
		Withheld:         true,
		Overlap:          true,
		ScannerChannel:   2,
		EdgeOfFlightLine: true,
		Classification:   200,
		ScanAngle:        -30,
	}
	if diff := cmp.Diff(want, a, cmp.Comparer(func(x, y float64) bool {
		d := x - y
		return d < 1e-9 && d > -1e-9
	})); diff != "" {
		t.Errorf("Attributes (-want +got):\n%s", diff)
	}

	packed, err := NewExtendedCore(a)
	if err != nil {
		t.Fatalf("NewExtendedCore: %v", err)
	}
	if packed != c {
		t.Errorf("NewExtendedCore = %+v, want %+v", packed, c)
	}
}

func TestNewCoreOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		a        Attributes
		extended bool
	}{
		{"legacy return number", Attributes{ReturnNumber: 8}, false},
		{"legacy number of returns", Attributes{NumberOfReturns: 9}, false},
		{"legacy classification", Attributes{Classification: 32}, false},
		{"extended return number", Attributes{ReturnNumber: 16}, true},
		{"extended scanner channel", Attributes{ScannerChannel: 4}, true},
		{"legacy NaN scan angle", Attributes{ScanAngle: math.NaN()}, false},
		{"extended NaN scan angle", Attributes{ScanAngle: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.extended {
				_, err = NewExtendedCore(tt.a)
			} else {
				_, err = NewLegacyCore(tt.a)
			}
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("err = %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestScanAngleClamp(t *testing.T) {
	c, err := NewLegacyCore(Attributes{ScanAngle: 120.4})
	if err != nil {
		t.Fatal(err)
	}
	if c.ScanAngleRank != 90 {
		t.Errorf("ScanAngleRank = %d, want 90", c.ScanAngleRank)
	}

	e, err := NewExtendedCore(Attributes{ScanAngle: -181})
	if err != nil {
		t.Fatal(err)
	}
	if e.ScanAngle != -30000 {
		t.Errorf("ScanAngle = %d, want -30000", e.ScanAngle)
	}
}
