package point

// Fields is a point with every optional field unpacked. Fields a format
// does not carry are zero.
type Fields struct {
	Attributes
	GPSTime    float64
	Color      Color
	NIR        uint16
	WavePacket WavePacket
}

// FieldsOf unpacks p through its attributes and capabilities.
func FieldsOf(p Point) Fields {
	f := Fields{Attributes: p.Attributes()}
	if t, ok := p.(HasTime); ok {
		f.GPSTime = t.GPSTime()
	}
	if c, ok := p.(HasColor); ok {
		f.Color = c.Color()
	}
	if n, ok := p.(HasNearInfrared); ok {
		f.NIR = n.NIR()
	}
	if wp, ok := p.(HasWavePacket); ok {
		f.WavePacket = wp.WavePacket()
	}
	return f
}

// Format0 is point format 0: the legacy core fields only.
type Format0 struct {
	LegacyCore
}

// NewFormat0 returns a format 0 point.
func NewFormat0(core LegacyCore) Format0 {
	return Format0{LegacyCore: core}
}

func (Format0) Format() Format { return 0 }
func (Format0) Size() int      { return Format0Size }

func (p Format0) Write(dst []byte) (int, error) {
	w, err := writer(0, Format0Size, dst)
	if err != nil {
		return 0, err
	}
	p.LegacyCore.write(w)
	return w.Pos(), nil
}

// DecodeFormat0 parses a format 0 point from the start of b.
func DecodeFormat0(b []byte) (Format0, error) {
	r, err := reader(0, Format0Size, b)
	if err != nil {
		return Format0{}, err
	}
	var p Format0
	p.LegacyCore = readLegacyCore(r)
	return p, nil
}

func buildFormat0(f Fields) (Point, error) {
	core, err := NewLegacyCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat0(core), nil
}

// Format1 is point format 1: the legacy core fields and GPS time.
type Format1 struct {
	LegacyCore
	timeField
}

// NewFormat1 returns a format 1 point.
func NewFormat1(core LegacyCore, t float64) Format1 {
	return Format1{
		LegacyCore: core,
		timeField:  timeField{gpsTime: t},
	}
}

func (Format1) Format() Format { return 1 }
func (Format1) Size() int      { return Format1Size }

func (p Format1) Write(dst []byte) (int, error) {
	w, err := writer(1, Format1Size, dst)
	if err != nil {
		return 0, err
	}
	p.LegacyCore.write(w)
	p.timeField.write(w)
	return w.Pos(), nil
}

// DecodeFormat1 parses a format 1 point from the start of b.
func DecodeFormat1(b []byte) (Format1, error) {
	r, err := reader(1, Format1Size, b)
	if err != nil {
		return Format1{}, err
	}
	var p Format1
	p.LegacyCore = readLegacyCore(r)
	p.timeField = readTime(r)
	return p, nil
}

func buildFormat1(f Fields) (Point, error) {
	core, err := NewLegacyCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat1(core, f.GPSTime), nil
}

// Format2 is point format 2: the legacy core fields and RGB color.
type Format2 struct {
	LegacyCore
	colorField
}

// NewFormat2 returns a format 2 point.
func NewFormat2(core LegacyCore, c Color) Format2 {
	return Format2{
		LegacyCore: core,
		colorField: colorField{rgb: c},
	}
}

func (Format2) Format() Format { return 2 }
func (Format2) Size() int      { return Format2Size }

func (p Format2) Write(dst []byte) (int, error) {
	w, err := writer(2, Format2Size, dst)
	if err != nil {
		return 0, err
	}
	p.LegacyCore.write(w)
	p.colorField.write(w)
	return w.Pos(), nil
}

// DecodeFormat2 parses a format 2 point from the start of b.
func DecodeFormat2(b []byte) (Format2, error) {
	r, err := reader(2, Format2Size, b)
	if err != nil {
		return Format2{}, err
	}
	var p Format2
	p.LegacyCore = readLegacyCore(r)
	p.colorField = readColor(r)
	return p, nil
}

func buildFormat2(f Fields) (Point, error) {
	core, err := NewLegacyCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat2(core, f.Color), nil
}

// Format3 is point format 3: the legacy core fields, GPS time and RGB color.
type Format3 struct {
	LegacyCore
	timeField
	colorField
}

// NewFormat3 returns a format 3 point.
func NewFormat3(core LegacyCore, t float64, c Color) Format3 {
	return Format3{
		LegacyCore: core,
		timeField:  timeField{gpsTime: t},
		colorField: colorField{rgb: c},
	}
}

func (Format3) Format() Format { return 3 }
func (Format3) Size() int      { return Format3Size }

func (p Format3) Write(dst []byte) (int, error) {
	w, err := writer(3, Format3Size, dst)
	if err != nil {
		return 0, err
	}
	p.LegacyCore.write(w)
	p.timeField.write(w)
	p.colorField.write(w)
	return w.Pos(), nil
}

// DecodeFormat3 parses a format 3 point from the start of b.
func DecodeFormat3(b []byte) (Format3, error) {
	r, err := reader(3, Format3Size, b)
	if err != nil {
		return Format3{}, err
	}
	var p Format3
	p.LegacyCore = readLegacyCore(r)
	p.timeField = readTime(r)
	p.colorField = readColor(r)
	return p, nil
}

func buildFormat3(f Fields) (Point, error) {
	core, err := NewLegacyCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat3(core, f.GPSTime, f.Color), nil
}

// Format4 is point format 4: the legacy core fields, GPS time and a wave
// packet.
type Format4 struct {
	LegacyCore
	timeField
	waveField
}

// NewFormat4 returns a format 4 point.
func NewFormat4(core LegacyCore, t float64, w WavePacket) Format4 {
	return Format4{
		LegacyCore: core,
		timeField:  timeField{gpsTime: t},
		waveField:  waveField{wave: w},
	}
}

func (Format4) Format() Format { return 4 }
func (Format4) Size() int      { return Format4Size }

func (p Format4) Write(dst []byte) (int, error) {
	w, err := writer(4, Format4Size, dst)
	if err != nil {
		return 0, err
	}
	p.LegacyCore.write(w)
	p.timeField.write(w)
	p.waveField.write(w)
	return w.Pos(), nil
}

// DecodeFormat4 parses a format 4 point from the start of b.
func DecodeFormat4(b []byte) (Format4, error) {
	r, err := reader(4, Format4Size, b)
	if err != nil {
		return Format4{}, err
	}
	var p Format4
	p.LegacyCore = readLegacyCore(r)
	p.timeField = readTime(r)
	p.waveField = readWave(r)
	return p, nil
}

func buildFormat4(f Fields) (Point, error) {
	core, err := NewLegacyCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat4(core, f.GPSTime, f.WavePacket), nil
}

// Format5 is point format 5: the legacy core fields, GPS time, RGB color and
// a wave packet.
type Format5 struct {
	LegacyCore
	timeField
	colorField
	waveField
}

// NewFormat5 returns a format 5 point.
func NewFormat5(core LegacyCore, t float64, c Color, w WavePacket) Format5 {
	return Format5{
		LegacyCore: core,
		timeField:  timeField{gpsTime: t},
		colorField: colorField{rgb: c},
		waveField:  waveField{wave: w},
	}
}

func (Format5) Format() Format { return 5 }
func (Format5) Size() int      { return Format5Size }

func (p Format5) Write(dst []byte) (int, error) {
	w, err := writer(5, Format5Size, dst)
	if err != nil {
		return 0, err
	}
	p.LegacyCore.write(w)
	p.timeField.write(w)
	p.colorField.write(w)
	p.waveField.write(w)
	return w.Pos(), nil
}

// DecodeFormat5 parses a format 5 point from the start of b.
func DecodeFormat5(b []byte) (Format5, error) {
	r, err := reader(5, Format5Size, b)
	if err != nil {
		return Format5{}, err
	}
	var p Format5
	p.LegacyCore = readLegacyCore(r)
	p.timeField = readTime(r)
	p.colorField = readColor(r)
	p.waveField = readWave(r)
	return p, nil
}

func buildFormat5(f Fields) (Point, error) {
	core, err := NewLegacyCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat5(core, f.GPSTime, f.Color, f.WavePacket), nil
}

// Format6 is point format 6: the extended core fields, which include GPS
// time.
type Format6 struct {
	ExtendedCore
	timeField
}

// NewFormat6 returns a format 6 point.
func NewFormat6(core ExtendedCore, t float64) Format6 {
	return Format6{
		ExtendedCore: core,
		timeField:    timeField{gpsTime: t},
	}
}

func (Format6) Format() Format { return 6 }
func (Format6) Size() int      { return Format6Size }

func (p Format6) Write(dst []byte) (int, error) {
	w, err := writer(6, Format6Size, dst)
	if err != nil {
		return 0, err
	}
	p.ExtendedCore.write(w, p.gpsTime)
	return w.Pos(), nil
}

// DecodeFormat6 parses a format 6 point from the start of b.
func DecodeFormat6(b []byte) (Format6, error) {
	r, err := reader(6, Format6Size, b)
	if err != nil {
		return Format6{}, err
	}
	var p Format6
	p.ExtendedCore, p.timeField = readExtendedCore(r)
	return p, nil
}

func buildFormat6(f Fields) (Point, error) {
	core, err := NewExtendedCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat6(core, f.GPSTime), nil
}

// Format7 is point format 7: the extended core fields and RGB color.
type Format7 struct {
	ExtendedCore
	timeField
	colorField
}

// NewFormat7 returns a format 7 point.
func NewFormat7(core ExtendedCore, t float64, c Color) Format7 {
	return Format7{
		ExtendedCore: core,
		timeField:    timeField{gpsTime: t},
		colorField:   colorField{rgb: c},
	}
}

func (Format7) Format() Format { return 7 }
func (Format7) Size() int      { return Format7Size }

func (p Format7) Write(dst []byte) (int, error) {
	w, err := writer(7, Format7Size, dst)
	if err != nil {
		return 0, err
	}
	p.ExtendedCore.write(w, p.gpsTime)
	p.colorField.write(w)
	return w.Pos(), nil
}

// DecodeFormat7 parses a format 7 point from the start of b.
func DecodeFormat7(b []byte) (Format7, error) {
	r, err := reader(7, Format7Size, b)
	if err != nil {
		return Format7{}, err
	}
	var p Format7
	p.ExtendedCore, p.timeField = readExtendedCore(r)
	p.colorField = readColor(r)
	return p, nil
}

func buildFormat7(f Fields) (Point, error) {
	core, err := NewExtendedCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat7(core, f.GPSTime, f.Color), nil
}

// Format8 is point format 8: the extended core fields, RGB color and
// near-infrared.
type Format8 struct {
	ExtendedCore
	timeField
	nirField
}

// NewFormat8 returns a format 8 point.
func NewFormat8(core ExtendedCore, t float64, c Color, nir uint16) Format8 {
	return Format8{
		ExtendedCore: core,
		timeField:    timeField{gpsTime: t},
		nirField:     nirField{colorField: colorField{rgb: c}, nir: nir},
	}
}

func (Format8) Format() Format { return 8 }
func (Format8) Size() int      { return Format8Size }

func (p Format8) Write(dst []byte) (int, error) {
	w, err := writer(8, Format8Size, dst)
	if err != nil {
		return 0, err
	}
	p.ExtendedCore.write(w, p.gpsTime)
	p.nirField.write(w)
	return w.Pos(), nil
}

// DecodeFormat8 parses a format 8 point from the start of b.
func DecodeFormat8(b []byte) (Format8, error) {
	r, err := reader(8, Format8Size, b)
	if err != nil {
		return Format8{}, err
	}
	var p Format8
	p.ExtendedCore, p.timeField = readExtendedCore(r)
	p.nirField = readNIR(r)
	return p, nil
}

func buildFormat8(f Fields) (Point, error) {
	core, err := NewExtendedCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat8(core, f.GPSTime, f.Color, f.NIR), nil
}

// Format9 is point format 9: the extended core fields and a wave packet.
type Format9 struct {
	ExtendedCore
	timeField
	waveField
}

// NewFormat9 returns a format 9 point.
func NewFormat9(core ExtendedCore, t float64, w WavePacket) Format9 {
	return Format9{
		ExtendedCore: core,
		timeField:    timeField{gpsTime: t},
		waveField:    waveField{wave: w},
	}
}

func (Format9) Format() Format { return 9 }
func (Format9) Size() int      { return Format9Size }

func (p Format9) Write(dst []byte) (int, error) {
	w, err := writer(9, Format9Size, dst)
	if err != nil {
		return 0, err
	}
	p.ExtendedCore.write(w, p.gpsTime)
	p.waveField.write(w)
	return w.Pos(), nil
}

// DecodeFormat9 parses a format 9 point from the start of b.
func DecodeFormat9(b []byte) (Format9, error) {
	r, err := reader(9, Format9Size, b)
	if err != nil {
		return Format9{}, err
	}
	var p Format9
	p.ExtendedCore, p.timeField = readExtendedCore(r)
	p.waveField = readWave(r)
	return p, nil
}

func buildFormat9(f Fields) (Point, error) {
	core, err := NewExtendedCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat9(core, f.GPSTime, f.WavePacket), nil
}

// Format10 is point format 10: the extended core fields, RGB color,
// near-infrared and a wave packet.
type Format10 struct {
	ExtendedCore
	timeField
	nirField
	waveField
}

// NewFormat10 returns a format 10 point.
func NewFormat10(core ExtendedCore, t float64, c Color, nir uint16, w WavePacket) Format10 {
	return Format10{
		ExtendedCore: core,
		timeField:    timeField{gpsTime: t},
		nirField:     nirField{colorField: colorField{rgb: c}, nir: nir},
		waveField:    waveField{wave: w},
	}
}

func (Format10) Format() Format { return 10 }
func (Format10) Size() int      { return Format10Size }

func (p Format10) Write(dst []byte) (int, error) {
	w, err := writer(10, Format10Size, dst)
	if err != nil {
		return 0, err
	}
	p.ExtendedCore.write(w, p.gpsTime)
	p.nirField.write(w)
	p.waveField.write(w)
	return w.Pos(), nil
}

// DecodeFormat10 parses a format 10 point from the start of b.
func DecodeFormat10(b []byte) (Format10, error) {
	r, err := reader(10, Format10Size, b)
	if err != nil {
		return Format10{}, err
	}
	var p Format10
	p.ExtendedCore, p.timeField = readExtendedCore(r)
	p.nirField = readNIR(r)
	p.waveField = readWave(r)
	return p, nil
}

func buildFormat10(f Fields) (Point, error) {
	core, err := NewExtendedCore(f.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFormat10(core, f.GPSTime, f.Color, f.NIR, f.WavePacket), nil
}

var (
	_ Point           = Format0{}
	_ HasTime         = Format1{}
	_ HasColor        = Format2{}
	_ HasTime         = Format3{}
	_ HasColor        = Format3{}
	_ HasWavePacket   = Format4{}
	_ HasColor        = Format5{}
	_ HasWavePacket   = Format5{}
	_ HasTime         = Format6{}
	_ HasColor        = Format7{}
	_ HasNearInfrared = Format8{}
	_ HasTime         = Format9{}
	_ HasWavePacket   = Format9{}
	_ HasNearInfrared = Format10{}
	_ HasWavePacket   = Format10{}
)
