package point

// Point is one LIDAR return in a fixed point format.
type Point interface {
	// Format returns the point format number.
	Format() Format

	// Size returns the encoded size, which depends only on the format.
	Size() int

	// Write encodes the point into dst and returns Size().
	Write(dst []byte) (int, error)

	// Attributes returns the core fields unpacked into a format-independent
	// form.
	Attributes() Attributes
}

// HasTime is implemented by formats carrying a GPS timestamp.
type HasTime interface {
	Point
	GPSTime() float64
}

// HasColor is implemented by formats carrying RGB color.
type HasColor interface {
	Point
	Color() Color
}

// HasNearInfrared is implemented by formats carrying a near-infrared
// channel. Every such format also carries color.
type HasNearInfrared interface {
	HasColor
	NIR() uint16
}

// HasWavePacket is implemented by formats that reference waveform data.
type HasWavePacket interface {
	Point
	WavePacket() WavePacket
}

// Color is a 16-bit per channel RGB sample.
type Color struct {
	Red, Green, Blue uint16
}

// WavePacket locates a point's waveform in the waveform data record.
type WavePacket struct {
	DescriptorIndex     uint8  // 0 means no waveform
	ByteOffset          uint64 // from the start of the waveform data
	PacketSize          uint32
	ReturnPointLocation float32 // picoseconds from the first sample
	Xt, Yt, Zt          float32
}

// The capability fields below are embedded in the format types. They are
// unexported so a value is only set through the format constructors.

type timeField struct {
	gpsTime float64
}

func (t timeField) GPSTime() float64 { return t.gpsTime }

type colorField struct {
	rgb Color
}

func (c colorField) Color() Color { return c.rgb }

// nirField extends colorField, so any format embedding it also has Color.
type nirField struct {
	colorField
	nir uint16
}

func (n nirField) NIR() uint16 { return n.nir }

type waveField struct {
	wave WavePacket
}

func (w waveField) WavePacket() WavePacket { return w.wave }
