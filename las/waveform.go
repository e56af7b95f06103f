package las

import (
	"bytes"
	"fmt"

	"github.com/robert-malhotra/go-las/internal/binary"
)

// WaveformDescriptorSize is the payload size of a waveform packet descriptor.
const WaveformDescriptorSize = 26

// WaveformPacketDescriptor is one of the LASF_Spec/100..354 records. It
// describes how the waveform packets referenced by points with the matching
// descriptor index are sampled.
type WaveformPacketDescriptor struct {
	Index           uint8 // 1..255; the record id is 99 + Index
	BitsPerSample   uint8
	Compression     uint8
	Samples         uint32
	TemporalSpacing uint32 // picoseconds
	DigitizerGain   float64
	DigitizerOffset float64
}

func (WaveformPacketDescriptor) UserID() string { return UserIDSpec }

func (w WaveformPacketDescriptor) RecordID() uint16 {
	return RecordWaveformDescriptor - 1 + uint16(w.Index)
}

func (WaveformPacketDescriptor) PayloadSize() int { return WaveformDescriptorSize }

// Validate rejects index 0, which has no record id.
func (w WaveformPacketDescriptor) Validate() error {
	if w.Index == 0 {
		return fmt.Errorf("%w: waveform descriptor index must be 1..255", ErrMalformedRecord)
	}
	return nil
}

// Volts converts a raw sample to volts using the digitizer gain and offset.
func (w WaveformPacketDescriptor) Volts(sample float64) float64 {
	return w.DigitizerGain*sample + w.DigitizerOffset
}

// WritePayload writes the 26-byte descriptor. The index is carried by the
// record id, not the payload.
func (w WaveformPacketDescriptor) WritePayload(dst []byte) (int, error) {
	if err := checkDst(dst, WaveformDescriptorSize, "waveform descriptor"); err != nil {
		return 0, err
	}
	if err := w.Validate(); err != nil {
		return 0, err
	}
	bw := binary.NewWriter(dst, binary.DefaultConfig())
	bw.WriteUint8(w.BitsPerSample)
	bw.WriteUint8(w.Compression)
	bw.WriteUint32(w.Samples)
	bw.WriteUint32(w.TemporalSpacing)
	bw.WriteFloat64(w.DigitizerGain)
	bw.WriteFloat64(w.DigitizerOffset)
	return bw.Pos(), nil
}

func decodeWaveformPacketDescriptor(recordID uint16, data []byte) (Payload, error) {
	if recordID < RecordWaveformDescriptor || recordID > RecordWaveformDescriptorN {
		return nil, fmt.Errorf("%w: record id %d is not a waveform descriptor", ErrMalformedRecord, recordID)
	}
	if len(data) != WaveformDescriptorSize {
		return nil, fmt.Errorf("%w: waveform descriptor is %d bytes, want %d",
			ErrMalformedRecord, len(data), WaveformDescriptorSize)
	}

	r := binary.NewReader(data, binary.DefaultConfig())
	w := WaveformPacketDescriptor{Index: uint8(recordID - RecordWaveformDescriptor + 1)}
	// Length was checked above, so these reads cannot fail.
	w.BitsPerSample, _ = r.ReadUint8()
	w.Compression, _ = r.ReadUint8()
	w.Samples, _ = r.ReadUint32()
	w.TemporalSpacing, _ = r.ReadUint32()
	w.DigitizerGain, _ = r.ReadFloat64()
	w.DigitizerOffset, _ = r.ReadFloat64()
	return w, nil
}

// WaveformData is the LASF_Spec/65535 record holding the raw waveform
// packets that points reference by byte offset. It is only registered for
// EVLRs; a VLR cannot hold more than a few packets.
type WaveformData struct {
	data []byte
}

// NewWaveformData returns a payload holding a copy of data.
func NewWaveformData(data []byte) WaveformData {
	return WaveformData{data: bytes.Clone(data)}
}

func (WaveformData) UserID() string     { return UserIDSpec }
func (WaveformData) RecordID() uint16   { return RecordWaveformData }
func (w WaveformData) PayloadSize() int { return len(w.data) }

// Packet returns the size bytes at offset, as addressed from a point's wave
// packet. The offset is relative to the start of the payload.
func (w WaveformData) Packet(offset uint64, size uint32) ([]byte, error) {
	if offset > uint64(len(w.data)) || uint64(size) > uint64(len(w.data))-offset {
		return nil, fmt.Errorf("%w: waveform packet at %d+%d exceeds %d bytes",
			ErrTruncatedRecord, offset, size, len(w.data))
	}
	return bytes.Clone(w.data[offset : offset+uint64(size)]), nil
}

// WritePayload writes the packets exactly as stored.
func (w WaveformData) WritePayload(dst []byte) (int, error) {
	return writeRaw(dst, w.data, "waveform data")
}

func decodeWaveformData(_ uint16, data []byte) (Payload, error) {
	return NewWaveformData(data), nil
}
