package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/robert-malhotra/go-las/internal/binary"
	"github.com/robert-malhotra/go-las/las/point"
)

var errNotLAS = errors.New("not a LAS file")

// Offsets into the public header block. Fields after the LAS 1.2 header are
// only present when the header is long enough.
const (
	offGUID            = 8
	offVersion         = 24
	offSystemID        = 26
	offSoftware        = 58
	offHeaderSize      = 94
	offPointFormat     = 104
	offLegacyNumPoints = 107
	offScale           = 131
	offEVLRStart       = 235
	offNumPoints       = 247

	minHeaderSize = 227 // LAS 1.0 to 1.2
	v14HeaderSize = 375
)

// fileHeader holds the parts of the public header block needed to find the
// records and points in a file.
type fileHeader struct {
	VersionMajor, VersionMinor uint8
	ProjectID                  uuid.UUID
	SystemID                   string
	Software                   string
	HeaderSize                 uint16
	PointOffset                uint32
	NumVLRs                    uint32
	PointFormat                point.Format
	PointRecordLen             uint16
	NumPoints                  uint64
	Scale, Offset              [3]float64
	EVLRStart                  uint64
	NumEVLRs                   uint32
}

// readHeader parses the public header block at the start of b.
func readHeader(b []byte) (fileHeader, error) {
	if len(b) < minHeaderSize || string(b[:4]) != "LASF" {
		return fileHeader{}, errNotLAS
	}

	var h fileHeader
	r := binary.NewReader(b, binary.DefaultConfig())

	guid, _ := r.At(offGUID).ReadBytes(16)
	h.ProjectID = projectID(guid)

	v := r.At(offVersion)
	h.VersionMajor, _ = v.ReadUint8()
	h.VersionMinor, _ = v.ReadUint8()
	h.SystemID, _ = r.At(offSystemID).ReadFixedString(32)
	h.Software, _ = r.At(offSoftware).ReadFixedString(32)

	s := r.At(offHeaderSize)
	h.HeaderSize, _ = s.ReadUint16()
	h.PointOffset, _ = s.ReadUint32()
	h.NumVLRs, _ = s.ReadUint32()
	pf, _ := s.ReadUint8()
	// Bits 6 and 7 flag LAZ compression.
	h.PointFormat = point.Format(pf & 0x3F)
	h.PointRecordLen, _ = s.ReadUint16()

	legacy, _ := r.At(offLegacyNumPoints).ReadUint32()
	h.NumPoints = uint64(legacy)

	sc := r.At(offScale)
	for i := 0; i < 3; i++ {
		h.Scale[i], _ = sc.ReadFloat64()
	}
	for i := 0; i < 3; i++ {
		h.Offset[i], _ = sc.ReadFloat64()
	}

	if int(h.HeaderSize) > len(b) {
		return fileHeader{}, fmt.Errorf("%w: header size %d exceeds file size %d", errNotLAS, h.HeaderSize, len(b))
	}
	if h.VersionMinor >= 4 && h.HeaderSize >= v14HeaderSize {
		e := r.At(offEVLRStart)
		h.EVLRStart, _ = e.ReadUint64()
		h.NumEVLRs, _ = e.ReadUint32()
		if n, _ := r.At(offNumPoints).ReadUint64(); n != 0 {
			h.NumPoints = n
		}
	}
	return h, nil
}

// projectID converts the on-disk GUID, whose first three fields are
// little-endian, to a UUID.
func projectID(b []byte) uuid.UUID {
	if len(b) != 16 {
		return uuid.Nil
	}
	be := make([]byte, 16)
	copy(be, b)
	be[0], be[1], be[2], be[3] = b[3], b[2], b[1], b[0]
	be[4], be[5] = b[5], b[4]
	be[6], be[7] = b[7], b[6]
	id, err := uuid.FromBytes(be)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// compressed reports whether the raw point format byte marks LAZ data.
func compressed(b []byte) bool {
	return len(b) > offPointFormat && b[offPointFormat]&0xC0 != 0
}
