package las

import (
	"bytes"
)

// Unknown is the payload of a record kind with no registered decoder. It
// keeps the raw bytes so the record re-encodes exactly as it was read.
type Unknown struct {
	userID   string
	recordID uint16
	data     []byte
}

// NewUnknown returns an Unknown payload holding a copy of data.
func NewUnknown(userID string, recordID uint16, data []byte) Unknown {
	return Unknown{
		userID:   userID,
		recordID: recordID,
		data:     bytes.Clone(data),
	}
}

// UserID and RecordID return the pair given to NewUnknown, unchanged.
func (u Unknown) UserID() string   { return u.userID }
func (u Unknown) RecordID() uint16 { return u.recordID }
func (u Unknown) PayloadSize() int { return len(u.data) }

// Data returns a copy of the raw payload.
func (u Unknown) Data() []byte {
	return bytes.Clone(u.data)
}

// WritePayload writes the bytes the record was decoded from.
func (u Unknown) WritePayload(dst []byte) (int, error) {
	return writeRaw(dst, u.data, kindName(u.userID, u.recordID))
}
