package las

import (
	"fmt"

	"github.com/robert-malhotra/go-las/internal/binary"
)

const (
	classificationEntrySize  = 16
	classificationDescSize   = 15
	maxClassificationEntries = 256
)

// ClassificationEntry names one classification value.
type ClassificationEntry struct {
	Class       uint8
	Description string // at most 15 bytes
}

// ClassificationLookup is the LASF_Spec/0 record: a table of 16-byte
// entries mapping classification values to descriptions.
type ClassificationLookup struct {
	Entries []ClassificationEntry
}

func (ClassificationLookup) UserID() string   { return UserIDSpec }
func (ClassificationLookup) RecordID() uint16 { return RecordClassificationLookup }

func (c ClassificationLookup) PayloadSize() int {
	return len(c.Entries) * classificationEntrySize
}

// Validate checks the table size and description lengths.
func (c ClassificationLookup) Validate() error {
	if len(c.Entries) > maxClassificationEntries {
		return fmt.Errorf("%w: classification lookup has %d entries, max %d",
			ErrMalformedRecord, len(c.Entries), maxClassificationEntries)
	}
	for i, e := range c.Entries {
		if len(e.Description) > classificationDescSize {
			return fmt.Errorf("%w: classification entry %d description is %d bytes, max %d",
				ErrMalformedRecord, i, len(e.Description), classificationDescSize)
		}
	}
	return nil
}

// Lookup returns the description for a class value.
func (c ClassificationLookup) Lookup(class uint8) (string, bool) {
	for _, e := range c.Entries {
		if e.Class == class {
			return e.Description, true
		}
	}
	return "", false
}

// WritePayload writes one 16-byte entry per class, descriptions NUL padded.
func (c ClassificationLookup) WritePayload(dst []byte) (int, error) {
	if err := checkDst(dst, c.PayloadSize(), "classification lookup"); err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	w := binary.NewWriter(dst, binary.DefaultConfig())
	for _, e := range c.Entries {
		if err := w.WriteUint8(e.Class); err != nil {
			return 0, err
		}
		if err := w.WriteFixedString(e.Description, classificationDescSize); err != nil {
			return 0, err
		}
	}
	return w.Pos(), nil
}

func decodeClassificationLookup(_ uint16, data []byte) (Payload, error) {
	if len(data)%classificationEntrySize != 0 {
		return nil, fmt.Errorf("%w: classification lookup length %d is not a multiple of %d",
			ErrMalformedRecord, len(data), classificationEntrySize)
	}
	n := len(data) / classificationEntrySize
	if n > maxClassificationEntries {
		return nil, fmt.Errorf("%w: classification lookup has %d entries, max %d",
			ErrMalformedRecord, n, maxClassificationEntries)
	}

	r := binary.NewReader(data, binary.DefaultConfig())
	c := ClassificationLookup{Entries: make([]ClassificationEntry, 0, n)}
	for i := 0; i < n; i++ {
		class, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		desc, err := r.ReadFixedString(classificationDescSize)
		if err != nil {
			return nil, err
		}
		c.Entries = append(c.Entries, ClassificationEntry{Class: class, Description: desc})
	}
	return c, nil
}
