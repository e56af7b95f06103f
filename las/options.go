package las

// Option configures a VLR or EVLR built with NewVLR or NewEVLR.
type Option func(*recordOptions)

type recordOptions struct {
	reserved    uint16
	description string
}

func defaultRecordOptions() *recordOptions {
	return &recordOptions{}
}

// WithDescription sets the free-text description stored in the record header.
// Descriptions longer than 32 bytes are rejected when the record is written.
func WithDescription(s string) Option {
	return func(o *recordOptions) {
		o.description = s
	}
}

// WithReserved sets the reserved header field. LAS 1.0 files store the
// record signature 0xAABB here; later revisions require zero.
func WithReserved(v uint16) Option {
	return func(o *recordOptions) {
		o.reserved = v
	}
}
