// Package las encodes and decodes the variable length records of LAS point
// cloud files.
//
// A file carries two kinds of records. VLRs sit in the header area and have
// a 54-byte header with a 16-bit payload length. EVLRs follow the point data
// and have a 60-byte header with a 64-bit payload length. Both wrap a
// Payload, the record kind, which knows its own user id, record id and body
// encoding:
//
//	v := las.NewVLR(las.NewCoordinateSystemWKT(wkt), las.WithDescription("OGC WKT"))
//	buf := make([]byte, v.Size())
//	n, err := v.Write(buf)
//
// Decoding dispatches on (user id, record id) through a Registry. Kinds with
// no registered decoder come back as Unknown, which holds the raw payload and
// writes it back unchanged:
//
//	v, n, err := las.DecodeVLR(buf)
//
// Writes are all-or-nothing: a destination that is too small, an over-long
// text field or an invalid payload is reported before any byte is written.
// Nothing in this package logs or owns a file; callers pass byte slices and
// advance their own cursors by the returned counts.
package las
