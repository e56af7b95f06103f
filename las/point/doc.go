// Package point encodes and decodes LAS point data records.
//
// Each point format 0 to 10 is its own type. Formats 0 to 5 share the
// 20-byte legacy core and formats 6 to 10 the 30-byte extended core; the
// optional fields a format adds are exposed through capability interfaces:
//
//	if c, ok := p.(point.HasColor); ok {
//		rgb := c.Color()
//	}
//
// HasNearInfrared embeds HasColor, and the formats that carry near-infrared
// store it alongside the color, so near-infrared never appears without
// color.
//
// Decode dispatches on the format number through a table that Register can
// extend:
//
//	p, n, err := point.Decode(3, buf)
//
// Packed return and classification bytes are kept raw, so decoding and
// re-encoding a point reproduces its bytes exactly.
package point
