package nelf

// Span identifies one element's content bytes within a source buffer,
// exclusive of the length prefix and framing bytes.
//
// Spans returned by Frame are validated to lie fully within the buffer
// they were framed from, never overlap, and appear in strictly
// increasing offset order matching the input's element order.
type Span struct {
	Start  int // offset of the first content byte
	Length int // content length in bytes
}

// End returns the offset one past the last content byte.
func (s Span) End() int {
	return s.Start + s.Length
}

// Bytes returns the element content as a subslice of buf, without
// copying. buf must be the buffer the span was framed from.
//
// A span that does not fit in buf is a caller defect, not an input
// error, and panics via the slice bounds check. The result is capped so
// appending to it cannot scribble over the rest of the buffer.
func (s Span) Bytes(buf []byte) []byte {
	return buf[s.Start:s.End():s.End()]
}
