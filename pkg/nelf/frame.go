package nelf

import "fmt"

// Frame scans buf in a single pass and returns the span of every
// element, in document order. An empty buffer is the empty list.
//
// On error, the returned slice still holds every element that was fully
// validated before the error; callers that want the good prefix may keep
// it, callers that want all-or-nothing should discard it. The error is
// always a *ParseError positioned at the first invalid token.
func (c *Codec) Frame(buf []byte) ([]Span, error) {
	var spans []Span

	cursor := 0
	for cursor < len(buf) {
		if c.maxElements > 0 && len(spans) == c.maxElements {
			return spans, &ParseError{
				Offset: cursor,
				Kind:   ErrTooManyElements,
				Reason: fmt.Sprintf("element count exceeds %d", c.maxElements),
			}
		}

		length, start, err := c.scanLength(buf, cursor)
		if err != nil {
			return spans, err
		}

		// start is the offset of the first content byte.
		if length > len(buf)-start {
			return spans, &ParseError{
				Offset: start,
				Kind:   ErrTruncatedContent,
				Reason: fmt.Sprintf("declared length %d runs past end of buffer", length),
			}
		}

		end := start + length
		if end == len(buf) {
			return spans, &ParseError{
				Offset: end,
				Kind:   ErrMissingTerminator,
				Reason: fmt.Sprintf("unexpected end of buffer, expected %q", c.terminator),
			}
		}
		if buf[end] != c.terminator {
			return spans, &ParseError{
				Offset: end,
				Kind:   ErrMissingTerminator,
				Reason: fmt.Sprintf("expected %q, got %q", c.terminator, buf[end]),
			}
		}

		spans = append(spans, Span{Start: start, Length: length})
		cursor = end + 1
	}

	return spans, nil
}

// scanLength parses the decimal length field at offset start and
// consumes the separator. It returns the parsed length and the offset of
// the first content byte.
//
// Leading zeros are legal. The accumulated value is checked against the
// element length cap digit by digit, so the error lands on the first
// digit that pushes it over and the accumulator can never overflow.
func (c *Codec) scanLength(buf []byte, start int) (length, next int, err error) {
	i := start
	for i < len(buf) && isDigit(buf[i]) {
		digit := int(buf[i] - '0')
		if length > (c.maxElementLength-digit)/10 {
			return 0, 0, &ParseError{
				Offset: i,
				Kind:   ErrLengthOverflow,
				Reason: fmt.Sprintf("length exceeds maximum of %d", c.maxElementLength),
			}
		}
		length = length*10 + digit
		i++
	}

	if i == start {
		// Frame only scans while there is input left, so buf[i] exists
		// and is a non-digit.
		reason := fmt.Sprintf("expected digit, got %q", buf[i])
		if buf[i] == c.separator {
			reason = "length field is empty"
		}
		return 0, 0, &ParseError{
			Offset: i,
			Kind:   ErrMalformedLength,
			Reason: reason,
		}
	}

	if i == len(buf) {
		return 0, 0, &ParseError{
			Offset: i,
			Kind:   ErrMissingSeparator,
			Reason: fmt.Sprintf("unexpected end of buffer, expected %q", c.separator),
		}
	}
	if buf[i] != c.separator {
		return 0, 0, &ParseError{
			Offset: i,
			Kind:   ErrMissingSeparator,
			Reason: fmt.Sprintf("expected %q, got %q", c.separator, buf[i]),
		}
	}

	return length, i + 1, nil
}
