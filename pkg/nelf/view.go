package nelf

import (
	"unicode/utf8"
	"unsafe"
)

// View materializes one element as a string without copying. The string
// aliases buf directly and is valid only while buf is alive and
// unmodified; see the package documentation for the aliasing contract.
//
// Unless the codec was built with RawText, the content must be valid
// UTF-8 and View fails with ErrInvalidEncoding positioned at the first
// invalid byte. span must come from Frame over the same buf.
func (c *Codec) View(buf []byte, span Span) (string, error) {
	content := span.Bytes(buf)
	if !c.rawText && !utf8.Valid(content) {
		return "", &ParseError{
			Offset: span.Start + invalidUTF8At(content),
			Kind:   ErrInvalidEncoding,
			Reason: "content is not valid UTF-8",
		}
	}
	return view(content), nil
}

// Decode frames buf and materializes every element as a string view, in
// document order, short-circuiting on the first error from either stage.
// The strings alias buf; see the package documentation.
func (c *Codec) Decode(buf []byte) ([]string, error) {
	spans, err := c.Frame(buf)
	if err != nil {
		return nil, err
	}

	elements := make([]string, len(spans))
	for i, span := range spans {
		elements[i], err = c.View(buf, span)
		if err != nil {
			return nil, err
		}
	}
	return elements, nil
}

// DecodeBytes frames buf and returns every element's raw content as a
// subslice of buf, skipping text validation entirely. This is the path
// for callers that want bytes, not text.
func (c *Codec) DecodeBytes(buf []byte) ([][]byte, error) {
	spans, err := c.Frame(buf)
	if err != nil {
		return nil, err
	}

	elements := make([][]byte, len(spans))
	for i, span := range spans {
		elements[i] = span.Bytes(buf)
	}
	return elements, nil
}

// view aliases b as a string without copying.
func view(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// invalidUTF8At returns the offset of the first invalid byte in b.
// Only called once utf8.Valid has said there is one.
func invalidUTF8At(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return 0
}
