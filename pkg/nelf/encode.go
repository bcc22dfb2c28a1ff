package nelf

import (
	"fmt"
	"io"
)

// Encode serializes elements into a single framed buffer, in order.
//
// No escaping step exists by construction, so encoding cannot fail for
// any element content; the only error is ErrElementTooLarge when an
// element exceeds the codec's maximum element length.
func (c *Codec) Encode(elements []string) ([]byte, error) {
	var buf []byte
	for i, element := range elements {
		if len(element) > c.maxElementLength {
			return nil, fmt.Errorf("nelf: element %d is %d bytes, maximum is %d: %w",
				i, len(element), c.maxElementLength, ErrElementTooLarge)
		}
		buf = fmt.Appendf(buf, "%d", len(element))
		buf = append(buf, c.separator)
		buf = append(buf, element...)
		buf = append(buf, c.terminator)
	}
	return buf, nil
}

// AppendElement appends one framed element containing content to dst and
// returns the extended buffer. On ErrElementTooLarge dst is returned
// unchanged.
func (c *Codec) AppendElement(dst, content []byte) ([]byte, error) {
	if len(content) > c.maxElementLength {
		return dst, fmt.Errorf("nelf: element is %d bytes, maximum is %d: %w",
			len(content), c.maxElementLength, ErrElementTooLarge)
	}
	dst = fmt.Appendf(dst, "%d", len(content))
	dst = append(dst, c.separator)
	dst = append(dst, content...)
	dst = append(dst, c.terminator)
	return dst, nil
}

// Encoder writes framed elements to an io.Writer.
//
// Writes are unbuffered. For streams, wrap the writer in a bufio.Writer
// if buffering is desired:
//
//	enc := nelf.NewEncoder(bufio.NewWriter(f))
type Encoder struct {
	codec *Codec
	w     io.Writer
}

// NewEncoder creates an encoder that writes to w with the default
// framing.
func NewEncoder(w io.Writer) *Encoder {
	return defaultCodec.NewEncoder(w)
}

// NewEncoder creates an encoder that writes to w with the codec's
// framing and limits.
func (c *Codec) NewEncoder(w io.Writer) *Encoder {
	return &Encoder{codec: c, w: w}
}

// Encode writes one framed element containing content.
//
// Example:
//
//	enc.Encode([]byte("hello")) // writes "5:hello,"
func (e *Encoder) Encode(content []byte) error {
	framed, err := e.codec.AppendElement(nil, content)
	if err != nil {
		return err
	}
	_, err = e.w.Write(framed)
	return err
}

// EncodeString is a convenience method that writes one framed element
// containing s.
func (e *Encoder) EncodeString(s string) error {
	return e.Encode([]byte(s))
}
