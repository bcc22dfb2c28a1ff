package nelf

import (
	"errors"
	"fmt"
)

// Kind sentinels. Every *ParseError unwraps to exactly one of these.
var (
	// ErrMalformedLength indicates a non-digit where a length field was
	// expected, or an empty length field.
	ErrMalformedLength = errors.New("nelf: malformed length field")

	// ErrLengthOverflow indicates a length field exceeding the configured
	// maximum element length.
	ErrLengthOverflow = errors.New("nelf: length field exceeds maximum")

	// ErrMissingSeparator indicates the byte after the length field is not
	// the separator.
	ErrMissingSeparator = errors.New("nelf: missing separator")

	// ErrTruncatedContent indicates a declared length running past the end
	// of the buffer.
	ErrTruncatedContent = errors.New("nelf: content truncated")

	// ErrMissingTerminator indicates the byte after an element's content
	// is not the terminator.
	ErrMissingTerminator = errors.New("nelf: missing terminator")

	// ErrInvalidEncoding indicates element content that fails the
	// configured text validity rule (UTF-8 by default).
	ErrInvalidEncoding = errors.New("nelf: content is not valid text")

	// ErrTooManyElements indicates the buffer holds more elements than
	// the configured MaxElements guard allows.
	ErrTooManyElements = errors.New("nelf: too many elements")

	// ErrElementTooLarge indicates an encode-side element whose content
	// exceeds the configured maximum element length.
	ErrElementTooLarge = errors.New("nelf: element exceeds maximum length")
)

// ParseError describes the first malformed construct encountered in a
// source buffer.
type ParseError struct {
	Offset int    // Absolute byte offset of the offending token
	Kind   error  // One of the Err* sentinels above
	Reason string // Human-readable explanation
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
