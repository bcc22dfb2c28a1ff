package nelf

// Default framing bytes, netstring-style.
const (
	DefaultSeparator  byte = ':'
	DefaultTerminator byte = ','
)

const (
	// Default maximum element length (1MB)
	defaultMaxElementLength = 1024 * 1024
)

// config holds codec configuration.
type config struct {
	separator        byte
	terminator       byte
	maxElementLength int
	maxElements      int
	rawText          bool
}

// Option configures a Codec.
type Option func(*config)

// Separator sets the byte that ends the length field.
//
// The separator must not be an ASCII digit, since a digit could not be
// told apart from the length field it terminates. New rejects digit
// separators.
//
// Default: ':'
func Separator(b byte) Option {
	return func(c *config) {
		c.separator = b
	}
}

// Terminator sets the byte that ends each element.
//
// The terminator must not be an ASCII digit, and must differ from the
// separator. New rejects anything else.
//
// Default: ','
func Terminator(b byte) Option {
	return func(c *config) {
		c.terminator = b
	}
}

// MaxElementLength sets the maximum allowed element content length in
// bytes. Length fields exceeding this value fail with ErrLengthOverflow
// on decode; on encode, longer elements fail with ErrElementTooLarge.
//
// This prevents memory exhaustion attacks from malicious inputs.
//
// Default: 1MB (1048576 bytes)
func MaxElementLength(n int) Option {
	return func(c *config) {
		c.maxElementLength = n
	}
}

// MaxElements caps the number of elements a single parse will produce.
// Buffers with more elements fail with ErrTooManyElements, positioned at
// the first element past the cap.
//
// This guards against pathological inputs made of millions of tiny
// elements, which are cheap to send but expensive to hold spans for.
//
// Default: 0 (unlimited)
func MaxElements(n int) Option {
	return func(c *config) {
		c.maxElements = n
	}
}

// RawText disables text validation: View and Decode return string views
// over the raw content bytes whether or not they are valid UTF-8.
//
// Default: off (content must be valid UTF-8 to be viewed as a string;
// DecodeBytes never validates regardless)
func RawText() Option {
	return func(c *config) {
		c.rawText = true
	}
}
