package nelf

import "fmt"

// Codec frames, decodes, and encodes NELF lists with a fixed set of
// framing bytes and limits.
//
// A Codec is immutable after construction and safe for concurrent use.
// The zero value is not usable; call New, or use the package-level
// functions for the default framing.
type Codec struct {
	separator        byte
	terminator       byte
	maxElementLength int
	maxElements      int
	rawText          bool
}

// New creates a Codec.
//
// Without options the codec uses ':' and ',' framing, a 1MB element
// length cap, no element count cap, and UTF-8 text validation.
//
// New fails if the configured framing bytes could be confused with a
// length field (digits, or separator == terminator), or if a limit is
// not positive.
func New(opts ...Option) (*Codec, error) {
	cfg := &config{
		separator:        DefaultSeparator,
		terminator:       DefaultTerminator,
		maxElementLength: defaultMaxElementLength,
		maxElements:      0, // unlimited
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if isDigit(cfg.separator) {
		return nil, fmt.Errorf("nelf: separator %q is a digit and cannot delimit a length field", cfg.separator)
	}
	if isDigit(cfg.terminator) {
		return nil, fmt.Errorf("nelf: terminator %q is a digit and cannot delimit a length field", cfg.terminator)
	}
	if cfg.separator == cfg.terminator {
		return nil, fmt.Errorf("nelf: separator and terminator are both %q", cfg.separator)
	}
	if cfg.maxElementLength <= 0 {
		return nil, fmt.Errorf("nelf: max element length must be positive, got %d", cfg.maxElementLength)
	}
	if cfg.maxElements < 0 {
		return nil, fmt.Errorf("nelf: max elements must not be negative, got %d", cfg.maxElements)
	}

	return &Codec{
		separator:        cfg.separator,
		terminator:       cfg.terminator,
		maxElementLength: cfg.maxElementLength,
		maxElements:      cfg.maxElements,
		rawText:          cfg.rawText,
	}, nil
}

// defaultCodec backs the package-level functions. All fields match what
// New returns with no options.
var defaultCodec = &Codec{
	separator:        DefaultSeparator,
	terminator:       DefaultTerminator,
	maxElementLength: defaultMaxElementLength,
}

// Frame frames buf with the default codec. See Codec.Frame.
func Frame(buf []byte) ([]Span, error) {
	return defaultCodec.Frame(buf)
}

// Decode decodes buf with the default codec. See Codec.Decode.
func Decode(buf []byte) ([]string, error) {
	return defaultCodec.Decode(buf)
}

// DecodeBytes decodes buf with the default codec. See Codec.DecodeBytes.
func DecodeBytes(buf []byte) ([][]byte, error) {
	return defaultCodec.DecodeBytes(buf)
}

// Encode encodes elements with the default codec. See Codec.Encode.
func Encode(elements []string) ([]byte, error) {
	return defaultCodec.Encode(elements)
}

// isDigit returns true if b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
