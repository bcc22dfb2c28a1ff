// Package nelf implements encoding and decoding of NELF, the No Escape
// List Format.
//
// NELF represents a flat list of byte strings. Each element is framed by
// an explicit length prefix, so element content never needs escaping: any
// byte value, including the framing bytes themselves, may appear verbatim
// inside an element. The format is: <length><SEP><content><TERM>
//
// Where <length> is the decimal ASCII byte count of the content, <SEP> is
// a single separator byte (default ':'), <content> is exactly that many
// raw bytes, and <TERM> is a single terminator byte (default ','). A list
// is zero or more elements concatenated; a zero-length buffer is the
// empty list.
//
// # Examples
//
//	"5:hello,"         // the one-element list ["hello"]
//	"0:,"              // the one-element list [""]
//	"5:hello,0:,3:a,b," // ["hello", "", "a,b"] — note the literal ','
//
// # Basic Usage
//
// Encoding:
//
//	buf, err := nelf.Encode([]string{"hello", "", "a,b"})
//	// buf == []byte("5:hello,0:,3:a,b,")
//
// Decoding:
//
//	elements, err := nelf.Decode(buf)
//	// elements == []string{"hello", "", "a,b"}
//
// Framing only, when you want raw byte ranges instead of strings:
//
//	spans, err := nelf.Frame(buf)
//	for _, span := range spans {
//		content := span.Bytes(buf)
//		// ...
//	}
//
// # Zero Copy
//
// Decoding never copies element content. Span.Bytes returns a subslice of
// the source buffer, and the strings returned by View and Decode alias
// the source buffer directly. The caller owns the buffer and must keep it
// alive and unmodified for as long as any span, byte slice, or string
// derived from it is in use. Callers that need an independent copy can
// use strings.Clone or bytes.Clone on individual elements.
//
// A source buffer may be shared read-only across goroutines: the package
// never mutates it and holds no state between calls.
//
// # Errors
//
// Malformed input is reported as a *ParseError carrying the absolute byte
// offset of the first invalid token and a kind sentinel (ErrMalformedLength,
// ErrTruncatedContent, and friends) reachable through errors.Is. Parsing
// halts at the first error; Frame additionally returns the validated
// prefix so callers can choose their own recovery policy.
//
// # Limits
//
// The MaxElementLength option (default 1MB) bounds the length field and
// prevents memory exhaustion from malicious inputs. The MaxElements
// option bounds the number of elements a single parse will produce,
// guarding against tiny-element inputs that inflate allocation count.
package nelf
