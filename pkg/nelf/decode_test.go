package nelf

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"
)

func TestDecode_EmptyBuffer(t *testing.T) {
	elements, err := Decode([]byte{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elements) != 0 {
		t.Errorf("expected empty list, got %v", elements)
	}
}

func TestDecode_Simple(t *testing.T) {
	elements, err := Decode([]byte("5:hello,"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elements) != 1 || elements[0] != "hello" {
		t.Errorf("got %v, want [hello]", elements)
	}
}

func TestDecode_EscapeFreedom(t *testing.T) {
	// The third element's content contains the terminator verbatim:
	// framing bytes inside content never need escaping.
	elements, err := Decode([]byte("5:hello,0:,3:a,b,"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"hello", "", "a,b"}
	if len(elements) != len(want) {
		t.Fatalf("got %d elements, want %d", len(elements), len(want))
	}
	for i := range want {
		if elements[i] != want[i] {
			t.Errorf("element %d: got %q, want %q", i, elements[i], want[i])
		}
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	_, err := Decode([]byte("4:ab\xff\xfe,"))
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("got error %v, want ErrInvalidEncoding", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	// Content starts at 2, the first invalid byte is two bytes in.
	if pe.Offset != 4 {
		t.Errorf("got offset %d, want 4", pe.Offset)
	}
}

func TestDecode_RawText(t *testing.T) {
	c, err := New(RawText())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	elements, err := c.Decode([]byte("4:ab\xff\xfe,"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elements) != 1 || elements[0] != "ab\xff\xfe" {
		t.Errorf("got %q", elements)
	}
}

func TestDecodeBytes_SkipsTextValidation(t *testing.T) {
	input := []byte("4:\x00\x01\xFF\xFE,")
	elements, err := DecodeBytes(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x00, 0x01, 0xFF, 0xFE}
	if len(elements) != 1 || !bytes.Equal(elements[0], want) {
		t.Errorf("got %v, want [%v]", elements, want)
	}
}

func TestDecodeBytes_ZeroCopy(t *testing.T) {
	buf := []byte("5:hello,")
	elements, err := DecodeBytes(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if &elements[0][0] != &buf[2] {
		t.Error("element does not alias the source buffer")
	}
}

func TestView_ZeroCopy(t *testing.T) {
	buf := []byte("5:hello,")
	spans, err := Frame(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := defaultCodec.View(buf, spans[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "hello" {
		t.Errorf("got %q, want %q", s, "hello")
	}
	if unsafe.StringData(s) != &buf[2] {
		t.Error("view does not alias the source buffer")
	}
}

func TestView_EmptyElement(t *testing.T) {
	buf := []byte("0:,")
	spans, err := Frame(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := defaultCodec.View(buf, spans[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "" {
		t.Errorf("got %q, want empty string", s)
	}
}

func TestDecode_ErrorDiscardsPrefix(t *testing.T) {
	// Decode is all-or-nothing; prefix recovery is Frame's job.
	elements, err := Decode([]byte("5:hello,boom"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if elements != nil {
		t.Errorf("expected nil elements on error, got %v", elements)
	}
}
