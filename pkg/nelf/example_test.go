package nelf_test

import (
	"bytes"
	"fmt"

	"github.com/nelf-format/nelf/pkg/nelf"
)

func ExampleEncode() {
	buf, _ := nelf.Encode([]string{"hello", "", "a,b"})

	fmt.Println(string(buf))
	// Output: 5:hello,0:,3:a,b,
}

func ExampleDecode() {
	elements, _ := nelf.Decode([]byte("5:hello,0:,3:a,b,"))

	for _, e := range elements {
		fmt.Printf("%q\n", e)
	}
	// Output:
	// "hello"
	// ""
	// "a,b"
}

func ExampleFrame() {
	buf := []byte("5:hello,3:a,b,")

	spans, _ := nelf.Frame(buf)
	for _, span := range spans {
		fmt.Printf("%d+%d %q\n", span.Start, span.Length, span.Bytes(buf))
	}
	// Output:
	// 2+5 "hello"
	// 10+3 "a,b"
}

func ExampleEncoder_Encode() {
	var buf bytes.Buffer
	enc := nelf.NewEncoder(&buf)

	enc.Encode([]byte("hello"))
	enc.Encode([]byte("world"))

	fmt.Println(buf.String())
	// Output: 5:hello,5:world,
}

func ExampleNew() {
	codec, _ := nelf.New(nelf.Separator(';'), nelf.Terminator('\n'))

	buf, _ := codec.Encode([]string{"hello", "a,b"})
	fmt.Printf("%q\n", buf)
	// Output: "5;hello\n3;a,b\n"
}
