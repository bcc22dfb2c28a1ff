package main

import (
	"fmt"
	"log/slog"
)

type inspectCmd struct {
	Path string `arg:"" optional:"" type:"existingfile" help:"Input file (defaults to stdin)."`
}

// Run frames the input without materializing views and prints one
// "offset length" pair per element. When framing stops early the valid
// prefix still prints, followed by the positioned error on stderr.
func (i *inspectCmd) Run(log *slog.Logger) error {
	codec, err := buildCodec(log)
	if err != nil {
		return err
	}

	buf, err := readInput(i.Path)
	if err != nil {
		return err
	}

	spans, ferr := codec.Frame(buf)
	for _, span := range spans {
		fmt.Printf("%d %d\n", span.Start, span.Length)
	}
	return ferr
}
