package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
)

type decodeCmd struct {
	Raw  bool   `help:"Write raw element bytes separated by NUL instead of quoting."`
	Path string `arg:"" optional:"" type:"existingfile" help:"Input file (defaults to stdin)."`
}

func (d *decodeCmd) Run(log *slog.Logger) error {
	codec, err := buildCodec(log)
	if err != nil {
		return err
	}

	buf, err := readInput(d.Path)
	if err != nil {
		return err
	}
	log.Debug("read input", "bytes", len(buf))

	if d.Raw {
		elements, err := codec.DecodeBytes(buf)
		if err != nil {
			return err
		}
		out := bufio.NewWriter(os.Stdout)
		for _, element := range elements {
			out.Write(element)
			out.WriteByte(0)
		}
		return out.Flush()
	}

	elements, err := codec.Decode(buf)
	if err != nil {
		return err
	}
	for _, element := range elements {
		fmt.Printf("%q\n", element)
	}
	return nil
}
