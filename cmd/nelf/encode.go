package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"
)

type encodeCmd struct {
	Stdin    bool     `help:"Read elements from stdin, one per line."`
	Output   string   `short:"o" type:"path" help:"Write to a file instead of stdout."`
	Elements []string `arg:"" optional:"" help:"Elements to encode."`
}

func (e *encodeCmd) Run(log *slog.Logger) error {
	codec, err := buildCodec(log)
	if err != nil {
		return err
	}

	elements := e.Elements
	if e.Stdin {
		elements, err = readLines(os.Stdin)
		if err != nil {
			return err
		}
	}

	buf, err := codec.Encode(elements)
	if err != nil {
		return err
	}
	log.Debug("encoded", "elements", len(elements), "bytes", len(buf))

	if e.Output != "" {
		return os.WriteFile(e.Output, buf, 0644)
	}
	_, err = os.Stdout.Write(buf)
	return err
}

// readLines reads one element per line. Line-based input cannot express
// elements containing newlines; encode those programmatically or pass
// them as arguments.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
