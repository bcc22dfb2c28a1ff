package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

// codecFlags are the framing flags shared by every subcommand. They win
// over values from a config file.
type codecFlags struct {
	Separator   string `help:"Separator byte ending the length field." placeholder:"CHAR"`
	Terminator  string `help:"Terminator byte ending each element." placeholder:"CHAR"`
	MaxLength   int    `help:"Maximum element content length in bytes."`
	MaxElements int    `help:"Maximum number of elements in a list."`
}

var cli struct {
	Verbose int        `short:"v" type:"counter" help:"How verbose to be, can use multiple."`
	Config  string     `short:"F" type:"existingfile" help:"Codec config file (CUE, YAML, or JSON)."`
	Framing codecFlags `embed:""`

	Decode  decodeCmd  `cmd:"" help:"Decode a list and print its elements."`
	Encode  encodeCmd  `cmd:"" help:"Encode elements into a list."`
	Inspect inspectCmd `cmd:"" help:"Print the offset and length of each element without decoding."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("nelf"),
		kong.Description("Encode and decode NELF, the no-escape list format."),
	)

	err := ctx.Run(newLogger(cli.Verbose))
	ctx.FatalIfErrorf(err)
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	}))
}

// readInput slurps the whole file, or stdin when path is empty. The
// codec wants one complete in-memory buffer; file handling stays out
// here in the command layer.
func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
