// Package config provides configuration loading for the nelf tool.
// It supports YAML, JSON, and CUE file formats using CUE as the underlying parser.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/encoding/yaml"

	"github.com/nelf-format/nelf/pkg/nelf"
)

// Settings is the codec configuration a file may provide. Zero values
// mean "not set" and leave the defaults alone.
type Settings struct {
	Separator        string `json:"separator"`
	Terminator       string `json:"terminator"`
	MaxElementLength int    `json:"max_element_length"`
	MaxElements      int    `json:"max_elements"`
	TextValidity     string `json:"text_validity"` // "utf8" (default) or "none"
}

// Options translates the settings into codec options. Validation of the
// resulting combination (digit framing bytes and so on) stays with
// nelf.New; this only rejects values that cannot even be expressed as
// options, like multi-byte framing strings.
func (s *Settings) Options() ([]nelf.Option, error) {
	var opts []nelf.Option

	if s.Separator != "" {
		if len(s.Separator) != 1 {
			return nil, fmt.Errorf("separator must be a single byte, got %q", s.Separator)
		}
		opts = append(opts, nelf.Separator(s.Separator[0]))
	}
	if s.Terminator != "" {
		if len(s.Terminator) != 1 {
			return nil, fmt.Errorf("terminator must be a single byte, got %q", s.Terminator)
		}
		opts = append(opts, nelf.Terminator(s.Terminator[0]))
	}
	if s.MaxElementLength != 0 {
		opts = append(opts, nelf.MaxElementLength(s.MaxElementLength))
	}
	if s.MaxElements != 0 {
		opts = append(opts, nelf.MaxElements(s.MaxElements))
	}

	switch s.TextValidity {
	case "", "utf8":
	case "none":
		opts = append(opts, nelf.RawText())
	default:
		return nil, fmt.Errorf("text_validity must be %q or %q, got %q", "utf8", "none", s.TextValidity)
	}

	return opts, nil
}

// Load reads codec settings from a file.
//
// For .cue files: Uses CUE's load.Instances to support CUE packages with
// imports and modules.
// For .yaml/.yml/.json files: Uses direct parsing for standalone data files.
func Load(path string) (*Settings, error) {
	val, err := loadValue(path)
	if err != nil {
		return nil, err
	}
	return decode(val)
}

// LoadFromReader reads codec settings from an io.Reader, parsing the
// content as YAML (which is a superset of JSON). For .cue files with
// imports, use Load instead.
func LoadFromReader(r io.Reader) (*Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	file, err := yaml.Extract("", data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	val := cuecontext.New().BuildFile(file)
	if err := val.Err(); err != nil {
		return nil, fmt.Errorf("failed to build CUE value: %w", err)
	}

	return decode(val)
}

func decode(val cue.Value) (*Settings, error) {
	var settings Settings
	if err := val.Decode(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &settings, nil
}

// loadValue loads a config file into a CUE value, dispatching on the
// file extension.
func loadValue(path string) (cue.Value, error) {
	ctx := cuecontext.New()

	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
	}

	var val cue.Value

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".cue":
		absPath, err := filepath.Abs(path)
		if err != nil {
			return cue.Value{}, fmt.Errorf("failed to resolve path: %w", err)
		}

		cfg := &load.Config{
			Dir:       filepath.Dir(absPath),
			DataFiles: true,
		}
		instances := load.Instances([]string{absPath}, cfg)
		if len(instances) == 0 {
			return cue.Value{}, fmt.Errorf("no instances loaded from %s", path)
		}
		inst := instances[0]
		if inst.Err != nil {
			return cue.Value{}, fmt.Errorf("failed to load config: %w", inst.Err)
		}
		val = ctx.BuildInstance(inst)
	case ".json":
		// JSON can be compiled directly
		val = ctx.CompileBytes(data)
	default:
		// YAML, or try YAML for anything unrecognized
		file, err := yaml.Extract("", data)
		if err != nil {
			return cue.Value{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
		val = ctx.BuildFile(file)
	}

	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}

	return val, nil
}
