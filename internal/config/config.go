// Package config loads logo configurations from JSON and YAML files.
//
// A file may set any field of [csslogo.Config] using the short option names
// (w1, h1, h2, t1, t2, t3, s, k, r, o, fg, bg, id, title, description).
// Fields a file doesn't set keep the defaults of the file's profile, which
// is selected by the optional profile key.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/csslogo"
)

// ErrUnsupportedFormat is returned for files whose extension is neither
// .json nor .yaml/.yml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Format is the encoding of a configuration file.
type Format int

const (
	JSON Format = iota + 1
	YAML
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the configuration file at path.
func Load(path string) (csslogo.Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return csslogo.Config{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return csslogo.Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Decode(b, format)
	if err != nil {
		return csslogo.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOver reads the configuration file at path and applies it on top of
// base instead of the defaults of the file's profile.
func LoadOver(path string, base csslogo.Config) (csslogo.Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return csslogo.Config{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return csslogo.Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := DecodeOver(b, format, base)
	if err != nil {
		return csslogo.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes a configuration. Unknown keys are an error.
func Decode(b []byte, format Format) (csslogo.Config, error) {
	// The profile decides the defaults, so it has to be known before the
	// rest of the document is applied on top of them.
	var head struct {
		Profile csslogo.Profile `json:"profile" yaml:"profile"`
	}
	if err := decode(b, format, &head, false); err != nil {
		return csslogo.Config{}, err
	}
	return DecodeOver(b, format, csslogo.DefaultConfig(head.Profile))
}

// DecodeOver decodes a configuration on top of base. Unknown keys are an
// error.
func DecodeOver(b []byte, format Format, base csslogo.Config) (csslogo.Config, error) {
	if err := decode(b, format, &base, true); err != nil {
		return csslogo.Config{}, err
	}
	return base, nil
}

func decode(b []byte, format Format, v any, strict bool) error {
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(b))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decoding JSON: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(strict)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decoding YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(format))
	}
	return nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg csslogo.Config, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(format))
	}
}
