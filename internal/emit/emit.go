// Package emit writes logo documents to their destinations.
//
// Each [Target] is a named output file produced by re-running the document
// assembler on a variation of a base configuration. The drawing itself stays
// in package csslogo; this package only decides what to draw and where the
// bytes go.
package emit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/csslogo"
)

// ErrUnknownTarget is returned by [Select] for names that don't match any
// target.
var ErrUnknownTarget = errors.New("unknown target")

// Target is one output document.
type Target struct {
	// Name identifies the target on the command line.
	Name string
	// File is the file name the document is written to.
	File string
	// Apply derives the target's configuration from the base configuration.
	Apply func(csslogo.Config) csslogo.Config
}

// Config returns the configuration the target draws with.
func (t Target) Config(base csslogo.Config) csslogo.Config {
	if t.Apply == nil {
		return base
	}
	return t.Apply(base)
}

const (
	title       = "CSS"
	description = "The letters C, S and S, stroked on a rounded square."
)

// titled gives cfg the default title unless it already has one.
func titled(cfg csslogo.Config) csslogo.Config {
	if cfg.Title == "" {
		cfg.Title = title
	}
	return cfg
}

// Targets returns the standard set of logo files.
func Targets() []Target {
	return []Target{
		{
			Name:  "css",
			File:  "css.svg",
			Apply: titled,
		},
		{
			Name: "square",
			File: "css.square.svg",
			Apply: func(cfg csslogo.Config) csslogo.Config {
				cfg.Radius = 0
				return titled(cfg)
			},
		},
		{
			Name: "light",
			File: "css.light.svg",
			Apply: func(cfg csslogo.Config) csslogo.Config {
				cfg.Foreground = "rebeccapurple"
				cfg.Background = "white"
				cfg.ID = "css-light"
				cfg.Title = title
				cfg.Description = description
				return cfg
			},
		},
		{
			Name: "dark",
			File: "css.dark.svg",
			Apply: func(cfg csslogo.Config) csslogo.Config {
				cfg.Foreground = "white"
				cfg.Background = "#1b1b1b"
				cfg.ID = "css-dark"
				cfg.Title = title
				cfg.Description = description
				return cfg
			},
		},
	}
}

// Select returns the targets named in names, in the order of targets. An
// empty list selects all targets.
func Select(targets []Target, names []string) ([]Target, error) {
	if len(names) == 0 {
		return targets, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.TrimSpace(n)] = true
	}
	var out []Target
	for _, t := range targets {
		if want[t.Name] {
			out = append(out, t)
			delete(want, t.Name)
		}
	}
	if len(want) > 0 {
		var unknown []string
		for _, n := range names {
			if want[strings.TrimSpace(n)] {
				unknown = append(unknown, strings.TrimSpace(n))
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, strings.Join(unknown, ", "))
	}
	return out, nil
}

// Writer writes targets to files in Dir.
type Writer struct {
	// Directory the files are created in. Empty means the working
	// directory.
	Dir string
	// Logger receives one record per written file. Nil disables logging.
	Logger *slog.Logger
}

func (w *Writer) logger() *slog.Logger {
	if w.Logger == nil {
		return newNopLogger()
	}
	return w.Logger
}

// WriteAll writes every target, stopping at the first error.
func (w *Writer) WriteAll(targets []Target, base csslogo.Config) error {
	for _, t := range targets {
		if _, err := w.Write(t, base); err != nil {
			return err
		}
	}
	return nil
}

// Write writes a single target and returns the path of the file.
func (w *Writer) Write(t Target, base csslogo.Config) (string, error) {
	log := w.logger()
	path := filepath.Join(w.Dir, t.File)
	cfg := t.Config(base)
	doc := csslogo.Draw(cfg)
	log.Debug("drew document",
		slog.String("target", t.Name),
		slog.String("profile", cfg.Profile.String()),
		slog.Int("bytes", len(doc)))

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing target %s: %w", t.Name, err)
	}
	log.Info("wrote logo", slog.String("target", t.Name), slog.String("path", path))
	return path, nil
}

// WriteTo writes the documents of targets to out, one after another.
func WriteTo(out io.Writer, targets []Target, base csslogo.Config) error {
	for _, t := range targets {
		if err := csslogo.WriteDocument(out, t.Config(base)); err != nil {
			return fmt.Errorf("writing target %s: %w", t.Name, err)
		}
	}
	return nil
}
