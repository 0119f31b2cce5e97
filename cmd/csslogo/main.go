// Command csslogo writes the CSS logo as SVG files.
//
// By default it writes css.svg, css.square.svg, css.light.svg and
// css.dark.svg to the working directory. Every parameter of the logo can be
// set from a JSON or YAML file (-config) and overridden by flags; explicitly
// set flags always win.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"honnef.co/go/csslogo"
	"honnef.co/go/csslogo/internal/config"
	"honnef.co/go/csslogo/internal/emit"
)

var floatFields = []struct {
	name, usage string
	field       func(*csslogo.Config) *float64
}{
	{"w1", "half-width of a letterform", func(c *csslogo.Config) *float64 { return &c.W1 }},
	{"h1", "inner half-height of a letterform", func(c *csslogo.Config) *float64 { return &c.H1 }},
	{"h2", "outer half-height of a letterform", func(c *csslogo.Config) *float64 { return &c.H2 }},
	{"t1", "outward tension at A, C, D and F", func(c *csslogo.Config) *float64 { return &c.T1 }},
	{"t2", "horizontal tension at B and E", func(c *csslogo.Config) *float64 { return &c.T2 }},
	{"t3", "inward tension of the S", func(c *csslogo.Config) *float64 { return &c.T3 }},
	{"s", "stroke width", func(c *csslogo.Config) *float64 { return &c.Stroke }},
	{"k", "kerning between letterforms", func(c *csslogo.Config) *float64 { return &c.Kerning }},
	{"r", "corner radius of the frame, 0 for square corners", func(c *csslogo.Config) *float64 { return &c.Radius }},
	{"o", "distance between the canvas edge and the letterforms", func(c *csslogo.Config) *float64 { return &c.Offset }},
}

var stringFields = []struct {
	name, usage string
	field       func(*csslogo.Config) *string
}{
	{"fg", "foreground color", func(c *csslogo.Config) *string { return &c.Foreground }},
	{"bg", "background color", func(c *csslogo.Config) *string { return &c.Background }},
	{"id", "id prefix of the title and description", func(c *csslogo.Config) *string { return &c.ID }},
	{"title", "accessible title", func(c *csslogo.Config) *string { return &c.Title }},
	{"description", "accessible description", func(c *csslogo.Config) *string { return &c.Description }},
}

// listFlag collects comma-separated values of a repeatable flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(s string) error {
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l = append(*l, v)
		}
	}
	return nil
}

type options struct {
	configPath string
	profile    csslogo.Profile
	outDir     string
	stdout     bool
	verbose    bool
	targets    listFlag

	flags csslogo.Config
	set   map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("csslogo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "JSON or YAML configuration `file`")
	fs.TextVar(&o.profile, "profile", csslogo.Centered240, "canvas profile: centered240 or topleft1000")
	fs.StringVar(&o.outDir, "out", "", "output `directory`")
	fs.BoolVar(&o.stdout, "stdout", false, "write documents to standard output instead of files")
	fs.BoolVar(&o.verbose, "v", false, "log debug output")
	fs.Var(&o.targets, "target", "comma-separated `targets` to write: css, square, light, dark (default all)")

	defaults := csslogo.DefaultConfig(csslogo.Centered240)
	for _, f := range floatFields {
		fs.Float64Var(f.field(&o.flags), f.name, *f.field(&defaults), f.usage)
	}
	for _, f := range stringFields {
		fs.StringVar(f.field(&o.flags), f.name, *f.field(&defaults), f.usage)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return nil, errors.New("unexpected arguments")
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// config layers profile defaults, the configuration file and explicitly
// set flags, in that order.
func (o *options) config() (csslogo.Config, error) {
	cfg := csslogo.DefaultConfig(o.profile)
	if o.configPath != "" {
		var err error
		if o.set["profile"] {
			cfg, err = config.LoadOver(o.configPath, cfg)
		} else {
			cfg, err = config.Load(o.configPath)
		}
		if err != nil {
			return csslogo.Config{}, err
		}
	}
	if o.set["profile"] {
		cfg.Profile = o.profile
	}
	for _, f := range floatFields {
		if o.set[f.name] {
			*f.field(&cfg) = *f.field(&o.flags)
		}
	}
	for _, f := range stringFields {
		if o.set[f.name] {
			*f.field(&cfg) = *f.field(&o.flags)
		}
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := o.config()
	if err != nil {
		logger.Error("couldn't load configuration", slog.Any("err", err))
		return 1
	}
	targets, err := emit.Select(emit.Targets(), o.targets)
	if err != nil {
		logger.Error("couldn't select targets", slog.Any("err", err))
		return 1
	}
	logger.Debug("configuration",
		slog.String("profile", cfg.Profile.String()),
		slog.Int("targets", len(targets)))

	if o.stdout {
		err = emit.WriteTo(stdout, targets, cfg)
	} else {
		w := &emit.Writer{Dir: o.outDir, Logger: logger}
		err = w.WriteAll(targets, cfg)
	}
	if err != nil {
		logger.Error("couldn't write logo", slog.Any("err", err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
