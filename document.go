package csslogo

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// PlacedLetterform is one letterform of the logo together with its
// horizontal placement inside the foreground group.
type PlacedLetterform struct {
	Variant   Variant
	Transform Affine
	Path      BezPath
}

// Placed returns the letterform's path with its placement applied.
func (lf PlacedLetterform) Placed() BezPath {
	return lf.Path.Transform(lf.Transform)
}

// logo lists the letterforms in emission order. The first one ends up
// leftmost.
var logo = [...]Variant{OpenHook, ClosedCurl, ClosedCurl}

// Stride returns the horizontal distance between the placements of two
// adjacent letterforms.
func Stride(cfg Config) float64 {
	return cfg.W1*2 + cfg.Kerning
}

// Placement returns the transform of the i-th letterform counted from the
// right, so i = 0 is the rightmost one and stays at the group's origin.
func Placement(i int, cfg Config) Affine {
	return Translate(Vec(-float64(i)*Stride(cfg), 0))
}

// GroupTransform returns the transform that anchors the rightmost
// letterform Offset units away from the bottom-right edge of the canvas.
func GroupTransform(cfg Config) Affine {
	canvas := cfg.Profile.Canvas()
	return Translate(Vec(
		canvas.X1-cfg.Offset-cfg.W1,
		canvas.Y1-cfg.Offset-cfg.H1-cfg.H2,
	))
}

// Layout returns the three letterforms of the logo in emission order: the C
// first, placed furthest left, followed by the two S.
func Layout(cfg Config) []PlacedLetterform {
	g := cfg.Glyph()
	out := make([]PlacedLetterform, len(logo))
	for n, v := range logo {
		out[n] = PlacedLetterform{
			Variant:   v,
			Transform: Placement(len(logo)-1-n, cfg),
			Path:      Letterform(v, g),
		}
	}
	return out
}

// Frame returns the background outline covering the whole canvas. The
// top-left corner is always square.
func Frame(cfg Config) BezPath {
	return cfg.Profile.Canvas().RoundedRect(RoundedRectRadii{
		TopRight:    cfg.Radius,
		BottomRight: cfg.Radius,
		BottomLeft:  cfg.Radius,
	}).Outline()
}

// Draw returns the SVG document for cfg. Identical configurations produce
// identical documents.
func Draw(cfg Config) string {
	sb := &strings.Builder{}
	// Writes to a strings.Builder never fail.
	WriteDocument(sb, cfg)
	return sb.String()
}

// WriteDocument writes the SVG document for cfg to w. The only possible
// error is one returned by w.
func WriteDocument(w io.Writer, cfg Config) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	var opts SVGOptions

	view := cfg.Profile.Canvas()
	size := cfg.Profile.Size()
	attrs := []string{
		attr("viewBox", fmt.Sprintf("%s %s %s %s",
			opts.format(view.X0), opts.format(view.Y0),
			opts.format(view.Width()), opts.format(view.Height()))),
		attr("fill", "none"),
	}
	type metadata struct{ tag, id, text string }
	var meta []metadata
	if cfg.HasMetadata() {
		id := cfg.metadataID()
		if cfg.Title != "" {
			meta = append(meta, metadata{"title", id + "-title", cfg.Title})
		}
		if cfg.Description != "" {
			meta = append(meta, metadata{"desc", id + "-desc", cfg.Description})
		}
		ids := make([]string, len(meta))
		for i, m := range meta {
			ids[i] = m.id
		}
		attrs = append(attrs,
			attr("role", "img"),
			attr("aria-labelledby", strings.Join(ids, " ")))
	}

	canvas.Start(size, size, attrs...)
	for _, m := range meta {
		fmt.Fprintf(canvas.Writer, "<%s %s>%s</%[1]s>\n", m.tag, attr("id", m.id), escape(m.text))
	}
	canvas.Path(Frame(cfg).SVG(opts), attr("fill", cfg.Background))
	canvas.Group(
		attr("class", "CSS"),
		attr("stroke-width", opts.format(cfg.Stroke)),
		attr("stroke", cfg.Foreground),
		attr("transform", GroupTransform(cfg).SVG(opts)),
	)
	for _, lf := range Layout(cfg) {
		canvas.Path(lf.Path.SVG(opts),
			attr("class", lf.Variant.String()),
			attr("transform", lf.Transform.SVG(opts)))
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

func escape(s string) string {
	sb := &strings.Builder{}
	xml.EscapeText(sb, []byte(s))
	return sb.String()
}

func attr(name, value string) string {
	return name + `="` + escape(value) + `"`
}

// errWriter remembers the first write error and drops all subsequent
// writes, since the svg package doesn't report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}
