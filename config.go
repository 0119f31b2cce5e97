package csslogo

// Config describes one logo. All lengths are in the user units of the
// selected [Profile]. The zero value is not useful; start from
// [DefaultConfig] and override fields.
type Config struct {
	// Canvas the document is drawn on.
	Profile Profile `json:"profile" yaml:"profile"`

	// Half-width of a letterform. Default 18 (Centered240), 75 (TopLeft1000).
	W1 float64 `json:"w1" yaml:"w1"`
	// Inner half-height of a letterform. Default 26, 108.
	H1 float64 `json:"h1" yaml:"h1"`
	// Outer half-height of a letterform. Default 24, 100.
	H2 float64 `json:"h2" yaml:"h2"`
	// Outward tension at A, C, D and F. Default 12, 50.
	T1 float64 `json:"t1" yaml:"t1"`
	// Horizontal tension at B and E. Default 12, 50.
	T2 float64 `json:"t2" yaml:"t2"`
	// Inward tension of the S's middle segment. Default 32, 133.
	T3 float64 `json:"t3" yaml:"t3"`

	// Stroke width of the letterforms. Default 18, 75.
	Stroke float64 `json:"s" yaml:"s"`
	// Spacing between letterforms. Default Stroke+6 (24), 100.
	Kerning float64 `json:"k" yaml:"k"`
	// Corner radius of the background frame; 0 gives square corners.
	// Default 42, 175.
	Radius float64 `json:"r" yaml:"r"`
	// Distance between the canvas edge and the letterforms. Default 24, 100.
	Offset float64 `json:"o" yaml:"o"`

	// Stroke color of the letterforms. Any SVG color; not validated.
	// Default "white".
	Foreground string `json:"fg" yaml:"fg"`
	// Fill color of the background frame. Default "rebeccapurple".
	Background string `json:"bg" yaml:"bg"`

	// Prefix for the ids of the title and description elements. Defaults to
	// "css" when Title or Description is set.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// Accessible name of the document. Omitted when empty.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Accessible description of the document. Omitted when empty.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DefaultConfig returns the default logo for profile p.
func DefaultConfig(p Profile) Config {
	switch p {
	case TopLeft1000:
		return Config{
			Profile:    TopLeft1000,
			W1:         75,
			H1:         108,
			H2:         100,
			T1:         50,
			T2:         50,
			T3:         133,
			Stroke:     75,
			Kerning:    100,
			Radius:     175,
			Offset:     100,
			Foreground: "white",
			Background: "rebeccapurple",
		}
	default:
		const thickness = 18
		return Config{
			Profile:    Centered240,
			W1:         18,
			H1:         26,
			H2:         24,
			T1:         12,
			T2:         12,
			T3:         32,
			Stroke:     thickness,
			Kerning:    thickness + 6,
			Radius:     42,
			Offset:     24,
			Foreground: "white",
			Background: "rebeccapurple",
		}
	}
}

// Glyph returns the letterform geometry of the configuration.
func (cfg Config) Glyph() Glyph {
	return Glyph{
		W1: cfg.W1,
		H1: cfg.H1,
		H2: cfg.H2,
		T1: cfg.T1,
		T2: cfg.T2,
		T3: cfg.T3,
	}
}

// HasMetadata reports whether the document carries a title or description.
func (cfg Config) HasMetadata() bool {
	return cfg.Title != "" || cfg.Description != ""
}

func (cfg Config) metadataID() string {
	if cfg.ID != "" {
		return cfg.ID
	}
	return "css"
}
