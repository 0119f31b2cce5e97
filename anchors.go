package csslogo

import (
	"fmt"
)

// Variant selects one of the two letterforms of the logo.
type Variant int

const (
	// OpenHook is the "C": the middle of the left side is a straight line
	// and the lower half curls back toward A's side.
	OpenHook Variant = iota + 1
	// ClosedCurl is the "S": the middle segment crosses from C to D as a
	// cubic curve controlled by the inward tension t3.
	ClosedCurl
)

func (v Variant) String() string {
	switch v {
	case OpenHook:
		return "C"
	case ClosedCurl:
		return "S"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Anchors are the six skeletal points of a letterform, centered on the
// origin in a y-down coordinate system:
//
//	   ╋━w1━┫
//	╭──╴B╶──╮  ┳
//	│       │  h2
//	C       A  ╋
//	│          h1
//	D       F  ┻      (OpenHook)
//	F       D         (ClosedCurl)
//	│       │
//	╰──╴E╶──╯
//
// A, C, D and F sit at ±h1; B and E are the vertical extremes at ±(h1+h2).
type Anchors struct {
	A, B, C, D, E, F Point
}

// NewAnchors derives the anchors of variant v from the half-width w1, the
// inner half-height h1 and the outer half-height h2. Inputs are not
// validated; zero or negative sizes simply collapse or flip the shape.
func NewAnchors(w1, h1, h2 float64, v Variant) Anchors {
	a := Anchors{
		A: Pt(w1, -h1),
		B: Pt(0, -(h1 + h2)),
		C: Pt(-w1, -h1),
		D: Pt(-w1, h1),
		E: Pt(0, h1+h2),
		F: Pt(w1, h1),
	}
	if v == ClosedCurl {
		a.D, a.F = a.D.Mirror(), a.F.Mirror()
	}
	return a
}
