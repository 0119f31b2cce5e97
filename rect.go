package csslogo

import (
	"fmt"
)

// Rect is an axis-aligned rectangle with (X0, Y0) as its minimum corner and
// (X1, Y1) as its maximum corner in a y-down coordinate system.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRectFromOrigin returns the rectangle with the given origin and size.
func NewRectFromOrigin(origin Point, width, height float64) Rect {
	return Rect{
		X0: origin.X,
		Y0: origin.Y,
		X1: origin.X + width,
		Y1: origin.Y + height,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%g, %g, %g, %g}", r.X0, r.Y0, r.X1, r.Y1)
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Overlaps reports whether the interiors of the two rectangles intersect.
// Rectangles that merely touch do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// RoundedRect creates a new [RoundedRect] from this rectangle and the provided
// corner radii.
func (r Rect) RoundedRect(radii RoundedRectRadii) RoundedRect {
	return RoundedRect{
		Rect:  r,
		Radii: radii,
	}
}

// RoundedRect is a rectangle whose corners may be rounded by quarter
// circles. A corner with a radius of zero (or less) stays square.
type RoundedRect struct {
	Rect
	Radii RoundedRectRadii
}

// Outline returns the closed outline of the rectangle, drawn clockwise
// starting at the top edge. Rounded corners become [ArcToKind] elements;
// square corners produce no arc at all.
func (r RoundedRect) Outline() BezPath {
	x0, y0, x1, y1 := r.X0, r.Y0, r.X1, r.Y1
	tl, tr, br, bl := max(r.Radii.TopLeft, 0), max(r.Radii.TopRight, 0),
		max(r.Radii.BottomRight, 0), max(r.Radii.BottomLeft, 0)

	var p BezPath
	p.MoveTo(Pt(x0+tl, y0))
	p.LineTo(Pt(x1-tr, y0))
	if tr > 0 {
		p.ArcTo(Vec(tr, tr), Pt(x1, y0+tr))
	}
	p.LineTo(Pt(x1, y1-br))
	if br > 0 {
		p.ArcTo(Vec(br, br), Pt(x1-br, y1))
	}
	p.LineTo(Pt(x0+bl, y1))
	if bl > 0 {
		p.ArcTo(Vec(bl, bl), Pt(x0, y1-bl))
	}
	if tl > 0 {
		p.LineTo(Pt(x0, y0+tl))
		p.ArcTo(Vec(tl, tl), Pt(x0+tl, y0))
	}
	p.ClosePath()
	return p
}

type RoundedRectRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}
