package csslogo

// Glyph holds the geometry shared by all letterforms of the logo.
type Glyph struct {
	// Horizontal position of A, C, D and F.
	W1 float64
	// Vertical position of A, C, D and F.
	H1 float64
	// Additional height of B and E above and below h1.
	H2 float64
	// Outward control point distance at A, C, D and F.
	T1 float64
	// Horizontal control point distance at B and E.
	T2 float64
	// Inward control point distance at C and D. Only the closed curl uses it.
	T3 float64
}

// Anchors returns the glyph's anchor points for variant v.
func (g Glyph) Anchors(v Variant) Anchors {
	return NewAnchors(g.W1, g.H1, g.H2, v)
}

// Letterform builds the path of one letterform, centered on the origin.
//
// The upper half is the same for both variants: a cubic from A over B to C,
// with the control points pushed outward by t1 at A and C and sideways by t2
// at B. The variants differ in how C reaches D, and the lower half mirrors
// the upper one from D over E to F.
func Letterform(v Variant, g Glyph) BezPath {
	a := g.Anchors(v)
	up := Vec(0, -g.T1)
	down := Vec(0, g.T1)
	waist := Vec(g.T2, 0)

	p := make(BezPath, 0, 6)
	p.MoveTo(a.A)
	p.CubicTo(a.A.Translate(up), a.B.Translate(waist), a.B)
	p.CubicTo(a.B.Translate(waist.Negate()), a.C.Translate(up), a.C)

	// The control point at E leans toward D, which is on A's side only for
	// the closed curl.
	lower := waist
	switch v {
	case ClosedCurl:
		inward := Vec(0, g.T3)
		p.CubicTo(a.C.Translate(inward), a.D.Translate(inward.Negate()), a.D)
	default:
		p.LineTo(a.D)
		lower = waist.Negate()
	}

	p.CubicTo(a.D.Translate(down), a.E.Translate(lower), a.E)
	p.CubicTo(a.E.Translate(lower.Negate()), a.F.Translate(down), a.F)
	return p
}
