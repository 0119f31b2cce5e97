package csslogo

import (
	"testing"
)

var defaultGlyph = Glyph{W1: 18, H1: 26, H2: 24, T1: 12, T2: 12, T3: 32}

func TestLetterformOpenHook(t *testing.T) {
	p := Letterform(OpenHook, defaultGlyph)
	want := BezPath{
		MoveTo(Pt(18, -26)),
		CubicTo(Pt(18, -38), Pt(12, -50), Pt(0, -50)),
		CubicTo(Pt(-12, -50), Pt(-18, -38), Pt(-18, -26)),
		LineTo(Pt(-18, 26)),
		CubicTo(Pt(-18, 38), Pt(-12, 50), Pt(0, 50)),
		CubicTo(Pt(12, 50), Pt(18, 38), Pt(18, 26)),
	}
	diff(t, p, want)
}

func TestLetterformClosedCurl(t *testing.T) {
	p := Letterform(ClosedCurl, defaultGlyph)
	want := BezPath{
		MoveTo(Pt(18, -26)),
		CubicTo(Pt(18, -38), Pt(12, -50), Pt(0, -50)),
		CubicTo(Pt(-12, -50), Pt(-18, -38), Pt(-18, -26)),
		CubicTo(Pt(-18, 6), Pt(18, -6), Pt(18, 26)),
		CubicTo(Pt(18, 38), Pt(12, 50), Pt(0, 50)),
		CubicTo(Pt(-12, 50), Pt(-18, 38), Pt(-18, 26)),
	}
	diff(t, p, want)
}

func TestLetterformMiddleSegment(t *testing.T) {
	c := Letterform(OpenHook, defaultGlyph)
	s := Letterform(ClosedCurl, defaultGlyph)
	if c[3].Kind != LineToKind {
		t.Errorf("C→D of the open hook is %v, want a line", c[3])
	}
	if s[3].Kind != CubicToKind {
		t.Errorf("C→D of the closed curl is %v, want a cubic", s[3])
	}

	// t3 only affects the closed curl's middle segment.
	g := defaultGlyph
	g.T3 = 5
	diff(t, Letterform(OpenHook, g), c)
	s2 := Letterform(ClosedCurl, g)
	diff(t, s2[3], CubicTo(Pt(-18, -21), Pt(18, 21), Pt(18, 26)))
	for i := range s {
		if i == 3 {
			continue
		}
		diff(t, s2[i], s[i])
	}
}

func TestLetterformSharedUpperHalf(t *testing.T) {
	c := Letterform(OpenHook, defaultGlyph)
	s := Letterform(ClosedCurl, defaultGlyph)
	diff(t, c[:3], s[:3])
	if len(c) != 6 || len(s) != 6 {
		t.Fatalf("got %d and %d elements, want 6", len(c), len(s))
	}
}

func TestLetterformDegenerate(t *testing.T) {
	p := Letterform(ClosedCurl, Glyph{})
	for _, el := range p {
		for _, pt := range []Point{el.P0, el.P1, el.P2} {
			if pt != (Point{}) {
				t.Fatalf("zero glyph produced %v", el)
			}
		}
	}
	diff(t, p.SVG(SVGOptions{}), "M0,0 C0,0 0,0 0,0 C0,0 0,0 0,0 C0,0 0,0 0,0 C0,0 0,0 0,0 C0,0 0,0 0,0")
}
