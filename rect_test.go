package csslogo

import (
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if !r.Overlaps(Rect{5, 5, 15, 15}) {
		t.Errorf("expected %v and %v to overlap", r, Rect{5, 5, 15, 15})
	}
	if r.Overlaps(Rect{10, 0, 20, 10}) {
		t.Errorf("touching rectangles must not overlap")
	}
	if r.Overlaps(Rect{11, 0, 20, 10}) {
		t.Errorf("disjoint rectangles must not overlap")
	}
	diff(t, NewRectFromOrigin(Pt(-120, -120), 240, 240), Rect{-120, -120, 120, 120})
}

func TestRoundedRectOutline(t *testing.T) {
	r := Rect{-120, -120, 120, 120}
	tests := []struct {
		name  string
		radii RoundedRectRadii
		want  string
	}{
		{
			"square",
			RoundedRectRadii{},
			"M-120,-120 L120,-120 L120,120 L-120,120 Z",
		},
		{
			"three corners",
			RoundedRectRadii{TopRight: 42, BottomRight: 42, BottomLeft: 42},
			"M-120,-120 L78,-120 A42 42 0 0 1 120,-78 L120,78 A42 42 0 0 1 78,120 L-78,120 A42 42 0 0 1 -120,78 Z",
		},
		{
			"all corners",
			RoundedRectRadii{10, 10, 10, 10},
			"M-110,-120 L110,-120 A10 10 0 0 1 120,-110 L120,110 A10 10 0 0 1 110,120 L-110,120 A10 10 0 0 1 -120,110 L-120,-110 A10 10 0 0 1 -110,-120 Z",
		},
		{
			"negative radius",
			RoundedRectRadii{-5, -5, -5, -5},
			"M-120,-120 L120,-120 L120,120 L-120,120 Z",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, r.RoundedRect(tt.radii).Outline().SVG(SVGOptions{}), tt.want)
		})
	}
}

func TestRoundedRectSquareHasNoArcs(t *testing.T) {
	r := Rect{0, 0, 1000, 1000}
	p := r.RoundedRect(RoundedRectRadii{}).Outline()
	if n := countKind(p, ArcToKind); n != 0 {
		t.Errorf("square outline contains arcs: %v", p)
	}
	p = r.RoundedRect(RoundedRectRadii{175, 175, 175, 175}).Outline()
	if n := countKind(p, ArcToKind); n != 4 {
		t.Errorf("got %d arcs, want 4", n)
	}
}

func countKind(p BezPath, kind PathElementKind) int {
	n := 0
	for _, el := range p {
		if el.Kind == kind {
			n++
		}
	}
	return n
}
