package csslogo

import (
	"testing"
)

func TestAffineTranslation(t *testing.T) {
	diff(t, Translate(Vec(5, 6)).Translation(), Vec(5, 6))
	if !Identity.IsTranslation() {
		t.Error("identity must be a translation")
	}
	if (Affine{2, 0, 0, 2, 0, 0}).IsTranslation() {
		t.Error("scaling isn't a translation")
	}
}

func TestAffineSVG(t *testing.T) {
	tests := []struct {
		aff  Affine
		want string
	}{
		{Identity, "translate(0 0)"},
		{Translate(Vec(-120, 0)), "translate(-120 0)"},
		{Translate(Vec(78, 46)), "translate(78 46)"},
		{Translate(Vec(-0.0, 0.5)), "translate(0 0.5)"},
		{Affine{2, 0, 0, 3, 0, 0}, "matrix(2 0 0 3 0 0)"},
	}
	for _, tt := range tests {
		if got := tt.aff.SVG(SVGOptions{}); got != tt.want {
			t.Errorf("%v.SVG() = %q, want %q", tt.aff, got, tt.want)
		}
	}
}
