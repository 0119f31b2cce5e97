package csslogo

import (
	"strings"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// This is the same order SVG uses for matrix(a b c d e f).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Translation returns the translation component of the transform.
func (aff Affine) Translation() Vec2 {
	return Vec2{aff.N4, aff.N5}
}

// IsTranslation reports whether the transform is a pure translation.
func (aff Affine) IsTranslation() bool {
	return aff.N0 == 1 && aff.N1 == 0 && aff.N2 == 0 && aff.N3 == 1
}

// SVG returns the transform in the syntax of the SVG transform attribute.
// Pure translations are written as translate(x y), everything else as
// matrix(a b c d e f).
func (aff Affine) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	if aff.IsTranslation() {
		sb.WriteString("translate(")
		sb.WriteString(opts.format(aff.N4))
		sb.WriteString(" ")
		sb.WriteString(opts.format(aff.N5))
		sb.WriteString(")")
		return sb.String()
	}
	sb.WriteString("matrix(")
	for i, n := range [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5} {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(opts.format(n))
	}
	sb.WriteString(")")
	return sb.String()
}
