// Package csslogo draws the CSS logo as an SVG document from a handful of
// numeric parameters.
//
// # Letterforms
//
// The logo consists of three letterforms, a C followed by two S. Both shapes
// are built from the same skeleton of six [Anchors], A through F, derived
// from a half-width w1 and two half-heights h1 and h2. Between the anchors,
// [Letterform] emits cubic Béziers whose control points are offset by
// tension parameters: t1 pushes the control points at A, C, D and F
// outward, and t2 pulls the control points at the narrow waist B and E
// sideways. The [OpenHook] variant (the C) connects C to D with a straight
// line. The [ClosedCurl] variant (the S) mirrors D and F and crosses from C
// to D with a cubic controlled by the inward tension t3.
//
// # Paths
//
// Letterforms and the background frame are represented as a [BezPath], a
// slice of [PathElement] values akin to the drawing commands of SVG or
// PostScript: [MoveTo], [LineTo], [CubicTo], [ArcTo] and [ClosePath]. Paths
// can be transformed with an [Affine] and serialized as SVG path data with
// [BezPath.SVG].
//
// # Documents
//
// [Draw] and [WriteDocument] assemble the whole logo: a frame filling the
// canvas, and a stroked group containing the three letterforms spaced by
// [Stride]. A [Config] carries every parameter; [DefaultConfig] returns the
// canonical logo for each [Profile]. The two profiles are separate output
// formats: [Centered240] draws on a 240 unit canvas centered on the origin,
// [TopLeft1000] on a 1000 unit canvas whose origin is the top-left corner.
//
// Drawing is a pure function of the configuration. The package keeps no
// state, performs no I/O beyond writing to the provided [io.Writer], and
// doesn't validate its input: degenerate sizes produce degenerate shapes and
// colors are emitted verbatim (escaped for XML).
package csslogo
