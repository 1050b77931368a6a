package symline

// Transform is the 2x2 integer matrix mapping shape-local coordinates
// to canvas space:
//
//	x' = XX*x + XY*y
//	y' = YX*x + YY*y
//
// Symbol editors only ever need axis-aligned orientations (quarter
// turns and mirrors), so the coefficients stay integer and round-trips
// are exact.
type Transform struct {
	XX, XY int
	YX, YY int
}

// IdentityTransform returns the transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{XX: 1, YY: 1}
}

// CanvasTransform returns the default symbol-to-canvas transform: X is
// kept, Y is flipped so canvas Y grows downward.
func CanvasTransform() Transform {
	return Transform{XX: 1, YY: -1}
}

// Apply maps p through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.XX*p.X + t.XY*p.Y,
		Y: t.YX*p.X + t.YY*p.Y,
	}
}

// ApplyAll maps every point through the transform into a new slice.
func (t Transform) ApplyAll(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}
	return out
}

// Multiply composes two transforms: the result applies other first,
// then t.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		XX: t.XX*other.XX + t.XY*other.YX,
		XY: t.XX*other.XY + t.XY*other.YY,
		YX: t.YX*other.XX + t.YY*other.YX,
		YY: t.YX*other.XY + t.YY*other.YY,
	}
}
