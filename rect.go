package symline

// Rect is an axis-aligned rectangle with integer corners.
// Min is the corner with the smaller coordinates on both axes for a
// normalized rect; mutating operations keep rects normalized.
type Rect struct {
	Min, Max Point
}

// RectFromPoints returns the normalized rectangle spanned by two
// opposite corners, given in any order.
func RectFromPoints(a, b Point) Rect {
	return Rect{Min: a, Max: b}.Normalize()
}

// Normalize returns the rect with Min/Max swapped per axis as needed so
// that Min.X <= Max.X and Min.Y <= Max.Y.
func (r Rect) Normalize() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() int {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rect.
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y
}

// Inflate returns the rect grown by d on every side. A negative d
// shrinks the rect; the result is normalized so a shrink past zero
// size yields an empty rect rather than an inverted one.
func (r Rect) Inflate(d int) Rect {
	r.Min.X -= d
	r.Min.Y -= d
	r.Max.X += d
	r.Max.Y += d
	return r.Normalize()
}

// ContainsPoint reports whether p lies inside the rect, borders
// included.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other lies entirely inside r, borders
// included.
func (r Rect) ContainsRect(other Rect) bool {
	return r.ContainsPoint(other.Min) && r.ContainsPoint(other.Max)
}

// Intersects reports whether the two rects overlap, touching borders
// included.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// IntersectsSegment reports whether the segment a-b touches the rect:
// either endpoint inside, or the segment crossing any rect edge.
func (r Rect) IntersectsSegment(a, b Point) bool {
	if r.ContainsPoint(a) || r.ContainsPoint(b) {
		return true
	}

	corners := [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
	for i := range corners {
		if segmentsIntersect(a, b, corners[i], corners[(i+1)%4]) {
			return true
		}
	}
	return false
}

// RevertYAxis returns the rect mirrored about the X axis, converting
// between the shape-local (Y up) and canvas (Y down) conventions. The
// result is normalized.
func (r Rect) RevertYAxis() Rect {
	r.Min.Y, r.Max.Y = -r.Min.Y, -r.Max.Y
	return r.Normalize()
}

// orientation returns the sign of the cross product (b-a) x (c-a):
// positive for a counter-clockwise turn, negative for clockwise, zero
// for collinear points.
func orientation(a, b, c Point) int {
	v := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment reports whether the collinear point p lies on segment a-b.
func onSegment(a, b, p Point) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// segmentsIntersect reports whether segments a-b and c-d share at least
// one point, endpoints and collinear overlap included.
func segmentsIntersect(a, b, c, d Point) bool {
	o1 := orientation(a, b, c)
	o2 := orientation(a, b, d)
	o3 := orientation(c, d, a)
	o4 := orientation(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == 0 && onSegment(a, b, c):
		return true
	case o2 == 0 && onSegment(a, b, d):
		return true
	case o3 == 0 && onSegment(c, d, a):
		return true
	case o4 == 0 && onSegment(c, d, b):
		return true
	}
	return false
}
