package symline

import "math"

// RotationDirection selects the sense of a quarter-turn rotation, in
// the canvas convention where Y grows downward.
type RotationDirection int

const (
	// Clockwise rotates by 90 degrees clockwise as seen on the canvas.
	Clockwise RotationDirection = iota
	// CounterClockwise rotates by 90 degrees counter-clockwise.
	CounterClockwise
)

// String returns the direction name.
func (d RotationDirection) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// DistanceToSegment returns the shortest distance from p to the segment
// a-b. For a degenerate segment (a == b) this is the distance to the
// shared endpoint.
func DistanceToSegment(a, b, p Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)

	den := ab.LengthSquared()
	if den == 0 {
		return math.Sqrt(float64(ap.LengthSquared()))
	}

	// Project p onto the line through a-b, clamped to the segment.
	t := float64(ap.X*ab.X+ap.Y*ab.Y) / float64(den)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	dx := float64(a.X) + t*float64(ab.X) - float64(p.X)
	dy := float64(a.Y) + t*float64(ab.Y) - float64(p.Y)
	return math.Hypot(dx, dy)
}

// BoundingBox returns the axis-aligned box spanning all points, grown
// uniformly by inflate on every side. It returns ErrDegenerateShape for
// an empty point set: a box over zero points has no meaning.
func BoundingBox(points []Point, inflate int) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, ErrDegenerateShape
	}

	box := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
	}
	return box.Inflate(inflate), nil
}

// TranslatePoints returns a new slice with delta added to every point.
// The input is never mutated.
func TranslatePoints(points []Point, delta Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Add(delta)
	}
	return out
}

// MirrorPointsHorizontal returns a new slice with every X coordinate
// reflected about center.X. The reflection is exact integer arithmetic.
func MirrorPointsHorizontal(points []Point, center Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: 2*center.X - p.X, Y: p.Y}
	}
	return out
}

// MirrorPointsVertical returns a new slice with every Y coordinate
// reflected about center.Y. The reflection is exact integer arithmetic.
func MirrorPointsVertical(points []Point, center Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: 2*center.Y - p.Y}
	}
	return out
}

// RotatePoints returns a new slice with every point rotated a quarter
// turn about center. Four applications in the same direction return the
// original points exactly.
func RotatePoints(points []Point, center Point, dir RotationDirection) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		d := p.Sub(center)
		if dir == Clockwise {
			out[i] = Point{X: center.X + d.Y, Y: center.Y - d.X}
		} else {
			out[i] = Point{X: center.X - d.Y, Y: center.Y + d.X}
		}
	}
	return out
}
