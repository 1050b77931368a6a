package symline

// Point is a 2D coordinate in schematic internal units.
// Points are value types; all operations return new values.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by an integer factor.
func (p Point) Mul(s int) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// LengthSquared returns the squared length of the vector.
// Kept in integer arithmetic so nearest-vertex comparisons are exact.
func (p Point) LengthSquared() int {
	return p.X*p.X + p.Y*p.Y
}

// DistanceSquared returns the squared distance between two points.
func (p Point) DistanceSquared(q Point) int {
	return p.Sub(q).LengthSquared()
}
