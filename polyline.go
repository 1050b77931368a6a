package symline

import (
	"math"
	"slices"
)

// FillMode selects how a closed shape is painted.
type FillMode int

const (
	// FillNone strokes the outline only.
	FillNone FillMode = iota
	// FillShape fills the interior with the stroke color.
	FillShape
	// FillBackground fills the interior with the device background
	// color before stroking the outline.
	FillBackground
)

// String returns the fill mode name.
func (f FillMode) String() string {
	switch f {
	case FillShape:
		return "shape"
	case FillBackground:
		return "background"
	}
	return "none"
}

// PenSizeMinimum is the sentinel returned by PenSize for a negative
// stroke width. It means "the minimal pen the device supports";
// consumers must special-case it rather than use it as a dimension.
const PenSizeMinimum = -1

// Polyline is an ordered sequence of vertices connected by straight
// segments, with a stroke width and a fill mode. Consecutive vertices
// are edges; for area selection and filling, the last vertex also
// connects back to the first.
//
// A Polyline is exclusively owned by the symbol holding it; an
// EditSession borrows it mutably for the duration of one gesture.
type Polyline struct {
	points []Point
	width  int
	fill   FillMode
}

// NewPolyline creates a polyline with the given vertices. The slice is
// copied. A shape fresh out of NewPolyline with fewer than 2 vertices
// is only useful as the target of a create gesture.
func NewPolyline(points ...Point) *Polyline {
	return &Polyline{points: slices.Clone(points)}
}

// Kind returns KindPolyline.
func (p *Polyline) Kind() ShapeKind { return KindPolyline }

// CornerCount returns the number of vertices.
func (p *Polyline) CornerCount() int { return len(p.points) }

// Points returns a copy of the vertex list in storage order.
func (p *Polyline) Points() []Point { return slices.Clone(p.points) }

// Point returns the vertex at index i.
func (p *Polyline) Point(i int) (Point, error) {
	if i < 0 || i >= len(p.points) {
		return Point{}, ErrIndexOutOfRange
	}
	return p.points[i], nil
}

// Position returns the shape's anchor, its first vertex. The zero
// Point is returned for an empty shape.
func (p *Polyline) Position() Point {
	if len(p.points) == 0 {
		return Point{}
	}
	return p.points[0]
}

// Width returns the stored stroke width. Zero means "use the default
// line thickness"; negative means unset.
func (p *Polyline) Width() int { return p.width }

// SetWidth sets the stroke width.
func (p *Polyline) SetWidth(w int) { p.width = w }

// Fill returns the fill mode.
func (p *Polyline) Fill() FillMode { return p.fill }

// SetFill sets the fill mode.
func (p *Polyline) SetFill(f FillMode) { p.fill = f }

// PenSize returns the effective stroke width: the shape's own width if
// positive, the Env default if the width is zero, and PenSizeMinimum
// for a negative width.
func (p *Polyline) PenSize(env *Env) int {
	if p.width > 0 {
		return p.width
	}
	if p.width == 0 {
		return env.DefaultLineWidth()
	}
	return PenSizeMinimum
}

// AddPoint appends a vertex at the end of the chain.
func (p *Polyline) AddPoint(pt Point) {
	p.points = append(p.points, pt)
}

// InsertCorner splices a new vertex into the segment nearest to pt,
// immediately before the segment's second vertex, so the new corner
// lands between the two endpoints of the segment it subdivides. The
// first (lowest-index) segment wins ties. At least 2 vertices are
// required.
func (p *Polyline) InsertCorner(pt Point) error {
	if len(p.points) < 2 {
		return ErrDegenerateShape
	}

	bestDist := math.Inf(1)
	bestIdx := 0
	for i := 0; i < len(p.points)-1; i++ {
		d := DistanceToSegment(p.points[i], p.points[i+1], pt)
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	p.points = slices.Insert(p.points, bestIdx+1, pt)
	return nil
}

// RemoveCorner erases the vertex at index i. The caller is responsible
// for keeping the shape at 2 or more vertices; RemoveCorner itself only
// validates the index.
func (p *Polyline) RemoveCorner(i int) error {
	if i < 0 || i >= len(p.points) {
		return ErrIndexOutOfRange
	}
	p.points = slices.Delete(p.points, i, i+1)
	return nil
}

// Offset translates every vertex by delta.
func (p *Polyline) Offset(delta Point) {
	for i := range p.points {
		p.points[i] = p.points[i].Add(delta)
	}
}

// MoveTo repositions the whole shape so its first vertex lands on pos.
// A no-op on an empty shape.
func (p *Polyline) MoveTo(pos Point) {
	if len(p.points) == 0 {
		return
	}
	p.Offset(pos.Sub(p.points[0]))
}

// DeleteSegment retracts the most recently drawn, still-unconfirmed
// segment toward pos: while more than 2 vertices remain, the last
// vertex is dropped and the new last vertex is set to pos, stopping at
// the first vertex that did not already equal pos. The first segment
// always survives.
func (p *Polyline) DeleteSegment(pos Point) {
	for len(p.points) > 2 {
		p.points = p.points[:len(p.points)-1]

		if p.points[len(p.points)-1] != pos {
			p.points[len(p.points)-1] = pos
			break
		}
	}
}

// MirrorHorizontal reflects the shape about center's vertical axis.
func (p *Polyline) MirrorHorizontal(center Point) {
	p.points = MirrorPointsHorizontal(p.points, center)
}

// MirrorVertical reflects the shape about center's horizontal axis.
func (p *Polyline) MirrorVertical(center Point) {
	p.points = MirrorPointsVertical(p.points, center)
}

// Rotate turns the shape a quarter turn about center.
func (p *Polyline) Rotate(center Point, dir RotationDirection) {
	p.points = RotatePoints(p.points, center, dir)
}

// BoundingBox returns the shape's extent in canvas space: the box over
// all vertices, inflated by half the pen size (rounded up), with the
// vertical axis reverted to the top-down canvas convention. It returns
// ErrDegenerateShape for a shape with no vertices.
func (p *Polyline) BoundingBox(env *Env) (Rect, error) {
	box, err := BoundingBox(p.points, (p.PenSize(env)+1)/2)
	if err != nil {
		return Rect{}, err
	}
	return box.RevertYAxis(), nil
}

// Inside reports whether any vertex lies inside r, in the canvas
// convention (vertex Y reverted).
func (p *Polyline) Inside(r Rect) bool {
	for _, pt := range p.points {
		if r.ContainsPoint(Point{X: pt.X, Y: -pt.Y}) {
			return true
		}
	}
	return false
}

// Compare orders two polylines: by vertex count first, then by each
// vertex's X and Y in storage order. It defines a total order usable
// for sorting and deduplicating shape collections.
func (p *Polyline) Compare(other *Polyline) int {
	if d := len(p.points) - len(other.points); d != 0 {
		return d
	}
	for i := range p.points {
		if d := p.points[i].X - other.points[i].X; d != 0 {
			return d
		}
		if d := p.points[i].Y - other.points[i].Y; d != 0 {
			return d
		}
	}
	return 0
}

// Clone returns a deep copy with independent vertex storage.
func (p *Polyline) Clone() *Polyline {
	return &Polyline{
		points: slices.Clone(p.points),
		width:  p.width,
		fill:   p.fill,
	}
}

// CloneShape implements Shape.
func (p *Polyline) CloneShape() Shape { return p.Clone() }

// CompareShape implements Shape: shapes of different kinds order by
// kind, polylines by Compare.
func (p *Polyline) CompareShape(other Shape) int {
	if d := int(p.Kind()) - int(other.Kind()); d != 0 {
		return d
	}
	return p.Compare(other.(*Polyline))
}
