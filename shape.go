package symline

// ShapeKind tags the concrete type of a symbol graphic primitive.
type ShapeKind int

const (
	// KindPolyline is a multi-segment line shape.
	KindPolyline ShapeKind = iota
)

// String returns the kind name.
func (k ShapeKind) String() string {
	if k == KindPolyline {
		return "polyline"
	}
	return "unknown"
}

// Shape is the interface shared by symbol graphic primitives. It covers
// what a selection layer and a collection manager need: identity,
// extent, hit testing, ordering, and copying. Geometry stays in free
// kernel functions rather than per-shape virtual methods, so primitives
// share one implementation.
type Shape interface {
	// Kind returns the primitive's tag.
	Kind() ShapeKind

	// CornerCount returns the number of vertices.
	CornerCount() int

	// BoundingBox returns the shape's extent in canvas space.
	BoundingBox(env *Env) (Rect, error)

	// HitTestPoint reports whether p falls on the shape within the
	// given accuracy.
	HitTestPoint(p Point, accuracy int, env *Env) bool

	// HitTestRect reports whether the shape intersects r, or is fully
	// contained in it when contained is set.
	HitTestRect(r Rect, contained bool, accuracy int, env *Env) bool

	// CompareShape defines a total order over shapes, kinds first.
	CompareShape(other Shape) int

	// CloneShape returns a deep copy.
	CloneShape() Shape
}

var _ Shape = (*Polyline)(nil)
