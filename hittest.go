package symline

// HitTestPoint reports whether p (in canvas space) falls on the shape.
// The tolerance is accuracy plus half the pen size, floored at the Env
// minimum selection distance. The shape is treated as an open chain:
// the implicit closing edge from last vertex to first is not tested.
func (s *Polyline) HitTestPoint(p Point, accuracy int, env *Env) bool {
	tolerance := accuracy + s.PenSize(env)/2
	if tolerance < env.MinSelectionDistance() {
		tolerance = env.MinSelectionDistance()
	}

	t := env.Transform()
	for i := 1; i < len(s.points); i++ {
		start := t.Apply(s.points[i-1])
		end := t.Apply(s.points[i])

		if DistanceToSegment(start, end, p) <= float64(tolerance) {
			return true
		}
	}
	return false
}

// HitTestRect reports whether the shape intersects r (in canvas
// space). With contained set, the rect must fully contain the shape's
// bounding box instead. Unlike point hit testing, the shape is treated
// as a closed cycle here: the wrap-around edge from last vertex back to
// first is included, so an area selection catches the closing edge even
// for shapes that render as an open outline.
func (s *Polyline) HitTestRect(r Rect, contained bool, accuracy int, env *Env) bool {
	sel := r
	if accuracy != 0 {
		sel = sel.Inflate(accuracy)
	}

	box, err := s.BoundingBox(env)
	if err != nil {
		return false
	}

	if contained {
		return sel.ContainsRect(box)
	}

	// Fast reject: a rect outside the bounding box cannot touch the
	// shape.
	if !sel.Intersects(box) {
		return false
	}

	// Account for the width of the line.
	sel = sel.Inflate(s.width / 2)

	t := env.Transform()
	count := len(s.points)
	for i := 0; i < count; i++ {
		pt := t.Apply(s.points[i])
		next := t.Apply(s.points[(i+1)%count])

		if sel.ContainsPoint(pt) {
			return true
		}
		if sel.IntersectsSegment(pt, next) {
			return true
		}
	}
	return false
}
