package symline

import "slices"

// EditMode identifies the kind of gesture an EditSession handles.
type EditMode int

const (
	// ModeNone means no gesture is in progress.
	ModeNone EditMode = iota
	// ModeCreate draws a new polyline segment by segment.
	ModeCreate
	// ModeDrag moves one vertex, or inserts a new vertex on the edge
	// nearest the gesture start and then drags it.
	ModeDrag
	// ModeMove translates the whole shape.
	ModeMove
)

// String returns the mode name.
func (m EditMode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeDrag:
		return "drag"
	case ModeMove:
		return "move"
	}
	return "none"
}

// dragTarget identifies what a drag gesture manipulates: an existing
// vertex, or a vertex not yet spliced in. The pendingInsert flag
// replaces the sign trick some editors use (a negated index cannot
// address index 0), so inserting before the first vertex works.
type dragTarget struct {
	index         int
	pendingInsert bool
}

// EditSession is the state machine for one user gesture on a Polyline:
// press (Begin), motion (Update, and Continue for multi-segment
// creation), release (End). It borrows the shape mutably for its
// lifetime and is discarded when the gesture ends; discarding it
// without calling End leaves the shape as the last Update left it.
//
// Operations called outside their valid sequence return
// ErrInvalidState. The session guarantees the shape never ends a
// gesture with fewer than 2 vertices.
type EditSession struct {
	shape *Polyline
	mode  EditMode

	target       dragTarget
	anchor       Point // targeted vertex position at gesture start
	anchorCursor Point // cursor position at gesture start (move mode)

	done bool
}

// NewEditSession creates an idle session borrowing shape.
func NewEditSession(shape *Polyline) *EditSession {
	return &EditSession{shape: shape}
}

// Mode returns the active gesture mode, ModeNone when idle.
func (s *EditSession) Mode() EditMode { return s.mode }

// Begin starts a gesture at cursor position p.
//
// ModeCreate seeds the shape with p twice: the degenerate first
// segment to be rubber-banded by Update. ModeDrag picks the vertex or
// edge midpoint nearest to p; an edge midpoint win means a new vertex
// will be spliced in on the first Update. ModeMove records the anchor
// for whole-shape translation.
//
// Begin on a session that is already in a gesture, or was already
// ended, returns ErrInvalidState. ModeDrag and ModeMove require the
// shape to have enough vertices and return ErrDegenerateShape
// otherwise.
func (s *EditSession) Begin(mode EditMode, p Point) error {
	if s.done || s.mode != ModeNone || mode == ModeNone {
		return ErrInvalidState
	}

	switch mode {
	case ModeCreate:
		// Start and end point of the first segment, both at p.
		s.shape.AddPoint(p)
		s.shape.AddPoint(p)

	case ModeDrag:
		if len(s.shape.points) < 2 {
			return ErrDegenerateShape
		}
		s.target, s.anchor = nearestDragTarget(s.shape.points, p)

	case ModeMove:
		if len(s.shape.points) == 0 {
			return ErrDegenerateShape
		}
		s.anchorCursor = p
		s.anchor = s.shape.points[0]

	default:
		return ErrInvalidState
	}

	s.mode = mode
	Logger().Debug("edit gesture begin",
		"mode", mode.String(),
		"corners", len(s.shape.points))
	return nil
}

// nearestDragTarget scans every vertex and every edge midpoint for the
// candidate nearest to p, in squared integer distance. The midpoint
// metric carries a +1 bias so a vertex wins over the midpoint of its
// own degenerate edge; the first candidate reaching the minimum wins.
// A midpoint win targets the edge's second vertex with pendingInsert
// set: the new vertex is spliced in before that index on the first
// Update.
func nearestDragTarget(points []Point, p Point) (dragTarget, Point) {
	target := dragTarget{index: 0}
	anchor := points[0]
	best := p.DistanceSquared(points[0])

	prev := points[0]
	for i, pt := range points {
		if d := p.DistanceSquared(pt); d < best {
			best = d
			target = dragTarget{index: i}
			anchor = pt
		}

		// Distance to the middle of the edge (prev, pt), computed as
		// |2p - pt - prev|^2 / 4 without halving coordinates.
		off := p.Mul(2).Sub(pt).Sub(prev)
		if d := off.LengthSquared()/4 + 1; d < best {
			best = d
			target = dragTarget{index: i, pendingInsert: true}
			anchor = pt
		}

		prev = pt
	}
	return target, anchor
}

// Continue extends a create gesture with a new pending vertex at p. It
// reports whether the session accepted the extension: when the pending
// segment is still degenerate (its two vertices equal, as after a
// double-click), no vertex is added and Continue reports false,
// signaling the host to finish the gesture. Valid only in ModeCreate.
func (s *EditSession) Continue(p Point) (bool, error) {
	if s.mode != ModeCreate {
		return false, ErrInvalidState
	}

	n := len(s.shape.points)
	// Do not add zero length segments.
	if s.shape.points[n-2] == s.shape.points[n-1] {
		return false, nil
	}
	s.shape.AddPoint(p)
	return true, nil
}

// Update applies the current cursor position p to the gesture: the
// rubber-banded last vertex (create), the dragged vertex (drag, with
// the deferred splice on the first call when an edge midpoint was
// targeted), or the whole-shape translation (move).
func (s *EditSession) Update(p Point) error {
	switch s.mode {
	case ModeCreate:
		s.shape.points[len(s.shape.points)-1] = p

	case ModeDrag:
		if s.target.pendingInsert {
			s.shape.points = slices.Insert(s.shape.points, s.target.index, p)
			s.target.pendingInsert = false
		}
		s.shape.points[s.target.index] = p

	case ModeMove:
		s.shape.MoveTo(s.anchor.Add(p).Sub(s.anchorCursor))

	default:
		return ErrInvalidState
	}
	return nil
}

// End finishes the gesture, cleans up degeneracies, and retires the
// session. A create gesture drops a duplicated terminal vertex; a drag
// gesture collapses the zero-length edge left when the dragged vertex
// landed on a neighbor, never going below 2 vertices. The position
// argument is accepted for symmetry with the other gesture calls.
func (s *EditSession) End(_ Point) error {
	if s.done || s.mode == ModeNone {
		return ErrInvalidState
	}

	pts := s.shape.points
	switch s.mode {
	case ModeCreate:
		// Do not keep the last point twice.
		if n := len(pts); n > 2 && pts[n-2] == pts[n-1] {
			s.shape.points = pts[:n-1]
		}

	case ModeDrag:
		if n := len(pts); n > 2 && !s.target.pendingInsert {
			i := s.target.index
			if (i > 0 && pts[i] == pts[i-1]) ||
				(i < n-1 && pts[i] == pts[i+1]) {
				s.shape.points = slices.Delete(pts, i, i+1)
			}
		}
	}

	Logger().Debug("edit gesture end",
		"mode", s.mode.String(),
		"corners", len(s.shape.points))
	s.mode = ModeNone
	s.done = true
	return nil
}
