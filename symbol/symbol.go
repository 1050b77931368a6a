// Package symbol manages the shape collection owned by one schematic
// symbol: stable IDs, ordering, deduplication, and snapshots for a
// higher undo layer.
package symbol

import (
	"slices"

	"github.com/google/uuid"

	"github.com/gogpu/symline"
)

// Entry pairs an owned shape with its stable ID.
type Entry struct {
	ID    string
	Shape symline.Shape
}

// Symbol owns an ordered collection of graphic shapes. Shapes are kept
// in insertion order; ordered views use the shapes' total order. Like
// the shapes themselves, a Symbol is single-owner and not safe for
// concurrent use.
type Symbol struct {
	name    string
	entries []Entry
}

// New creates an empty symbol.
func New(name string) *Symbol {
	return &Symbol{name: name}
}

// Name returns the symbol name.
func (s *Symbol) Name() string { return s.name }

// Len returns the number of owned shapes.
func (s *Symbol) Len() int { return len(s.entries) }

// Add takes ownership of shape and returns its new stable ID.
func (s *Symbol) Add(shape symline.Shape) string {
	id := uuid.NewString()
	s.entries = append(s.entries, Entry{ID: id, Shape: shape})
	return id
}

// Remove deletes the shape with the given ID, reporting whether it was
// present.
func (s *Symbol) Remove(id string) bool {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = slices.Delete(s.entries, i, i+1)
			return true
		}
	}
	return false
}

// Find returns the shape with the given ID.
func (s *Symbol) Find(id string) (symline.Shape, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e.Shape, true
		}
	}
	return nil, false
}

// Entries returns a copy of the entry list in insertion order.
func (s *Symbol) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Shapes returns the owned shapes sorted by their total order,
// smallest first. The symbol's own storage order is unchanged.
func (s *Symbol) Shapes() []symline.Shape {
	out := make([]symline.Shape, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Shape
	}
	slices.SortStableFunc(out, func(a, b symline.Shape) int {
		return a.CompareShape(b)
	})
	return out
}

// FindAt returns the ID of the first shape (in insertion order) hit by
// p within the given accuracy.
func (s *Symbol) FindAt(p symline.Point, accuracy int, env *symline.Env) (string, bool) {
	for _, e := range s.entries {
		if e.Shape.HitTestPoint(p, accuracy, env) {
			return e.ID, true
		}
	}
	return "", false
}

// Dedup removes shapes that compare equal to an earlier shape, keeping
// the first of each group in insertion order. It returns the number of
// shapes removed.
func (s *Symbol) Dedup() int {
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		dup := false
		for _, k := range kept {
			if k.Shape.CompareShape(e.Shape) == 0 {
				dup = true
				break
			}
		}
		if dup {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed
}

// Snapshot returns deep copies of all owned shapes in insertion order,
// for an undo layer to store.
func (s *Symbol) Snapshot() []symline.Shape {
	out := make([]symline.Shape, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Shape.CloneShape()
	}
	return out
}
