// Package symline provides the editable polyline/polygon primitive used
// inside schematic-symbol graphic editors.
//
// # Overview
//
// symline implements the geometric data model of a multi-segment shape
// (an ordered vertex list with a stroke width and a fill mode), the
// interactive editing state machine that turns a stream of cursor
// positions into vertex mutations, and the hit-testing and transform
// algorithms a selection layer needs. It is designed to integrate with
// the GoGPU ecosystem but has no rendering pipeline of its own: the
// render/ and plot/ subpackages provide thin software backends, and a
// host canvas can consume the vertex list directly.
//
// # Quick Start
//
//	import "github.com/gogpu/symline"
//
//	env := symline.NewEnv()
//
//	// Create a polyline interactively.
//	shape := symline.NewPolyline()
//	s := symline.NewEditSession(shape)
//	s.Begin(symline.ModeCreate, symline.Pt(0, 0))
//	s.Update(symline.Pt(100, 0))
//	s.Continue(symline.Pt(100, 0))
//	s.Update(symline.Pt(100, 100))
//	s.End(symline.Pt(100, 100))
//
//	// Query it.
//	hit := shape.HitTestPoint(symline.Pt(50, 1), 0, env)
//	box, _ := shape.BoundingBox(env)
//	_ = hit
//	_ = box
//
// # Coordinate System
//
// Vertices are stored in shape-local integer coordinates (schematic
// internal units). Bounding boxes and hit tests are reported in canvas
// space, obtained by applying the Env transform; the default transform
// flips the Y axis so that canvas Y grows downward, the convention of
// the hosting draw panel.
//
// # Concurrency
//
// A Polyline and its active EditSession are exclusively owned by one
// interaction at a time. No operation in this package is safe for
// concurrent use on the same shape; SetLogger and Logger are the only
// concurrency-safe entry points.
package symline
