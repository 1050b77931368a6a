// Package render draws polyline shapes into an image using a software
// scanline rasterizer. It is the minimal pixel backend a symbol editor
// preview needs; hosts with their own canvas can consume the vertex
// list directly instead.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/symline"
)

// Style carries the colors used to paint a shape.
type Style struct {
	// Stroke is the outline color, and the fill color for FillShape.
	Stroke color.Color
	// Background is the fill color for FillBackground.
	Background color.Color
}

// Draw rasterizes shape into dst. Vertices go through the Env
// transform and are then shifted by offset, so the caller places the
// shape in image space. The shape's fill mode decides the paint order:
// FillBackground fills the closed polygon with the background color
// before stroking, FillShape fills with the stroke color, FillNone
// strokes only. Strokes use the shape's pen size with square caps and
// no joins, which is enough for schematic line work.
func Draw(dst draw.Image, shape *symline.Polyline, style Style, offset symline.Point, env *symline.Env) error {
	pts := shape.Points()
	if len(pts) < 2 {
		return symline.ErrDegenerateShape
	}

	t := env.Transform()
	canvas := make([]symline.Point, len(pts))
	for i, p := range pts {
		canvas[i] = t.Apply(p).Add(offset)
	}

	pen := shape.PenSize(env)
	if pen == symline.PenSizeMinimum {
		pen = 1
	}

	switch shape.Fill() {
	case symline.FillBackground:
		fillPolygon(dst, canvas, style.Background)
		strokeChain(dst, canvas, pen, style.Stroke)
	case symline.FillShape:
		fillPolygon(dst, canvas, style.Stroke)
		strokeChain(dst, canvas, pen, style.Stroke)
	default:
		strokeChain(dst, canvas, pen, style.Stroke)
	}

	symline.Logger().Debug("rendered polyline",
		"corners", len(canvas),
		"pen", pen,
		"fill", shape.Fill().String())
	return nil
}

// fillPolygon fills the closed polygon over pts with c.
func fillPolygon(dst draw.Image, pts []symline.Point, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	z.MoveTo(float32(pts[0].X-b.Min.X), float32(pts[0].Y-b.Min.Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X-b.Min.X), float32(p.Y-b.Min.Y))
	}
	z.ClosePath()

	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// strokeChain strokes the open vertex chain with the given pen width:
// each segment becomes one quad of half-width pen/2, accumulated into a
// single rasterizer pass.
func strokeChain(dst draw.Image, pts []symline.Point, pen int, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	hw := float32(pen) / 2
	if hw < 0.5 {
		hw = 0.5
	}

	for i := 1; i < len(pts); i++ {
		strokeSegment(z,
			float32(pts[i-1].X-b.Min.X), float32(pts[i-1].Y-b.Min.Y),
			float32(pts[i].X-b.Min.X), float32(pts[i].Y-b.Min.Y),
			hw)
	}

	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// strokeSegment adds the quad covering the segment (ax,ay)-(bx,by) at
// half-width hw. Degenerate segments get a small square so isolated
// points stay visible.
func strokeSegment(z *vector.Rasterizer, ax, ay, bx, by, hw float32) {
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))

	if length == 0 {
		z.MoveTo(ax-hw, ay-hw)
		z.LineTo(ax+hw, ay-hw)
		z.LineTo(ax+hw, ay+hw)
		z.LineTo(ax-hw, ay+hw)
		z.ClosePath()
		return
	}

	// Unit normal scaled to half-width, plus the same vector along the
	// segment for square caps.
	nx, ny := -dy/length*hw, dx/length*hw
	ex, ey := dx/length*hw, dy/length*hw

	z.MoveTo(ax-ex+nx, ay-ey+ny)
	z.LineTo(bx+ex+nx, by+ey+ny)
	z.LineTo(bx+ex-nx, by+ey-ny)
	z.LineTo(ax-ex-nx, ay-ey-ny)
	z.ClosePath()
}
