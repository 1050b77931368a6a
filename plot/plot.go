// Package plot emits polyline shapes to vector output devices. The
// Plotter interface is the device contract; PDF is the bundled
// implementation.
package plot

import (
	"image/color"

	"github.com/gogpu/symline"
)

// Plotter is a vector output device. Implementations hold the current
// color as device state, matching how plot drivers work.
type Plotter interface {
	// SetColor sets the color for subsequent output.
	SetColor(c color.Color)

	// PlotPoly emits the closed polygon over points with the given
	// fill mode and outline width. A width of zero means fill only /
	// hairline outline, at the device's discretion.
	PlotPoly(points []symline.Point, fill symline.FillMode, width int)
}

// Palette holds the device colors a symbol plot uses.
type Palette struct {
	// Device is the symbol body color.
	Device color.Color
	// Background is the color behind FillBackground shapes.
	Background color.Color
}

// Polyline plots shape on pl. Vertices go through the Env transform
// and are then shifted by offset. With fill set and the shape in
// FillBackground mode, the interior is plotted in the background color
// first; the outline pass then runs in the device color unless the
// background fill already covered it and the pen adds nothing.
func Polyline(pl Plotter, shape *symline.Polyline, offset symline.Point, fill bool, env *symline.Env, colors Palette) error {
	pts := shape.Points()
	if len(pts) < 2 {
		return symline.ErrDegenerateShape
	}

	t := env.Transform()
	corners := make([]symline.Point, len(pts))
	for i, p := range pts {
		corners[i] = t.Apply(p).Add(offset)
	}

	if fill && shape.Fill() == symline.FillBackground {
		pl.SetColor(colors.Background)
		pl.PlotPoly(corners, symline.FillBackground, 0)
	}

	alreadyFilled := shape.Fill() == symline.FillBackground
	pen := shape.PenSize(env)

	if !alreadyFilled || pen > 0 {
		if pen < 0 {
			pen = 0
		}
		mode := shape.Fill()
		if alreadyFilled {
			mode = symline.FillNone
		}
		pl.SetColor(colors.Device)
		pl.PlotPoly(corners, mode, pen)
	}
	return nil
}
