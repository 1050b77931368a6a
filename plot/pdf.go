package plot

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/symline"
)

// PDF is a Plotter that draws into a single-page A4 PDF document.
// Schematic internal units are scaled down to millimeters by a fixed
// divisor, so a whole symbol fits on the page.
type PDF struct {
	doc        *gofpdf.Fpdf
	unitsPerMM float64
}

// NewPDF creates a PDF plotter. unitsPerMM is the number of schematic
// internal units per output millimeter; values <= 0 fall back to 100.
func NewPDF(unitsPerMM float64) *PDF {
	if unitsPerMM <= 0 {
		unitsPerMM = 100
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetDrawColor(0, 0, 0)
	doc.SetFillColor(255, 255, 255)
	doc.SetLineWidth(0.2)

	return &PDF{doc: doc, unitsPerMM: unitsPerMM}
}

// SetColor implements Plotter.
func (p *PDF) SetColor(c color.Color) {
	r, g, b, _ := c.RGBA()
	p.doc.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
	p.doc.SetFillColor(int(r>>8), int(g>>8), int(b>>8))
}

// PlotPoly implements Plotter. Polygons with fewer than 2 points are
// ignored.
func (p *PDF) PlotPoly(points []symline.Point, fill symline.FillMode, width int) {
	if len(points) < 2 {
		return
	}

	pts := make([]gofpdf.PointType, len(points))
	for i, q := range points {
		pts[i] = gofpdf.PointType{
			X: float64(q.X) / p.unitsPerMM,
			Y: float64(q.Y) / p.unitsPerMM,
		}
	}

	if width > 0 {
		p.doc.SetLineWidth(float64(width) / p.unitsPerMM)
	}

	style := "D"
	if fill != symline.FillNone {
		if width > 0 {
			style = "FD"
		} else {
			style = "F"
		}
	}
	p.doc.Polygon(pts, style)
}

// Output writes the finished document to w.
func (p *PDF) Output(w io.Writer) error {
	return p.doc.Output(w)
}

// Err reports any error the underlying document has accumulated.
func (p *PDF) Err() error {
	if p.doc.Err() {
		return p.doc.Error()
	}
	return nil
}
