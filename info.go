package symline

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// InfoItem is one name/value row for a host's info panel.
type InfoItem struct {
	Name  string
	Value string
}

// Info returns the shape's info-panel rows: the stored line width and,
// when the shape has vertices, its canvas-space bounding box. Values
// are formatted with pr so large coordinate values pick up locale
// digit grouping; a nil printer falls back to English.
func (p *Polyline) Info(env *Env, pr *message.Printer) []InfoItem {
	if pr == nil {
		pr = message.NewPrinter(language.English)
	}

	items := []InfoItem{
		{Name: "Line Width", Value: pr.Sprintf("%d", p.width)},
	}

	box, err := p.BoundingBox(env)
	if err != nil {
		return items
	}
	return append(items, InfoItem{
		Name: "Bounding Box",
		Value: pr.Sprintf("(%d, %d, %d, %d)",
			box.Min.X, box.Min.Y, box.Max.X, box.Max.Y),
	})
}

// Label returns a one-line description of the shape for selection
// menus. A nil printer falls back to English.
func (p *Polyline) Label(pr *message.Printer) string {
	if pr == nil {
		pr = message.NewPrinter(language.English)
	}
	pos := p.Position()
	return pr.Sprintf("Polyline at (%d, %d) with %d points",
		pos.X, pos.Y, len(p.points))
}
