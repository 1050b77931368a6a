package symline

// Default environment values, in schematic internal units.
const (
	// DefaultLineWidth is the stroke width used for shapes whose own
	// width is zero when the host supplies no other default.
	DefaultLineWidth = 6

	// DefaultMinSelectionDistance is the floor on hit-test tolerance,
	// so hairline shapes stay selectable.
	DefaultMinSelectionDistance = 2
)

// Env carries the host-supplied context that geometry queries need:
// the default line thickness, the minimum selection distance, and the
// symbol-to-canvas transform. There is no process-wide default; hosts
// build one Env and pass it explicitly.
//
// Example:
//
//	// Canvas defaults
//	env := symline.NewEnv()
//
//	// A host with a custom hairline width and no Y flip
//	env := symline.NewEnv(
//	    symline.WithDefaultLineWidth(1),
//	    symline.WithTransform(symline.IdentityTransform()),
//	)
type Env struct {
	defaultLineWidth     int
	minSelectionDistance int
	transform            Transform
}

// Option configures an Env during creation.
type Option func(*Env)

// NewEnv creates an Env with canvas defaults, then applies opts.
func NewEnv(opts ...Option) *Env {
	env := &Env{
		defaultLineWidth:     DefaultLineWidth,
		minSelectionDistance: DefaultMinSelectionDistance,
		transform:            CanvasTransform(),
	}
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// WithDefaultLineWidth sets the stroke width substituted for shapes
// whose own width is zero.
func WithDefaultLineWidth(w int) Option {
	return func(e *Env) {
		e.defaultLineWidth = w
	}
}

// WithMinSelectionDistance sets the floor on hit-test tolerance.
func WithMinSelectionDistance(d int) Option {
	return func(e *Env) {
		e.minSelectionDistance = d
	}
}

// WithTransform sets the symbol-to-canvas transform applied by hit
// tests and bounding boxes.
func WithTransform(t Transform) Option {
	return func(e *Env) {
		e.transform = t
	}
}

// DefaultLineWidth returns the default stroke width. A nil Env reports
// canvas defaults.
func (e *Env) DefaultLineWidth() int {
	if e == nil {
		return DefaultLineWidth
	}
	return e.defaultLineWidth
}

// MinSelectionDistance returns the hit-test tolerance floor. A nil Env
// reports canvas defaults.
func (e *Env) MinSelectionDistance() int {
	if e == nil {
		return DefaultMinSelectionDistance
	}
	return e.minSelectionDistance
}

// Transform returns the symbol-to-canvas transform. A nil Env reports
// the canvas transform.
func (e *Env) Transform() Transform {
	if e == nil {
		return CanvasTransform()
	}
	return e.transform
}
