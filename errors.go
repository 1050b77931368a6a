package symline

import "errors"

var (
	// ErrInvalidState reports an EditSession operation called outside
	// the gesture sequence it is valid for, such as Continue without a
	// matching Begin. This is a caller contract violation, not a
	// recoverable condition.
	ErrInvalidState = errors.New("symline: edit operation out of sequence")

	// ErrDegenerateShape reports an operation on a shape with fewer
	// vertices than the operation requires.
	ErrDegenerateShape = errors.New("symline: shape has too few vertices")

	// ErrIndexOutOfRange reports a vertex index outside the shape's
	// vertex list.
	ErrIndexOutOfRange = errors.New("symline: vertex index out of range")
)
