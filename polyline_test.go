package symline

import (
	"errors"
	"testing"
)

func pointsEqual(t *testing.T, got, want []Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("vertices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertices = %v, want %v", got, want)
		}
	}
}

func TestPolyline_AddPoint(t *testing.T) {
	p := NewPolyline()
	p.AddPoint(Pt(0, 0))
	p.AddPoint(Pt(10, 0))

	if p.CornerCount() != 2 {
		t.Fatalf("CornerCount() = %d, want 2", p.CornerCount())
	}
	pointsEqual(t, p.Points(), []Point{Pt(0, 0), Pt(10, 0)})
}

func TestPolyline_InsertCorner(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		insert Point
		want   []Point
	}{
		{
			"nearest middle segment",
			[]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)},
			Pt(10, 5),
			[]Point{Pt(0, 0), Pt(10, 0), Pt(10, 5), Pt(10, 10)},
		},
		{
			"nearest first segment",
			[]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)},
			Pt(5, 1),
			[]Point{Pt(0, 0), Pt(5, 1), Pt(10, 0), Pt(10, 10)},
		},
		{
			"tie picks lowest index",
			[]Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)},
			Pt(10, 4),
			[]Point{Pt(0, 0), Pt(10, 4), Pt(10, 0), Pt(20, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolyline(tt.points...)
			if err := p.InsertCorner(tt.insert); err != nil {
				t.Fatalf("InsertCorner() error = %v", err)
			}
			if p.CornerCount() != len(tt.points)+1 {
				t.Errorf("CornerCount() = %d, want %d",
					p.CornerCount(), len(tt.points)+1)
			}
			pointsEqual(t, p.Points(), tt.want)
		})
	}
}

func TestPolyline_InsertCorner_Degenerate(t *testing.T) {
	p := NewPolyline(Pt(0, 0))
	if err := p.InsertCorner(Pt(5, 5)); !errors.Is(err, ErrDegenerateShape) {
		t.Errorf("InsertCorner() error = %v, want ErrDegenerateShape", err)
	}
}

func TestPolyline_RemoveCorner(t *testing.T) {
	p := NewPolyline(Pt(0, 0), Pt(10, 0), Pt(10, 10))

	if err := p.RemoveCorner(1); err != nil {
		t.Fatalf("RemoveCorner(1) error = %v", err)
	}
	pointsEqual(t, p.Points(), []Point{Pt(0, 0), Pt(10, 10)})

	for _, i := range []int{-1, 2} {
		if err := p.RemoveCorner(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveCorner(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestPolyline_OffsetAndMoveTo(t *testing.T) {
	p := NewPolyline(Pt(0, 0), Pt(10, 0))
	p.Offset(Pt(5, 5))
	pointsEqual(t, p.Points(), []Point{Pt(5, 5), Pt(15, 5)})

	p.MoveTo(Pt(100, 0))
	pointsEqual(t, p.Points(), []Point{Pt(100, 0), Pt(110, 0)})
}

func TestPolyline_DeleteSegment(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		pos    Point
		want   []Point
	}{
		{
			"retract last segment",
			[]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)},
			Pt(10, 0),
			[]Point{Pt(0, 0), Pt(10, 0)},
		},
		{
			"retract to new target",
			[]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)},
			Pt(7, 3),
			[]Point{Pt(0, 0), Pt(7, 3)},
		},
		{
			"skips vertices already at target",
			[]Point{Pt(0, 0), Pt(10, 0), Pt(5, 5), Pt(5, 5)},
			Pt(5, 5),
			[]Point{Pt(0, 0), Pt(5, 5)},
		},
		{
			"first segment survives",
			[]Point{Pt(0, 0), Pt(10, 0)},
			Pt(99, 99),
			[]Point{Pt(0, 0), Pt(10, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolyline(tt.points...)
			p.DeleteSegment(tt.pos)
			pointsEqual(t, p.Points(), tt.want)
		})
	}
}

func TestPolyline_PenSize(t *testing.T) {
	env := NewEnv(WithDefaultLineWidth(9))

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"explicit width", 4, 4},
		{"zero uses default", 0, 9},
		{"negative is minimal pen", -2, PenSizeMinimum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolyline(Pt(0, 0), Pt(10, 0))
			p.SetWidth(tt.width)
			if got := p.PenSize(env); got != tt.want {
				t.Errorf("PenSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPolyline_BoundingBox(t *testing.T) {
	// Width 0 with default thickness 1 inflates by (1+1)/2 = 1, then
	// the vertical axis flips to the top-down canvas convention.
	env := NewEnv(WithDefaultLineWidth(1))
	p := NewPolyline(Pt(0, 0), Pt(10, 0), Pt(10, 10))

	got, err := p.BoundingBox(env)
	if err != nil {
		t.Fatalf("BoundingBox() error = %v", err)
	}
	want := Rect{Min: Pt(-1, -11), Max: Pt(11, 1)}
	if got != want {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}
}

func TestPolyline_BoundingBox_Empty(t *testing.T) {
	p := NewPolyline()
	if _, err := p.BoundingBox(NewEnv()); !errors.Is(err, ErrDegenerateShape) {
		t.Errorf("BoundingBox() error = %v, want ErrDegenerateShape", err)
	}
}

func TestPolyline_Compare(t *testing.T) {
	a := NewPolyline(Pt(0, 0), Pt(10, 0))
	b := NewPolyline(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	c := NewPolyline(Pt(0, 0), Pt(10, 5))

	tests := []struct {
		name string
		x, y *Polyline
		sign int
	}{
		{"equal", a, a.Clone(), 0},
		{"fewer vertices first", a, b, -1},
		{"vertex order", a, c, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.x.Compare(tt.y)
			switch {
			case tt.sign == 0 && got != 0:
				t.Errorf("Compare() = %d, want 0", got)
			case tt.sign < 0 && got >= 0:
				t.Errorf("Compare() = %d, want < 0", got)
			}
			// Antisymmetry: swapping operands flips the sign.
			back := tt.y.Compare(tt.x)
			if (got < 0) != (back > 0) || (got == 0) != (back == 0) {
				t.Errorf("Compare() = %d but reversed = %d", got, back)
			}
		})
	}
}

func TestPolyline_Clone(t *testing.T) {
	orig := NewPolyline(Pt(0, 0), Pt(10, 0))
	orig.SetWidth(3)
	orig.SetFill(FillBackground)

	cp := orig.Clone()
	if cp.Compare(orig) != 0 || cp.Width() != 3 || cp.Fill() != FillBackground {
		t.Fatal("Clone() did not copy all fields")
	}

	// Vertex storage must be independent.
	cp.Offset(Pt(1, 1))
	pointsEqual(t, orig.Points(), []Point{Pt(0, 0), Pt(10, 0)})
}

func TestPolyline_MirrorAndRotate(t *testing.T) {
	p := NewPolyline(Pt(0, 0), Pt(10, 0))

	p.MirrorHorizontal(Pt(5, 0))
	pointsEqual(t, p.Points(), []Point{Pt(10, 0), Pt(0, 0)})

	p.MirrorVertical(Pt(0, 5))
	pointsEqual(t, p.Points(), []Point{Pt(10, 10), Pt(0, 10)})

	p.Rotate(Pt(0, 0), CounterClockwise)
	pointsEqual(t, p.Points(), []Point{Pt(-10, 10), Pt(-10, 0)})
}

func TestPolyline_Inside(t *testing.T) {
	p := NewPolyline(Pt(0, 0), Pt(10, 20))

	// Vertices are tested with Y reverted to canvas space.
	if !p.Inside(Rect{Min: Pt(5, -25), Max: Pt(15, -15)}) {
		t.Error("Inside() = false, want true for rect around (10, -20)")
	}
	if p.Inside(Rect{Min: Pt(5, 15), Max: Pt(15, 25)}) {
		t.Error("Inside() = true, want false for rect around (10, 20)")
	}
}

func TestPolyline_PointAccess(t *testing.T) {
	p := NewPolyline(Pt(1, 2), Pt(3, 4))

	got, err := p.Point(1)
	if err != nil || got != Pt(3, 4) {
		t.Errorf("Point(1) = %v, %v, want (3, 4), nil", got, err)
	}
	if _, err := p.Point(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Point(2) error = %v, want ErrIndexOutOfRange", err)
	}
	if p.Position() != Pt(1, 2) {
		t.Errorf("Position() = %v, want (1, 2)", p.Position())
	}
}
