package vimlogo

import (
	"errors"
	"math"
	"testing"
)

// unitSquare winds so that edge perpendiculars point into the interior.
func unitSquare(side float64) Polygon {
	return Polygon{Pt(0, 0), Pt(side, 0), Pt(side, side), Pt(0, side)}
}

func TestPolygon_SignedArea(t *testing.T) {
	tests := []struct {
		name   string
		p      Polygon
		expect float64
	}{
		{"square", unitSquare(10), 100},
		{"reversed square", unitSquare(10).Reverse(), -100},
		{"triangle", Polygon{Pt(0, 0), Pt(4, 0), Pt(0, 3)}, 6},
		{"two points", Polygon{Pt(0, 0), Pt(4, 0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.SignedArea(); math.Abs(got-tt.expect) > 1e-10 {
				t.Errorf("SignedArea = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestPolygon_Dedup(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
	q := p.Dedup()
	if len(q) != 4 {
		t.Fatalf("Dedup length = %d, want 4: %v", len(q), q)
	}
	if math.Abs(q.Area()-100) > 1e-10 {
		t.Errorf("Dedup changed area: %v", q.Area())
	}
}

func TestPolygon_IsDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		p      Polygon
		expect bool
	}{
		{"square", unitSquare(10), false},
		{"empty", Polygon{}, true},
		{"repeated point", Polygon{Pt(1, 1), Pt(1, 1), Pt(1, 1)}, true},
		{"collinear", Polygon{Pt(0, 0), Pt(5, 0), Pt(10, 0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsDegenerate(); got != tt.expect {
				t.Errorf("IsDegenerate = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestPolygon_Offset(t *testing.T) {
	p := unitSquare(10)
	q, err := p.Offset(2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(q.Area()-36) > 1e-9 {
		t.Errorf("Offset(2) area = %v, want 36", q.Area())
	}
	min, max := q.Bounds()
	if !min.Approx(Pt(2, 2), 1e-9) || !max.Approx(Pt(8, 8), 1e-9) {
		t.Errorf("Offset(2) bounds = %v..%v, want (2,2)..(8,8)", min, max)
	}
}

func TestPolygon_OffsetDegenerate(t *testing.T) {
	_, err := Polygon{Pt(0, 0), Pt(1, 1)}.Offset(1)
	if !errors.Is(err, ErrBadGeometry) {
		t.Errorf("Offset of 2-point ring: err = %v, want ErrBadGeometry", err)
	}
}

func TestPolygon_Inset(t *testing.T) {
	for _, winding := range []struct {
		name string
		p    Polygon
	}{
		{"forward", unitSquare(10)},
		{"reversed", unitSquare(10).Reverse()},
	} {
		t.Run(winding.name, func(t *testing.T) {
			in, err := winding.p.Inset(2)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(in.Area()-36) > 1e-9 {
				t.Errorf("Inset(2) area = %v, want 36", in.Area())
			}

			out, err := winding.p.Inset(-2)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(out.Area()-196) > 1e-9 {
				t.Errorf("Inset(-2) area = %v, want 196", out.Area())
			}
		})
	}
}

func TestPolygon_ChamferRightAngles(t *testing.T) {
	p := unitSquare(10).ChamferRightAngles(2)
	if len(p) != 8 {
		t.Fatalf("chamfered square has %d points, want 8: %v", len(p), p)
	}
	// Each corner loses a 2x2 right triangle.
	if math.Abs(p.Area()-92) > 1e-9 {
		t.Errorf("chamfered area = %v, want 92", p.Area())
	}
}

func TestPolygon_ChamferSkipsObtuse(t *testing.T) {
	tri := Polygon{Pt(0, 0), Pt(10, 0), Pt(5, 2)}
	if got := tri.ChamferRightAngles(1); len(got) != 3 {
		t.Errorf("obtuse triangle gained points: %v", got)
	}
}

func TestPolygon_Transform(t *testing.T) {
	p := unitSquare(10).Transform(Shear(-1.0/3, 0))
	// Shear preserves area.
	if math.Abs(p.Area()-100) > 1e-9 {
		t.Errorf("sheared area = %v, want 100", p.Area())
	}
	if !p[3].Approx(Pt(-10.0/3, 10), 1e-9) {
		t.Errorf("sheared corner = %v, want (-10/3, 10)", p[3])
	}
}
