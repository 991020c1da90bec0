package vimlogo

import (
	"math"
	"testing"
)

func TestMatrix_Identity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() should be identity")
	}
	p := Pt(3, 7)
	if q := m.TransformPoint(p); !q.Approx(p, 1e-10) {
		t.Errorf("identity moved point: %v -> %v", p, q)
	}
}

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		p      Point
		expect Point
	}{
		{"translate", Translate(10, 20), Pt(1, 2), Pt(11, 22)},
		{"scale", Scale(2, 3), Pt(1, 2), Pt(2, 6)},
		{"rotate quarter", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"shear x", Shear(-1.0/3, 0), Pt(0, 3), Pt(-1, 3)},
		{"shear leaves y", Shear(-1.0/3, 0), Pt(5, 3), Pt(4, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.m.TransformPoint(tt.p)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, result, tt.expect)
			}
		})
	}
}

func TestMatrix_Multiply(t *testing.T) {
	// Multiply applies the right operand first.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	p := m.TransformPoint(Pt(1, 1))
	if !p.Approx(Pt(12, 2), 1e-10) {
		t.Errorf("scale then translate = %v, want (12, 2)", p)
	}

	n := Scale(2, 2).Multiply(Translate(10, 0))
	q := n.TransformPoint(Pt(1, 1))
	if !q.Approx(Pt(22, 2), 1e-10) {
		t.Errorf("translate then scale = %v, want (22, 2)", q)
	}
}

func TestMatrix_TransformVector(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 2))
	v := m.TransformVector(Pt(1, 1))
	if !v.Approx(Pt(2, 2), 1e-10) {
		t.Errorf("TransformVector = %v, want (2, 2); translation must not apply", v)
	}
}

func TestMatrix_Invert(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(0.7)).Multiply(Scale(2, 0.5))
	inv := m.Invert()
	p := Pt(4, 9)
	round := inv.TransformPoint(m.TransformPoint(p))
	if !round.Approx(p, 1e-9) {
		t.Errorf("Invert round trip = %v, want %v", round, p)
	}

	singular := Scale(0, 0).Invert()
	if !singular.IsIdentity() {
		t.Errorf("Invert of singular = %+v, want identity", singular)
	}
}
