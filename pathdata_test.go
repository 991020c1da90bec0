package vimlogo

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in     float64
		expect string
	}{
		{0, "0"},
		{-0.0000001, "0"},
		{1.5, "1.5"},
		{-3, "-3"},
		{134.9, "134.9"},
		{1.23456789, "1.234568"},
		{293.57495, "293.57495"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.expect {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}

func TestPathData(t *testing.T) {
	tests := []struct {
		name   string
		pts    []Point
		expect string
	}{
		{
			"empty",
			nil,
			"",
		},
		{
			"axis-aligned square",
			[]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)},
			"M0,0 H10 V10 H0Z",
		},
		{
			"diagonal edges chain onto one command",
			[]Point{Pt(0, 0), Pt(5, 5), Pt(10, 0)},
			"M0,0 5,5 10,0Z",
		},
		{
			"horizontal run collapses",
			[]Point{Pt(0, 0), Pt(3, 4), Pt(5, 4), Pt(7, 4), Pt(7, 8)},
			"M0,0 3,4 H7 V8Z",
		},
		{
			"adjacent duplicates dropped",
			[]Point{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)},
			"M0,0 H10 V10 H0Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathData(tt.pts); got != tt.expect {
				t.Errorf("PathData = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestParsePathData_RoundTrip(t *testing.T) {
	rings := [][]Point{
		{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)},
		{Pt(0, 0), Pt(5, 5), Pt(10, 0)},
		{Pt(1.5, -2.25), Pt(8, -2.25), Pt(8, 3), Pt(4, 7), Pt(1.5, 3)},
	}

	for _, ring := range rings {
		d := PathData(ring)
		got, err := ParsePathData(d)
		if err != nil {
			t.Fatalf("ParsePathData(%q): %v", d, err)
		}
		if len(got) != len(ring) {
			t.Fatalf("round trip of %q: %d points, want %d", d, len(got), len(ring))
		}
		for i := range ring {
			if !got[i].Approx(ring[i], 1e-9) {
				t.Errorf("round trip of %q: point %d = %v, want %v", d, i, got[i], ring[i])
			}
		}
	}
}

func TestParsePathData_Errors(t *testing.T) {
	bad := []string{
		"M0",
		"Mx,y",
		"C1,2 3,4 5,6",
		"Hq",
	}

	for _, d := range bad {
		if _, err := ParsePathData(d); err == nil {
			t.Errorf("ParsePathData(%q) succeeded, want error", d)
		}
	}
}

func TestParsePathData_TrailingZ(t *testing.T) {
	pts, err := ParsePathData("M1,2 L3,4 L1,2Z")
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2 {
		t.Fatalf("got %d points, want closing duplicate dropped: %v", len(pts), pts)
	}
}
