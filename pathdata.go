package vimlogo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatNumber renders a coordinate rounded to six decimal places with
// trailing zeros trimmed. Rounding keeps output stable across runs; a bare
// negative zero never appears.
func formatNumber(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PathData converts a closed ring of points into SVG path data.
//
// The output is a linear path: "M" followed by "L", "H", and "V" commands
// and a closing "Z". Runs of horizontal or vertical moves collapse into a
// single H or V command, and adjacent identical points (after coordinate
// formatting) are dropped. Some renderers mishandle repeated H or V
// commands, so "L 3,4 H 5 H 6" becomes "L 3,4 H 6".
func PathData(pts []Point) string {
	if len(pts) == 0 {
		return ""
	}

	type xy struct{ x, y string }
	strs := make([]xy, len(pts))
	for i, pt := range pts {
		strs[i] = xy{formatNumber(pt.X), formatNumber(pt.Y)}
	}
	strs = dedupAdjacent(strs)

	cmds := []string{"M" + strs[0].x + "," + strs[0].y}
	for i := 0; i+1 < len(strs); i++ {
		a, b := strs[i], strs[i+1]
		last := cmds[len(cmds)-1]
		switch {
		case a.x == b.x:
			if last[0] == 'V' {
				cmds[len(cmds)-1] = "V" + b.y
			} else {
				cmds = append(cmds, "V"+b.y)
			}
		case a.y == b.y:
			if last[0] == 'H' {
				cmds[len(cmds)-1] = "H" + b.x
			} else {
				cmds = append(cmds, "H"+b.x)
			}
		case last[0] == 'M' || last[0] == 'L':
			cmds[len(cmds)-1] = last + " " + b.x + "," + b.y
		default:
			cmds = append(cmds, "L"+b.x+","+b.y)
		}
	}
	return strings.Join(cmds, " ") + "Z"
}

// dedupAdjacent removes adjacent identical values, including identical
// endpoints across the implicit closing edge.
func dedupAdjacent[T comparable](values []T) []T {
	n := len(values)
	if n < 2 {
		return values
	}
	out := make([]T, 0, n)
	for i, v := range values {
		if v != values[(i+1)%n] {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return values[:1]
	}
	return out
}

// ParsePathData reads the points of an absolute, linear path data string.
// Only the M, L, H, V, and Z commands are understood, with command letters
// either standalone or glued to their first coordinate, which covers
// everything PathData emits and the linear paths in the vim.org reference
// image. A final point identical to the first is dropped.
func ParsePathData(d string) ([]Point, error) {
	var pts []Point
	cmd := byte('M')
	for _, field := range strings.Fields(d) {
		if field == "" {
			continue
		}
		if c := field[0]; c >= 'A' && c <= 'Z' {
			cmd = c
			field = field[1:]
		}
		closed := false
		if strings.HasSuffix(field, "Z") {
			field = strings.TrimSuffix(field, "Z")
			closed = true
		}
		if field != "" {
			pt, err := parseCoords(cmd, field, pts)
			if err != nil {
				return nil, err
			}
			pts = append(pts, pt)
		}
		if closed || cmd == 'Z' {
			break
		}
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts, nil
}

func parseCoords(cmd byte, field string, prev []Point) (Point, error) {
	last := Point{}
	if len(prev) > 0 {
		last = prev[len(prev)-1]
	}
	switch cmd {
	case 'M', 'L':
		x, y, ok := strings.Cut(field, ",")
		if !ok {
			return Point{}, fmt.Errorf("path data: malformed coordinate pair %q", field)
		}
		fx, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return Point{}, fmt.Errorf("path data: %w", err)
		}
		fy, err := strconv.ParseFloat(y, 64)
		if err != nil {
			return Point{}, fmt.Errorf("path data: %w", err)
		}
		return Point{X: fx, Y: fy}, nil
	case 'H':
		fx, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Point{}, fmt.Errorf("path data: %w", err)
		}
		return Point{X: fx, Y: last.Y}, nil
	case 'V':
		fy, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Point{}, fmt.Errorf("path data: %w", err)
		}
		return Point{X: last.X, Y: fy}, nil
	}
	return Point{}, fmt.Errorf("path data: unsupported command %q", string(cmd))
}
