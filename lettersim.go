package vimlogo

// The lowercase letters i and m. The local origin is the top-left corner of
// the letter m at x-height; the i hangs to the left at negative x. Both
// letters lean left one x unit per three y units, applied after the point
// lists are assembled.
//
// This mostly but not exactly follows the historical logo. The m there was
// inconsistent, so this one is closer to the source Crillee font.
const (
	// imChamfer is the corner facet size and serif height of both letters.
	imChamfer = 3.0
	// iDotChamfer is the smaller facet on the corners of the i dot.
	iDotChamfer = 1.0
	// imFootWidth is the width of a leg bottom including its serif, and
	// the height of the i stem top.
	imFootWidth = 12.0
	// imVoidWidth is the width of the gap between m legs at the top.
	imVoidWidth = 10.5
)

// imOffset places the letters on the canvas (before the skew).
var imOffset = Pt(17*7.6, 17*5.75)

// imGuides returns the horizontal guide lines of the letters, top to
// bottom: top and bottom of the i dot, x-height, bottom of the divots on
// top of the m, top of the voids between m legs, top of the lower serifs,
// and the baseline.
func imGuides() [7]float64 {
	return [7]float64{
		-(imVoidWidth - imChamfer) - (imFootWidth - imChamfer),
		-(imVoidWidth - imChamfer),
		0,
		imChamfer,
		9,
		27,
		30,
	}
}

// relXToAbsX converts points with relative x and absolute y to fully
// absolute points. The x values describe the letter's strokes while the y
// values are already pinned to the font's guide lines.
func relXToAbsX(pts []Point) []Point {
	out := make([]Point, len(pts))
	if len(pts) == 0 {
		return out
	}
	out[0] = pts[0]
	for i, pt := range pts[1:] {
		out[i+1] = Pt(out[i].X+pt.X, pt.Y)
	}
	return out
}

// imSkew leans the letters left one x unit per three y units.
func imSkew() Matrix {
	return Shear(-1.0/3, 0).Multiply(Translate(imOffset.X, imOffset.Y))
}

// letterMPoints returns the letter m outline and its mask silhouette in
// local coordinates. The silhouette drops the inner leg detail so it clips
// the diamond as one solid shape.
func letterMPoints() (outline, silhouette Polygon) {
	h := imGuides()

	// One curved top: from the top of an m hump to the start of the next.
	curvedTop := []Point{
		Pt(imFootWidth-imChamfer, h[2]),
		Pt(imChamfer, h[3]),
		Pt(imVoidWidth-imChamfer*2, h[3]),
		Pt(imChamfer, h[2]),
	}
	// From just above one bottom serif to just above the next leg's.
	bottomLeg := []Point{
		Pt(imChamfer, h[5]),
		Pt(0, h[6]),
		Pt(-imFootWidth, h[6]),
		Pt(0, h[4]),
		Pt(-imVoidWidth, h[4]),
		Pt(0, h[5]),
	}

	rel := []Point{Pt(0, h[2])}
	rel = append(rel, curvedTop...)
	rel = append(rel, curvedTop...)
	rel = append(rel, curvedTop[:2]...)
	rel = append(rel, Pt(0, h[5]))
	rel = append(rel, bottomLeg...)
	rel = append(rel, bottomLeg...)
	rel = append(rel, bottomLeg[:3]...)
	rel = append(rel, Pt(0, h[3]), Pt(-imChamfer, h[3]))

	abs := relXToAbsX(rel)
	outline = Polygon(abs)

	silhouette = append(Polygon{}, abs[:14]...)
	silhouette = append(silhouette, abs[26:]...)
	return outline, silhouette
}

// letterIPoints returns the stem and dot of the letter i in local
// coordinates. The stem starts as if it were another leg of the m, which
// keeps the leg gap consistent between the two letters.
func letterIPoints(m Polygon) (stem, dot Polygon) {
	h := imGuides()
	bottomLeg := []Point{
		Pt(imChamfer, h[5]),
		Pt(0, h[6]),
		Pt(-imFootWidth, h[6]),
		Pt(0, h[4]),
		Pt(-imVoidWidth, h[4]),
		Pt(0, h[5]),
	}

	// Walk one leg left from a known point on the m to find the point just
	// above the i's bottom serif.
	walk := relXToAbsX(append([]Point{m[len(m)-6]}, bottomLeg...))
	start := walk[len(walk)-1]

	stemRel := []Point{
		start,
		bottomLeg[0], bottomLeg[1], bottomLeg[2],
		Pt(0, h[3]),
		Pt(-imChamfer, h[3]),
		Pt(0, h[2]),
		Pt(imFootWidth, h[2]),
	}
	stem = Polygon(relXToAbsX(stemRel))

	side := (h[1] - h[0]) - iDotChamfer*2
	dotRel := []Point{
		// Clockwise from the top facet of the lower-right corner.
		Pt(stem[len(stem)-1].X, h[1]-iDotChamfer),
		Pt(-iDotChamfer, h[1]),
		Pt(-side, h[1]),
		Pt(-iDotChamfer, h[1]-iDotChamfer),
		Pt(0, h[0]+iDotChamfer),
		Pt(iDotChamfer, h[0]),
		Pt(side, h[0]),
		Pt(iDotChamfer, h[0]+iDotChamfer),
	}
	dot = Polygon(relXToAbsX(dotRel))
	return stem, dot
}

// flatLetter builds the group for a small letter: a stroked outline under a
// flat face fill. The outline path is also filled so the stroke has no
// visible seam against the face.
func flatLetter(id string, p Params, polys ...Polygon) ShapeGroup {
	return ShapeGroup{
		ID: id,
		Shapes: []Shape{
			{Polygons: polys, Style: Style{
				Fill:        p.StrokeColor,
				Stroke:      p.StrokeColor,
				StrokeWidth: p.MidStrokeWidth,
			}},
			{Polygons: polys, Style: Style{Fill: p.LetterGray}},
		},
	}
}

// newLettersIM builds the letter i and m groups plus the m silhouette used
// to mask the diamond, all skewed and placed on the canvas.
func newLettersIM(p Params) (letterI, letterM ShapeGroup, mask Polygon) {
	skew := imSkew()

	m, silhouette := letterMPoints()
	stem, dot := letterIPoints(m)

	letterM = flatLetter("letter_m", p, m.Transform(skew))
	letterI = flatLetter("letter_i", p, stem.Transform(skew), dot.Transform(skew))
	mask = silhouette.Transform(skew)
	return letterI, letterM, mask
}
