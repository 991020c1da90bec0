package vimlogo

import (
	"fmt"
	"math"
)

// Dimensions of the giant letter V. The outline is built counter-clockwise
// from its top-left corner, with the local origin at that corner.
const (
	vWidth          = 235
	vTopSerifWidth  = 88
	vTopSerifHeight = 17
	vBarWidth       = 55

	// vSlantAngle is the angle of the V's long diagonal against the
	// horizontal. Hand-tuned to match the reference image.
	vSlantAngle = math.Pi / 3.925
)

// vOrigin places the letter V on the canvas.
var vOrigin = Pt(36, 29)

// serifRun returns how far to travel along x to climb n units of a slope
// at the given angle (law of sines). Used to drop the bottom serif down
// the V's diagonal.
func serifRun(theta, n float64) float64 {
	return n * math.Sin(math.Pi/2-theta) / math.Sin(theta)
}

// letterVOutline computes the V outline in local coordinates. The serif
// tops are fixed, the diagonal edges come from line intersections, and
// every remaining right-angle corner is chamfered.
func letterVOutline(chamfer float64) (Polygon, error) {
	slant := Pt(-math.Cos(vSlantAngle), math.Sin(vSlantAngle))
	bottomSerifWidth := vTopSerifHeight + chamfer
	serifInset := float64(vTopSerifWidth-vBarWidth) / 2

	// Corner points along the top edge and the serif line below it. The
	// right serif's inner corner is lifted by one chamfer so the diagonal
	// meets it on a facet.
	top := []Point{
		Pt(0, 0),
		Pt(vTopSerifWidth, 0),
		Pt(vWidth-vTopSerifWidth, 0),
		Pt(vWidth, 0),
	}
	serif := []Point{
		Pt(0, vTopSerifHeight),
		Pt(serifInset, vTopSerifHeight),
		Pt(vTopSerifWidth-serifInset, vTopSerifHeight),
		Pt(vTopSerifWidth, vTopSerifHeight),
		Pt(vWidth-vTopSerifWidth, vTopSerifHeight),
		Pt(vWidth-vTopSerifWidth+serifInset, vTopSerifHeight),
		Pt(vWidth, vTopSerifHeight-chamfer),
	}

	// The notch where the left bar meets the descending diagonal.
	notchTop := Pt(serif[5].X, vTopSerifHeight+(vTopSerifHeight-2*chamfer))
	barRight := LineDirected(serif[2], Pt(0, 1))
	notchSlant := LineDirected(notchTop, slant)
	notch, ok := barRight.Intersect(notchSlant)
	if !ok {
		return nil, fmt.Errorf("letter v notch: parallel lines: %w", ErrBadGeometry)
	}

	// The bottom tip, cut by a horizontal serif foot.
	diagonal := LineDirected(serif[6], slant)
	barLeft := LineDirected(serif[1], Pt(0, 1))
	tip, ok := diagonal.Intersect(barLeft)
	if !ok {
		return nil, fmt.Errorf("letter v tip: parallel lines: %w", ErrBadGeometry)
	}
	footInner := tip.Add(Pt(0, serifRun(vSlantAngle, -bottomSerifWidth)))
	footLine := LineDirected(footInner, Pt(1, 0))
	footOuter, ok := footLine.Intersect(diagonal)
	if !ok {
		return nil, fmt.Errorf("letter v serif foot: parallel lines: %w", ErrBadGeometry)
	}

	pts := Polygon{
		top[0], top[1],
		serif[3], serif[2],
		notch, notchTop,
		serif[5], serif[4],
		top[2], top[3],
		serif[6],
		footOuter, footInner,
		serif[1], serif[0],
	}
	return pts.ChamferRightAngles(chamfer), nil
}

// newLetterV builds the letter V group: fat outline, gray face, one
// illuminated bevel strip per outline edge, pinstripes on the bevels.
func newLetterV(p Params, lights []LightSource) (ShapeGroup, error) {
	outline, err := letterVOutline(p.VChamfer)
	if err != nil {
		return ShapeGroup{}, err
	}
	outer := outline.Translate(vOrigin)
	return beveledFace(
		"letter_v",
		outer,
		p.VBevelWidth,
		p.VBevelSlope,
		p.VMaterial,
		Style{Stroke: p.StrokeColor, StrokeWidth: p.FatStrokeWidth},
		Style{Stroke: p.StrokeColor, StrokeWidth: p.PinStrokeWidth},
		lights,
	)
}
