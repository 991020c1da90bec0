package vimlogo

// diamondPoints returns the four points of a diamond centered at the
// origin, clockwise from +x in right-handed axes.
func diamondPoints(rad float64) Polygon {
	return Polygon{Pt(rad, 0), Pt(0, rad), Pt(-rad, 0), Pt(0, -rad)}
}

// newDiamond builds the green diamond behind the letters: four illuminated
// bevel strips around the face, a fat black outline, and pinstripes on the
// bevels. The diamond is centered on the canvas.
func newDiamond(p Params, lights []LightSource) (ShapeGroup, error) {
	center := Pt(p.ViewBox[0]+p.ViewBox[2]/2, p.ViewBox[1]+p.ViewBox[3]/2)
	outer := diamondPoints(p.DiamondRadius).Translate(center)
	return beveledFace(
		"diamond",
		outer,
		p.DiamondBevelWidth,
		p.DiamondBevelSlope,
		p.DiamondMaterial,
		Style{Stroke: p.StrokeColor, StrokeWidth: p.FatStrokeWidth},
		Style{Stroke: p.StrokeColor, StrokeWidth: p.PinStrokeWidth},
		lights,
	)
}
