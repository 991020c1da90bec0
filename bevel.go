package vimlogo

// bevelStrips returns one quad per edge spanning the gap between the inner
// and outer rings. The rings must have the same length and index
// correspondence, as produced by Polygon.Inset.
func bevelStrips(inner, outer Polygon) []Polygon {
	n := len(outer)
	strips := make([]Polygon, 0, n)
	for i := range outer {
		j := (i + 1) % n
		strips = append(strips, Polygon{inner[i], inner[j], outer[j], outer[i]})
	}
	return strips
}

// fixCollapsedEdges repairs miter collapse: when an inset ring's edge is
// shorter than the miters eat, the edge reverses direction and its bevel
// strip folds into a bowtie. Both endpoints of a reversed edge merge into
// their midpoint, turning the strip into a clean triangle. Happens at the
// small chamfer facets of the letter V.
func fixCollapsedEdges(outer, inner Polygon) Polygon {
	n := len(outer)
	if len(inner) != n {
		return inner
	}
	out := append(Polygon(nil), inner...)
	for i := range out {
		j := (i + 1) % n
		outerDir := outer[j].Sub(outer[i])
		innerDir := out[j].Sub(out[i])
		if outerDir.Dot(innerDir) < 0 {
			mid := out[i].Lerp(out[j], 0.5)
			out[i], out[j] = mid, mid
		}
	}
	return out
}

// beveledFace builds the group for a face with illuminated bevels: a fat
// outline around the outer ring, the face fill on the inset ring, one
// illuminated strip per edge, and a pinstripe around every strip.
func beveledFace(
	id string,
	outer Polygon,
	bevelWidth, bevelSlope float64,
	spec MaterialSpec,
	outline, pinstripe Style,
	lights []LightSource,
) (ShapeGroup, error) {
	inner, err := outer.Inset(bevelWidth)
	if err != nil {
		return ShapeGroup{}, err
	}
	inner = fixCollapsedEdges(outer, inner)

	material, err := resolveMaterial(spec, V3(0, 0, 1), lights)
	if err != nil {
		return ShapeGroup{}, err
	}

	shapes := []Shape{
		{Polygons: []Polygon{outer}, Style: outline},
		{Polygons: []Polygon{inner}, Style: Style{Fill: spec.Color}},
	}

	strips := bevelStrips(inner, outer)
	for i, strip := range strips {
		clean := strip.Dedup()
		if clean.IsDegenerate() {
			continue
		}
		// The outer edge is parallel to the inner edge and survives corner
		// merges, so it is the safer source for the strip's normal.
		j := (i + 1) % len(outer)
		normal, err := BevelNormal(outer[i], outer[j], bevelSlope)
		if err != nil {
			return ShapeGroup{}, err
		}
		fill := Illuminate(normal, material, lights...)
		shapes = append(shapes, Shape{Polygons: []Polygon{clean}, Style: Style{Fill: fill}})
		Logger().Debug("bevel strip", "group", id, "edge", i, "fill", fill)
	}
	for _, strip := range strips {
		clean := strip.Dedup()
		if clean.IsDegenerate() {
			continue
		}
		shapes = append(shapes, Shape{Polygons: []Polygon{clean}, Style: pinstripe})
	}

	return ShapeGroup{ID: id, Shapes: shapes}, nil
}
