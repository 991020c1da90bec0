// Package vimlogo computes the vector geometry of the Vim logo and
// serializes it as an SVG document.
//
// # Overview
//
// The logo is built from a fixed set of design constants: the letter V with
// illuminated bevel strips, the lowercase letters i and m, and the green
// diamond behind them, clipped by a mask shaped like the letter m. All
// geometry is derived from 2D vector math (offsets, rotations, line
// intersections) so that bevel widths stay visually consistent despite the
// slant of the letterforms.
//
// # Quick Start
//
//	params := vimlogo.DefaultParams()
//	doc, err := vimlogo.Generate(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := doc.WriteSVGFile("output/vim_logo.svg"); err != nil {
//	    log.Fatal(err)
//	}
//
// Generation is pure and deterministic: the same Params always produce
// byte-identical SVG output. Invalid constants (a degenerate polygon, a
// material that cannot reach its target color under the configured lights)
// surface as errors from Generate; there is no runtime recovery path.
//
// # Coordinate System
//
// Uses standard SVG coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Surface normals for bevel illumination live in a right-handed 3D space
// with +Z pointing out of the canvas toward the viewer.
package vimlogo
