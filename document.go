package vimlogo

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Style is the paint applied to one path element. An empty Fill renders as
// fill="none"; a stroke is emitted only when both Stroke and StrokeWidth
// are set.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

func (s Style) attrs() []string {
	fill := s.Fill
	if fill == "" {
		fill = "none"
	}
	out := []string{fmt.Sprintf("fill=%q", fill)}
	if s.Stroke != "" && s.StrokeWidth > 0 {
		out = append(out,
			fmt.Sprintf("stroke=%q", s.Stroke),
			fmt.Sprintf("stroke-width=%q", formatNumber(s.StrokeWidth)))
	}
	return out
}

// Shape is one path element: one or more polygon subpaths sharing a style.
// The letter i, for example, is a single shape with stem and dot subpaths.
type Shape struct {
	Polygons []Polygon
	Style    Style
}

func (s Shape) pathData() string {
	parts := make([]string, len(s.Polygons))
	for i, poly := range s.Polygons {
		parts[i] = poly.PathData()
	}
	return strings.Join(parts, " ")
}

// ShapeGroup is a named collection of shapes sharing a z-order, rendered as
// one SVG g element. A non-empty MaskID clips the whole group by the mask
// of that id.
type ShapeGroup struct {
	ID     string
	MaskID string
	Shapes []Shape
}

// MaskDef is a luminance mask: a white backdrop covering the canvas with
// black cutout shapes punched out of it. Anything under a cutout is
// clipped away from groups that consume the mask.
type MaskDef struct {
	ID      string
	Cutouts []Polygon
}

// Document is an ordered sequence of shape groups plus the mask definitions
// they consume. Group order is paint order. Masks are serialized in a defs
// block before any group, so a mask is always defined before it is used.
type Document struct {
	ViewBox [4]float64
	Masks   []MaskDef
	Groups  []ShapeGroup
}

// The mask backdrop extends well past the canvas so the mask never clips
// content that merely overhangs the viewBox.
const maskBackdrop = 500

// Validate checks the document for unrenderable content: degenerate
// polygons, duplicate or dangling mask ids.
func (d *Document) Validate() error {
	maskIDs := make(map[string]bool, len(d.Masks))
	for _, m := range d.Masks {
		if m.ID == "" {
			return fmt.Errorf("mask with empty id: %w", ErrBadGeometry)
		}
		if maskIDs[m.ID] {
			return fmt.Errorf("duplicate mask id %q: %w", m.ID, ErrBadGeometry)
		}
		maskIDs[m.ID] = true
		for _, poly := range m.Cutouts {
			if poly.IsDegenerate() {
				return fmt.Errorf("mask %q: degenerate cutout: %w", m.ID, ErrBadGeometry)
			}
		}
	}
	for _, g := range d.Groups {
		if g.MaskID != "" && !maskIDs[g.MaskID] {
			return fmt.Errorf("group %q consumes undefined mask %q: %w", g.ID, g.MaskID, ErrBadGeometry)
		}
		for _, shape := range g.Shapes {
			for _, poly := range shape.Polygons {
				if poly.IsDegenerate() {
					return fmt.Errorf("group %q: degenerate polygon: %w", g.ID, ErrBadGeometry)
				}
			}
		}
	}
	return nil
}

// Bounds returns the bounding box of all visible geometry, including the
// overhang of centered strokes. Mask cutouts do not contribute.
func (d *Document) Bounds() (min, max Point) {
	first := true
	for _, g := range d.Groups {
		for _, shape := range g.Shapes {
			pad := 0.0
			if shape.Style.Stroke != "" {
				pad = shape.Style.StrokeWidth / 2
			}
			for _, poly := range shape.Polygons {
				lo, hi := poly.Bounds()
				lo = lo.Sub(Pt(pad, pad))
				hi = hi.Add(Pt(pad, pad))
				if first {
					min, max = lo, hi
					first = false
					continue
				}
				if lo.X < min.X {
					min.X = lo.X
				}
				if lo.Y < min.Y {
					min.Y = lo.Y
				}
				if hi.X > max.X {
					max.X = hi.X
				}
				if hi.Y > max.Y {
					max.Y = hi.Y
				}
			}
		}
	}
	return min, max
}

// WriteSVG serializes the document as SVG markup, preserving group order
// and mask relationships.
func (d *Document) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	vb := d.ViewBox
	canvas.Startraw(
		fmt.Sprintf("width=%q", formatNumber(vb[2])),
		fmt.Sprintf("height=%q", formatNumber(vb[3])),
		fmt.Sprintf(`viewBox="%s %s %s %s"`,
			formatNumber(vb[0]), formatNumber(vb[1]),
			formatNumber(vb[2]), formatNumber(vb[3])),
	)

	if len(d.Masks) > 0 {
		canvas.Def()
		for _, m := range d.Masks {
			canvas.Mask(m.ID, -maskBackdrop, -maskBackdrop, 2*maskBackdrop, 2*maskBackdrop,
				`maskUnits="userSpaceOnUse"`)
			canvas.Rect(-maskBackdrop, -maskBackdrop, 2*maskBackdrop, 2*maskBackdrop,
				`fill="white"`)
			for _, poly := range m.Cutouts {
				canvas.Path(poly.PathData(), `fill="black"`)
			}
			canvas.MaskEnd()
		}
		canvas.DefEnd()
	}

	for _, g := range d.Groups {
		attrs := []string{fmt.Sprintf("id=%q", g.ID)}
		if g.MaskID != "" {
			attrs = append(attrs, fmt.Sprintf(`mask="url(#%s)"`, g.MaskID))
		}
		canvas.Group(attrs...)
		for _, shape := range g.Shapes {
			canvas.Path(shape.pathData(), shape.Style.attrs()...)
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

// SVG returns the serialized document.
func (d *Document) SVG() []byte {
	var buf bytes.Buffer
	// A bytes.Buffer write cannot fail.
	_ = d.WriteSVG(&buf)
	return buf.Bytes()
}

// WriteSVGFile writes the document to path, creating parent directories as
// needed.
func (d *Document) WriteSVGFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	}
	data := d.SVG()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	Logger().Info("wrote svg", "path", path, "bytes", len(data))
	return nil
}

// errWriter captures the first write error so svgo's fire-and-forget
// printing can still surface failures to the caller.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
