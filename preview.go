package vimlogo

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
)

// RenderPreview rasterizes the document into an RGBA image, scale pixels
// per user unit. It is a proofing aid, not a reference renderer: fills and
// masks are exact, strokes are approximated by filled rings built from
// polygon offsets, so hairline pinstripes may land slightly off at miters.
func RenderPreview(d *Document, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("preview scale %v, want > 0", scale)
	}
	w := int(math.Ceil(d.ViewBox[2] * scale))
	h := int(math.Ceil(d.ViewBox[3] * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("preview of empty viewBox: %w", ErrBadGeometry)
	}
	view := Scale(scale, scale).Multiply(Translate(-d.ViewBox[0], -d.ViewBox[1]))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	masks := make(map[string]*image.Alpha, len(d.Masks))
	for _, m := range d.Masks {
		masks[m.ID] = invertAlpha(rasterize(m.Cutouts, w, h, view))
	}

	for _, g := range d.Groups {
		clip := masks[g.MaskID] // nil when the group is unmasked
		for _, shape := range g.Shapes {
			if err := drawShape(img, shape, view, clip); err != nil {
				return nil, fmt.Errorf("preview group %q: %w", g.ID, err)
			}
		}
	}
	return img, nil
}

// SavePreviewPNG writes a rasterized preview of the document to path.
func (d *Document) SavePreviewPNG(path string, scale float64) error {
	img, err := RenderPreview(d, scale)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("write preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	Logger().Info("wrote preview", "path", path, "size", img.Bounds().Max)
	return nil
}

func drawShape(img *image.RGBA, shape Shape, view Matrix, clip *image.Alpha) error {
	b := img.Bounds()

	if shape.Style.Fill != "" && shape.Style.Fill != "none" {
		col, err := parseColor(shape.Style.Fill)
		if err != nil {
			return err
		}
		alpha := rasterize(shape.Polygons, b.Dx(), b.Dy(), view)
		applyClip(alpha, clip)
		draw.DrawMask(img, b, image.NewUniform(col), image.Point{}, alpha, image.Point{}, draw.Over)
	}

	if shape.Style.Stroke != "" && shape.Style.StrokeWidth > 0 {
		col, err := parseColor(shape.Style.Stroke)
		if err != nil {
			return err
		}
		rings := strokeRings(shape.Polygons, shape.Style.StrokeWidth)
		alpha := rasterize(rings, b.Dx(), b.Dy(), view)
		applyClip(alpha, clip)
		draw.DrawMask(img, b, image.NewUniform(col), image.Point{}, alpha, image.Point{}, draw.Over)
	}
	return nil
}

// strokeRings approximates a centered stroke: for every polygon, the region
// between its outward and inward offsets at half the stroke width. The
// inward ring winds backwards so the pair fills as a ring.
func strokeRings(polys []Polygon, width float64) []Polygon {
	var rings []Polygon
	for _, poly := range polys {
		outward, err := poly.Inset(-width / 2)
		if err != nil {
			continue
		}
		inward, err := poly.Inset(width / 2)
		if err != nil {
			continue
		}
		rings = append(rings, outward, inward.Reverse())
	}
	return rings
}

// rasterize renders polygons into an alpha image using the rasterizer's
// winding rule.
func rasterize(polys []Polygon, w, h int, view Matrix) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	for _, poly := range polys {
		pts := poly.Dedup()
		if len(pts) < 3 {
			continue
		}
		first := view.TransformPoint(pts[0])
		z.MoveTo(float32(first.X), float32(first.Y))
		for _, pt := range pts[1:] {
			q := view.TransformPoint(pt)
			z.LineTo(float32(q.X), float32(q.Y))
		}
		z.ClosePath()
	}
	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})
	return alpha
}

// invertAlpha flips coverage: mask cutouts become holes.
func invertAlpha(a *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Bounds())
	for i, v := range a.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}

// applyClip multiplies the clip coverage into alpha in place.
func applyClip(alpha, clip *image.Alpha) {
	if clip == nil {
		return
	}
	for i := range alpha.Pix {
		alpha.Pix[i] = uint8(uint16(alpha.Pix[i]) * uint16(clip.Pix[i]) / 255)
	}
}

func parseColor(hexColor string) (color.Color, error) {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", hexColor, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
