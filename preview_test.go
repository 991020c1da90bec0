package vimlogo

import (
	"image/color"
	"testing"
)

func previewPixel(t *testing.T, d *Document, scale, x, y float64) color.RGBA {
	t.Helper()
	img, err := RenderPreview(d, scale)
	if err != nil {
		t.Fatal(err)
	}
	return img.RGBAAt(int(x*scale), int(y*scale))
}

func TestRenderPreview_Dimensions(t *testing.T) {
	img, err := RenderPreview(testDocument(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Max; got.X != 200 || got.Y != 200 {
		t.Errorf("preview size = %v, want (200, 200)", got)
	}
}

func TestRenderPreview_FillsAndMask(t *testing.T) {
	d := testDocument()

	// Inside the backdrop fill, away from strokes and the mask cutout.
	if c := previewPixel(t, d, 1, 20, 20); c.G <= c.R || c.G <= c.B {
		t.Errorf("backdrop pixel = %v, want green", c)
	}
	// Inside the mask cutout the backdrop is clipped away.
	if c := previewPixel(t, d, 1, 45, 45); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("cutout pixel = %v, want background white", c)
	}
	// The unmasked marker square still paints.
	if c := previewPixel(t, d, 1, 5, 5); c.R != 0xcc || c.G != 0xcc || c.B != 0xcc {
		t.Errorf("marker pixel = %v, want #cccccc", c)
	}
	// Outside everything stays background.
	if c := previewPixel(t, d, 1, 97, 97); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("background pixel = %v, want white", c)
	}
}

func TestRenderPreview_Logo(t *testing.T) {
	doc, err := Generate(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	// A point low on the diamond face: below the letters, inside the bevels.
	if c := previewPixel(t, doc, 1, 146, 255); c.G <= c.R || c.G <= c.B {
		t.Errorf("diamond face pixel = %v, want green", c)
	}
}

func TestRenderPreview_BadInput(t *testing.T) {
	if _, err := RenderPreview(testDocument(), 0); err == nil {
		t.Error("zero scale accepted")
	}

	d := testDocument()
	d.Groups[1].Shapes[0].Style.Fill = "rebeccapurple"
	if _, err := RenderPreview(d, 1); err == nil {
		t.Error("unparseable fill color accepted")
	}
}
