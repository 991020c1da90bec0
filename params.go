package vimlogo

// Canvas dimensions, taken from the vim.org reference image.
const (
	ViewBoxWidth  = 293.57495
	ViewBoxHeight = 293.80619
)

// The logo palette.
const (
	// VimGray fills the faces of the letters i and m.
	VimGray = "#cccccc"
	// VGray fills the face of the letter V and is the target color of its
	// bevel material. It is slightly darker than VimGray so the bevel
	// material stays within the gamut the lights can reach.
	VGray = "#aaaaaa"
	// VimGreen fills the diamond face.
	VimGreen = "#009933"
	// InkBlack draws every outline and pinstripe.
	InkBlack = "#000000"
)

// MaterialSpec declares a bevel material before lighting is resolved:
// the target face color plus raw ambient/diffuse/specular weights.
type MaterialSpec struct {
	Color    string
	Ambient  float64
	Diffuse  float64
	Specular float64
}

// LightSpec declares a directional light: a hex color and the direction
// toward the light.
type LightSpec struct {
	Color     string
	Direction Vec3
}

// Params holds every design constant the generator consumes. All values are
// fixed at construction time; Generate validates them and fails outright on
// constants that describe impossible geometry or unreachable colors.
type Params struct {
	// ViewBox is the SVG viewBox: min-x, min-y, width, height.
	ViewBox [4]float64

	// FatStrokeWidth is the heavy black outline around the V and diamond.
	FatStrokeWidth float64
	// MidStrokeWidth is the medium outline around the letters i and m.
	MidStrokeWidth float64
	// PinStrokeWidth is the hairline pinstripe on every bevel strip.
	PinStrokeWidth float64
	// StrokeColor draws outlines and pinstripes.
	StrokeColor string

	// LetterGray fills the faces of the letters i and m.
	LetterGray string

	// DiamondRadius is the distance from the diamond center to each point,
	// outside the bevels.
	DiamondRadius float64
	// DiamondBevelWidth is the width of the diamond bevel strips.
	DiamondBevelWidth float64
	// DiamondBevelSlope is the rise of the diamond face above the canvas
	// per unit of bevel width. Larger slopes mute the bevel shading.
	DiamondBevelSlope float64
	// DiamondMaterial shades the diamond bevels.
	DiamondMaterial MaterialSpec

	// VBevelWidth is the width of the letter V bevel strips.
	VBevelWidth float64
	// VBevelSlope is the rise of the V face per unit of bevel width.
	VBevelSlope float64
	// VChamfer is the size of the small 45-degree facets replacing the
	// right-angle corners of the V outline.
	VChamfer float64
	// VMaterial shades the V bevels and fills its face.
	VMaterial MaterialSpec

	// Lights illuminate every bevel in the logo.
	Lights []LightSpec
}

// DefaultParams returns the design constants of the canonical logo.
func DefaultParams() Params {
	return Params{
		ViewBox: [4]float64{0, 0, ViewBoxWidth, ViewBoxHeight},

		FatStrokeWidth: 11.5,
		MidStrokeWidth: 6,
		// Copied from the reference image, where it is used consistently.
		PinStrokeWidth: 0.216,
		StrokeColor:    InkBlack,

		LetterGray: VimGray,

		DiamondRadius:     134.9,
		DiamondBevelWidth: 5.4,
		DiamondBevelSlope: 4,
		DiamondMaterial:   MaterialSpec{Color: VimGreen, Ambient: 3, Diffuse: 7},

		VBevelWidth: 6,
		VBevelSlope: 1,
		VChamfer:    3,
		VMaterial:   MaterialSpec{Color: VGray, Ambient: 0.1, Diffuse: 0.9},

		Lights: []LightSpec{
			{Color: "#ffffff", Direction: Vec3{X: -9, Y: -12, Z: 15}},
		},
	}
}

// resolveLights converts light specs into light sources.
func resolveLights(specs []LightSpec) ([]LightSource, error) {
	lights := make([]LightSource, len(specs))
	for i, spec := range specs {
		light, err := NewLightSource(spec.Color, spec.Direction)
		if err != nil {
			return nil, err
		}
		lights[i] = light
	}
	return lights, nil
}

// resolveMaterial builds a material from its spec and adjusts its color so
// a face with the given normal renders as the spec color under the lights.
func resolveMaterial(spec MaterialSpec, normal Vec3, lights []LightSource) (Material, error) {
	m, err := NewMaterial(spec.Color, spec.Ambient, spec.Diffuse, spec.Specular)
	if err != nil {
		return Material{}, err
	}
	return SetMaterialColor(normal, m, lights...)
}
