package vimlogo

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// The shading model is the uniform (flat Phong) model: ambient, diffuse,
// and specular terms weighed per material, evaluated once per face. The
// ambient and diffuse colors are the material's, the specular color is the
// light's. The viewer sits on the +Z axis above the canvas.
var viewer = Vec3{X: 0, Y: 0, Z: 1}

// LightSource is a directional light defined by a color and the direction
// toward the light.
type LightSource struct {
	Color     Vec3 // per-channel intensity in [0, 1]
	Direction Vec3 // unit vector toward the light
}

// NewLightSource creates a light source from a hex color and a direction.
// The light is, in effect, infinitely far away in the given direction.
func NewLightSource(hexColor string, direction Vec3) (LightSource, error) {
	c, err := hexToIntensity(hexColor)
	if err != nil {
		return LightSource{}, err
	}
	d := direction.Normalize()
	if d.IsZero() {
		return LightSource{}, fmt.Errorf("light source with zero direction: %w", ErrBadGeometry)
	}
	return LightSource{Color: c, Direction: d}, nil
}

// Material describes how a face responds to light. Ambient light reflects
// regardless of light direction, diffuse light follows the surface normal,
// and specular light approximates shine. Shine is kept at 1: it is
// meaningless for flat bevels but allows the model to be reused for
// smoother surfaces.
type Material struct {
	Color    Vec3 // per-channel intensity in [0, 1]
	Ambient  float64
	Diffuse  float64
	Specular float64
	Shine    float64
}

// NewMaterial creates a material from a hex color and raw ambient, diffuse,
// and specular weights. The weights are scaled to sum to 1.
func NewMaterial(hexColor string, ambient, diffuse, specular float64) (Material, error) {
	c, err := hexToIntensity(hexColor)
	if err != nil {
		return Material{}, err
	}
	sum := ambient + diffuse + specular
	if sum <= 0 {
		return Material{}, fmt.Errorf("material weights sum to %v, want > 0", sum)
	}
	return Material{
		Color:    c,
		Ambient:  ambient / sum,
		Diffuse:  diffuse / sum,
		Specular: specular / sum,
		Shine:    1,
	}, nil
}

// shadeOnce evaluates the shading model for one light source. The result is
// unbounded so contributions from multiple lights can be summed before
// clamping.
func shadeOnce(normal Vec3, m Material, light LightSource) Vec3 {
	iA := m.Color.Clamp(0, 1)
	iD := iA
	iS := light.Color

	n := normal
	l := light.Direction
	lDotN := l.Dot(n)

	r := n.Scale(2 * lDotN).Sub(l)
	rDotV := r.Dot(viewer)

	aTerm := iA.Scale(m.Ambient)
	dTerm := iD.MulElem(iS).Scale(m.Diffuse * math.Max(0, lDotN))
	sTerm := iS.Scale(m.Specular * math.Pow(math.Max(0, rDotV), m.Shine))

	return aTerm.Add(dTerm).Add(sTerm)
}

// Illuminate computes the color of a flat face with the given surface
// normal under one or more light sources, returned as a hex string. The
// normal need not be pre-normalized.
func Illuminate(normal Vec3, m Material, lights ...LightSource) string {
	normal = normal.Normalize()
	var sum Vec3
	for _, light := range lights {
		sum = sum.Add(shadeOnce(normal, m, light))
	}
	return intensityToHex(sum.Clamp(0, 1))
}

// SetMaterialColor returns a copy of m whose color is adjusted so that a
// face with the given normal renders exactly as m's original color under
// the given lights. It returns an error when no material color can reach
// the target under these lighting conditions.
func SetMaterialColor(normal Vec3, m Material, lights ...LightSource) (Material, error) {
	goal := intensityToRGB8(m.Color.Clamp(0, 1))

	white, black := m, m
	white.Color = Vec3{X: 1, Y: 1, Z: 1}
	black.Color = Vec3{}
	brightest, err := hexToRGB8(Illuminate(normal, white, lights...))
	if err != nil {
		return Material{}, err
	}
	dimmest, err := hexToRGB8(Illuminate(normal, black, lights...))
	if err != nil {
		return Material{}, err
	}
	for i := range goal {
		if brightest[i] < goal[i] || dimmest[i] > goal[i] {
			return Material{}, fmt.Errorf(
				"material and light parameters only reach colors between %v and %v at this normal, goal is %v",
				dimmest, brightest, goal)
		}
	}

	// Walk each channel up from black until the rendered color meets the
	// goal. Each channel moves at most 255 steps, so the loop is bounded.
	candidate := [3]int{}
	for step := 0; step < 256; step++ {
		trial := m
		trial.Color = rgb8ToIntensity(candidate)
		attempt, err := hexToRGB8(Illuminate(normal, trial, lights...))
		if err != nil {
			return Material{}, err
		}
		reached := true
		for i := range goal {
			if attempt[i] < goal[i] {
				candidate[i]++
				reached = false
			}
		}
		if reached {
			return trial, nil
		}
	}
	return Material{}, fmt.Errorf("failed to converge on material color for goal %v", goal)
}

// hexToIntensity converts a hex color string to per-channel [0, 1] floats.
func hexToIntensity(hexColor string) (Vec3, error) {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return Vec3{}, fmt.Errorf("parse color %q: %w", hexColor, err)
	}
	return Vec3{X: c.R, Y: c.G, Z: c.B}, nil
}

// intensityToHex converts per-channel [0, 1] floats to a hex color string.
func intensityToHex(v Vec3) string {
	v = v.Clamp(0, 1)
	return colorful.Color{R: v.X, G: v.Y, B: v.Z}.Hex()
}

func hexToRGB8(hexColor string) ([3]int, error) {
	v, err := hexToIntensity(hexColor)
	if err != nil {
		return [3]int{}, err
	}
	return intensityToRGB8(v), nil
}

func intensityToRGB8(v Vec3) [3]int {
	v = v.Clamp(0, 1)
	round := func(x float64) int { return int(math.Round(x * 255)) }
	return [3]int{round(v.X), round(v.Y), round(v.Z)}
}

func rgb8ToIntensity(rgb [3]int) Vec3 {
	return Vec3{
		X: float64(rgb[0]) / 255,
		Y: float64(rgb[1]) / 255,
		Z: float64(rgb[2]) / 255,
	}
}

// BevelNormal calculates the surface normal of a bevel strip from two
// points on its inside edge and the bevel slope. pntA and pntB follow the
// face clockwise in right-handed axes; the slope is the rise of the inside
// edge above the canvas per unit of bevel width.
func BevelNormal(pntA, pntB Point, slope float64) (Vec3, error) {
	ab := pntA.Sub(pntB)
	ac := Point{X: ab.Y, Y: -ab.X}.Normalize()
	if ac == (Point{}) {
		return Vec3{}, fmt.Errorf("bevel normal of zero-length edge at %v: %w", pntA, ErrBadGeometry)
	}
	ab3 := Vec3{X: ab.X, Y: ab.Y, Z: 0}
	ac3 := Vec3{X: ac.X, Y: ac.Y, Z: slope}.Normalize()
	n := ac3.Cross(ab3).Normalize()
	if n.IsZero() {
		return Vec3{}, fmt.Errorf("degenerate bevel normal at %v: %w", pntA, ErrBadGeometry)
	}
	return n, nil
}
