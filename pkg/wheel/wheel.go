// Package wheel maps points of a circular hue/saturation disk to HSV colors
// and renders the disk back from the same mapping.
package wheel

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"colorwheel/pkg/colorutils"
)

const (
	// hueOffset puts green at 12 o'clock instead of red at 3 o'clock.
	hueOffset = 180 + 180 + 30
	// satScale pushes the fully saturated band outward; values above 100 are clamped.
	satScale = 120.0

	HueStep        = 30
	SaturationStep = 20
	Value          = 100
)

// HSV is a color picked from the wheel. H is in degrees, S and V in percent.
type HSV struct {
	H, S, V int
}

// RGBA implements color.Color.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return colorutils.HSVToNRGBA(float64(c.H), float64(c.S)/100, float64(c.V)/100).RGBA()
}

func (c HSV) String() string {
	return colorutils.Describe(float64(c.H), float64(c.S)/100, float64(c.V)/100)
}

// Geometry is the disk laid out inside a client rectangle.
type Geometry struct {
	Center image.Point
	Radius int
	Bounds image.Rectangle
}

// NewGeometry centers the largest disk that fits in client.
func NewGeometry(client image.Rectangle) Geometry {
	client = client.Canon()
	w, h := client.Dx(), client.Dy()
	return Geometry{
		Center: image.Pt(client.Min.X+w/2, client.Min.Y+h/2),
		Radius: min(w/2, h/2),
		Bounds: client,
	}
}

// WheelBounds is the square circumscribing the disk.
func (g Geometry) WheelBounds() image.Rectangle {
	return image.Rect(g.Center.X-g.Radius, g.Center.Y-g.Radius, g.Center.X+g.Radius, g.Center.Y+g.Radius)
}

func (g Geometry) String() string {
	return fmt.Sprintf("center %v radius %d bounds %v", g.Center, g.Radius, g.Bounds)
}

// PickColor returns the color under p. ok is false when p lies on or outside
// the circle, which is the mask color of the wheel.
func PickColor(p image.Point, g Geometry, discrete bool) (c HSV, ok bool) {
	if g.Radius <= 0 {
		return HSV{}, false
	}

	u := p.X - g.Center.X
	v := p.Y - g.Center.Y
	d := math.Sqrt(float64(u*u + v*v))
	if d >= float64(g.Radius) {
		return HSV{}, false
	}

	// screen y grows downward, so v is negated to keep hue counter-clockwise
	a := math.Atan2(float64(-v), float64(u))

	hue := int(math.Round(180*a/math.Pi)) + hueOffset
	if discrete {
		hue = QuantizeHue(hue)
	}
	hue %= 360

	sat := int(math.Round(satScale * d / float64(g.Radius)))
	if discrete {
		sat = QuantizeSaturation(sat)
	}

	return HSV{
		H: clamp(hue, 0, 360),
		S: clamp(sat, 0, 100),
		V: Value,
	}, true
}

// QuantizeHue rounds a non-negative hue to the nearest multiple of HueStep.
func QuantizeHue(hue int) int {
	return (hue + HueStep/2) / HueStep * HueStep
}

// QuantizeSaturation truncates sat down to a multiple of SaturationStep.
func QuantizeSaturation(sat int) int {
	return sat / SaturationStep * SaturationStep
}

// Swatches lists every distinct color the discrete wheel can produce, grays first.
func Swatches() []HSV {
	swatches := []HSV{{H: 0, S: 0, V: Value}}
	for sat := SaturationStep; sat <= 100; sat += SaturationStep {
		for hue := 0; hue < 360; hue += HueStep {
			swatches = append(swatches, HSV{H: hue, S: sat, V: Value})
		}
	}
	return swatches
}

// Colors converts swatches for consumers that only know color.Color.
func Colors(swatches []HSV) []color.Color {
	colors := make([]color.Color, len(swatches))
	for i, s := range swatches {
		colors[i] = s
	}
	return colors
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
