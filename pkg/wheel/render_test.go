package wheel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var face = color.NRGBA{R: 0x37, G: 0x3c, B: 0x40, A: 0xff}

func TestRenderIsInverseOfPick(t *testing.T) {
	for _, discrete := range []bool{false, true} {
		g := NewGeometry(image.Rect(5, 7, 69, 55))
		img := RenderImage(g, discrete, face)
		require.Equal(t, g.Bounds, img.Bounds())

		for y := g.Bounds.Min.Y; y < g.Bounds.Max.Y; y++ {
			for x := g.Bounds.Min.X; x < g.Bounds.Max.X; x++ {
				want := color.Color(face)
				if c, ok := PickColor(image.Pt(x, y), g, discrete); ok {
					want = color.NRGBAModel.Convert(c)
				}
				require.Equal(t, want, img.At(x, y), "pixel %d,%d discrete=%v", x, y, discrete)
			}
		}
	}
}

func TestRenderOnlyTouchesClientBounds(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Fill(dst, color.Black)

	g := NewGeometry(image.Rect(2, 2, 18, 18))
	Render(dst, g, false, face)

	assert.Equal(t, color.RGBA{A: 0xff}, dst.At(1, 1), "Border was overwritten")
	assert.Equal(t, color.RGBA{R: 0x37, G: 0x3c, B: 0x40, A: 0xff}, dst.At(2, 2))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, dst.At(10, 10), "Center is white")
}

func TestRenderSquare(t *testing.T) {
	img := RenderSquare(32, true, color.Transparent)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	assert.Equal(t, color.NRGBA{}, img.At(0, 0), "Corners stay transparent")
	assert.Equal(t, uint8(0xff), img.NRGBAAt(16, 16).A)
}

func TestRenderZeroRadius(t *testing.T) {
	img := RenderImage(NewGeometry(image.Rect(0, 0, 1, 9)), false, face)
	for y := 0; y < 9; y++ {
		assert.Equal(t, face, img.NRGBAAt(0, y))
	}
}
