package wheel

import (
	"image"
	"image/color"

	"colorwheel/pkg/colorutils"

	"golang.org/x/image/draw"
)

// Render repaints every pixel of g.Bounds in dst. Pixels outside the disk get bg.
func Render(dst draw.Image, g Geometry, discrete bool, bg color.Color) {
	if bg == nil {
		bg = color.Transparent
	}
	face := color.NRGBAModel.Convert(bg).(color.NRGBA)
	rc := g.Bounds.Intersect(dst.Bounds())

	// NRGBA targets skip the color.Color interface per pixel
	nrgba, fast := dst.(*image.NRGBA)

	for y := rc.Min.Y; y < rc.Max.Y; y++ {
		for x := rc.Min.X; x < rc.Max.X; x++ {
			c := face
			if hsv, ok := PickColor(image.Pt(x, y), g, discrete); ok {
				c = colorutils.HSVToNRGBA(float64(hsv.H), float64(hsv.S)/100, float64(hsv.V)/100)
			}
			if fast {
				nrgba.SetNRGBA(x, y, c)
			} else {
				dst.Set(x, y, c)
			}
		}
	}
}

// RenderImage allocates an image covering g.Bounds and renders into it.
func RenderImage(g Geometry, discrete bool, bg color.Color) *image.NRGBA {
	img := image.NewNRGBA(g.Bounds)
	Render(img, g, discrete, bg)
	return img
}

// RenderSquare renders a size×size wheel with no border, as used for exports.
func RenderSquare(size int, discrete bool, bg color.Color) *image.NRGBA {
	g := NewGeometry(image.Rect(0, 0, size, size))
	return RenderImage(g, discrete, bg)
}

// Fill paints bg over all of dst before the wheel is drawn into its client area.
func Fill(dst draw.Image, bg color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}
