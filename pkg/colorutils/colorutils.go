package colorutils

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// HSVToNRGBA converts h in degrees and s, v in [0,1] to an opaque color.
func HSVToNRGBA(h, s, v float64) color.NRGBA {
	h = math.Mod(h, 360) // Ensure hue is between 0 and 359
	if h < 0 {
		h += 360
	}
	s = math.Max(0, math.Min(1, s))
	v = math.Max(0, math.Min(1, v))

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.NRGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}
}

// Helper function to convert a HSV color to Hex color string
func HSVToHex(h, s, v float64) string {
	return ColorToHex(HSVToNRGBA(h, s, v))
}

// ColorToHex formats the opaque part of c as #RRGGBB.
func ColorToHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// Describe is the status bar text for a color.
func Describe(h, s, v float64) string {
	return fmt.Sprintf("H:%d S:%d V:%d %s",
		int(math.Round(h)), int(math.Round(s*100)), int(math.Round(v*100)), HSVToHex(h, s, v))
}

// Helper function to convert hex color to color.Color
func HexToColor(hex string) (color.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", hex)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.NRGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8 & 0xFF),
		B: uint8(rgb & 0xFF),
		A: 255,
	}, nil
}
