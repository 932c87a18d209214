// Package palette writes swatch sets in the palette formats paint programs import.
package palette

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
)

// ExportGPL formats colors as a GIMP palette.
func ExportGPL(name string, colors []color.Color, columns int) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "GIMP Palette\nName: %s\nColumns: %d\n#", name, columns)
	for i, c := range colors {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		fmt.Fprintf(&b, "\n%3d %3d %3d\tIndex%d", n.R, n.G, n.B, i)
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// ExportPAL formats colors as a JASC-PAL palette.
func ExportPAL(colors []color.Color) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "JASC-PAL\r\n0100\r\n%d\r\n", len(colors))
	for _, c := range colors {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		fmt.Fprintf(&b, "%d %d %d\r\n", n.R, n.G, n.B)
	}
	return []byte(b.String())
}

// Encode formats colors in the palette format named by the extension of path (.gpl or .pal).
func Encode(path, name string, colors []color.Color, columns int) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gpl":
		return ExportGPL(name, colors, columns), nil
	case ".pal":
		return ExportPAL(colors), nil
	}
	return nil, fmt.Errorf("unsupported palette extension %q", filepath.Ext(path))
}

func Save(path, name string, colors []color.Color, columns int) error {
	data, err := Encode(path, name, colors, columns)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing palette %s: %w", path, err)
	}
	return nil
}
