package apptheme

import (
	"image/color"

	"colorwheel/pkg/colorutils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameWheelFace fills the color wheel outside of its disk.
const ColorNameWheelFace fyne.ThemeColorName = "wheelFace"

const wheelFaceHex = "#373c40"

// make a new theme called defaultTheme
type DefaultTheme struct{}

// the new defaultTheme colors
func (DefaultTheme) Color(c fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	switch c {
	case ColorNameWheelFace:
		face, err := colorutils.HexToColor(wheelFaceHex)
		if err != nil {
			return theme.DefaultTheme().Color(theme.ColorNameBackground, v)
		}
		return face
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x04, G: 0x10, B: 0x11, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x9e, G: 0xbd, B: 0xff, A: 0xff}
	case theme.ColorNameDisabledButton:
		return color.NRGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff}
	case theme.ColorNameDisabled:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x42}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xf4, G: 0x43, B: 0x36, A: 0xff}
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0xa7, G: 0x2c, B: 0xd4, A: 0x7f}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xe6, G: 0xf7, B: 0xfa, A: 0xff}
	case theme.ColorNameHover:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x19}
	case theme.ColorNamePressed:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x95, G: 0xdd, B: 0xe9, A: 0xff}
	case theme.ColorNameShadow:
		return color.NRGBA{R: 0x0, G: 0x0, B: 0x0, A: 0x66}
	default:
		return theme.DefaultTheme().Color(c, v)
	}
}

func (DefaultTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (DefaultTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

// the new defaultTheme sizes
func (DefaultTheme) Size(s fyne.ThemeSizeName) float32 {
	switch s {
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInlineIcon:
		return 20
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameText:
		return 14
	default:
		return theme.DefaultTheme().Size(s)
	}
}

// WheelFace is the wheel background of t. Themes without a wheel face use their background.
func WheelFace(t fyne.Theme, v fyne.ThemeVariant) color.Color {
	face := t.Color(ColorNameWheelFace, v)
	if face == nil {
		return t.Color(theme.ColorNameBackground, v)
	}
	if _, _, _, a := face.RGBA(); a == 0 {
		return t.Color(theme.ColorNameBackground, v)
	}
	return face
}
