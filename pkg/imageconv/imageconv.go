package imageconv

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	chaiWebp "github.com/chai2010/webp"
	"github.com/gen2brain/avif"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ImageTypes []string = []string{
	"PNG",
	"JPG",
	"WEBP",
	"GIF",
	"BMP",
	"TIFF",
	"AVIF",
	"QOI",
}

// FormatFromPath maps a file extension to one of ImageTypes.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "JPEG":
		return "JPG", nil
	case "TIF":
		return "TIFF", nil
	}
	for _, t := range ImageTypes {
		if t == ext {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
}

// EncodeImage writes img to w in the given format.
func EncodeImage(w io.Writer, img image.Image, format string) error {
	var err error
	switch strings.ToUpper(format) {
	case "PNG":
		err = png.Encode(w, img)
	case "JPG", "JPEG":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 85})
	case "WEBP":
		err = chaiWebp.Encode(w, img, &chaiWebp.Options{Lossless: true})
	case "GIF":
		err = gif.Encode(w, img, &gif.Options{NumColors: 256})
	case "BMP":
		err = bmp.Encode(w, img)
	case "TIFF", "TIF":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "AVIF":
		err = avif.Encode(w, img, avif.Options{Quality: 85})
	case "QOI":
		err = qoi.Encode(w, img)
	default:
		return fmt.Errorf("selected format %q not an image type", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}

// SaveImage encodes img into path, picking the format from the extension.
func SaveImage(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	res, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer res.Close()

	if err := EncodeImage(res, img, format); err != nil {
		return err
	}
	if err := res.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
