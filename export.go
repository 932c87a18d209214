package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"colorwheel/pkg/archives"
	"colorwheel/pkg/imageconv"
	"colorwheel/pkg/palette"
	"colorwheel/pkg/wheel"

	"github.com/dustin/go-humanize"
)

const (
	paletteName    = "Color Wheel"
	paletteColumns = 12
)

// exportRequest describes a headless run. Empty paths are skipped.
type exportRequest struct {
	Image    string
	Format   string // image format of a generated bundle, PNG when empty
	Size     int
	Discrete bool
	Palette  string
	Bundle   string
	Password string
}

func (r exportRequest) empty() bool {
	return r.Image == "" && r.Palette == "" && r.Bundle == ""
}

// writeWheel encodes a square wheel into w.
func writeWheel(w io.Writer, format string, size int, discrete bool) error {
	if size <= 0 {
		return fmt.Errorf("invalid wheel size %d", size)
	}
	img := wheel.RenderSquare(size, discrete, nil)
	return imageconv.EncodeImage(w, img, format)
}

func exportWheel(path string, size int, discrete bool) error {
	if size <= 0 {
		return fmt.Errorf("invalid wheel size %d", size)
	}
	return imageconv.SaveImage(path, wheel.RenderSquare(size, discrete, nil))
}

func exportPalette(path string) error {
	return palette.Save(path, paletteName, wheel.Colors(wheel.Swatches()), paletteColumns)
}

// runExports writes every requested file. A bundle packs the image and palette of the
// same run, generating both in a temporary directory when they were not requested.
func runExports(req exportRequest, logger *log.Logger) error {
	if req.empty() {
		return errors.New("nothing to export")
	}

	var files []string
	imagePath, palettePath := req.Image, req.Palette
	if req.Bundle != "" && imagePath == "" && palettePath == "" {
		tmp, err := os.MkdirTemp("", "colorwheel")
		if err != nil {
			return fmt.Errorf("creating temp dir: %w", err)
		}
		defer os.RemoveAll(tmp)
		format := req.Format
		if format == "" {
			format = "PNG"
		}
		imagePath = filepath.Join(tmp, "wheel."+strings.ToLower(format))
		palettePath = filepath.Join(tmp, "wheel.gpl")
	}

	if imagePath != "" {
		if err := exportWheel(imagePath, req.Size, req.Discrete); err != nil {
			return fmt.Errorf("exporting wheel: %w", err)
		}
		logWritten(logger, "wheel", imagePath)
		files = append(files, imagePath)
	}
	if palettePath != "" {
		if err := exportPalette(palettePath); err != nil {
			return fmt.Errorf("exporting palette: %w", err)
		}
		logWritten(logger, "palette", palettePath)
		files = append(files, palettePath)
	}
	if req.Bundle != "" {
		if err := archives.CreateArchive(req.Bundle, files, req.Password); err != nil {
			return fmt.Errorf("bundling: %w", err)
		}
		logWritten(logger, "bundle", req.Bundle)
	}
	return nil
}

func logWritten(logger *log.Logger, what, path string) {
	info, err := os.Stat(path)
	if err != nil {
		logger.Printf("Wrote %s %s", what, path)
		return
	}
	logger.Printf("Wrote %s %s (%s)", what, path, humanize.Bytes(uint64(info.Size())))
}
