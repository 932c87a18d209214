package main

import (
	"bytes"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"colorwheel/pkg/database"
	"colorwheel/pkg/options"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/alexmullins/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = log.New(io.Discard, "", 0)

func TestMainWindow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w := setupMainWindow(a)
	defer w.Close()
	assert.NotNil(t, w, "Main window was not created")
	assert.Equal(t, "Color Wheel", w.Title(), "Incorrect window title")
	assert.NotNil(t, w.Icon(), "Window icon is nil so not set")

	db, err := database.Init(filepath.Join(t.TempDir(), "main.db"), quiet)
	require.NoError(t, err)
	defer db.Close()

	w.SetContent(buildContent(a, w, options.NewStore(db, options.Options{}.InitDefault()), quiet))
	assert.NotNil(t, w.Content(), "Window content is not set")

	expectedSize := fyne.NewSize(480, 420)
	assert.Equal(t, expectedSize, w.Canvas().Size(), "Incorrect window size")
}

func TestWriteWheel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeWheel(&buf, "PNG", 64, false))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	assert.Error(t, writeWheel(&buf, "PNG", 0, false))
	assert.Error(t, writeWheel(&buf, "XCF", 64, false))
}

func TestRunExports(t *testing.T) {
	dir := t.TempDir()
	req := exportRequest{
		Image:    filepath.Join(dir, "wheel.png"),
		Size:     48,
		Discrete: true,
		Palette:  filepath.Join(dir, "wheel.gpl"),
		Bundle:   filepath.Join(dir, "wheel.zip"),
	}
	require.NoError(t, runExports(req, quiet))

	for _, p := range []string{req.Image, req.Palette, req.Bundle} {
		assert.FileExists(t, p)
	}
	data, err := os.ReadFile(req.Palette)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "GIMP Palette"))
}

func TestRunExportsBundleOnly(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "wheel.tar.gz")
	require.NoError(t, runExports(exportRequest{Bundle: bundle, Size: 32}, quiet))
	assert.FileExists(t, bundle)
}

func TestRunExportsErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, runExports(exportRequest{}, quiet), "Empty request should fail")
	assert.Error(t, runExports(exportRequest{Image: filepath.Join(dir, "wheel.png")}, quiet), "Zero size should fail")
	assert.Error(t, runExports(exportRequest{
		Palette:  filepath.Join(dir, "wheel.gpl"),
		Bundle:   filepath.Join(dir, "wheel.tar.gz"),
		Password: "secret",
	}, quiet), "Only zip bundles take a password")
}

func TestLoadOptionsFirstBoot(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "first.db")
	db, err := database.Init(dbPath, quiet)
	require.NoError(t, err)
	defer db.Close()

	opts, err := loadOptions(db, dbPath, quiet)
	require.NoError(t, err)
	assert.Equal(t, dbPath, opts.DatabasePath)

	again, err := loadOptions(db, dbPath, quiet)
	require.NoError(t, err)
	assert.False(t, again.FirstBoot, "Second start is not a first boot")
	assert.Equal(t, dbPath, again.DatabasePath)
}

func TestRunExportsBundleUsesExportFormat(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "wheel.zip")
	require.NoError(t, runExports(exportRequest{Bundle: bundle, Format: "QOI", Size: 32}, quiet))

	r, err := zip.OpenReader(bundle)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"wheel.qoi", "wheel.gpl"}, names)
}
