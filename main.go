package main

import (
	"database/sql"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"colorwheel/pkg/apptheme"
	"colorwheel/pkg/colorutils"
	"colorwheel/pkg/components/colorwheel"
	"colorwheel/pkg/database"
	"colorwheel/pkg/imageconv"
	"colorwheel/pkg/logger"
	"colorwheel/pkg/options"
	"colorwheel/pkg/palette"
	"colorwheel/pkg/profiling"
	"colorwheel/pkg/statusbar"
	"colorwheel/pkg/utilwindows"
	"colorwheel/pkg/wheel"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const appID = "app.golang.colorwheel"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dbPath := flag.String("db", database.DefaultPath(), "sqlite database holding the options")
	exportPath := flag.String("export", "", "write the wheel image to this path and exit")
	size := flag.Int("size", 0, "edge of the exported wheel in pixels (default from options)")
	discrete := flag.Bool("discrete", false, "quantize the wheel into swatches")
	palettePath := flag.String("palette", "", "write the discrete swatches as .gpl or .pal and exit")
	bundlePath := flag.String("bundle", "", "pack the exported files into a .zip, .tar.gz or .tar.bz2 and exit")
	password := flag.String("password", "", "password of a .zip bundle")
	flag.Parse()

	appLogger := logger.InitLogger("[colorwheel] ")

	db, err := database.Init(*dbPath, appLogger)
	if err != nil {
		return err
	}
	defer db.Close()

	opts, err := loadOptions(db, *dbPath, appLogger)
	if err != nil {
		return err
	}
	store := options.NewStore(db, opts)
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "discrete" {
			store.OverrideDiscreteWheel(*discrete)
		}
	})

	if opts.Profiling {
		profiler, err := profiling.SetupProfiling(opts.ProfilingServer, appLogger)
		if err != nil {
			appLogger.Println(err)
		} else {
			defer profiler.Stop()
		}
	}

	req := exportRequest{
		Image:    *exportPath,
		Format:   opts.ExportFormat,
		Size:     opts.ExportSize,
		Discrete: store.DiscreteWheel(),
		Palette:  *palettePath,
		Bundle:   *bundlePath,
		Password: *password,
	}
	if *size > 0 {
		req.Size = *size
	}
	if !req.empty() {
		return runExports(req, appLogger)
	}

	a := app.NewWithID(appID)
	a.Settings().SetTheme(apptheme.DefaultTheme{})
	w := setupMainWindow(a)
	w.SetContent(buildContent(a, w, store, appLogger))
	w.ShowAndRun()
	return nil
}

// loadOptions reads the stored options, writing the defaults on first boot.
func loadOptions(db *sql.DB, dbPath string, appLogger *log.Logger) (*options.Options, error) {
	exists, err := options.CheckOptionsExists(db)
	if err != nil {
		return nil, err
	}
	if exists {
		return options.LoadOptionsFromDB(db)
	}

	opts := options.Options{DatabasePath: dbPath}.InitDefault()
	if err := options.SaveOptionsToDB(db, opts); err != nil {
		return nil, err
	}
	appLogger.Println("First boot, saved default options to", dbPath)
	return opts, nil
}

func setupMainWindow(a fyne.App) fyne.Window {
	w := a.NewWindow("Color Wheel")
	w.Resize(fyne.NewSize(480, 420))

	a.SetIcon(theme.ColorPaletteIcon())
	w.SetIcon(theme.ColorPaletteIcon())

	return w
}

// buildContent lays out the wheel with a preview of the picked color, the export
// actions and the status bar.
func buildContent(a fyne.App, w fyne.Window, store *options.Store, appLogger *log.Logger) fyne.CanvasObject {
	status := statusbar.NewStatusBar()

	preview := canvas.NewRectangle(color.Transparent)
	preview.SetMinSize(fyne.NewSize(48, 48))
	picked := widget.NewLabel("Hold a mouse button over the wheel")

	cw := colorwheel.NewColorWheel(colorwheel.Config{
		Theme:   a.Settings().Theme(),
		Variant: a.Settings().ThemeVariant(),
		Prefs:   store,
		Status:  status,
		Logger:  appLogger,
	})
	var hex string
	cw.OnColorChanged = func(c wheel.HSV, _ wheel.Buttons) {
		preview.FillColor = c
		preview.Refresh()
		picked.SetText(c.String())
		hex = colorutils.ColorToHex(c)
	}

	copyBtn := widget.NewButtonWithIcon("", theme.ContentCopyIcon(), func() {
		if hex == "" {
			return
		}
		w.Clipboard().SetContent(hex)
		status.ShowText("Copied " + hex)
	})

	exportWheelBtn := widget.NewButtonWithIcon("Export wheel", theme.DocumentSaveIcon(), func() {
		d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if uc == nil {
				return
			}
			defer uc.Close()

			format, err := imageconv.FormatFromPath(uc.URI().Name())
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if err := writeWheel(uc, format, store.Options().ExportSize, cw.Discrete()); err != nil {
				dialog.ShowError(err, w)
				return
			}
			status.ShowText("Saved " + uc.URI().Name())
		}, w)
		d.SetFileName("wheel." + strings.ToLower(store.Options().ExportFormat))
		d.Show()
	})

	exportPaletteBtn := widget.NewButtonWithIcon("Export palette", theme.ColorPaletteIcon(), func() {
		d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if uc == nil {
				return
			}
			defer uc.Close()

			data, err := palette.Encode(uc.URI().Name(), paletteName, wheel.Colors(wheel.Swatches()), paletteColumns)
			if err == nil {
				_, err = uc.Write(data)
			}
			if err != nil {
				dialog.ShowError(fmt.Errorf("saving palette: %w", err), w)
				return
			}
			status.ShowText("Saved " + uc.URI().Name())
		}, w)
		d.SetFileName("wheel.gpl")
		d.Show()
	})

	exportBundleBtn := widget.NewButtonWithIcon("Export bundle", theme.DownloadIcon(), func() {
		dir, err := os.UserHomeDir()
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		utilwindows.ShowChooseArchiveType(w, dir, func(archivePath, password string) error {
			current := store.Options()
			return runExports(exportRequest{
				Format:   current.ExportFormat,
				Size:     current.ExportSize,
				Discrete: cw.Discrete(),
				Bundle:   archivePath,
				Password: password,
			}, appLogger)
		})
	})

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		utilwindows.ShowSettingsWindow(a, store)
	})

	toolbar := container.NewHBox(exportWheelBtn, exportPaletteBtn, exportBundleBtn, layout.NewSpacer(), settingsBtn)
	footer := container.NewVBox(container.NewHBox(preview, picked, layout.NewSpacer(), copyBtn), status)

	return container.NewBorder(toolbar, footer, nil, nil, cw)
}
