package utilwindows

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"colorwheel/pkg/imageconv"
	"colorwheel/pkg/options"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const LAYOUT = "02-01-2006"

// ShowSettingsWindow edits the export and profiling options.
func ShowSettingsWindow(a fyne.App, store *options.Store) fyne.Window {
	settingsWindow := a.NewWindow("Settings")

	form := SettingsForm(store, func(err error) {
		if err != nil {
			dialog.ShowError(err, settingsWindow)
			return
		}
		dialog.ShowInformation("Success", "Options saved successfully", settingsWindow)
	})

	opts := store.Options()
	content := container.NewVBox(
		form,
		widget.NewLabel("Database: "+opts.DatabasePath),
		widget.NewLabel("Profiling changes apply after a restart"),
	)

	settingsWindow.SetContent(content)
	settingsWindow.Resize(fyne.NewSize(400, 300))
	settingsWindow.Show()
	return settingsWindow
}

// SettingsForm builds the options form. saved receives the result of every submit.
func SettingsForm(store *options.Store, saved func(err error)) *widget.Form {
	opts := store.Options()

	formatSelect := widget.NewSelect(imageconv.ImageTypes, nil)
	formatSelect.SetSelected(opts.ExportFormat)

	sizeEntry := widget.NewEntry()
	sizeEntry.SetText(strconv.Itoa(opts.ExportSize))
	sizeEntry.Validator = func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return fmt.Errorf("size must be a positive number")
		}
		return nil
	}

	profilingCheck := widget.NewCheck("", nil)
	profilingCheck.SetChecked(opts.Profiling)

	serverEntry := widget.NewEntry()
	serverEntry.SetText(opts.ProfilingServer)

	return &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Export format", Widget: formatSelect},
			{Text: "Export size", Widget: sizeEntry},
			{Text: "Profiling", Widget: profilingCheck},
			{Text: "Pyroscope server", Widget: serverEntry},
		},
		SubmitText: "Save Options",
		OnSubmit: func() {
			size, err := strconv.Atoi(sizeEntry.Text)
			if err != nil || size <= 0 {
				saved(fmt.Errorf("invalid export size %q", sizeEntry.Text))
				return
			}
			saved(store.Update(func(o *options.Options) {
				o.ExportFormat = formatSelect.Selected
				o.ExportSize = size
				o.Profiling = profilingCheck.Checked
				o.ProfilingServer = serverEntry.Text
			}))
		},
	}
}

// BundlePath names a bundle in dir after the given date.
func BundlePath(dir string, date time.Time, ext string) string {
	return filepath.Join(dir, "colorwheel-"+date.Format(LAYOUT)+ext)
}

// ShowChooseArchiveType lets the user pick the bundle type. Only the zip bundle uses
// the password.
func ShowChooseArchiveType(w fyne.Window, dir string, create func(archivePath, password string) error) {
	password := widget.NewPasswordEntry()
	password.SetPlaceHolder("Zip password (optional)")

	bundle := func(ext string, withPassword bool) {
		path := BundlePath(dir, time.Now(), ext)
		pw := ""
		if withPassword {
			pw = password.Text
		}
		if err := create(path, pw); err != nil {
			dialog.ShowError(err, w)
			return
		}
		dialog.ShowInformation("Bundle", "Saved "+path, w)
	}

	content := container.NewVBox(
		widget.NewButton("Gzip Archive", func() { bundle(".tar.gz", false) }),
		widget.NewButton("Bzip2 Archive", func() { bundle(".tar.bz2", false) }),
		widget.NewButton("Zip Archive", func() { bundle(".zip", true) }),
		password,
	)
	dialog.ShowCustom("Choose Archive Type", "Close", content, w)
}
