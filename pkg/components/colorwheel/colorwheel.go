// Package colorwheel is a fyne widget around the hue/saturation wheel.
package colorwheel

import (
	"image"
	"log"
	"math"
	"sync"

	"colorwheel/pkg/apptheme"
	"colorwheel/pkg/components/imagebutton"
	"colorwheel/pkg/logger"
	"colorwheel/pkg/wheel"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	preferredSize = 32
	borderSize    = 3
	optionsSize   = 12
)

// Preferences persists the discrete flag between runs.
type Preferences interface {
	DiscreteWheel() bool
	SetDiscreteWheel(discrete bool) error
}

// Config holds the collaborators of a ColorWheel. Every field is optional.
type Config struct {
	Theme   fyne.Theme
	Variant fyne.ThemeVariant
	Prefs   Preferences
	Status  wheel.StatusSink
	Logger  *log.Logger
}

// ColorWheel lets the user pick a hue and saturation with the pointer.
type ColorWheel struct {
	widget.BaseWidget

	// OnColorChanged is called while a button is held over the disk.
	OnColorChanged func(c wheel.HSV, buttons wheel.Buttons)

	picker  *wheel.Picker
	prefs   Preferences
	theme   fyne.Theme
	variant fyne.ThemeVariant
	logger  *log.Logger

	raster  *canvas.Raster
	options *imagebutton.ImageButton

	mu       sync.Mutex
	scale    float32
	buttons  wheel.Buttons
	hovering bool
	hoverAt  image.Point
	hoverBy  image.Point
}

func NewColorWheel(cfg Config) *ColorWheel {
	w := &ColorWheel{
		prefs:   cfg.Prefs,
		theme:   cfg.Theme,
		variant: cfg.Variant,
		logger:  cfg.Logger,
		scale:   1,
	}
	if w.theme == nil {
		w.theme = theme.DefaultTheme()
	}
	if w.logger == nil {
		w.logger = logger.InitLogger("[colorwheel] ")
	}

	discrete := false
	if w.prefs != nil {
		discrete = w.prefs.DiscreteWheel()
	}
	w.picker = wheel.NewPicker(discrete, cfg.Status, w.colorChanged)

	w.raster = canvas.NewRaster(w.draw)
	w.options = imagebutton.NewImageButton(w.theme.Icon(theme.IconNameMoreVertical), optionsSize)
	w.options.SetOnTapped(w.showOptions)

	w.ExtendBaseWidget(w)
	return w
}

func (w *ColorWheel) Discrete() bool {
	return w.picker.Discrete()
}

// SetDiscrete switches quantization, stores the preference and repaints.
func (w *ColorWheel) SetDiscrete(discrete bool) {
	w.picker.SetDiscrete(discrete)
	if w.prefs != nil {
		if err := w.prefs.SetDiscreteWheel(discrete); err != nil {
			w.logger.Println("Failed to save discrete wheel preference:", err)
		}
	}
	w.raster.Refresh()
}

// Geometry is the layout of the disk in raster pixels.
func (w *ColorWheel) Geometry() wheel.Geometry {
	return w.picker.Geometry()
}

// draw generates the raster. Layout is recomputed here because only the
// raster knows the pixel size the canvas renders at.
func (w *ColorWheel) draw(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	scale := float32(1)
	if size := w.Size(); size.Width > 0 && size.Height > 0 {
		scale = float32(width) / size.Width
	}
	w.mu.Lock()
	w.scale = scale
	w.mu.Unlock()

	border := int(math.Round(float64(borderSize * scale)))
	g := w.picker.Resize(img.Bounds().Inset(border))

	wheel.Fill(img, w.theme.Color(theme.ColorNameBackground, w.variant))
	wheel.Render(img, g, w.picker.Discrete(), apptheme.WheelFace(w.theme, w.variant))
	return img
}

// localPoint is the raster pixel under the pointer. Scaling happens before the
// subtraction so fractional origins land on the pixel the raster painted there.
func (w *ColorWheel) localPoint(ev fyne.PointEvent) image.Point {
	w.mu.Lock()
	scale := float64(w.scale)
	w.mu.Unlock()

	origin := ev.AbsolutePosition.Subtract(ev.Position)
	return wheel.Locate(
		float64(ev.AbsolutePosition.X)*scale, float64(ev.AbsolutePosition.Y)*scale,
		float64(origin.X)*scale, float64(origin.Y)*scale,
	)
}

func (w *ColorWheel) colorChanged(c wheel.HSV, buttons wheel.Buttons) {
	if w.OnColorChanged != nil {
		w.OnColorChanged(c, buttons)
	}
}

func toButtons(b desktop.MouseButton) wheel.Buttons {
	var buttons wheel.Buttons
	if b&desktop.MouseButtonPrimary != 0 {
		buttons |= wheel.ButtonPrimary
	}
	if b&desktop.MouseButtonSecondary != 0 {
		buttons |= wheel.ButtonSecondary
	}
	if b&desktop.MouseButtonTertiary != 0 {
		buttons |= wheel.ButtonTertiary
	}
	return buttons
}

// MouseDown starts a capture.
func (w *ColorWheel) MouseDown(ev *desktop.MouseEvent) {
	buttons := toButtons(ev.Button)
	w.mu.Lock()
	w.buttons = buttons
	w.mu.Unlock()
	w.picker.PointerDown(w.localPoint(ev.PointEvent), buttons)
}

// MouseUp ends the capture.
func (w *ColorWheel) MouseUp(_ *desktop.MouseEvent) {
	w.release()
}

// Dragged delivers pointer moves while captured, even outside the widget.
func (w *ColorWheel) Dragged(ev *fyne.DragEvent) {
	w.mu.Lock()
	buttons := w.buttons
	w.mu.Unlock()
	w.picker.PointerMove(w.localPoint(ev.PointEvent), buttons)
}

// DragEnd is the capture release fyne sends after a drag.
func (w *ColorWheel) DragEnd() {
	w.release()
}

func (w *ColorWheel) release() {
	w.mu.Lock()
	w.buttons = 0
	w.mu.Unlock()
	w.picker.PointerUp()
}

func (w *ColorWheel) MouseIn(ev *desktop.MouseEvent) {
	w.hover(ev, true)
}

func (w *ColorWheel) MouseMoved(ev *desktop.MouseEvent) {
	w.hover(ev, false)
}

func (w *ColorWheel) MouseOut() {
	w.mu.Lock()
	w.hovering = false
	w.mu.Unlock()
}

// hover tracks the pointer outside a drag. A hover with no button held means the
// button of a capture went up somewhere this widget never heard about.
func (w *ColorWheel) hover(ev *desktop.MouseEvent, entered bool) {
	if ev.Button == 0 && w.picker.State() == wheel.Capturing {
		w.release()
	}
	pt := w.localPoint(ev.PointEvent)

	w.mu.Lock()
	step := image.Point{}
	if w.hovering && !entered {
		step = pt.Sub(w.hoverAt)
	}
	w.hovering = true
	w.hoverAt = pt
	w.hoverBy = step
	buttons := w.buttons
	w.mu.Unlock()

	w.picker.PointerMove(pt, buttons)
}

// maxCursorLead bounds the extrapolated pointer step, in pixels.
const maxCursorLead = 8

// Cursor shows a picker cursor over the disk only. The driver asks before it
// delivers the move that got it here, so the last hover step is extrapolated.
func (w *ColorWheel) Cursor() desktop.Cursor {
	w.mu.Lock()
	hovering, at, by := w.hovering, w.hoverAt, w.hoverBy
	w.mu.Unlock()

	if !hovering {
		return desktop.DefaultCursor
	}
	if abs(by.X) <= maxCursorLead && abs(by.Y) <= maxCursorLead {
		at = at.Add(by)
	}
	if w.picker.CursorAt(at) {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (w *ColorWheel) optionsMenu() *fyne.Menu {
	discrete := fyne.NewMenuItem("Discrete", func() {
		w.SetDiscrete(!w.Discrete())
	})
	discrete.Checked = w.Discrete()
	return fyne.NewMenu("", discrete)
}

// showOptions pops the options menu up at the top-right corner of the options button.
func (w *ColorWheel) showOptions() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	c := app.Driver().CanvasForObject(w)
	if c == nil {
		return
	}
	pos := app.Driver().AbsolutePositionForObject(w.options)
	pos = pos.Add(fyne.NewPos(w.options.Size().Width, 0))
	w.optionsPopUp(c).ShowAtPosition(pos)
}

// optionsPopUp dims the options button until the menu goes away.
func (w *ColorWheel) optionsPopUp(c fyne.Canvas) *widget.PopUpMenu {
	popUp := widget.NewPopUpMenu(w.optionsMenu(), c)
	dismiss := popUp.OnDismiss
	popUp.OnDismiss = func() {
		if dismiss != nil {
			dismiss()
		}
		w.options.SetSelected(false)
	}
	w.options.SetSelected(true)
	return popUp
}

func (w *ColorWheel) CreateRenderer() fyne.WidgetRenderer {
	return &colorWheelRenderer{
		cw:      w,
		objects: []fyne.CanvasObject{w.raster, w.options},
	}
}

type colorWheelRenderer struct {
	cw      *ColorWheel
	objects []fyne.CanvasObject
}

func (r *colorWheelRenderer) Layout(size fyne.Size) {
	r.cw.raster.Move(fyne.NewPos(0, 0))
	r.cw.raster.Resize(size)

	opt := r.cw.options.MinSize()
	r.cw.options.Resize(opt)
	r.cw.options.Move(fyne.NewPos(size.Width-opt.Width, 0))
}

func (r *colorWheelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(preferredSize, preferredSize)
}

func (r *colorWheelRenderer) Refresh() {
	r.cw.raster.Refresh()
	r.cw.options.Refresh()
}

func (r *colorWheelRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *colorWheelRenderer) Destroy() {}
