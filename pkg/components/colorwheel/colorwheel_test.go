package colorwheel

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log"
	"testing"

	"colorwheel/pkg/apptheme"
	"colorwheel/pkg/wheel"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPrefs struct {
	discrete bool
	writes   int
	err      error
}

func (p *memPrefs) DiscreteWheel() bool { return p.discrete }

func (p *memPrefs) SetDiscreteWheel(discrete bool) error {
	p.writes++
	if p.err != nil {
		return p.err
	}
	p.discrete = discrete
	return nil
}

type statusRecorder struct {
	shown []wheel.HSV
}

func (s *statusRecorder) ShowColor(c wheel.HSV) { s.shown = append(s.shown, c) }

func pointerAt(x, y float32) fyne.PointEvent {
	return fyne.PointEvent{Position: fyne.NewPos(x, y), AbsolutePosition: fyne.NewPos(x+100, y+50)}
}

// newTestWheel lays a 40x40 wheel out at scale 1: client (3,3)-(37,37), center (20,20), radius 17.
func newTestWheel(t *testing.T, cfg Config) *ColorWheel {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	if cfg.Theme == nil {
		cfg.Theme = apptheme.DefaultTheme{}
	}
	w := NewColorWheel(cfg)
	w.Resize(fyne.NewSize(40, 40))
	w.draw(40, 40)
	return w
}

func TestDiscreteReadFromPreferences(t *testing.T) {
	w := newTestWheel(t, Config{Prefs: &memPrefs{discrete: true}})
	assert.True(t, w.Discrete(), "Discrete flag not read at construction")

	w = newTestWheel(t, Config{})
	assert.False(t, w.Discrete(), "Default should be continuous")
}

func TestSetDiscreteWritesPreference(t *testing.T) {
	prefs := &memPrefs{}
	w := newTestWheel(t, Config{Prefs: prefs})

	w.SetDiscrete(true)
	assert.True(t, w.Discrete())
	assert.True(t, prefs.discrete)
	assert.Equal(t, 1, prefs.writes)
}

func TestSetDiscreteLogsPreferenceFailure(t *testing.T) {
	var buf bytes.Buffer
	prefs := &memPrefs{err: errors.New("disk full")}
	w := newTestWheel(t, Config{Prefs: prefs, Logger: log.New(&buf, "", 0)})

	w.SetDiscrete(true)
	assert.True(t, w.Discrete(), "Flag should change even if saving fails")
	assert.Contains(t, buf.String(), "disk full")
}

func TestGeometryFromRaster(t *testing.T) {
	w := newTestWheel(t, Config{})
	g := w.Geometry()

	assert.Equal(t, image.Rect(3, 3, 37, 37), g.Bounds)
	assert.Equal(t, image.Pt(20, 20), g.Center)
	assert.Equal(t, 17, g.Radius)
}

func TestDrawMatchesPicking(t *testing.T) {
	th := apptheme.DefaultTheme{}
	w := newTestWheel(t, Config{Theme: th})
	img := w.draw(40, 40).(*image.NRGBA)

	assert.Equal(t, th.Color(theme.ColorNameBackground, theme.VariantDark), img.At(0, 0), "Border should use the background")
	assert.Equal(t, apptheme.WheelFace(th, theme.VariantDark), img.At(4, 4), "Corner of the client area is outside the disk")
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.At(20, 20), "Center should be white")

	g := w.Geometry()
	for y := g.Bounds.Min.Y; y < g.Bounds.Max.Y; y++ {
		for x := g.Bounds.Min.X; x < g.Bounds.Max.X; x++ {
			if c, ok := wheel.PickColor(image.Pt(x, y), g, false); ok {
				require.Equal(t, color.NRGBAModel.Convert(c), img.At(x, y), "pixel %d,%d", x, y)
			}
		}
	}
}

func TestPointerCaptureEmitsColor(t *testing.T) {
	status := &statusRecorder{}
	w := newTestWheel(t, Config{Status: status})

	var got []wheel.HSV
	var gotButtons wheel.Buttons
	w.OnColorChanged = func(c wheel.HSV, b wheel.Buttons) {
		got = append(got, c)
		gotButtons = b
	}

	// hovering reports status only
	w.MouseMoved(&desktop.MouseEvent{PointEvent: pointerAt(20, 10)})
	assert.Empty(t, got, "Color change without capture")
	require.Len(t, status.shown, 1)

	w.MouseDown(&desktop.MouseEvent{PointEvent: pointerAt(20, 10), Button: desktop.MouseButtonPrimary})
	require.Len(t, got, 1)
	// u=0, v=-10: hue 90+390 = 480 -> 120, sat round(120*10/17) = 71
	assert.Equal(t, wheel.HSV{H: 120, S: 71, V: 100}, got[0])
	assert.Equal(t, wheel.ButtonPrimary, gotButtons)

	w.Dragged(&fyne.DragEvent{PointEvent: pointerAt(30, 20)})
	require.Len(t, got, 2)
	assert.Equal(t, 30, got[1].H, "3 o'clock should be hue 30")

	// outside the disk nothing is emitted
	w.Dragged(&fyne.DragEvent{PointEvent: pointerAt(39, 39)})
	assert.Len(t, got, 2)

	w.MouseUp(&desktop.MouseEvent{PointEvent: pointerAt(30, 20)})
	w.MouseMoved(&desktop.MouseEvent{PointEvent: pointerAt(25, 20)})
	assert.Len(t, got, 2, "Color change after release")
	assert.Len(t, status.shown, 4)
}

func TestCursorOnlyOverDisk(t *testing.T) {
	w := newTestWheel(t, Config{})
	assert.Equal(t, desktop.DefaultCursor, w.Cursor())

	w.MouseIn(&desktop.MouseEvent{PointEvent: pointerAt(20, 20)})
	assert.Equal(t, desktop.CrosshairCursor, w.Cursor())

	w.MouseMoved(&desktop.MouseEvent{PointEvent: pointerAt(1, 1)})
	assert.Equal(t, desktop.DefaultCursor, w.Cursor())

	w.MouseMoved(&desktop.MouseEvent{PointEvent: pointerAt(20, 20)})
	w.MouseOut()
	assert.Equal(t, desktop.DefaultCursor, w.Cursor())
}

func TestOptionsMenuTogglesDiscrete(t *testing.T) {
	prefs := &memPrefs{}
	w := newTestWheel(t, Config{Prefs: prefs})

	menu := w.optionsMenu()
	require.Len(t, menu.Items, 1)
	item := menu.Items[0]
	assert.Equal(t, "Discrete", item.Label)
	assert.False(t, item.Checked)

	item.Action()
	assert.True(t, w.Discrete())
	assert.True(t, prefs.discrete)
	assert.True(t, w.optionsMenu().Items[0].Checked)
}

func TestRendererLayout(t *testing.T) {
	w := newTestWheel(t, Config{})
	r := test.WidgetRenderer(w)

	assert.Equal(t, fyne.NewSize(preferredSize, preferredSize), r.MinSize())
	require.Len(t, r.Objects(), 2)

	r.Layout(fyne.NewSize(100, 80))
	assert.Equal(t, fyne.NewSize(100, 80), w.raster.Size())
	assert.Equal(t, fyne.NewPos(100-optionsSize, 0), w.options.Position(), "Options button belongs in the top-right corner")
}

func TestToButtons(t *testing.T) {
	assert.Equal(t, wheel.ButtonPrimary|wheel.ButtonTertiary,
		toButtons(desktop.MouseButtonPrimary|desktop.MouseButtonTertiary))
	assert.Equal(t, wheel.Buttons(0), toButtons(0))
}

func TestReleaseOutsideEndsCapture(t *testing.T) {
	w := newTestWheel(t, Config{})
	changes := 0
	w.OnColorChanged = func(wheel.HSV, wheel.Buttons) { changes++ }

	// no drag starts for the secondary button, so its release outside is never reported
	w.MouseDown(&desktop.MouseEvent{PointEvent: pointerAt(20, 10), Button: desktop.MouseButtonSecondary})
	require.Equal(t, 1, changes)
	w.MouseMoved(&desktop.MouseEvent{PointEvent: pointerAt(20, 12), Button: desktop.MouseButtonSecondary})
	require.Equal(t, 2, changes, "Held button keeps the capture")
	w.MouseOut()

	w.MouseIn(&desktop.MouseEvent{PointEvent: pointerAt(20, 15)})
	w.MouseMoved(&desktop.MouseEvent{PointEvent: pointerAt(22, 15)})
	assert.Equal(t, wheel.Idle, w.picker.State())
	assert.Equal(t, 2, changes, "Color change with no button held")
}

func TestLocalPointFractionalOrigin(t *testing.T) {
	w := newTestWheel(t, Config{})
	ev := fyne.PointEvent{Position: fyne.NewPos(19.7, 10), AbsolutePosition: fyne.NewPos(120.2, 60)}
	assert.Equal(t, image.Pt(19, 10), w.localPoint(ev))

	w.mu.Lock()
	w.scale = 2
	w.mu.Unlock()
	ev = fyne.PointEvent{Position: fyne.NewPos(10.25, 5), AbsolutePosition: fyne.NewPos(110.5, 55)}
	assert.Equal(t, image.Pt(20, 10), w.localPoint(ev))
}

func TestCursorLeadsPointer(t *testing.T) {
	w := newTestWheel(t, Config{})

	// radius 17 around (20,20): x=36 is inside, x=37 is not
	w.MouseIn(&desktop.MouseEvent{PointEvent: pointerAt(34, 20)})
	assert.Equal(t, desktop.CrosshairCursor, w.Cursor())
	w.MouseMoved(&desktop.MouseEvent{PointEvent: pointerAt(35, 20)})
	assert.Equal(t, desktop.CrosshairCursor, w.Cursor(), "Next step at 36 is still on the disk")
	w.MouseMoved(&desktop.MouseEvent{PointEvent: pointerAt(36, 20)})
	assert.Equal(t, desktop.DefaultCursor, w.Cursor(), "Next step at 37 leaves the disk")
}

func TestOptionsPopUpDimsButton(t *testing.T) {
	w := newTestWheel(t, Config{})
	win := test.NewWindow(w)
	defer win.Close()

	popUp := w.optionsPopUp(win.Canvas())
	assert.True(t, w.options.Selected, "Options button should dim while the menu shows")

	popUp.OnDismiss()
	assert.False(t, w.options.Selected)
}
