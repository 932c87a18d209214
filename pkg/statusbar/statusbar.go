package statusbar

import (
	"image/color"
	"sync"

	"colorwheel/pkg/wheel"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows a swatch and a description of the color under the pointer.
type StatusBar struct {
	widget.BaseWidget

	mu     sync.Mutex
	text   string
	swatch *canvas.Rectangle
	label  *widget.Label
}

func NewStatusBar() *StatusBar {
	bar := &StatusBar{}
	bar.ExtendBaseWidget(bar)
	bar.swatch = canvas.NewRectangle(color.Transparent)
	bar.swatch.CornerRadius = 3
	bar.swatch.SetMinSize(fyne.NewSize(16, 16))
	bar.label = widget.NewLabel("")
	return bar
}

// ShowColor implements wheel.StatusSink.
func (b *StatusBar) ShowColor(c wheel.HSV) {
	b.mu.Lock()
	b.text = c.String()
	b.mu.Unlock()

	b.swatch.FillColor = c
	b.label.SetText(c.String())
	b.swatch.Refresh()
}

// ShowText replaces the status with a plain message.
func (b *StatusBar) ShowText(text string) {
	b.mu.Lock()
	b.text = text
	b.mu.Unlock()

	b.swatch.FillColor = color.Transparent
	b.label.SetText(text)
	b.swatch.Refresh()
}

func (b *StatusBar) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(container.NewCenter(b.swatch), b.label))
}
