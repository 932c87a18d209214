package imagebutton

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ImageButton represents a clickable image widget
type ImageButton struct {
	widget.BaseWidget
	Image        *canvas.Image
	onTapped     func()
	onRightClick func()
	Selected     bool
}

// NewImageButton creates a new image button of the given edge length from the specified resource
func NewImageButton(resource fyne.Resource, size float32) *ImageButton {
	img := &ImageButton{}
	img.ExtendBaseWidget(img)
	img.Image = canvas.NewImageFromResource(resource)
	img.Image.FillMode = canvas.ImageFillContain
	img.Image.SetMinSize(fyne.NewSize(size, size))
	return img
}

// SetOnTapped sets the function to be called when the button is tapped
func (b *ImageButton) SetOnTapped(f func()) {
	b.onTapped = f
}

// SetOnRightClick sets the function to be called when the button is right-clicked
func (b *ImageButton) SetOnRightClick(f func()) {
	b.onRightClick = f
}

// Tapped handles the tap event
func (b *ImageButton) Tapped(_ *fyne.PointEvent) {
	if b.onTapped != nil {
		b.onTapped()
	}
}

// TappedSecondary handles the right-click event
func (b *ImageButton) TappedSecondary(_ *fyne.PointEvent) {
	if b.onRightClick != nil {
		b.onRightClick()
	}
}

// SetSelected dims the image while a menu opened from it is showing
func (b *ImageButton) SetSelected(selected bool) {
	b.Selected = selected
	b.Refresh()
}

// Refresh updates the widget's appearance
func (b *ImageButton) Refresh() {
	if b.Selected {
		b.Image.Translucency = 0.5
	} else {
		b.Image.Translucency = 0
	}
	b.BaseWidget.Refresh()
	canvas.Refresh(b.Image)
}

// CreateRenderer implements the fyne.Widget interface
func (b *ImageButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.Image)
}
