package wheel

import (
	"image"
	"math"
	"sync"
)

// State of the pointer interaction.
type State int

const (
	Idle State = iota
	Capturing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	default:
		return "unknown"
	}
}

// Buttons is a bit set of pressed pointer buttons.
type Buttons int

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

// StatusSink receives a description of the color under the pointer.
type StatusSink interface {
	ShowColor(c HSV)
}

// Locate converts an absolute pointer position to the pixel under it in a widget at
// origin. Both are in pixels and may be fractional.
func Locate(absX, absY, originX, originY float64) image.Point {
	return image.Pt(int(math.Floor(absX-originX)), int(math.Floor(absY-originY)))
}

// Picker holds the wheel layout and discrete flag of one widget and drives
// the Idle/Capturing pointer state machine over PickColor.
type Picker struct {
	mu       sync.Mutex
	geometry Geometry
	discrete bool
	state    State

	status   StatusSink
	onChange func(HSV, Buttons)
}

// NewPicker creates an idle picker. status and onChange may be nil.
func NewPicker(discrete bool, status StatusSink, onChange func(HSV, Buttons)) *Picker {
	return &Picker{
		discrete: discrete,
		status:   status,
		onChange: onChange,
	}
}

// Resize replaces the geometry from the widget's client area.
func (p *Picker) Resize(client image.Rectangle) Geometry {
	g := NewGeometry(client)
	p.mu.Lock()
	p.geometry = g
	p.mu.Unlock()
	return g
}

func (p *Picker) Geometry() Geometry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.geometry
}

func (p *Picker) Discrete() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.discrete
}

func (p *Picker) SetDiscrete(discrete bool) {
	p.mu.Lock()
	p.discrete = discrete
	p.mu.Unlock()
}

func (p *Picker) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetOnChange replaces the color change callback.
func (p *Picker) SetOnChange(f func(HSV, Buttons)) {
	p.mu.Lock()
	p.onChange = f
	p.mu.Unlock()
}

// Pick resolves a local point against the current geometry and mode.
func (p *Picker) Pick(pt image.Point) (HSV, bool) {
	p.mu.Lock()
	g, discrete := p.geometry, p.discrete
	p.mu.Unlock()
	return PickColor(pt, g, discrete)
}

// PointerDown starts capturing and reports the color under pt.
func (p *Picker) PointerDown(pt image.Point, buttons Buttons) {
	p.mu.Lock()
	p.state = Capturing
	p.mu.Unlock()
	p.track(pt, buttons)
}

// PointerMove reports the color under pt. A color change is only emitted while capturing.
func (p *Picker) PointerMove(pt image.Point, buttons Buttons) {
	p.track(pt, buttons)
}

// PointerUp ends the capture. It reports whether a capture was active.
func (p *Picker) PointerUp() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	was := p.state == Capturing
	p.state = Idle
	return was
}

// CaptureLost drops the capture without a pointer-up.
func (p *Picker) CaptureLost() {
	p.PointerUp()
}

// CursorAt reports whether the picker cursor should be shown at pt.
func (p *Picker) CursorAt(pt image.Point) bool {
	_, ok := p.Pick(pt)
	return ok
}

func (p *Picker) track(pt image.Point, buttons Buttons) {
	p.mu.Lock()
	g, discrete, capturing := p.geometry, p.discrete, p.state == Capturing
	status, onChange := p.status, p.onChange
	p.mu.Unlock()

	c, ok := PickColor(pt, g, discrete)
	if !ok {
		return
	}
	if status != nil {
		status.ShowColor(c)
	}
	if capturing && onChange != nil {
		onChange(c, buttons)
	}
}
