package ui

import (
	"image"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/theme"
)

// Trigger selects when a Button emits its message.
type Trigger int

const (
	// OnPress emits on the transition into Pressed.
	OnPress Trigger = iota
	// OnRelease emits when a press ends inside the button.
	OnRelease
)

// framePad is the gap between a framed widget's bounds and its outline.
const framePad = 2

type Button[M any] struct {
	Base
	label   string
	trigger Trigger
	msg     M
	hasMsg  bool
}

func NewButton[M any](label string, bounds image.Rectangle) *Button[M] {
	return &Button[M]{Base: NewBase(bounds), label: label}
}

// OnPress sets the message emitted when the button fires.
func (b *Button[M]) OnPress(msg M) *Button[M] {
	b.msg = msg
	b.hasMsg = true
	return b
}

func (b *Button[M]) Trigger(t Trigger) *Button[M] {
	b.trigger = t
	return b
}

func (b *Button[M]) Label() string         { return b.label }
func (b *Button[M]) SetLabel(label string) { b.label = label }

func (b *Button[M]) HandleEvent(ev core.Event) Response[M] {
	if !b.Interact(ev) {
		return NotChanged[M]()
	}
	if msg, ok := b.message(); ok {
		return ChangedWith(msg)
	}
	return Changed[M]()
}

func (b *Button[M]) message() (M, bool) {
	var zero M
	if !b.hasMsg {
		return zero, false
	}
	sm := b.StateManager()
	switch b.trigger {
	case OnRelease:
		if sm.Previous() == Pressed && sm.Current() == Hovered {
			return b.msg, true
		}
	default:
		if sm.Current() == Pressed {
			return b.msg, true
		}
	}
	return zero, false
}

func (b *Button[M]) DrawWithTheme(s gfx.Surface, t theme.Theme) error {
	c := buttonChrome(b.State(), t)
	if err := drawFrame(s, b.BoundingBox(), c, t.ButtonBorderWidth()); err != nil {
		return err
	}
	box := b.BoundingBox()
	if b.State() == Pressed {
		box = box.Add(t.ButtonPressedOffset())
	}
	return s.DrawText(box, b.label, gfx.Centered(t.NormalFont(), c.fg))
}

func drawFrame(s gfx.Surface, bounds image.Rectangle, c chrome, border int) error {
	outline := gfx.Inset(bounds, framePad)
	if outline.Empty() {
		return nil
	}
	if !c.bg.IsTransparent() {
		if err := s.FillRect(outline, c.bg); err != nil {
			return err
		}
	}
	if border > 0 && !c.border.IsTransparent() {
		return s.StrokeRect(outline, c.border, border)
	}
	return nil
}
