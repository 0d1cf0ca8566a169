package ui

import (
	"image"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/theme"
)

// Base carries the bounds and state machine shared by the built-in widgets.
// Embed it and implement HandleEvent and DrawWithTheme on top.
type Base struct {
	bounds image.Rectangle
	sm     StateManager
}

func NewBase(bounds image.Rectangle) Base {
	return Base{bounds: bounds.Canon(), sm: NewStateManager()}
}

func (b *Base) BoundingBox() image.Rectangle { return b.bounds }
func (b *Base) SetBounds(r image.Rectangle)  { b.bounds = r.Canon() }
func (b *Base) State() State                 { return b.sm.Current() }
func (b *Base) SetState(s State) bool        { return b.sm.SetState(s) }
func (b *Base) IsEnabled() bool              { return b.sm.IsEnabled() }
func (b *Base) SetEnabled(enabled bool) bool { return b.sm.SetEnabled(enabled) }
func (b *Base) StateManager() *StateManager  { return &b.sm }
func (b *Base) Contains(p image.Point) bool  { return p.In(b.bounds) }

// Interact runs ev through the state machine, using the bounding box for
// containment, and reports whether the state changed.
func (b *Base) Interact(ev core.Event) bool {
	p, ok := core.PointOf(ev)
	return b.sm.HandleEvent(ev, ok && b.Contains(p))
}

// chrome is the background, text and border colors of a framed widget.
type chrome struct {
	bg, fg, border colors.Color
}

func buttonChrome(s State, t theme.Theme) chrome {
	switch s {
	case Hovered:
		return chrome{t.ButtonHoveredBG(), t.ButtonHoveredText(), t.ButtonHoveredBorder()}
	case Pressed:
		return chrome{t.ButtonPressedBG(), t.ButtonPressedText(), t.ButtonPressedBorder()}
	case Focused:
		return chrome{t.ButtonHoveredBG(), t.ButtonHoveredText(), t.PrimaryColor()}
	case Disabled:
		return chrome{t.ButtonDisabledBG(), t.ButtonDisabledText(), t.ButtonDisabledBorder()}
	default:
		return chrome{t.ButtonNormalBG(), t.ButtonNormalText(), t.ButtonNormalBorder()}
	}
}
