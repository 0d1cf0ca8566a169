package ui

import (
	"image"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/text"
	"github.com/hubastard/sprig/engine/theme"
)

// Label is static text. Its state only affects the text color.
type Label[M any] struct {
	Base
	text   string
	halign text.Align
	valign text.Align
	large  bool
}

func NewLabel[M any](s string, bounds image.Rectangle) *Label[M] {
	return &Label[M]{Base: NewBase(bounds), text: s, valign: text.AlignCenter}
}

func (l *Label[M]) Text() string     { return l.text }
func (l *Label[M]) SetText(s string) { l.text = s }

// Align sets the horizontal and vertical placement inside the bounds.
func (l *Label[M]) Align(h, v text.Align) *Label[M] {
	l.halign, l.valign = h, v
	return l
}

// Large switches to the theme's large font.
func (l *Label[M]) Large() *Label[M] {
	l.large = true
	return l
}

func (l *Label[M]) HandleEvent(ev core.Event) Response[M] {
	if l.Interact(ev) {
		return Changed[M]()
	}
	return NotChanged[M]()
}

func (l *Label[M]) DrawWithTheme(s gfx.Surface, t theme.Theme) error {
	if bg, ok := t.LabelBackgroundColor(); ok {
		if err := s.FillRect(l.BoundingBox(), bg); err != nil {
			return err
		}
	}
	fg := t.LabelTextColor()
	if !l.IsEnabled() {
		fg = t.LabelDisabledTextColor()
	}
	f := t.NormalFont()
	if l.large {
		f = t.LargeFont()
	}
	return s.DrawText(l.BoundingBox(), l.text, gfx.TextStyle{Font: f, Color: fg, HAlign: l.halign, VAlign: l.valign})
}
