// Package gfx defines the draw surface widgets render into.
package gfx

import (
	"image"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/text"
)

// Surface accepts styled shapes and text. Implementations report backend
// failures (for example drawing outside the panel) as errors; callers pass
// them up unchanged.
type Surface interface {
	Bounds() image.Rectangle
	FillRect(r image.Rectangle, c colors.Color) error
	// StrokeRect draws an inside border of the given width.
	StrokeRect(r image.Rectangle, c colors.Color, width int) error
	// DrawText lays s out inside box according to style.
	DrawText(box image.Rectangle, s string, style TextStyle) error
}

type TextStyle struct {
	Font   *text.Font
	Color  colors.Color
	HAlign text.Align
	VAlign text.Align
}

// Centered is the style used for button captions and readouts.
func Centered(f *text.Font, c colors.Color) TextStyle {
	return TextStyle{Font: f, Color: c, HAlign: text.AlignCenter, VAlign: text.AlignCenter}
}

// Offset translates every draw call by a fixed amount. Widgets draw in
// parent-local coordinates; the tree wraps the target so they land at their
// absolute position.
func Offset(s Surface, d image.Point) Surface {
	if d == (image.Point{}) {
		return s
	}
	if o, ok := s.(offset); ok {
		return offset{target: o.target, d: o.d.Add(d)}
	}
	return offset{target: s, d: d}
}

type offset struct {
	target Surface
	d      image.Point
}

func (o offset) Bounds() image.Rectangle { return o.target.Bounds().Sub(o.d) }

func (o offset) FillRect(r image.Rectangle, c colors.Color) error {
	return o.target.FillRect(r.Add(o.d), c)
}

func (o offset) StrokeRect(r image.Rectangle, c colors.Color, width int) error {
	return o.target.StrokeRect(r.Add(o.d), c, width)
}

func (o offset) DrawText(box image.Rectangle, s string, style TextStyle) error {
	return o.target.DrawText(box.Add(o.d), s, style)
}

// Inset shrinks r by n on every side, never past an empty rectangle.
func Inset(r image.Rectangle, n int) image.Rectangle {
	if n <= 0 {
		return r
	}
	if 2*n >= r.Dx() || 2*n >= r.Dy() {
		c := r.Min.Add(r.Size().Div(2))
		return image.Rectangle{Min: c, Max: c}
	}
	return image.Rect(r.Min.X+n, r.Min.Y+n, r.Max.X-n, r.Max.Y-n)
}
