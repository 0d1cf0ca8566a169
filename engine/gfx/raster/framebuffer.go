// Package raster draws onto an in-memory RGBA framebuffer, the way a small
// SPI/parallel display driver would before pushing pixels to the panel.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/text"
)

// ErrOutOfBounds is returned by a strict framebuffer for draws that leave the panel.
var ErrOutOfBounds = errors.New("raster: draw outside framebuffer")

// Framebuffer implements gfx.Surface over an *image.RGBA.
type Framebuffer struct {
	Img *image.RGBA
	// Strict rejects draws that are not fully inside Img.Bounds() instead of
	// clipping them.
	Strict bool
}

func New(img *image.RGBA) *Framebuffer { return &Framebuffer{Img: img} }

// NewSize allocates a w x h framebuffer.
func NewSize(w, h int) *Framebuffer {
	return New(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func (fb *Framebuffer) Bounds() image.Rectangle { return fb.Img.Bounds() }

func (fb *Framebuffer) check(r image.Rectangle) error {
	if fb.Strict && !r.Empty() && !r.In(fb.Img.Bounds()) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, r, fb.Img.Bounds())
	}
	return nil
}

func (fb *Framebuffer) FillRect(r image.Rectangle, c colors.Color) error {
	if err := fb.check(r); err != nil {
		return err
	}
	if c.IsTransparent() {
		return nil
	}
	op := draw.Over
	if c[3] >= 1 {
		op = draw.Src
	}
	draw.Draw(fb.Img, r.Intersect(fb.Img.Bounds()), image.NewUniform(c), image.Point{}, op)
	return nil
}

func (fb *Framebuffer) StrokeRect(r image.Rectangle, c colors.Color, width int) error {
	if err := fb.check(r); err != nil {
		return err
	}
	if width <= 0 || c.IsTransparent() || r.Empty() {
		return nil
	}
	inner := gfx.Inset(r, width)
	edges := [4]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, inner.Min.Y), // top
		image.Rect(r.Min.X, inner.Max.Y, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, r.Max.X, inner.Max.Y),
	}
	for _, e := range edges {
		if err := fb.FillRect(e, c); err != nil {
			return err
		}
	}
	return nil
}

func (fb *Framebuffer) DrawText(box image.Rectangle, s string, style gfx.TextStyle) error {
	if err := fb.check(box); err != nil {
		return err
	}
	if s == "" || style.Font == nil || style.Color.IsTransparent() {
		return nil
	}
	s = text.Truncate(style.Font, s, box.Dx())
	origin := text.Place(box, style.Font.Measure(s), style.HAlign, style.VAlign)
	clip, ok := fb.Img.SubImage(box.Intersect(fb.Img.Bounds())).(*image.RGBA)
	if !ok || clip.Bounds().Empty() {
		return nil
	}
	text.Draw(clip, style.Font, origin, s, style.Color)
	return nil
}

// Clear fills the whole framebuffer.
func (fb *Framebuffer) Clear(c colors.Color) {
	draw.Draw(fb.Img, fb.Img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
