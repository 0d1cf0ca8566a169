package text

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Measure returns the pixel size of s. Lines are split on '\n'.
func (f *Font) Measure(s string) image.Point {
	if s == "" {
		return image.Point{}
	}
	if sz, ok := f.measured.Get(s); ok {
		return sz
	}

	var size image.Point
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w := font.MeasureString(f.Face, line).Ceil(); w > size.X {
			size.X = w
		}
	}
	size.Y = f.LineHeight() * len(lines)

	f.measured.Add(s, size)
	return size
}

// Place positions a block of the given size inside box.
func Place(box image.Rectangle, size image.Point, h, v Align) image.Point {
	return image.Pt(place(box.Min.X, box.Dx(), size.X, h), place(box.Min.Y, box.Dy(), size.Y, v))
}

func place(start, avail, used int, a Align) int {
	switch a {
	case AlignCenter:
		return start + (avail-used)/2
	case AlignEnd:
		return start + avail - used
	default:
		return start
	}
}

// Draw renders s with its top-left corner at origin. Lines share the left
// edge.
func Draw(dst draw.Image, f *Font, origin image.Point, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.Face,
	}
	baseY := origin.Y + f.Ascent
	for _, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(origin.X, baseY)
		d.DrawString(line)
		baseY += f.LineHeight()
	}
}

// Truncate shortens s with a trailing "…" until it fits maxWidth. Strings
// that already fit come back unchanged.
func Truncate(f *Font, s string, maxWidth int) string {
	if maxWidth <= 0 || f.Measure(s).X <= maxWidth {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		cand := string(runes[:n]) + "…"
		if font.MeasureString(f.Face, cand).Ceil() <= maxWidth {
			return cand
		}
	}
	return ""
}
