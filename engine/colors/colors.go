package colors

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGBA color with channels in [0..1].
type Color [4]float32

var (
	White     = Color{1, 1, 1, 1}
	Red       = Color{1, 0, 0, 1}
	Green     = RGB8(0, 128, 0)
	Lime      = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Magenta   = Color{1, 0, 1, 1}
	Cyan      = Color{0, 1, 1, 1}
	Yellow    = Color{1, 1, 0, 1}
	Orange    = RGB8(255, 165, 0)
	Gray      = RGB8(128, 128, 128)
	DimGray   = RGB8(105, 105, 105)
	LightGray = RGB8(211, 211, 211)
	DarkGray  = Color{0.08, 0.10, 0.12, 1}
	DarkBlue  = RGB8(0, 0, 139)
	LightBlue = RGB8(173, 216, 230)
	SteelBlue = RGB8(70, 130, 180)

	Transparent = Color{}
)

// RGB8 builds an opaque color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// IsTransparent reports whether drawing c would leave the target unchanged.
func (c Color) IsTransparent() bool { return c[3] <= 0 }

// RGBA implements color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(channel(c[3]) * 0xffff)
	r = uint32(channel(c[0]) * channel(c[3]) * 0xffff)
	g = uint32(channel(c[1]) * channel(c[3]) * 0xffff)
	b = uint32(channel(c[2]) * channel(c[3]) * 0xffff)
	return r, g, b, a
}

// NRGBA converts c to an 8-bit non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(float64(channel(c[0])) * 255)),
		G: uint8(math.Round(float64(channel(c[1])) * 255)),
		B: uint8(math.Round(float64(channel(c[2])) * 255)),
		A: uint8(math.Round(float64(channel(c[3])) * 255)),
	}
}

// FromColor converts any color.Color.
func FromColor(in color.Color) Color {
	n := color.NRGBAModel.Convert(in).(color.NRGBA)
	return Color{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

// Lighten blends c towards white by amount in [0..1] in Lab space.
func (c Color) Lighten(amount float32) Color { return c.blend(White, amount) }

// Darken blends c towards black by amount in [0..1] in Lab space.
func (c Color) Darken(amount float32) Color { return c.blend(Black, amount) }

// Blend mixes c with other in Lab space, keeping c's alpha.
func (c Color) Blend(other Color, amount float32) Color { return c.blend(other, amount) }

func (c Color) blend(other Color, amount float32) Color {
	t := float64(channel(amount))
	mixed := c.colorful().BlendLab(other.colorful(), t).Clamped()
	return Color{float32(mixed.R), float32(mixed.G), float32(mixed.B), c[3]}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(channel(c[0])), G: float64(channel(c[1])), B: float64(channel(c[2]))}
}

// Hex formats c as #rrggbb, or #rrggbbaa when not fully opaque.
func (c Color) Hex() string {
	s := c.colorful().Clamped().Hex()
	if c[3] < 1 {
		s += fmt.Sprintf("%02x", c.NRGBA().A)
	}
	return s
}

func (c Color) String() string { return c.Hex() }

// ParseHex parses #rgb, #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := float32(1)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = float32(a) / 255
		s = s[:7]
	}
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{float32(cc.R), float32(cc.G), float32(cc.B), alpha}, nil
}

// Named looks up one of the package palette colors by lowercase name.
func Named(name string) (Color, bool) {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

var named = map[string]Color{
	"white":       White,
	"red":         Red,
	"green":       Green,
	"lime":        Lime,
	"blue":        Blue,
	"black":       Black,
	"magenta":     Magenta,
	"cyan":        Cyan,
	"yellow":      Yellow,
	"orange":      Orange,
	"gray":        Gray,
	"dimgray":     DimGray,
	"lightgray":   LightGray,
	"darkgray":    DarkGray,
	"darkblue":    DarkBlue,
	"lightblue":   LightBlue,
	"steelblue":   SteelBlue,
	"transparent": Transparent,
}

// MarshalText writes the hex form, so colors read naturally in YAML and TOML files.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText accepts a palette name or a hex string.
func (c *Color) UnmarshalText(b []byte) error {
	if n, ok := Named(string(b)); ok {
		*c = n
		return nil
	}
	parsed, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func channel(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
