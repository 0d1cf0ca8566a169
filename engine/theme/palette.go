package theme

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/sprig/engine/colors"
)

// Palette is the named color set a theme is derived from. Colors read from
// YAML as palette names ("lightgray") or hex strings ("#4682b4").
type Palette struct {
	Primary        colors.Color `yaml:"primary"`
	PrimaryDark    colors.Color `yaml:"primary_dark"`
	PrimaryLight   colors.Color `yaml:"primary_light"`
	Secondary      colors.Color `yaml:"secondary"`
	SecondaryDark  colors.Color `yaml:"secondary_dark"`
	SecondaryLight colors.Color `yaml:"secondary_light"`

	Background colors.Color `yaml:"background"`
	Surface    colors.Color `yaml:"surface"`
	Border     colors.Color `yaml:"border"`

	TextPrimary   colors.Color `yaml:"text_primary"`
	TextSecondary colors.Color `yaml:"text_secondary"`
	TextDisabled  colors.Color `yaml:"text_disabled"`

	Success colors.Color `yaml:"success"`
	Warning colors.Color `yaml:"warning"`
	Error   colors.Color `yaml:"error"`
	Info    colors.Color `yaml:"info"`
}

// DefaultPalette is a light scheme built from CSS named colors.
func DefaultPalette() Palette {
	return Palette{
		Primary:        colors.Blue,
		PrimaryDark:    colors.DarkBlue,
		PrimaryLight:   colors.LightBlue,
		Secondary:      colors.Gray,
		SecondaryDark:  colors.DimGray,
		SecondaryLight: colors.LightGray,
		Background:     colors.White,
		Surface:        colors.LightGray,
		Border:         colors.Gray,
		TextPrimary:    colors.Black,
		TextSecondary:  colors.DimGray,
		TextDisabled:   colors.LightGray,
		Success:        colors.Green,
		Warning:        colors.Orange,
		Error:          colors.Red,
		Info:           colors.SteelBlue,
	}
}

// shadeAmount is how far derived dark/light variants move in Lab space.
const shadeAmount = 0.35

// complete fills unset colors. Dark and light variants of a set base color
// are derived from it; anything else falls back to the default palette.
func (p Palette) complete() Palette {
	def := DefaultPalette()
	derive := func(base colors.Color, variant *colors.Color, fallback colors.Color, dark bool) {
		if *variant != (colors.Color{}) {
			return
		}
		switch {
		case base == (colors.Color{}):
			*variant = fallback
		case dark:
			*variant = base.Darken(shadeAmount)
		default:
			*variant = base.Lighten(shadeAmount)
		}
	}
	derive(p.Primary, &p.PrimaryDark, def.PrimaryDark, true)
	derive(p.Primary, &p.PrimaryLight, def.PrimaryLight, false)
	derive(p.Secondary, &p.SecondaryDark, def.SecondaryDark, true)
	derive(p.Secondary, &p.SecondaryLight, def.SecondaryLight, false)

	fill := func(c *colors.Color, fallback colors.Color) {
		if *c == (colors.Color{}) {
			*c = fallback
		}
	}
	fill(&p.Primary, def.Primary)
	fill(&p.Secondary, def.Secondary)
	fill(&p.Background, def.Background)
	fill(&p.Surface, def.Surface)
	fill(&p.Border, def.Border)
	fill(&p.TextPrimary, def.TextPrimary)
	fill(&p.TextSecondary, def.TextSecondary)
	fill(&p.TextDisabled, def.TextDisabled)
	fill(&p.Success, def.Success)
	fill(&p.Warning, def.Warning)
	fill(&p.Error, def.Error)
	fill(&p.Info, def.Info)
	return p
}

// File is the on-disk theme description.
type File struct {
	Palette Palette `yaml:"palette"`
	Spacing Spacing `yaml:"spacing"`
}

// Parse decodes a YAML theme description. Keys left out keep their defaults.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse theme: %w", err)
	}
	f.Palette = f.Palette.complete()
	f.Spacing = f.Spacing.complete()
	return f, nil
}

// LoadFile reads a theme description. A missing file yields the defaults.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return File{Palette: DefaultPalette(), Spacing: DefaultSpacing()}, nil
		}
		return File{}, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Marshal encodes f as YAML.
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

func (s Spacing) complete() Spacing {
	def := DefaultSpacing()
	for _, f := range []struct{ v, d *int }{
		{&s.XS, &def.XS}, {&s.SM, &def.SM}, {&s.MD, &def.MD},
		{&s.LG, &def.LG}, {&s.XL, &def.XL}, {&s.XXL, &def.XXL},
	} {
		if *f.v <= 0 {
			*f.v = *f.d
		}
	}
	return s
}
