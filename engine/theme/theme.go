// Package theme supplies the colors, fonts and spacing widgets draw with.
//
// A Theme is passed explicitly to every draw call; there is no process-wide
// default. Default covers every accessor from a Palette, and a custom theme
// can embed *Default and override the accessors it cares about.
package theme

import (
	"image"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/text"
)

type Theme interface {
	// Palette
	PrimaryColor() colors.Color
	PrimaryDark() colors.Color
	PrimaryLight() colors.Color
	SecondaryColor() colors.Color
	BackgroundColor() colors.Color
	SurfaceColor() colors.Color
	TextPrimary() colors.Color
	TextSecondary() colors.Color
	TextDisabled() colors.Color
	BorderColor() colors.Color
	ErrorColor() colors.Color
	SuccessColor() colors.Color
	WarningColor() colors.Color
	InfoColor() colors.Color

	// Typography
	SmallFont() *text.Font
	NormalFont() *text.Font
	LargeFont() *text.Font
	TitleFont() *text.Font

	// Spacing
	SpacingXS() int
	SpacingSM() int
	SpacingMD() int
	SpacingLG() int
	SpacingXL() int
	SpacingXXL() int

	// Buttons
	ButtonNormalBG() colors.Color
	ButtonNormalText() colors.Color
	ButtonNormalBorder() colors.Color
	ButtonHoveredBG() colors.Color
	ButtonHoveredText() colors.Color
	ButtonHoveredBorder() colors.Color
	ButtonPressedBG() colors.Color
	ButtonPressedText() colors.Color
	ButtonPressedBorder() colors.Color
	ButtonDisabledBG() colors.Color
	ButtonDisabledText() colors.Color
	ButtonDisabledBorder() colors.Color
	ButtonBorderWidth() int
	ButtonPressedOffset() image.Point
	ButtonCornerRadius() int

	// Labels
	LabelTextColor() colors.Color
	LabelDisabledTextColor() colors.Color
	LabelBackgroundColor() (colors.Color, bool)

	// Panels
	PanelBackgroundColor() colors.Color
	PanelBorderColor() colors.Color
	PanelBorderWidth() int
	PanelPadding() int

	// Text boxes
	TextBoxBackgroundColor() colors.Color
	TextBoxTextColor() colors.Color
	TextBoxBorderColor() colors.Color
	TextBoxFocusedBorderColor() colors.Color
	TextBoxCursorColor() colors.Color
	TextBoxSelectionColor() colors.Color
	TextBoxBorderWidth() int
	TextBoxPadding() int
}

// Fonts holds the four type tiers.
type Fonts struct {
	Small, Normal, Large, Title *text.Font
}

// FontSizes are the pixel sizes of the default tiers, chosen to match the
// classic 6x10 / 8x13 / 10x20 bitmap fonts of small panels.
var FontSizes = [4]float32{8, 10, 13, 20}

// LoadFonts builds the four tiers from Go Mono.
func LoadFonts() (Fonts, error) {
	var out [4]*text.Font
	for i, size := range FontSizes {
		f, err := text.LoadMono(size)
		if err != nil {
			return Fonts{}, err
		}
		out[i] = f
	}
	return Fonts{Small: out[0], Normal: out[1], Large: out[2], Title: out[3]}, nil
}

// Close releases every tier's face.
func (f Fonts) Close() error {
	var first error
	for _, font := range []*text.Font{f.Small, f.Normal, f.Large, f.Title} {
		if err := font.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// BasicFonts uses the built-in 7x13 bitmap face for every tier.
func BasicFonts() Fonts {
	f := text.Basic()
	return Fonts{Small: f, Normal: f, Large: f, Title: f}
}

// Spacing is the xs..xxl spacing scale.
type Spacing struct {
	XS  int `yaml:"xs"`
	SM  int `yaml:"sm"`
	MD  int `yaml:"md"`
	LG  int `yaml:"lg"`
	XL  int `yaml:"xl"`
	XXL int `yaml:"xxl"`
}

func DefaultSpacing() Spacing {
	return Spacing{XS: 2, SM: 4, MD: 8, LG: 16, XL: 24, XXL: 32}
}
