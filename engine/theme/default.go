package theme

import (
	"image"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/text"
)

// Default implements every Theme accessor from a palette, a spacing scale and
// four fonts. Component colors are derived from the palette.
type Default struct {
	Palette Palette
	Spacing Spacing
	Fonts   Fonts
}

var _ Theme = (*Default)(nil)

// New builds a theme from p with the Go Mono font tiers.
func New(p Palette) (*Default, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	return &Default{Palette: p.complete(), Spacing: DefaultSpacing(), Fonts: fonts}, nil
}

// FromFile builds a theme from a parsed theme file.
func FromFile(f File, fonts Fonts) *Default {
	return &Default{Palette: f.Palette.complete(), Spacing: f.Spacing.complete(), Fonts: fonts}
}

// Basic is a default-palette theme on the built-in bitmap face. It cannot fail,
// which makes it the theme of choice for tests and headless rendering.
func Basic() *Default {
	return &Default{Palette: DefaultPalette(), Spacing: DefaultSpacing(), Fonts: BasicFonts()}
}

func (d *Default) PrimaryColor() colors.Color    { return d.Palette.Primary }
func (d *Default) PrimaryDark() colors.Color     { return d.Palette.PrimaryDark }
func (d *Default) PrimaryLight() colors.Color    { return d.Palette.PrimaryLight }
func (d *Default) SecondaryColor() colors.Color  { return d.Palette.Secondary }
func (d *Default) BackgroundColor() colors.Color { return d.Palette.Background }
func (d *Default) SurfaceColor() colors.Color    { return d.Palette.Surface }
func (d *Default) TextPrimary() colors.Color     { return d.Palette.TextPrimary }
func (d *Default) TextSecondary() colors.Color   { return d.Palette.TextSecondary }
func (d *Default) TextDisabled() colors.Color    { return d.Palette.TextDisabled }
func (d *Default) BorderColor() colors.Color     { return d.Palette.Border }
func (d *Default) ErrorColor() colors.Color      { return d.Palette.Error }
func (d *Default) SuccessColor() colors.Color    { return d.Palette.Success }
func (d *Default) WarningColor() colors.Color    { return d.Palette.Warning }
func (d *Default) InfoColor() colors.Color       { return d.Palette.Info }

func (d *Default) SmallFont() *text.Font  { return d.Fonts.Small }
func (d *Default) NormalFont() *text.Font { return d.Fonts.Normal }
func (d *Default) LargeFont() *text.Font  { return d.Fonts.Large }
func (d *Default) TitleFont() *text.Font  { return d.Fonts.Title }

func (d *Default) SpacingXS() int  { return d.Spacing.XS }
func (d *Default) SpacingSM() int  { return d.Spacing.SM }
func (d *Default) SpacingMD() int  { return d.Spacing.MD }
func (d *Default) SpacingLG() int  { return d.Spacing.LG }
func (d *Default) SpacingXL() int  { return d.Spacing.XL }
func (d *Default) SpacingXXL() int { return d.Spacing.XXL }

func (d *Default) ButtonNormalBG() colors.Color     { return d.Palette.Surface }
func (d *Default) ButtonNormalText() colors.Color   { return d.Palette.TextPrimary }
func (d *Default) ButtonNormalBorder() colors.Color { return d.Palette.Border }

func (d *Default) ButtonHoveredBG() colors.Color     { return d.Palette.PrimaryLight }
func (d *Default) ButtonHoveredText() colors.Color   { return d.Palette.TextPrimary }
func (d *Default) ButtonHoveredBorder() colors.Color { return d.Palette.Primary }

func (d *Default) ButtonPressedBG() colors.Color     { return d.Palette.Primary }
func (d *Default) ButtonPressedText() colors.Color   { return d.Palette.Surface }
func (d *Default) ButtonPressedBorder() colors.Color { return d.Palette.PrimaryDark }

func (d *Default) ButtonDisabledBG() colors.Color     { return d.Palette.Surface }
func (d *Default) ButtonDisabledText() colors.Color   { return d.Palette.TextDisabled }
func (d *Default) ButtonDisabledBorder() colors.Color { return d.Palette.Border }

func (d *Default) ButtonBorderWidth() int           { return 1 }
func (d *Default) ButtonPressedOffset() image.Point { return image.Pt(1, 1) }
func (d *Default) ButtonCornerRadius() int          { return 0 }

func (d *Default) LabelTextColor() colors.Color               { return d.Palette.TextPrimary }
func (d *Default) LabelDisabledTextColor() colors.Color       { return d.Palette.TextDisabled }
func (d *Default) LabelBackgroundColor() (colors.Color, bool) { return colors.Color{}, false }
func (d *Default) PanelBackgroundColor() colors.Color         { return d.Palette.Surface }
func (d *Default) PanelBorderColor() colors.Color             { return d.Palette.Border }
func (d *Default) PanelBorderWidth() int                      { return 1 }
func (d *Default) PanelPadding() int                          { return d.Spacing.MD }
func (d *Default) TextBoxBackgroundColor() colors.Color       { return d.Palette.Surface }
func (d *Default) TextBoxTextColor() colors.Color             { return d.Palette.TextPrimary }
func (d *Default) TextBoxBorderColor() colors.Color           { return d.Palette.Border }
func (d *Default) TextBoxFocusedBorderColor() colors.Color    { return d.Palette.Primary }
func (d *Default) TextBoxCursorColor() colors.Color           { return d.Palette.Primary }
func (d *Default) TextBoxSelectionColor() colors.Color        { return d.Palette.PrimaryLight }
func (d *Default) TextBoxBorderWidth() int                    { return 1 }
func (d *Default) TextBoxPadding() int                        { return d.Spacing.SM }
