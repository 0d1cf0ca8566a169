package demo

import "github.com/hubastard/sprig/engine/theme"

// LoadTheme builds a theme on the Go Mono fonts from a YAML file. An empty
// path or a missing file gives the default palette.
func LoadTheme(path string) (*theme.Default, error) {
	fonts, err := theme.LoadFonts()
	if err != nil {
		return nil, err
	}
	f := theme.File{Palette: theme.DefaultPalette(), Spacing: theme.DefaultSpacing()}
	if path != "" {
		if f, err = theme.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return theme.FromFile(f, fonts), nil
}
