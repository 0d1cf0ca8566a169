package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hubastard/sprig/engine/colors"
)

// Config for the engine run.
type Config struct {
	Title string `toml:"title"`
	// Width and Height are the logical display size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Scale multiplies the display size for the host window.
	Scale      int          `toml:"scale"`
	VSync      bool         `toml:"vsync"`
	TickRate   int          `toml:"tick_rate"`
	ClearColor colors.Color `toml:"clear_color"`
}

// DefaultConfig matches a common 320x240 TFT panel shown at 3x.
func DefaultConfig() Config {
	return Config{
		Title:      "sprig",
		Width:      320,
		Height:     240,
		Scale:      3,
		VSync:      true,
		TickRate:   60,
		ClearColor: colors.DarkGray,
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects sizes no display or window could use.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: display size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale %d must be positive", c.Scale)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick rate %d must be positive", c.TickRate)
	}
	return nil
}

// WindowSize is the host window size in screen pixels.
func (c Config) WindowSize() (int, int) { return c.Width * c.Scale, c.Height * c.Scale }
