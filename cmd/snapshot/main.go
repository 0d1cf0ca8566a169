// Command snapshot renders the counter demo headlessly: it replays a scripted
// input sequence against the widget tree and writes the final frame as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx/raster"
	"github.com/hubastard/sprig/engine/ui"
	"github.com/hubastard/sprig/internal/demo"
)

type options struct {
	config    string
	themePath string
	script    string
	out       string
	strict    bool
	broadcast bool
	verbose   bool
}

func main() {
	var o options
	flag.StringVar(&o.config, "config", "", "TOML display config")
	flag.StringVar(&o.themePath, "theme", "", "YAML theme file")
	flag.StringVar(&o.script, "script", "", "YAML input script")
	flag.StringVar(&o.out, "out", "snapshot.png", "output PNG")
	flag.BoolVar(&o.strict, "strict", false, "fail on draws outside the display")
	flag.BoolVar(&o.broadcast, "broadcast", false, "deliver events to every widget")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(o); err != nil {
		slog.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
}

func run(o options) error {
	cfg, err := core.LoadConfig(o.config)
	if err != nil {
		return err
	}
	th, err := demo.LoadTheme(o.themePath)
	if err != nil {
		return err
	}

	var opts []ui.ScreenOption
	if o.broadcast {
		opts = append(opts, ui.WithRouting(ui.RouteBroadcast))
	}
	counter, err := demo.NewCounter(image.Rect(0, 0, cfg.Width, cfg.Height), slog.Default(), opts...)
	if err != nil {
		return fmt.Errorf("build screen: %w", err)
	}

	if o.script != "" {
		evs, err := demo.LoadScript(o.script)
		if err != nil {
			return err
		}
		for _, ev := range evs {
			counter.HandleEvent(ev)
		}
		slog.Info("script replayed", "events", len(evs), "value", counter.Value())
	}

	fb := raster.NewSize(cfg.Width, cfg.Height)
	fb.Strict = o.strict
	fb.Clear(cfg.ClearColor)
	if err := counter.Draw(fb, th); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := assets.SavePNG(o.out, fb.Img); err != nil {
		return err
	}
	slog.Info("frame written", "path", o.out, "size", fb.Bounds().Size())
	return nil
}
