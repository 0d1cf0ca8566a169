// Command simulator runs the counter demo in a desktop window scaled up from
// the configured panel size. The theme file is watched and reloaded live.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/sprig/engine/core"
	glbackend "github.com/hubastard/sprig/engine/gfx/gl"
	"github.com/hubastard/sprig/engine/gfx/raster"
	"github.com/hubastard/sprig/engine/platform"
	"github.com/hubastard/sprig/engine/theme"
	"github.com/hubastard/sprig/internal/demo"
)

type App struct {
	themePath string
	touch     bool

	counter *demo.Counter
	theme   *theme.Default
	fb      *raster.Framebuffer
	reload  chan theme.File
	cancel  context.CancelFunc
	dirty   bool
	shown   int
}

func (a *App) OnStart(e *core.Engine) error {
	th, err := demo.LoadTheme(a.themePath)
	if err != nil {
		return err
	}
	a.theme = th

	a.counter, err = demo.NewCounter(e.Frame.Bounds(), e.Logger)
	if err != nil {
		return err
	}
	a.fb = raster.New(e.Frame)
	a.dirty = true

	if w, ok := e.Window.(*platform.GLFWWindow); ok {
		w.SetTouchMode(a.touch)
	}

	if a.themePath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		a.cancel = cancel
		a.reload = make(chan theme.File, 1)
		go func() {
			err := theme.Watch(ctx, a.themePath, func(f theme.File) {
				// Keep only the newest file if the UI thread is behind.
				select {
				case <-a.reload:
				default:
				}
				a.reload <- f
			})
			if err != nil {
				e.Logger.Warn("theme watch stopped", "err", err)
			}
		}()
	}
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	select {
	case f := <-a.reload:
		a.theme = theme.FromFile(f, a.theme.Fonts)
		a.dirty = true
		e.Logger.Info("theme applied")
	default:
	}
	if v := a.counter.Value(); v != a.shown {
		a.shown = v
		e.Window.SetTitle(fmt.Sprintf("sprig: %d", v))
	}
}

func (a *App) OnRender(e *core.Engine) error {
	if !a.dirty {
		return nil
	}
	if err := a.counter.Draw(a.fb, a.theme); err != nil {
		return err
	}
	a.dirty = false
	return nil
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if a.counter.HandleEvent(ev) {
		a.dirty = true
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.cancel != nil {
		a.cancel()
	}
	a.theme.Fonts.Close()
}

func main() {
	configPath := flag.String("config", "sprig.toml", "TOML display config")
	themePath := flag.String("theme", "", "YAML theme file, reloaded on change")
	touch := flag.Bool("touch", false, "left button acts as a touch panel")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	app := &App{themePath: *themePath, touch: *touch}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newPresenter := func(win core.Window, cfg core.Config) (core.Presenter, error) {
		return glbackend.NewPresenter(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newPresenter); err != nil {
		slog.Error("simulator", "err", err)
		os.Exit(1)
	}
}

var _ core.App = (*App)(nil)
