package core

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"time"
)

// Run wires the platform window + presenter and executes the main loop.
// Events are delivered to the app synchronously, one at a time, from
// PollEvents; the toolkit never sees them from another goroutine.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newPresenter func(Window, Config) (Presenter, error)) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	log := slog.Default().With("component", "engine")

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	pres, err := newPresenter(win, cfg)
	if err != nil {
		return fmt.Errorf("create presenter: %w", err)
	}
	defer pres.Shutdown()

	w, h := win.FramebufferSize()
	pres.Resize(w, h)

	eng := &Engine{
		Window:    win,
		Presenter: pres,
		Input:     NewInput(),
		Frame:     image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		Logger:    log,
		start:     time.Now(),
	}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		switch e := ev.(type) {
		case EventResize:
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			pres.Resize(fw, fh)
		case EventCloseRequested:
			win.RequestClose()
		case EventKey:
			if e.Down && e.Key == KeyEscape {
				win.RequestClose()
			}
		}
	})

	if err := app.OnStart(eng); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	log.Info("engine started", "display", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "scale", cfg.Scale)

	// Fixed-timestep updates, one render per loop iteration.
	tick := time.Second / time.Duration(cfg.TickRate)
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, tick.Seconds())
			accum -= tick
			steps++
		}

		pres.Clear(cfg.ClearColor)
		if err := app.OnRender(eng); err != nil {
			// A failed frame is dropped; the next one is drawn from the same model.
			log.Warn("render failed", "err", err)
		} else if err := pres.Present(eng.Frame); err != nil {
			log.Warn("present failed", "err", err)
		}

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	log.Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}
