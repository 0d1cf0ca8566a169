package core

import (
	"image"
	"log/slog"
	"time"

	"github.com/hubastard/sprig/engine/colors"
)

// App defines the application hooks driven by Run.
type App interface {
	OnStart(e *Engine) error        // called once after window/presenter init
	OnUpdate(e *Engine, dt float64) // called at a fixed tick
	OnRender(e *Engine) error       // draw the next frame into e.Frame
	OnEvent(e *Engine, ev Event)    // input/window events, one at a time
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window    Window
	Presenter Presenter
	Input     *Input
	// Frame is the display framebuffer at logical resolution. Presenters
	// scale it to the window.
	Frame  *image.RGBA
	Logger *slog.Logger
	start  time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Presenter puts a finished frame on screen.
type Presenter interface {
	Resize(w, h int)
	Clear(c colors.Color)
	Present(frame *image.RGBA) error
	Shutdown()
}
