// Package platform hosts the toolkit in a desktop window, standing in for a
// panel and touch controller during development.
package platform

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/sprig/engine/core"
	glbackend "github.com/hubastard/sprig/engine/gfx/gl"
)

// GLFWWindow implements core.Window and pushes events to the app via a
// handler. Pointer positions are reported in display pixels, matching the
// frame the presenter shows, so widgets never see window coordinates.
type GLFWWindow struct {
	w       *glfw.Window
	onEv    func(core.Event)
	display image.Point
	pointer image.Point
	// touch makes the left button emit touch events instead of mouse ones.
	touch bool
}

// NewGLFWWindow must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	ww, wh := cfg.WindowSize()
	win, err := glfw.CreateWindow(ww, wh, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	slog.Info("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gw := &GLFWWindow{w: win, onEv: onEvent, display: image.Pt(cfg.Width, cfg.Height)}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.pointer = gw.toDisplay(x, y)
		if gw.touch {
			// A dragging finger reports no motion on a touch panel.
			return
		}
		gw.emit(core.EventMouseMove{Pos: gw.pointer})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		gw.emit(buttonEvent(action == glfw.Press, gw.touch, gw.pointer))
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventKeyPress{Rune: r})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action == glfw.Press, Mods: translateMods(mods)})
	})

	return gw, nil
}

// SetTouchMode switches the left mouse button between mouse and touch events.
func (g *GLFWWindow) SetTouchMode(on bool) { g.touch = on }

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

func (g *GLFWWindow) toDisplay(x, y float64) image.Point {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	return ToDisplay(x, y, image.Pt(ww, wh), image.Pt(fw, fh), g.display)
}

// ToDisplay maps a cursor position in window coordinates to display pixels,
// undoing HiDPI framebuffer scaling and the presenter's letterboxing.
func ToDisplay(x, y float64, window, framebuffer, display image.Point) image.Point {
	if window.X <= 0 || window.Y <= 0 {
		return image.Point{}
	}
	fx := x * float64(framebuffer.X) / float64(window.X)
	fy := y * float64(framebuffer.Y) / float64(window.Y)
	vp := glbackend.FitViewport(framebuffer, display)
	if vp.Empty() {
		return image.Point{}
	}
	dx := (fx - float64(vp.Min.X)) * float64(display.X) / float64(vp.Dx())
	dy := (fy - float64(vp.Min.Y)) * float64(display.Y) / float64(vp.Dy())
	return image.Pt(int(math.Floor(dx)), int(math.Floor(dy)))
}

func buttonEvent(pressed, touch bool, p image.Point) core.Event {
	switch {
	case touch && pressed:
		return core.EventTouch{Pos: p}
	case touch:
		return core.EventTouchRelease{Pos: p}
	case pressed:
		return core.EventMouseDown{Pos: p}
	default:
		return core.EventMouseUp{Pos: p}
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// Destroy closes the window and releases GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyEnter:
		return core.KeyEnter
	case glfw.KeyTab:
		return core.KeyTab
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyRight:
		return core.KeyRight
	case glfw.KeyP:
		return core.KeyP
	default:
		return core.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
