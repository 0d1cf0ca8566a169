package platform

import (
	"image"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/hubastard/sprig/engine/core"
)

func TestToDisplay(t *testing.T) {
	display := image.Pt(320, 240)

	// 3x window, no HiDPI.
	win := image.Pt(960, 720)
	assert.Equal(t, image.Pt(0, 0), ToDisplay(0, 0, win, win, display))
	assert.Equal(t, image.Pt(100, 50), ToDisplay(301, 152, win, win, display))

	// HiDPI: the framebuffer is twice the window size.
	assert.Equal(t, image.Pt(100, 50), ToDisplay(150.5, 76, image.Pt(480, 360), win, display))

	// Letterboxed: 20px bars on each side at 3x.
	wide := image.Pt(1000, 720)
	assert.Equal(t, image.Pt(0, 0), ToDisplay(20, 0, wide, wide, display))
	assert.Equal(t, image.Pt(-1, 0), ToDisplay(19, 0, wide, wide, display))

	assert.Equal(t, image.Point{}, ToDisplay(5, 5, image.Point{}, image.Point{}, display))
}

func TestButtonEvent(t *testing.T) {
	p := image.Pt(3, 4)
	assert.Equal(t, core.EventMouseDown{Pos: p}, buttonEvent(true, false, p))
	assert.Equal(t, core.EventMouseUp{Pos: p}, buttonEvent(false, false, p))
	assert.Equal(t, core.EventTouch{Pos: p}, buttonEvent(true, true, p))
	assert.Equal(t, core.EventTouchRelease{Pos: p}, buttonEvent(false, true, p))
}

func TestTranslateKeyAndMods(t *testing.T) {
	assert.Equal(t, core.KeyEscape, translateKey(glfw.KeyEscape))
	assert.Equal(t, core.KeyUnknown, translateKey(glfw.KeyF12))
	assert.Equal(t, core.ModShift|core.ModCtrl, translateMods(glfw.ModShift|glfw.ModControl))
}
