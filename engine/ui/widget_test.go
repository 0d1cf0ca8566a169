package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/theme"
)

type msg int

const (
	msgInc msg = iota + 1
	msgDec
)

func at(x, y int) image.Point { return image.Pt(x, y) }

func TestButtonEmitsWhilePressed(t *testing.T) {
	b := NewButton[msg]("+", image.Rect(0, 0, 40, 20)).OnPress(msgInc)

	resp := b.HandleEvent(core.EventMouseMove{Pos: at(5, 5)})
	assert.True(t, resp.Changed())
	_, ok := resp.Message()
	assert.False(t, ok)

	resp = b.HandleEvent(core.EventMouseDown{Pos: at(5, 5)})
	m, ok := resp.Message()
	require.True(t, ok)
	assert.Equal(t, msgInc, m)

	resp = b.HandleEvent(core.EventMouseUp{Pos: at(5, 5)})
	assert.True(t, resp.Changed())
	_, ok = resp.Message()
	assert.False(t, ok)

	resp = b.HandleEvent(core.EventMouseMove{Pos: at(6, 6)})
	assert.False(t, resp.Changed())
}

func TestButtonOnReleaseIsAClick(t *testing.T) {
	b := NewButton[msg]("-", image.Rect(0, 0, 40, 20)).OnPress(msgDec).Trigger(OnRelease)

	b.HandleEvent(core.EventMouseMove{Pos: at(5, 5)})
	_, ok := b.HandleEvent(core.EventMouseDown{Pos: at(5, 5)}).Message()
	assert.False(t, ok)
	m, ok := b.HandleEvent(core.EventMouseUp{Pos: at(5, 5)}).Message()
	require.True(t, ok)
	assert.Equal(t, msgDec, m)

	// Released outside: no click.
	b.HandleEvent(core.EventMouseMove{Pos: at(5, 5)})
	b.HandleEvent(core.EventMouseDown{Pos: at(5, 5)})
	_, ok = b.HandleEvent(core.EventMouseUp{Pos: at(50, 50)}).Message()
	assert.False(t, ok)
}

func TestButtonWithoutMessage(t *testing.T) {
	b := NewButton[msg]("x", image.Rect(0, 0, 10, 10))
	resp := b.HandleEvent(core.EventTouch{Pos: at(1, 1)})
	assert.True(t, resp.Changed())
	_, ok := resp.Message()
	assert.False(t, ok)
}

func TestDisabledButtonIgnoresInput(t *testing.T) {
	b := NewButton[msg]("x", image.Rect(0, 0, 10, 10)).OnPress(msgInc)
	require.True(t, b.SetEnabled(false))
	assert.False(t, b.HandleEvent(core.EventMouseDown{Pos: at(1, 1)}).Changed())
	assert.Equal(t, Disabled, b.State())
}

func TestButtonDrawsFrameAndLabel(t *testing.T) {
	th := theme.Basic()
	b := NewButton[msg]("ok", image.Rect(10, 10, 50, 30))
	rec := gfx.NewRecorder(image.Rect(0, 0, 64, 64))

	require.NoError(t, b.DrawWithTheme(rec, th))
	require.Len(t, rec.Ops, 3)
	assert.Equal(t, gfx.Op{Kind: gfx.OpFill, Rect: image.Rect(12, 12, 48, 28), Color: th.ButtonNormalBG()}, rec.Ops[0])
	assert.Equal(t, gfx.OpStroke, rec.Ops[1].Kind)
	assert.Equal(t, th.ButtonNormalBorder(), rec.Ops[1].Color)
	assert.Equal(t, gfx.Op{Kind: gfx.OpText, Rect: image.Rect(10, 10, 50, 30), Color: th.ButtonNormalText(), Text: "ok"}, rec.Ops[2])

	rec.Reset()
	b.SetState(Pressed)
	require.NoError(t, b.DrawWithTheme(rec, th))
	assert.Equal(t, th.ButtonPressedBG(), rec.Ops[0].Color)
	assert.Equal(t, image.Rect(11, 11, 51, 31), rec.Ops[2].Rect)

	rec.Reset()
	b.SetState(Focused)
	require.NoError(t, b.DrawWithTheme(rec, th))
	assert.Equal(t, th.PrimaryColor(), rec.Ops[1].Color)
	assert.Equal(t, Focused, b.State(), "drawing must not change state")
}

func TestDrawErrorPropagates(t *testing.T) {
	b := NewButton[msg]("ok", image.Rect(0, 0, 40, 20))
	rec := gfx.NewRecorder(image.Rect(0, 0, 64, 64))
	rec.FailAfter = 2

	err := b.DrawWithTheme(rec, theme.Basic())
	assert.Error(t, err)
	assert.Len(t, rec.Ops, 2)
}

func TestNumberShowsValue(t *testing.T) {
	n := NewNumber[msg](image.Rect(0, 0, 40, 20))
	n.SetValue(-12)
	assert.Equal(t, -12, n.Value())

	resp := n.HandleEvent(core.EventMouseDown{Pos: at(1, 1)})
	assert.True(t, resp.Changed())
	_, ok := resp.Message()
	assert.False(t, ok)

	rec := gfx.NewRecorder(image.Rect(0, 0, 64, 64))
	require.NoError(t, n.DrawWithTheme(rec, theme.Basic()))
	assert.Equal(t, "-12", rec.Ops[len(rec.Ops)-1].Text)
}

func TestLabelColors(t *testing.T) {
	th := theme.Basic()
	l := NewLabel[msg]("hello", image.Rect(0, 0, 80, 16))
	rec := gfx.NewRecorder(image.Rect(0, 0, 80, 16))

	require.NoError(t, l.DrawWithTheme(rec, th))
	require.Len(t, rec.Ops, 1)
	assert.Equal(t, th.LabelTextColor(), rec.Ops[0].Color)

	rec.Reset()
	l.SetEnabled(false)
	require.NoError(t, l.DrawWithTheme(rec, th))
	assert.Equal(t, th.LabelDisabledTextColor(), rec.Ops[0].Color)
}
