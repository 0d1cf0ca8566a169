package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/sprig/engine/core"
)

var (
	move    = core.EventMouseMove{}
	down    = core.EventMouseDown{}
	up      = core.EventMouseUp{}
	touch   = core.EventTouch{}
	release = core.EventTouchRelease{}
)

func TestClickSequence(t *testing.T) {
	sm := NewStateManager()
	assert.True(t, sm.HandleEvent(move, true))
	assert.Equal(t, Hovered, sm.Current())
	assert.True(t, sm.HandleEvent(down, true))
	assert.Equal(t, Pressed, sm.Current())
	assert.True(t, sm.HandleEvent(up, true))
	assert.Equal(t, Hovered, sm.Current())

	sm = NewStateManager()
	sm.HandleEvent(move, true)
	sm.HandleEvent(down, true)
	assert.True(t, sm.HandleEvent(up, false))
	assert.Equal(t, Normal, sm.Current())
}

func TestTouchSkipsHover(t *testing.T) {
	sm := NewStateManager()
	assert.False(t, sm.HandleEvent(touch, false))
	assert.True(t, sm.HandleEvent(touch, true))
	assert.Equal(t, Pressed, sm.Current())
	assert.True(t, sm.HandleEvent(release, false))
	assert.Equal(t, Normal, sm.Current())
}

func TestTransitionsWithoutEffect(t *testing.T) {
	tests := []struct {
		name   string
		start  State
		ev     core.Event
		inside bool
	}{
		{"move outside while normal", Normal, move, false},
		{"move inside while hovered", Hovered, move, true},
		{"press outside", Hovered, down, false},
		{"press while pressed", Pressed, down, true},
		{"release without press", Hovered, up, true},
		{"touch while hovered", Hovered, touch, true},
		{"touch release while normal", Normal, release, true},
		{"key press", Normal, core.EventKeyPress{Rune: 'a'}, false},
		{"window event", Hovered, core.EventResize{W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewStateManager()
			sm.SetState(tt.start)
			assert.False(t, sm.HandleEvent(tt.ev, tt.inside))
			assert.Equal(t, tt.start, sm.Current())
		})
	}
}

func TestFocusedLeavesOnMove(t *testing.T) {
	sm := NewStateManager()
	sm.SetState(Focused)
	assert.True(t, sm.HandleEvent(move, true))
	assert.Equal(t, Hovered, sm.Current())

	sm.SetState(Focused)
	assert.True(t, sm.HandleEvent(move, false))
	assert.Equal(t, Normal, sm.Current())
}

func TestDisableFromAnyState(t *testing.T) {
	for _, start := range []State{Normal, Hovered, Pressed, Focused} {
		t.Run(start.String(), func(t *testing.T) {
			sm := NewStateManager()
			sm.SetState(start)

			assert.True(t, sm.SetEnabled(false))
			assert.Equal(t, Disabled, sm.Current())
			assert.Equal(t, start, sm.Previous())
			assert.False(t, sm.IsEnabled())

			for _, ev := range []core.Event{move, down, up, touch, release} {
				assert.False(t, sm.HandleEvent(ev, true))
			}
			assert.False(t, sm.SetState(Hovered))
			assert.Equal(t, Disabled, sm.Current())

			assert.True(t, sm.SetEnabled(true))
			want := Normal
			if start == Focused {
				want = Focused
			}
			assert.Equal(t, want, sm.Current())
		})
	}
}

func TestSetEnabledUnchanged(t *testing.T) {
	sm := NewStateManager()
	assert.False(t, sm.SetEnabled(true))
	sm.SetEnabled(false)
	assert.False(t, sm.SetEnabled(false))
}

func TestSetStateSameState(t *testing.T) {
	sm := NewStateManager()
	assert.False(t, sm.SetState(Normal))
	assert.False(t, sm.StateChanged())
	assert.True(t, sm.SetState(Hovered))
	assert.True(t, sm.StateChanged())
	assert.Equal(t, Normal, sm.Previous())
}

func TestReset(t *testing.T) {
	sm := NewStateManager()
	sm.SetState(Pressed)
	sm.Reset()
	assert.Equal(t, Normal, sm.Current())
	assert.False(t, sm.StateChanged())

	sm.SetEnabled(false)
	sm.Reset()
	assert.Equal(t, Disabled, sm.Current())
	assert.Equal(t, Disabled, sm.Previous())
}

func TestStatePredicates(t *testing.T) {
	assert.True(t, Pressed.IsPressed())
	assert.True(t, Focused.IsFocused())
	assert.False(t, Disabled.Interactive())
	assert.True(t, Hovered.Interactive())
	assert.Equal(t, "pressed", Pressed.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestBaseUsesBoundsForContainment(t *testing.T) {
	b := NewBase(image.Rect(10, 10, 20, 20))
	assert.False(t, b.Interact(core.EventMouseMove{Pos: image.Pt(5, 5)}))
	assert.True(t, b.Interact(core.EventMouseMove{Pos: image.Pt(15, 15)}))
	assert.Equal(t, Hovered, b.State())
	// Max is exclusive.
	assert.True(t, b.Interact(core.EventMouseMove{Pos: image.Pt(20, 15)}))
	assert.Equal(t, Normal, b.State())
}
