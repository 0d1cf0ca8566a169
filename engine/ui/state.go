package ui

import "github.com/hubastard/sprig/engine/core"

// State is the interaction state of a widget.
type State int

const (
	Normal State = iota
	Hovered
	Pressed
	Focused
	Disabled
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Hovered:
		return "hovered"
	case Pressed:
		return "pressed"
	case Focused:
		return "focused"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Interactive reports whether the state accepts input.
func (s State) Interactive() bool { return s != Disabled }
func (s State) IsPressed() bool   { return s == Pressed }
func (s State) IsFocused() bool   { return s == Focused }

// StateManager drives one widget through the interaction states. The zero
// value is not ready; use NewStateManager.
type StateManager struct {
	current  State
	previous State
	enabled  bool
}

func NewStateManager() StateManager {
	return StateManager{current: Normal, previous: Normal, enabled: true}
}

func (m *StateManager) Current() State  { return m.current }
func (m *StateManager) Previous() State { return m.previous }
func (m *StateManager) IsEnabled() bool { return m.enabled }

// StateChanged reports whether the last transition moved to a new state.
func (m *StateManager) StateChanged() bool { return m.current != m.previous }

// SetEnabled toggles the disabled gate and reports whether the state moved.
// Re-enabling returns to Focused when the widget was focused before it was
// disabled, otherwise to Normal.
func (m *StateManager) SetEnabled(enabled bool) bool {
	if m.enabled == enabled {
		return false
	}
	m.enabled = enabled
	if !enabled {
		return m.SetState(Disabled)
	}
	target := Normal
	if m.previous == Focused {
		target = Focused
	}
	return m.SetState(target)
}

// SetState moves to s. Leaving Disabled is refused while the manager is
// disabled.
func (m *StateManager) SetState(s State) bool {
	if m.current == Disabled && s != Disabled && !m.enabled {
		return false
	}
	if m.current == s {
		return false
	}
	m.previous = m.current
	m.current = s
	return true
}

// Reset returns to Normal (or Disabled) and forgets the previous state.
func (m *StateManager) Reset() {
	if m.enabled {
		m.current = Normal
	} else {
		m.current = Disabled
	}
	m.previous = m.current
}

// HandleEvent applies the transition table for ev. containsPoint tells
// whether the event's position lies inside the widget; callers pass false for
// events without a position, which therefore never transition.
func (m *StateManager) HandleEvent(ev core.Event, containsPoint bool) bool {
	if !m.enabled {
		return false
	}
	next, ok := transition(m.current, ev, containsPoint)
	if !ok {
		return false
	}
	return m.SetState(next)
}

func transition(cur State, ev core.Event, inside bool) (State, bool) {
	switch ev.(type) {
	case core.EventMouseMove:
		switch {
		case cur == Normal && inside:
			return Hovered, true
		case cur == Hovered && !inside:
			return Normal, true
		case cur == Focused && inside:
			return Hovered, true
		case cur == Focused:
			return Normal, true
		}
	case core.EventMouseDown:
		if (cur == Normal || cur == Hovered) && inside {
			return Pressed, true
		}
	case core.EventMouseUp:
		if cur == Pressed {
			if inside {
				return Hovered, true
			}
			return Normal, true
		}
	case core.EventTouch:
		if cur == Normal && inside {
			return Pressed, true
		}
	case core.EventTouchRelease:
		// Touch has no hover.
		if cur == Pressed {
			return Normal, true
		}
	}
	return cur, false
}
