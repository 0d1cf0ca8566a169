package core

import "image"

// Event is the closed set of input and window events a host feeds to the toolkit.
type Event interface{ isEvent() }

// Pointer and touch events carry a position in display pixels.

type EventTouch struct{ Pos image.Point }

func (EventTouch) isEvent() {}

type EventTouchRelease struct{ Pos image.Point }

func (EventTouchRelease) isEvent() {}

type EventMouseMove struct{ Pos image.Point }

func (EventMouseMove) isEvent() {}

type EventMouseDown struct{ Pos image.Point }

func (EventMouseDown) isEvent() {}

type EventMouseUp struct{ Pos image.Point }

func (EventMouseUp) isEvent() {}

// EventKeyPress is a typed character. It carries no position.
type EventKeyPress struct{ Rune rune }

func (EventKeyPress) isEvent() {}

// Window-level events. Widgets never see a state change from these.

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// PointOf returns the position of a point-bearing event.
func PointOf(ev Event) (image.Point, bool) {
	switch e := ev.(type) {
	case EventTouch:
		return e.Pos, true
	case EventTouchRelease:
		return e.Pos, true
	case EventMouseMove:
		return e.Pos, true
	case EventMouseDown:
		return e.Pos, true
	case EventMouseUp:
		return e.Pos, true
	}
	return image.Point{}, false
}

// Translate returns ev with its position shifted by d. Events without a
// position are returned unchanged.
func Translate(ev Event, d image.Point) Event {
	if d == (image.Point{}) {
		return ev
	}
	switch e := ev.(type) {
	case EventTouch:
		e.Pos = e.Pos.Add(d)
		return e
	case EventTouchRelease:
		e.Pos = e.Pos.Add(d)
		return e
	case EventMouseMove:
		e.Pos = e.Pos.Add(d)
		return e
	case EventMouseDown:
		e.Pos = e.Pos.Add(d)
		return e
	case EventMouseUp:
		e.Pos = e.Pos.Add(d)
		return e
	}
	return ev
}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyP
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
