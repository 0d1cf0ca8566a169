// Package ui is a retained-mode widget toolkit for small displays.
//
// Widgets live in a fixed-capacity Tree owned by a Screen. Each widget keeps
// its bounds relative to its parent and an interaction state driven by
// pointer and touch events. Messages of the application-defined type M are
// produced when a widget's state changes, and drawing goes through a
// gfx.Surface with an explicit theme.Theme.
package ui

import (
	"image"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/theme"
)

// Widget is the capability every tree payload provides.
type Widget[M any] interface {
	// BoundingBox is relative to the parent node's origin.
	BoundingBox() image.Rectangle
	HandleEvent(ev core.Event) Response[M]
	DrawWithTheme(s gfx.Surface, t theme.Theme) error
	State() State
	SetState(State) bool
	IsEnabled() bool
	SetEnabled(bool) bool
}

// Resizable widgets accept new bounds from layout.
type Resizable interface {
	SetBounds(r image.Rectangle)
}

// Response reports what handling one event did to a widget.
type Response[M any] struct {
	changed bool
	msg     M
	hasMsg  bool
}

func NotChanged[M any]() Response[M] { return Response[M]{} }

// Changed reports a state change without a message.
func Changed[M any]() Response[M] { return Response[M]{changed: true} }

// ChangedWith reports a state change carrying msg.
func ChangedWith[M any](msg M) Response[M] {
	return Response[M]{changed: true, msg: msg, hasMsg: true}
}

func (r Response[M]) Changed() bool { return r.changed }

func (r Response[M]) Message() (M, bool) { return r.msg, r.hasMsg }
