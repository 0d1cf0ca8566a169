package ui

import (
	"image"
	"log/slog"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/theme"
)

// Routing selects which widgets see a pointer event.
type Routing int

const (
	// RouteHitTest delivers to the widget under the point plus every widget
	// that is hovered, pressed or focused, so they can leave that state.
	RouteHitTest Routing = iota
	// RouteBroadcast delivers every event to every visible widget.
	RouteBroadcast
)

func (r Routing) String() string {
	if r == RouteBroadcast {
		return "broadcast"
	}
	return "hit-test"
}

type screenConfig struct {
	capacity    int
	maxChildren int
	background  colors.Color
	hasBG       bool
	routing     Routing
	logger      *slog.Logger
}

type ScreenOption func(*screenConfig)

func WithBackground(c colors.Color) ScreenOption {
	return func(sc *screenConfig) { sc.background, sc.hasBG = c, true }
}

// WithCapacity sets the node capacity of the screen's tree, root included.
func WithCapacity(n int) ScreenOption {
	return func(sc *screenConfig) { sc.capacity = n }
}

func WithScreenMaxChildren(n int) ScreenOption {
	return func(sc *screenConfig) { sc.maxChildren = n }
}

func WithRouting(r Routing) ScreenOption {
	return func(sc *screenConfig) { sc.routing = r }
}

func WithLogger(l *slog.Logger) ScreenOption {
	return func(sc *screenConfig) {
		if l != nil {
			sc.logger = l
		}
	}
}

// Screen owns one widget tree and is what a host talks to: it adds and
// removes widgets, routes input and draws.
type Screen[M any] struct {
	tree       *Tree[M]
	bounds     image.Rectangle
	background colors.Color
	hasBG      bool
	routing    Routing
	log        *slog.Logger
	msgs       []M
}

func NewScreen[M any](bounds image.Rectangle, opts ...ScreenOption) *Screen[M] {
	cfg := screenConfig{
		capacity:    DefaultCapacity,
		maxChildren: DefaultMaxChildren,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Screen[M]{
		tree:       NewTree[M](cfg.capacity, WithMaxChildren(cfg.maxChildren)),
		bounds:     bounds.Canon(),
		background: cfg.background,
		hasBG:      cfg.hasBG,
		routing:    cfg.routing,
		log:        cfg.logger,
		msgs:       make([]M, 0, cfg.capacity),
	}
}

func (s *Screen[M]) Bounds() image.Rectangle { return s.bounds }
func (s *Screen[M]) Tree() *Tree[M]          { return s.tree }
func (s *Screen[M]) Routing() Routing        { return s.routing }

// AddWidget adds w to the root container.
func (s *Screen[M]) AddWidget(w Widget[M]) (WidgetID, error) {
	return s.AddWidgetTo(Root, w)
}

func (s *Screen[M]) AddWidgetTo(parent WidgetID, w Widget[M]) (WidgetID, error) {
	id, err := s.tree.AddWidget(parent, w)
	if err != nil {
		return id, err
	}
	s.log.Debug("widget added", "id", id, "parent", parent)
	return id, nil
}

func (s *Screen[M]) AddContainer(bounds image.Rectangle) (WidgetID, error) {
	return s.AddContainerTo(Root, bounds)
}

func (s *Screen[M]) AddContainerTo(parent WidgetID, bounds image.Rectangle) (WidgetID, error) {
	id, err := s.tree.AddContainer(parent, bounds)
	if err != nil {
		return id, err
	}
	s.log.Debug("container added", "id", id, "parent", parent, "bounds", bounds)
	return id, nil
}

func (s *Screen[M]) RemoveWidget(id WidgetID) bool {
	before := s.tree.Len()
	if !s.tree.RemoveWidget(id) {
		return false
	}
	s.log.Debug("widget removed", "id", id, "nodes", before-s.tree.Len())
	return true
}

func (s *Screen[M]) Widget(id WidgetID) (Widget[M], bool) { return s.tree.Widget(id) }

func (s *Screen[M]) Update(id WidgetID, fn func(Widget[M])) error {
	return s.tree.Update(id, fn)
}

func (s *Screen[M]) SetVisible(id WidgetID, visible bool) bool {
	return s.tree.SetVisible(id, visible)
}

func (s *Screen[M]) IsVisible(id WidgetID) bool { return s.tree.IsVisible(id) }

// HitTest is Tree.HitTest limited to the screen bounds.
func (s *Screen[M]) HitTest(p image.Point) (WidgetID, bool) {
	if !p.In(s.bounds) {
		return Invalid, false
	}
	return s.tree.HitTest(p)
}

// Focus moves keyboard focus to id, returning any other focused widget to
// Normal. It reports false when id is not a widget or refuses focus.
func (s *Screen[M]) Focus(id WidgetID) bool {
	target, ok := s.tree.Widget(id)
	if !ok || !target.IsEnabled() {
		return false
	}
	s.tree.Walk(func(other WidgetID, w Widget[M], _ image.Point) bool {
		if other != id && w.State() == Focused {
			w.SetState(Normal)
		}
		return true
	})
	if target.State() == Focused {
		return true
	}
	if !target.SetState(Focused) {
		return false
	}
	s.log.Debug("focus", "id", id)
	return true
}

// HandleEvent routes ev to the widgets it concerns. It returns the messages
// they emitted, in tree order, and whether any widget changed state. The
// returned slice is reused by the next call.
func (s *Screen[M]) HandleEvent(ev core.Event) ([]M, bool) {
	s.msgs = s.msgs[:0]
	var changed bool

	deliver := func(id WidgetID, w Widget[M], origin image.Point) {
		resp := w.HandleEvent(core.Translate(ev, origin.Mul(-1)))
		if !resp.Changed() {
			return
		}
		changed = true
		s.log.Debug("state changed", "id", id, "state", w.State())
		if msg, ok := resp.Message(); ok {
			s.msgs = append(s.msgs, msg)
		}
	}

	switch ev.(type) {
	case core.EventKeyPress, core.EventKey:
		s.tree.Walk(func(id WidgetID, w Widget[M], origin image.Point) bool {
			if w.State() == Focused {
				deliver(id, w, origin)
			}
			return true
		})
		return s.msgs, changed
	}

	p, ok := core.PointOf(ev)
	if !ok {
		return s.msgs, false
	}

	if s.routing == RouteBroadcast {
		s.tree.Walk(func(id WidgetID, w Widget[M], origin image.Point) bool {
			deliver(id, w, origin)
			return true
		})
		return s.msgs, changed
	}

	hit, _ := s.HitTest(p)
	s.tree.Walk(func(id WidgetID, w Widget[M], origin image.Point) bool {
		switch {
		case id == hit:
		case w.State() == Hovered, w.State() == Pressed, w.State() == Focused:
		default:
			return true
		}
		deliver(id, w, origin)
		return true
	})
	return s.msgs, changed
}

// Draw fills the screen with the background color, if any, and draws the
// tree. A surface error aborts the pass and is returned.
func (s *Screen[M]) Draw(surface gfx.Surface, t theme.Theme) error {
	if s.hasBG {
		if err := surface.FillRect(s.bounds, s.background); err != nil {
			return err
		}
	}
	return s.tree.DrawAll(surface, t)
}
