package ui

import (
	"image"

	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/theme"
)

// AbsoluteBounds translates id's local bounds by the origin of every
// ancestor. A broken ancestor chain stops the walk with the offset gathered
// so far; unknown ids yield an empty rectangle.
func (t *Tree[M]) AbsoluteBounds(id WidgetID) image.Rectangle {
	n := t.node(id)
	if n == nil {
		return image.Rectangle{}
	}
	r := n.LocalBounds()
	for p := n.parent; p != Invalid; {
		pn := t.node(p)
		if pn == nil {
			break
		}
		r = r.Add(pn.LocalBounds().Min)
		p = pn.parent
	}
	return r
}

// HitTest returns the topmost visible widget containing p. Later siblings
// are on top of earlier ones, and children on top of their parent.
func (t *Tree[M]) HitTest(p image.Point) (WidgetID, bool) {
	return t.hit(Root, image.Point{}, p)
}

func (t *Tree[M]) hit(id WidgetID, origin, p image.Point) (WidgetID, bool) {
	n := t.node(id)
	if n == nil || !n.visible {
		return Invalid, false
	}
	abs := n.LocalBounds().Add(origin)
	if !p.In(abs) {
		return Invalid, false
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit, ok := t.hit(n.children[i], abs.Min, p); ok {
			return hit, true
		}
	}
	if n.widget != nil {
		return id, true
	}
	return Invalid, false
}

// DrawAll draws every visible widget in pre-order. Each widget draws in its
// parent's coordinate space. The first surface error ends the pass.
func (t *Tree[M]) DrawAll(s gfx.Surface, th theme.Theme) error {
	return t.draw(Root, image.Point{}, s, th)
}

func (t *Tree[M]) draw(id WidgetID, origin image.Point, s gfx.Surface, th theme.Theme) error {
	n := t.node(id)
	if n == nil || !n.visible {
		return nil
	}
	if n.widget != nil {
		if err := n.widget.DrawWithTheme(gfx.Offset(s, origin), th); err != nil {
			return err
		}
	}
	abs := n.LocalBounds().Add(origin)
	for _, c := range n.children {
		if err := t.draw(c, abs.Min, s, th); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits visible widget nodes in pre-order, passing the absolute origin
// of each widget's parent. Returning false stops the walk. fn must not add or
// remove nodes.
func (t *Tree[M]) Walk(fn func(id WidgetID, w Widget[M], origin image.Point) bool) {
	t.walk(Root, image.Point{}, fn)
}

func (t *Tree[M]) walk(id WidgetID, origin image.Point, fn func(WidgetID, Widget[M], image.Point) bool) bool {
	n := t.node(id)
	if n == nil || !n.visible {
		return true
	}
	if n.widget != nil && !fn(id, n.widget, origin) {
		return false
	}
	abs := n.LocalBounds().Add(origin)
	for _, c := range n.children {
		if !t.walk(c, abs.Min, fn) {
			return false
		}
	}
	return true
}
