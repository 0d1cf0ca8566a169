package ui

import (
	"image"
	"strconv"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/theme"
)

// Number displays an integer in a framed box. It follows the pointer like a
// button but never emits a message.
type Number[M any] struct {
	Base
	value int
}

func NewNumber[M any](bounds image.Rectangle) *Number[M] {
	return &Number[M]{Base: NewBase(bounds)}
}

func (n *Number[M]) Value() int     { return n.value }
func (n *Number[M]) SetValue(v int) { n.value = v }

func (n *Number[M]) HandleEvent(ev core.Event) Response[M] {
	if n.Interact(ev) {
		return Changed[M]()
	}
	return NotChanged[M]()
}

func (n *Number[M]) DrawWithTheme(s gfx.Surface, t theme.Theme) error {
	c := buttonChrome(n.State(), t)
	if err := drawFrame(s, n.BoundingBox(), c, t.ButtonBorderWidth()); err != nil {
		return err
	}
	return s.DrawText(n.BoundingBox(), strconv.Itoa(n.value), gfx.Centered(t.NormalFont(), c.fg))
}
