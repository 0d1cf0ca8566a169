package ui

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/gfx/raster"
	"github.com/hubastard/sprig/engine/theme"
)

// fixed is a widget that cannot be resized.
type fixed struct {
	sm StateManager
	r  image.Rectangle
}

func newFixed(r image.Rectangle) *fixed { return &fixed{sm: NewStateManager(), r: r} }

func (f *fixed) BoundingBox() image.Rectangle                 { return f.r }
func (f *fixed) HandleEvent(core.Event) Response[msg]         { return NotChanged[msg]() }
func (f *fixed) DrawWithTheme(gfx.Surface, theme.Theme) error { return nil }
func (f *fixed) State() State                                 { return f.sm.Current() }
func (f *fixed) SetState(s State) bool                        { return f.sm.SetState(s) }
func (f *fixed) IsEnabled() bool                              { return f.sm.IsEnabled() }
func (f *fixed) SetEnabled(v bool) bool                       { return f.sm.SetEnabled(v) }

func button(r image.Rectangle) *Button[msg] { return NewButton[msg]("b", r) }

func TestRootAlwaysPresent(t *testing.T) {
	tree := NewTree[msg](4)
	n, ok := tree.Node(Root)
	require.True(t, ok)
	assert.Equal(t, Invalid, n.Parent())
	assert.True(t, n.IsContainer())
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 4, tree.Cap())
	assert.False(t, tree.RemoveWidget(Root))
	assert.True(t, tree.Contains(Root))
}

func TestIDsAreNeverReused(t *testing.T) {
	tree := NewTree[msg](4)
	var last WidgetID
	for i := 0; i < 3; i++ {
		id, err := tree.AddWidget(Root, button(image.Rect(0, 0, 1, 1)))
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
	require.True(t, tree.RemoveWidget(2))

	id, err := tree.AddContainer(Root, image.Rect(0, 0, 1, 1))
	require.NoError(t, err)
	assert.Greater(t, id, last)
	assert.NotEqual(t, WidgetID(2), id)
}

func TestAddFailsAtomically(t *testing.T) {
	tree := NewTree[msg](2)
	_, err := tree.AddWidget(Root, button(image.Rect(0, 0, 1, 1)))
	require.NoError(t, err)

	id, err := tree.AddWidget(Root, button(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, ErrTreeFull)
	assert.Equal(t, Invalid, id)
	assert.Equal(t, 2, tree.Len())
	assert.Len(t, tree.Children(Root), 1)

	var te *TreeError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "AddWidget", te.Op)
	assert.Equal(t, Root, te.ID)
}

func TestAddToMissingParent(t *testing.T) {
	tree := NewTree[msg](4)
	_, err := tree.AddWidget(99, button(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, ErrParentNotFound)
	_, err = tree.AddContainer(99, image.Rect(0, 0, 1, 1))
	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.Equal(t, 1, tree.Len())

	_, err = tree.AddWidget(Root, nil)
	assert.ErrorIs(t, err, ErrNilWidget)
}

func TestParentFullDoesNotConsumeID(t *testing.T) {
	tree := NewTree[msg](8, WithMaxChildren(2))
	a, err := tree.AddContainer(Root, image.Rect(0, 0, 10, 10))
	require.NoError(t, err)
	_, err = tree.AddContainer(Root, image.Rect(0, 0, 10, 10))
	require.NoError(t, err)

	_, err = tree.AddWidget(Root, button(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, ErrParentFull)
	assert.Equal(t, 3, tree.Len())

	id, err := tree.AddWidget(a, button(image.Rect(0, 0, 1, 1)))
	require.NoError(t, err)
	assert.Equal(t, WidgetID(3), id)
}

func TestRemoveIsRecursive(t *testing.T) {
	tree := NewTree[msg](6)
	c, _ := tree.AddContainer(Root, image.Rect(0, 0, 100, 100))
	w1, _ := tree.AddWidget(c, button(image.Rect(0, 0, 10, 10)))
	c2, _ := tree.AddContainer(c, image.Rect(10, 10, 50, 50))
	w2, _ := tree.AddWidget(c2, button(image.Rect(0, 0, 10, 10)))
	keep, err := tree.AddWidget(Root, button(image.Rect(0, 0, 10, 10)))
	require.NoError(t, err)
	require.Equal(t, 6, tree.Len())

	assert.True(t, tree.RemoveWidget(c))
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, []WidgetID{keep}, tree.Children(Root))
	for _, id := range []WidgetID{c, w1, c2, w2} {
		_, ok := tree.Node(id)
		assert.False(t, ok, id)
	}
	assert.False(t, tree.RemoveWidget(c))

	// Freed slots are usable again.
	for i := 0; i < 4; i++ {
		_, err := tree.AddWidget(Root, button(image.Rect(0, 0, 1, 1)))
		require.NoError(t, err)
	}
	_, err = tree.AddWidget(Root, button(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, ErrTreeFull)
}

func TestRemoveLeafKeepsSiblingOrder(t *testing.T) {
	tree := NewTree[msg](8)
	a, _ := tree.AddWidget(Root, button(image.Rect(0, 0, 1, 1)))
	b, _ := tree.AddWidget(Root, button(image.Rect(0, 0, 1, 1)))
	c, _ := tree.AddWidget(Root, button(image.Rect(0, 0, 1, 1)))

	require.True(t, tree.RemoveWidget(b))
	assert.Equal(t, []WidgetID{a, c}, tree.Children(Root))
	assert.Equal(t, 3, tree.Len())
}

func TestVisibilityIsConjunctive(t *testing.T) {
	tree := NewTree[msg](8)
	c, _ := tree.AddContainer(Root, image.Rect(0, 0, 100, 100))
	w, _ := tree.AddWidget(c, button(image.Rect(0, 0, 10, 10)))

	assert.True(t, tree.IsVisible(w))
	assert.True(t, tree.SetVisible(c, false))
	assert.False(t, tree.IsVisible(w))
	assert.False(t, tree.IsVisible(c))

	assert.True(t, tree.SetVisible(c, true))
	assert.True(t, tree.SetVisible(c, true))
	assert.True(t, tree.IsVisible(w))

	assert.True(t, tree.SetVisible(Root, false))
	assert.False(t, tree.IsVisible(w))

	assert.False(t, tree.SetVisible(99, true))
	assert.False(t, tree.IsVisible(99))
}

func scenarioTree(t *testing.T) (*Tree[msg], WidgetID, WidgetID) {
	t.Helper()
	tree := NewTree[msg](4)
	c, err := tree.AddContainer(Root, image.Rect(0, 0, 320, 100))
	require.NoError(t, err)
	first, err := tree.AddWidget(c, button(image.Rect(0, 0, 100, 100)))
	require.NoError(t, err)
	second, err := tree.AddWidget(c, button(image.Rect(100, 0, 200, 100)))
	require.NoError(t, err)
	return tree, first, second
}

func TestHitTestScenario(t *testing.T) {
	tree, first, second := scenarioTree(t)

	id, ok := tree.HitTest(at(150, 50))
	assert.True(t, ok)
	assert.Equal(t, second, id)

	id, ok = tree.HitTest(at(5, 5))
	assert.True(t, ok)
	assert.Equal(t, first, id)

	_, ok = tree.HitTest(at(5, 150))
	assert.False(t, ok)

	// Inside the container but outside both widgets.
	_, ok = tree.HitTest(at(250, 50))
	assert.False(t, ok)
}

func TestHitTestPrefersLastAdded(t *testing.T) {
	tree := NewTree[msg](8)
	_, _ = tree.AddWidget(Root, button(image.Rect(0, 0, 50, 50)))
	top, _ := tree.AddWidget(Root, button(image.Rect(25, 25, 75, 75)))

	id, ok := tree.HitTest(at(30, 30))
	require.True(t, ok)
	assert.Equal(t, top, id)

	tree.SetVisible(top, false)
	id, ok = tree.HitTest(at(30, 30))
	require.True(t, ok)
	assert.NotEqual(t, top, id)
}

func TestHitTestChildOfWidget(t *testing.T) {
	tree := NewTree[msg](8)
	parent, _ := tree.AddWidget(Root, button(image.Rect(0, 0, 50, 50)))
	child, _ := tree.AddWidget(parent, button(image.Rect(10, 10, 20, 20)))

	id, _ := tree.HitTest(at(15, 15))
	assert.Equal(t, child, id)
	id, _ = tree.HitTest(at(5, 5))
	assert.Equal(t, parent, id)
}

func TestAbsoluteBoundsAccumulatesOffsets(t *testing.T) {
	tree := NewTree[msg](8)
	outer, _ := tree.AddContainer(Root, image.Rect(10, 20, 200, 200))
	inner, _ := tree.AddContainer(outer, image.Rect(5, 5, 100, 100))
	w, _ := tree.AddWidget(inner, button(image.Rect(1, 2, 11, 12)))

	assert.Equal(t, image.Rect(16, 27, 26, 37), tree.AbsoluteBounds(w))
	assert.Equal(t, image.Rect(15, 25, 110, 120), tree.AbsoluteBounds(inner))
	assert.Equal(t, image.Rectangle{}, tree.AbsoluteBounds(99))

	id, ok := tree.HitTest(at(20, 30))
	require.True(t, ok)
	assert.Equal(t, w, id)
	_, ok = tree.HitTest(at(3, 4))
	assert.False(t, ok)
}

func TestRootBoundsOption(t *testing.T) {
	tree := NewTree[msg](4, WithRootBounds(image.Rect(0, 0, 64, 64)))
	_, _ = tree.AddWidget(Root, button(image.Rect(60, 60, 100, 100)))

	_, ok := tree.HitTest(at(62, 62))
	assert.True(t, ok)
	_, ok = tree.HitTest(at(80, 80))
	assert.False(t, ok, "root bounds clip hit-testing")
}

func TestUpdateAndWidgetLookup(t *testing.T) {
	tree := NewTree[msg](4)
	c, _ := tree.AddContainer(Root, image.Rect(0, 0, 10, 10))
	n, _ := tree.AddWidget(Root, NewNumber[msg](image.Rect(0, 0, 10, 10)))

	require.NoError(t, tree.Update(n, func(w Widget[msg]) {
		w.(*Number[msg]).SetValue(7)
	}))
	w, ok := tree.Widget(n)
	require.True(t, ok)
	assert.Equal(t, 7, w.(*Number[msg]).Value())

	assert.ErrorIs(t, tree.Update(c, func(Widget[msg]) {}), ErrNotFound)
	assert.ErrorIs(t, tree.Update(42, func(Widget[msg]) {}), ErrNotFound)
	_, ok = tree.Widget(c)
	assert.False(t, ok)
}

func TestSetLocalBounds(t *testing.T) {
	tree := NewTree[msg](8)
	c, _ := tree.AddContainer(Root, image.Rect(0, 0, 10, 10))
	b, _ := tree.AddWidget(c, button(image.Rect(0, 0, 10, 10)))
	f, _ := tree.AddWidget(c, newFixed(image.Rect(0, 0, 10, 10)))

	require.NoError(t, tree.SetLocalBounds(c, image.Rect(5, 5, 50, 50)))
	require.NoError(t, tree.SetLocalBounds(b, image.Rect(1, 1, 4, 4)))
	assert.Equal(t, image.Rect(6, 6, 9, 9), tree.AbsoluteBounds(b))

	assert.ErrorIs(t, tree.SetLocalBounds(f, image.Rect(0, 0, 1, 1)), ErrNotResizable)
	assert.ErrorIs(t, tree.SetLocalBounds(77, image.Rect(0, 0, 1, 1)), ErrNotFound)
}

func TestDrawAllOrderAndOffsets(t *testing.T) {
	th := theme.Basic()
	tree := NewTree[msg](8)
	c, _ := tree.AddContainer(Root, image.Rect(10, 20, 200, 200))
	_, _ = tree.AddWidget(c, NewLabel[msg]("a", image.Rect(0, 0, 40, 10)))
	hidden, _ := tree.AddContainer(c, image.Rect(0, 0, 100, 100))
	_, _ = tree.AddWidget(hidden, NewLabel[msg]("hidden", image.Rect(0, 0, 40, 10)))
	_, _ = tree.AddWidget(Root, NewLabel[msg]("b", image.Rect(0, 100, 40, 110)))
	tree.SetVisible(hidden, false)

	rec := gfx.NewRecorder(image.Rect(0, 0, 320, 240))
	require.NoError(t, tree.DrawAll(rec, th))
	require.Len(t, rec.Ops, 2)
	assert.Equal(t, "a", rec.Ops[0].Text)
	assert.Equal(t, image.Rect(10, 20, 50, 30), rec.Ops[0].Rect)
	assert.Equal(t, "b", rec.Ops[1].Text)
	assert.Equal(t, image.Rect(0, 100, 40, 110), rec.Ops[1].Rect)

	first := append([]gfx.Op(nil), rec.Ops...)
	rec.Reset()
	require.NoError(t, tree.DrawAll(rec, th))
	assert.Equal(t, first, rec.Ops)
}

func TestDrawAllStopsAtFirstError(t *testing.T) {
	th := theme.Basic()
	tree, first, _ := scenarioTree(t)
	rec := gfx.NewRecorder(image.Rect(0, 0, 320, 240))
	rec.FailAfter = 1

	assert.Error(t, tree.DrawAll(rec, th))
	assert.Len(t, rec.Ops, 1)

	// The model is untouched and the next pass succeeds.
	w, _ := tree.Widget(first)
	assert.Equal(t, Normal, w.State())
	rec.FailAfter = -1
	rec.Reset()
	require.NoError(t, tree.DrawAll(rec, th))
	assert.Len(t, rec.Ops, 6)
}

func TestDrawAllStrictFramebuffer(t *testing.T) {
	tree := NewTree[msg](4)
	_, _ = tree.AddWidget(Root, button(image.Rect(0, 0, 20, 20)))
	_, _ = tree.AddWidget(Root, button(image.Rect(100, 100, 140, 120)))

	fb := raster.NewSize(64, 64)
	fb.Strict = true
	err := tree.DrawAll(fb, theme.Basic())
	assert.ErrorIs(t, err, raster.ErrOutOfBounds)

	fb.Strict = false
	assert.NoError(t, tree.DrawAll(fb, theme.Basic()))
}

func TestWalkVisitsVisibleWidgetsWithOrigins(t *testing.T) {
	tree := NewTree[msg](8)
	c, _ := tree.AddContainer(Root, image.Rect(10, 10, 100, 100))
	a, _ := tree.AddWidget(c, button(image.Rect(0, 0, 5, 5)))
	b, _ := tree.AddWidget(Root, button(image.Rect(0, 0, 5, 5)))

	var ids []WidgetID
	var origins []image.Point
	tree.Walk(func(id WidgetID, _ Widget[msg], origin image.Point) bool {
		ids = append(ids, id)
		origins = append(origins, origin)
		return true
	})
	assert.Equal(t, []WidgetID{a, b}, ids)
	assert.Equal(t, []image.Point{at(10, 10), at(0, 0)}, origins)

	ids = ids[:0]
	tree.Walk(func(id WidgetID, _ Widget[msg], _ image.Point) bool {
		ids = append(ids, id)
		return false
	})
	assert.Equal(t, []WidgetID{a}, ids)
}
