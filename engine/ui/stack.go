package ui

import (
	"image"

	"github.com/hubastard/sprig/engine/gfx"
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	// AlignStretch fills the cross axis. On the main axis it acts as AlignStart.
	AlignStretch
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Arrangeable is the part of a tree a layout needs. *Tree satisfies it.
type Arrangeable interface {
	Children(id WidgetID) []WidgetID
	LocalBounds(id WidgetID) (image.Rectangle, bool)
	SetLocalBounds(id WidgetID, r image.Rectangle) error
}

// Stack places a container's children one after another along Axis, inside
// the container's bounds shrunk by Padding. Children keep their own size on
// the main axis.
type Stack struct {
	Axis       Axis
	Gap        int
	Padding    int
	MainAlign  Align
	CrossAlign Align
}

// Arrange rewrites the local bounds of id's children. Widget children must
// be Resizable.
func (l Stack) Arrange(t Arrangeable, id WidgetID) error {
	bounds, ok := t.LocalBounds(id)
	if !ok {
		return treeErr("Arrange", id, ErrNotFound)
	}
	inner := gfx.Inset(image.Rectangle{Max: bounds.Size()}, l.Padding)
	children := t.Children(id)

	used := 0
	for i, c := range children {
		r, _ := t.LocalBounds(c)
		used += l.main(r.Size())
		if i > 0 {
			used += l.Gap
		}
	}

	avail := l.main(inner.Size())
	cross := l.cross(inner.Size())
	cursor := l.main(inner.Min)
	if remaining := avail - used; remaining > 0 {
		switch l.MainAlign {
		case AlignCenter:
			cursor += remaining / 2
		case AlignEnd:
			cursor += remaining
		}
	}

	for _, c := range children {
		r, _ := t.LocalBounds(c)
		size := r.Size()
		m := l.main(size)
		x := l.cross(size)
		if l.CrossAlign == AlignStretch || x > cross {
			x = cross
		}
		at := l.cross(inner.Min)
		switch l.CrossAlign {
		case AlignCenter:
			at += (cross - x) / 2
		case AlignEnd:
			at += cross - x
		}
		if err := t.SetLocalBounds(c, l.rect(cursor, at, m, x)); err != nil {
			return err
		}
		cursor += m + l.Gap
	}
	return nil
}

func (l Stack) main(p image.Point) int {
	if l.Axis == Vertical {
		return p.Y
	}
	return p.X
}

func (l Stack) cross(p image.Point) int {
	if l.Axis == Vertical {
		return p.X
	}
	return p.Y
}

func (l Stack) rect(mainPos, crossPos, mainSize, crossSize int) image.Rectangle {
	if l.Axis == Vertical {
		return image.Rect(crossPos, mainPos, crossPos+crossSize, mainPos+mainSize)
	}
	return image.Rect(mainPos, crossPos, mainPos+mainSize, crossPos+crossSize)
}
