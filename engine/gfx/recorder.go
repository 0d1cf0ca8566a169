package gfx

import (
	"fmt"
	"image"

	"github.com/hubastard/sprig/engine/colors"
)

type OpKind int

const (
	OpFill OpKind = iota
	OpStroke
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Rect  image.Rectangle
	Color colors.Color
	Width int
	Text  string
}

func (op Op) String() string {
	switch op.Kind {
	case OpStroke:
		return fmt.Sprintf("%s %v %s w=%d", op.Kind, op.Rect, op.Color, op.Width)
	case OpText:
		return fmt.Sprintf("%s %v %s %q", op.Kind, op.Rect, op.Color, op.Text)
	default:
		return fmt.Sprintf("%s %v %s", op.Kind, op.Rect, op.Color)
	}
}

// Recorder is a Surface that keeps the ordered list of draw calls instead of
// rasterizing them. FailAfter makes the call with that index (0-based) and
// every later one fail with Err, for exercising error paths.
type Recorder struct {
	Size      image.Rectangle
	Ops       []Op
	FailAfter int
	Err       error
	calls     int
}

func NewRecorder(bounds image.Rectangle) *Recorder {
	return &Recorder{Size: bounds, FailAfter: -1}
}

func (r *Recorder) Bounds() image.Rectangle { return r.Size }

func (r *Recorder) FillRect(rect image.Rectangle, c colors.Color) error {
	return r.record(Op{Kind: OpFill, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect image.Rectangle, c colors.Color, width int) error {
	return r.record(Op{Kind: OpStroke, Rect: rect, Color: c, Width: width})
}

func (r *Recorder) DrawText(box image.Rectangle, s string, style TextStyle) error {
	return r.record(Op{Kind: OpText, Rect: box, Color: style.Color, Text: s})
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.calls = 0
}

func (r *Recorder) record(op Op) error {
	defer func() { r.calls++ }()
	if r.FailAfter >= 0 && r.calls >= r.FailAfter {
		if r.Err != nil {
			return r.Err
		}
		return fmt.Errorf("recorder: forced failure at call %d", r.calls)
	}
	r.Ops = append(r.Ops, op)
	return nil
}
