package core

import "image"

// Input accumulates pointer and key state from the event stream. Platform
// backends use it to attach a position to button events, which most windowing
// APIs deliver without one.
type Input struct {
	keys    map[Key]bool
	pointer image.Point
	down    bool
	touch   bool
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.pointer = e.Pos
	case EventMouseDown:
		in.pointer, in.down = e.Pos, true
	case EventMouseUp:
		in.pointer, in.down = e.Pos, false
	case EventTouch:
		in.pointer, in.touch = e.Pos, true
	case EventTouchRelease:
		in.pointer, in.touch = e.Pos, false
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }
func (in *Input) Pointer() image.Point { return in.pointer }
func (in *Input) PointerDown() bool    { return in.down || in.touch }
func (in *Input) Touching() bool       { return in.touch }
