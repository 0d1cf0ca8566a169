// Package demo builds the counter screen shared by the simulator and the
// snapshot tool.
package demo

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/text"
	"github.com/hubastard/sprig/engine/theme"
	"github.com/hubastard/sprig/engine/ui"
)

type Msg int

const (
	Increment Msg = iota + 1
	Decrement
	Reset
)

func (m Msg) String() string {
	switch m {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Reset:
		return "reset"
	default:
		return fmt.Sprintf("Msg(%d)", int(m))
	}
}

// Counter is a title, a row of -, value, + and a reset button.
type Counter struct {
	Screen *ui.Screen[Msg]

	value  int
	number ui.WidgetID
	status ui.WidgetID
	log    *slog.Logger
}

// NewCounter lays the demo out for a display of the given size.
func NewCounter(display image.Rectangle, log *slog.Logger, opts ...ui.ScreenOption) (*Counter, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	opts = append([]ui.ScreenOption{ui.WithBackground(colors.White), ui.WithLogger(log)}, opts...)
	c := &Counter{Screen: ui.NewScreen[Msg](display, opts...), log: log}
	scr := c.Screen
	w, h := display.Dx(), display.Dy()

	title := ui.NewLabel[Msg]("sprig counter", image.Rect(0, 0, w, h/8)).
		Align(text.AlignCenter, text.AlignCenter).
		Large()
	if _, err := scr.AddWidget(title); err != nil {
		return nil, err
	}

	row, err := scr.AddContainer(image.Rect(0, h/6, w, h/6+h/3))
	if err != nil {
		return nil, err
	}
	cell := image.Rect(0, 0, w/5, h/4)
	dec := ui.NewButton[Msg]("-", cell).OnPress(Decrement)
	num := ui.NewNumber[Msg](cell)
	inc := ui.NewButton[Msg]("+", cell).OnPress(Increment)
	var ids [3]ui.WidgetID
	for i, wg := range []ui.Widget[Msg]{dec, num, inc} {
		if ids[i], err = scr.AddWidgetTo(row, wg); err != nil {
			return nil, err
		}
	}
	c.number = ids[1]
	stack := ui.Stack{Axis: ui.Horizontal, Gap: w / 40, MainAlign: ui.AlignCenter, CrossAlign: ui.AlignCenter}
	if err := stack.Arrange(scr.Tree(), row); err != nil {
		return nil, err
	}

	reset := ui.NewButton[Msg]("reset", image.Rect(w/2-w/6, h-h/3, w/2+w/6, h-h/6)).
		OnPress(Reset).
		Trigger(ui.OnRelease)
	if _, err := scr.AddWidget(reset); err != nil {
		return nil, err
	}

	c.status, err = scr.AddWidget(ui.NewLabel[Msg]("", image.Rect(4, h-h/8, w-4, h)))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Counter) Value() int { return c.value }

// HandleEvent routes ev and applies the messages it produced. It reports
// whether anything visible changed.
func (c *Counter) HandleEvent(ev core.Event) bool {
	msgs, changed := c.Screen.HandleEvent(ev)
	for _, m := range msgs {
		c.Apply(m)
	}
	return changed || len(msgs) > 0
}

func (c *Counter) Apply(m Msg) {
	switch m {
	case Increment:
		c.value++
	case Decrement:
		c.value--
	case Reset:
		c.value = 0
	default:
		c.log.Warn("unknown message", "msg", m)
		return
	}
	c.log.Debug("counter", "msg", m, "value", c.value)
	_ = c.Screen.Update(c.number, func(w ui.Widget[Msg]) {
		w.(*ui.Number[Msg]).SetValue(c.value)
	})
	_ = c.Screen.Update(c.status, func(w ui.Widget[Msg]) {
		w.(*ui.Label[Msg]).SetText("last: " + m.String())
	})
}

func (c *Counter) Draw(s gfx.Surface, t theme.Theme) error {
	return c.Screen.Draw(s, t)
}
