package demo

import (
	"fmt"
	"image"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/sprig/engine/core"
)

// Step is one scripted input action, read from YAML:
//
//   - {do: click, x: 230, y: 80}
//   - {do: move, x: 10, y: 10}
//   - {do: tap, x: 160, y: 180, repeat: 3}
//   - {do: type, text: "hi"}
type Step struct {
	Do     string `yaml:"do"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Text   string `yaml:"text,omitempty"`
	Repeat int    `yaml:"repeat,omitempty"`
}

// Events expands the step into the events a host would deliver.
func (s Step) Events() ([]core.Event, error) {
	p := image.Pt(s.X, s.Y)
	var once []core.Event
	switch s.Do {
	case "move":
		once = []core.Event{core.EventMouseMove{Pos: p}}
	case "down":
		once = []core.Event{core.EventMouseDown{Pos: p}}
	case "up":
		once = []core.Event{core.EventMouseUp{Pos: p}}
	case "click":
		once = []core.Event{core.EventMouseMove{Pos: p}, core.EventMouseDown{Pos: p}, core.EventMouseUp{Pos: p}}
	case "touch":
		once = []core.Event{core.EventTouch{Pos: p}}
	case "release":
		once = []core.Event{core.EventTouchRelease{Pos: p}}
	case "tap":
		once = []core.Event{core.EventTouch{Pos: p}, core.EventTouchRelease{Pos: p}}
	case "type":
		for _, r := range s.Text {
			once = append(once, core.EventKeyPress{Rune: r})
		}
	default:
		return nil, fmt.Errorf("script: unknown action %q", s.Do)
	}
	n := max(s.Repeat, 1)
	out := make([]core.Event, 0, n*len(once))
	for range n {
		out = append(out, once...)
	}
	return out, nil
}

// ParseScript decodes a YAML list of steps into an event sequence.
func ParseScript(data []byte) ([]core.Event, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	var out []core.Event
	for i, s := range steps {
		evs, err := s.Events()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		out = append(out, evs...)
	}
	return out, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) ([]core.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}
