package frogger

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrBadScript is wrapped by every replay script parse failure.
var ErrBadScript = errors.New("frogger: bad script")

// maxScriptEvents bounds the expansion of nested repeat steps.
const maxScriptEvents = 1_000_000

// Script is a YAML replay script.
//
//	name: first hop
//	steps:
//	  - begin: true
//	  - move: up
//	  - repeat: 10
//	    steps:
//	      - advance: car1a
type Script struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Step is one script entry. Exactly one of Begin, Move, Advance or Repeat is set.
type Step struct {
	Begin   bool   `yaml:"begin,omitempty"`
	Move    string `yaml:"move,omitempty"`
	Advance string `yaml:"advance,omitempty"`
	Repeat  int    `yaml:"repeat,omitempty"`
	Steps   []Step `yaml:"steps,omitempty"`
}

// ParseMove converts a direction name into a Move.
func ParseMove(s string) (Move, error) {
	switch s {
	case "left":
		return MoveLeft, nil
	case "right":
		return MoveRight, nil
	case "up":
		return MoveUp, nil
	case "down":
		return MoveDown, nil
	default:
		return 0, fmt.Errorf("%w: unknown move %q", ErrBadScript, s)
	}
}

// ParseScript decodes a YAML script into its flattened event stream.
func ParseScript(data []byte) (Script, []Event, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, nil, fmt.Errorf("%w: %w", ErrBadScript, err)
	}

	events, err := expand(sc.Steps, nil)
	if err != nil {
		return sc, nil, err
	}
	return sc, events, nil
}

func expand(steps []Step, out []Event) ([]Event, error) {
	for i, st := range steps {
		set := 0
		for _, b := range []bool{st.Begin, st.Move != "", st.Advance != "", st.Repeat != 0} {
			if b {
				set++
			}
		}
		if set != 1 {
			return nil, fmt.Errorf("%w: step %d must set exactly one of begin, move, advance, repeat", ErrBadScript, i)
		}

		switch {
		case st.Begin:
			out = append(out, BeginEvent())
		case st.Move != "":
			m, err := ParseMove(st.Move)
			if err != nil {
				return nil, err
			}
			out = append(out, MoveEvent(m))
		case st.Advance != "":
			out = append(out, AdvanceEvent(st.Advance))
		default:
			if st.Repeat < 0 || len(st.Steps) == 0 {
				return nil, fmt.Errorf("%w: step %d: repeat needs a positive count and nested steps", ErrBadScript, i)
			}
			body, err := expand(st.Steps, nil)
			if err != nil {
				return nil, err
			}
			if len(out)+len(body)*st.Repeat > maxScriptEvents {
				return nil, fmt.Errorf("%w: script expands past %d events", ErrBadScript, maxScriptEvents)
			}
			for range st.Repeat {
				out = append(out, body...)
			}
		}
	}
	return out, nil
}

// RecordScript encodes events as a script. Runs of identical events are
// collapsed into repeat steps.
func RecordScript(name string, events []Event) ([]byte, error) {
	sc := Script{Name: name}
	for i := 0; i < len(events); {
		j := i + 1
		for j < len(events) && events[j] == events[i] {
			j++
		}
		st := stepOf(events[i])
		if n := j - i; n > 1 {
			st = Step{Repeat: n, Steps: []Step{st}}
		}
		sc.Steps = append(sc.Steps, st)
		i = j
	}

	data, err := yaml.Marshal(sc)
	if err != nil {
		return nil, fmt.Errorf("frogger: cannot encode script: %w", err)
	}
	return data, nil
}

func stepOf(ev Event) Step {
	switch ev.Kind {
	case EventMove:
		return Step{Move: ev.Move.String()}
	case EventAdvance:
		return Step{Advance: ev.HazardID}
	default:
		return Step{Begin: true}
	}
}
