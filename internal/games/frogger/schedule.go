package frogger

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// Schedule is the in-process advance tick source. Each group fires once
// per period and emits an advance event for every hazard of its lanes.
// Time is virtual: it only moves when Advance is called.
type Schedule struct {
	groups []tickGroup
	now    time.Duration
}

type tickGroup struct {
	period time.Duration
	ids    []string
	next   time.Duration
}

// NewSchedule builds the tick groups described by cfg.Schedule.
func NewSchedule(cfg config.FroggerConfig) *Schedule {
	lanes := make(map[string]config.LaneConfig, len(cfg.Lanes))
	for _, l := range cfg.Lanes {
		lanes[l.Name] = l
	}

	s := &Schedule{}
	for _, g := range cfg.Schedule {
		tg := tickGroup{period: time.Duration(g.PeriodMS) * time.Millisecond}
		for _, name := range g.Lanes {
			l := lanes[name]
			for i := range l.Hazards {
				tg.ids = append(tg.ids, l.HazardID(i))
			}
		}
		s.groups = append(s.groups, tg)
	}
	s.Reset()
	return s
}

// Reset rewinds virtual time to zero.
func (s *Schedule) Reset() {
	s.now = 0
	for i := range s.groups {
		s.groups[i].next = s.groups[i].period
	}
}

// Now returns the current virtual time.
func (s *Schedule) Now() time.Duration {
	return s.now
}

// Advance moves virtual time forward by dt and returns the advance events
// that fell due, in time order. Groups due at the same instant fire in
// configuration order.
func (s *Schedule) Advance(dt time.Duration) []Event {
	end := s.now + dt
	var events []Event

	for {
		i := s.due(end)
		if i < 0 {
			break
		}
		g := &s.groups[i]
		for _, id := range g.ids {
			events = append(events, AdvanceEvent(id))
		}
		g.next += g.period
	}

	s.now = end
	return events
}

// due returns the index of the earliest group firing at or before end, or -1.
func (s *Schedule) due(end time.Duration) int {
	best := -1
	for i, g := range s.groups {
		if g.period <= 0 || g.next > end {
			continue
		}
		if best < 0 || g.next < s.groups[best].next {
			best = i
		}
	}
	return best
}
