package frogger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

func twoGroupConfig() config.FroggerConfig {
	cfg := config.DefaultFroggerConfig()
	cfg.Lanes = []config.LaneConfig{
		{Name: "a", Kind: config.KindVehicle, Y: 510, Direction: config.DirectionRight, Hazards: []config.LaneHazard{{X: 0}, {X: 200}}},
		{Name: "b", Kind: config.KindVehicle, Y: 460, Direction: config.DirectionLeft, Hazards: []config.LaneHazard{{X: 0}}},
	}
	cfg.Schedule = []config.ScheduleGroup{
		{PeriodMS: 50, Lanes: []string{"a"}},
		{PeriodMS: 30, Lanes: []string{"b"}},
	}
	return cfg
}

func ids(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.HazardID)
	}
	return out
}

func TestScheduleOrder(t *testing.T) {
	s := NewSchedule(twoGroupConfig())

	got := s.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"ba", "aa", "ab", "ba", "ba", "aa", "ab"}, ids(got))
	assert.Equal(t, 100*time.Millisecond, s.Now())
}

func TestScheduleSplitAdvance(t *testing.T) {
	whole := NewSchedule(twoGroupConfig())
	split := NewSchedule(twoGroupConfig())

	want := whole.Advance(500 * time.Millisecond)

	var got []Event
	for range 50 {
		got = append(got, split.Advance(10*time.Millisecond)...)
	}
	assert.Equal(t, want, got)
}

func TestScheduleTiesFireInGroupOrder(t *testing.T) {
	s := NewSchedule(twoGroupConfig())
	s.Advance(149 * time.Millisecond)

	// Both groups are due at 150ms.
	got := s.Advance(time.Millisecond)
	assert.Equal(t, []string{"aa", "ab", "ba"}, ids(got))
}

func TestScheduleReset(t *testing.T) {
	s := NewSchedule(twoGroupConfig())
	first := s.Advance(80 * time.Millisecond)

	s.Reset()
	assert.Zero(t, s.Now())
	assert.Equal(t, first, s.Advance(80*time.Millisecond))
}

func TestDefaultScheduleFirstTick(t *testing.T) {
	s := NewSchedule(config.DefaultFroggerConfig())

	got := s.Advance(30 * time.Millisecond)
	assert.Equal(t, []string{
		"car2a", "car2b", "car2c", "car4a", "car4b", "car4c",
		"croc1a", "croc1b", "croc1c",
	}, ids(got))

	for _, ev := range got {
		assert.Equal(t, EventAdvance, ev.Kind)
	}
}
