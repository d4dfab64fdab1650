package frogger

import (
	"slices"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// State is the whole game aggregate. Every transition returns a new State
// whose slices share no backing arrays with its predecessor.
type State struct {
	Pilot Pilot

	Vehicles   []Hazard
	Planks     []Hazard
	Crocodiles []Hazard
	Turtles    []Hazard
	Zones      []LandingZone

	Score     int
	HighScore int
	Round     int // rounds completed

	Restart bool // set on the transition that completed a round
	Initial bool // set only on the seed state
}

// Initial returns the seed state for a new game.
func Initial(cfg config.FroggerConfig) State {
	s := newRound(cfg, 0, 0)
	s.Initial = true
	return s
}

// newRound lays out a fresh field for the given round. Every hazard's
// speed is its lane speed plus the round increment times round.
func newRound(cfg config.FroggerConfig, round, highScore int) State {
	s := State{
		Pilot:     NewPilot(1, cfg.Pilot.StartX, cfg.Pilot.StartY),
		Round:     round,
		HighScore: highScore,
	}

	for _, x := range cfg.LandingZones.Xs {
		s.Zones = append(s.Zones, NewLandingZone(x, cfg.LandingZones.Y, cfg.LandingZones.Width, cfg.LandingZones.Height))
	}

	for _, l := range cfg.Lanes {
		kind := kindOf(l.Kind)
		dir := directionOf(l.Direction)
		size := cfg.Hazards.Size(l.Kind)
		speed := cfg.LaneSpeed(l) + cfg.Round.SpeedIncrement*float64(round)

		for i, lh := range l.Hazards {
			var h Hazard
			if kind == KindTurtle {
				h = NewTurtle(l.HazardID(i), lh.X, l.Y, size.Width, size.Height, dir, speed, [2]float64{lh.Dive[0], lh.Dive[1]})
			} else {
				h = NewHazard(l.HazardID(i), kind, lh.X, l.Y, size.Width, size.Height, dir, speed)
			}
			s.setHazards(kind, append(s.Hazards(kind), h))
		}
	}

	return s
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Vehicles = slices.Clone(s.Vehicles)
	s.Planks = slices.Clone(s.Planks)
	s.Crocodiles = slices.Clone(s.Crocodiles)
	s.Turtles = slices.Clone(s.Turtles)
	s.Zones = cloneZones(s.Zones)
	return s
}

func cloneZones(zones []LandingZone) []LandingZone {
	return slices.Clone(zones)
}

// Hazards returns the collection holding hazards of the given kind.
func (s State) Hazards(kind Kind) []Hazard {
	switch kind {
	case KindPlank:
		return s.Planks
	case KindCrocodile:
		return s.Crocodiles
	case KindTurtle:
		return s.Turtles
	default:
		return s.Vehicles
	}
}

func (s *State) setHazards(kind Kind, hazards []Hazard) {
	switch kind {
	case KindPlank:
		s.Planks = hazards
	case KindCrocodile:
		s.Crocodiles = hazards
	case KindTurtle:
		s.Turtles = hazards
	default:
		s.Vehicles = hazards
	}
}

// AllHazards returns every hazard, vehicles first, then river carriers.
func (s State) AllHazards() []Hazard {
	return slices.Concat(s.Vehicles, s.Planks, s.Crocodiles, s.Turtles)
}

// OccupiedZones counts the landing zones taken this round.
func (s State) OccupiedZones() int {
	n := 0
	for _, z := range s.Zones {
		if z.Occupied {
			n++
		}
	}
	return n
}
