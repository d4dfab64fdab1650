// Package frogger implements a Frogger-style crossing game.
//
// The simulation is a pure reducer: Reduce folds one Event into a State and
// returns a new State. Nothing below the reducer holds mutable state, so a
// game is fully described by its seed state and the ordered event stream.
// Game adapts the reducer to the platform's tick-driven Reset/Step/Render loop.
package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Kind identifies a hazard variant.
type Kind int

const (
	KindVehicle Kind = iota
	KindPlank
	KindCrocodile
	KindTurtle
)

func (k Kind) String() string {
	switch k {
	case KindVehicle:
		return config.KindVehicle
	case KindPlank:
		return config.KindPlank
	case KindCrocodile:
		return config.KindCrocodile
	case KindTurtle:
		return config.KindTurtle
	default:
		return "unknown"
	}
}

// IsCarrier reports whether the pilot can ride hazards of this kind.
func (k Kind) IsCarrier() bool {
	return k != KindVehicle
}

func kindOf(s string) Kind {
	switch s {
	case config.KindPlank:
		return KindPlank
	case config.KindCrocodile:
		return KindCrocodile
	case config.KindTurtle:
		return KindTurtle
	default:
		return KindVehicle
	}
}

// Direction is a lane's direction of travel.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

func directionOf(s string) Direction {
	if s == config.DirectionRight {
		return DirRight
	}
	return DirLeft
}

// Pilot is the player-controlled frog.
type Pilot struct {
	ID        int // which of the round's landings this pilot is attempting, 1-based
	X, Y      float64
	CarrierID string // hazard being ridden, empty when none
	Settled   bool
}

// NewPilot creates an unattached pilot at the given position.
func NewPilot(id int, x, y float64) Pilot {
	return Pilot{ID: id, X: x, Y: y}
}

// At returns the pilot moved to (x, y).
func (p Pilot) At(x, y float64) Pilot {
	p.X, p.Y = x, y
	return p
}

// Attach returns the pilot riding the given carrier.
func (p Pilot) Attach(id string) Pilot {
	p.CarrierID = id
	return p
}

// Detach returns the pilot with no carrier.
func (p Pilot) Detach() Pilot {
	p.CarrierID = ""
	return p
}

// Settle returns the pilot parked in a landing zone.
func (p Pilot) Settle() Pilot {
	p.CarrierID = ""
	p.Settled = true
	return p
}

// Box returns the pilot's bounding square.
func (p Pilot) Box(radius float64) core.Box {
	return core.SquareAround(p.X, p.Y, radius)
}

// Hazard is a moving lane object. Hidden and Dive are only meaningful for turtles.
type Hazard struct {
	ID     string
	Kind   Kind
	X, Y   float64
	W, H   float64
	Dir    Direction
	Speed  float64
	Hidden bool
	Dive   [2]float64 // closed x-interval in which a turtle is submerged
}

// NewHazard creates a vehicle, plank or crocodile.
func NewHazard(id string, kind Kind, x, y, w, h float64, dir Direction, speed float64) Hazard {
	return Hazard{ID: id, Kind: kind, X: x, Y: y, W: w, H: h, Dir: dir, Speed: speed}
}

// NewTurtle creates a submerging carrier that hides while its x is within dive.
func NewTurtle(id string, x, y, w, h float64, dir Direction, speed float64, dive [2]float64) Hazard {
	t := NewHazard(id, KindTurtle, x, y, w, h, dir, speed)
	t.Dive = dive
	return t
}

// Right returns the x-coordinate of the hazard's right edge.
func (h Hazard) Right() float64 {
	return h.X + h.W
}

// Box returns the hazard's bounding box.
func (h Hazard) Box() core.Box {
	return core.NewBox(h.X, h.Y, h.W, h.H)
}

// LandingZone is one of the goal bays at the top of the field.
type LandingZone struct {
	X, Y     float64
	W, H     float64
	Occupied bool
}

// NewLandingZone creates an empty landing zone.
func NewLandingZone(x, y, w, h float64) LandingZone {
	return LandingZone{X: x, Y: y, W: w, H: h}
}

// Box returns the zone's bounding box.
func (z LandingZone) Box() core.Box {
	return core.NewBox(z.X, z.Y, z.W, z.H)
}
