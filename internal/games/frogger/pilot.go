package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Move is a single hop request.
type Move int

const (
	MoveLeft Move = iota
	MoveRight
	MoveUp
	MoveDown
)

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	default:
		return "unknown"
	}
}

// MovePilot hops the pilot one step. Hops that would take the pilot's
// bounding square past a field edge are rejected, as is any hop by a
// settled pilot; both return p unchanged.
func MovePilot(cfg config.FroggerConfig, p Pilot, m Move) Pilot {
	if p.Settled {
		return p
	}

	r := cfg.Pilot.Radius
	switch m {
	case MoveLeft:
		if p.X-cfg.Pilot.StepX >= r {
			return p.At(p.X-cfg.Pilot.StepX, p.Y)
		}
	case MoveRight:
		if p.X+cfg.Pilot.StepX <= cfg.Field.Width-r {
			return p.At(p.X+cfg.Pilot.StepX, p.Y)
		}
	case MoveUp:
		if p.Y-cfg.Pilot.StepY >= r {
			return p.At(p.X, p.Y-cfg.Pilot.StepY)
		}
	case MoveDown:
		if p.Y+cfg.Pilot.StepY <= cfg.Field.Height-r {
			return p.At(p.X, p.Y+cfg.Pilot.StepY)
		}
	}
	return p
}

// respawn puts the pilot back at the start, keeping its landing number.
func respawn(cfg config.FroggerConfig, p Pilot) Pilot {
	return NewPilot(p.ID, cfg.Pilot.StartX, cfg.Pilot.StartY)
}

// onRoad reports whether y lies in the road band.
func onRoad(cfg config.FroggerConfig, y float64) bool {
	return y > cfg.Bands.RoadBoundary
}

// Mouth returns the fatal front strip of a crocodile.
func Mouth(cfg config.FroggerConfig, h Hazard) core.Box {
	w := cfg.Hazards.MouthWidth
	if h.Dir == DirLeft {
		return core.NewBox(h.X, h.Y, w, h.H)
	}
	return core.NewBox(h.Right()-w, h.Y, w, h.H)
}

func hitsAny(box core.Box, hazards []Hazard) bool {
	for _, h := range hazards {
		if box.Overlaps(h.Box()) {
			return true
		}
	}
	return false
}

// roadMove hops the pilot on the road. Any vehicle hit sends it back to the
// start; a clean hop up scores.
func roadMove(cfg config.FroggerConfig, p Pilot, m Move, vehicles []Hazard) (Pilot, int) {
	next := MovePilot(cfg, p, m)
	if hitsAny(next.Box(cfg.Pilot.Radius), vehicles) {
		return respawn(cfg, next), 0
	}
	if m == MoveUp && next != p {
		return next, cfg.Scoring.Advance
	}
	return next, 0
}

// riverMove hops the pilot in the river band and resolves where it lands:
// a crocodile's jaws, a carrier, a free landing zone, the safe strip, or
// the water. The returned zones are a copy when a zone was taken.
func riverMove(cfg config.FroggerConfig, s State, m Move) (Pilot, []LandingZone, int) {
	p := s.Pilot
	next := MovePilot(cfg, p, m)
	box := next.Box(cfg.Pilot.Radius)

	for _, c := range s.Crocodiles {
		if box.Overlaps(Mouth(cfg, c)) {
			return respawn(cfg, next), s.Zones, 0
		}
	}

	if id, ok := carrierUnder(box, s); ok {
		points := 0
		if m == MoveUp && next != p {
			points = cfg.Scoring.Advance
		}
		return next.Attach(id), s.Zones, points
	}

	for i, z := range s.Zones {
		if z.Occupied || !z.Box().Contains(box) {
			continue
		}
		zones := cloneZones(s.Zones)
		zones[i].Occupied = true
		return next.Settle(), zones, cfg.Scoring.Landing
	}

	if next.Y >= cfg.Bands.SafeStrip {
		return next.Detach(), s.Zones, 0
	}
	return respawn(cfg, next), s.Zones, 0
}

// carrierUnder finds a plank, crocodile or surfaced turtle that fully holds box.
func carrierUnder(box core.Box, s State) (string, bool) {
	for _, group := range [][]Hazard{s.Planks, s.Crocodiles, s.Turtles} {
		for _, h := range group {
			if h.Hidden {
				continue
			}
			if h.Box().Contains(box) {
				return h.ID, true
			}
		}
	}
	return "", false
}

// carrierBand returns the carrier kind whose lane covers y.
func carrierBand(cfg config.FroggerConfig, y float64) (Kind, bool) {
	for _, l := range cfg.Lanes {
		kind := kindOf(l.Kind)
		if !kind.IsCarrier() {
			continue
		}
		size := cfg.Hazards.Size(l.Kind)
		if y >= l.Y && y <= l.Y+size.Height {
			return kind, true
		}
	}
	return 0, false
}

// Carry applies the passive effect of hazard id advancing on a riding pilot.
// The carrier is looked up in the collection for the pilot's lane; if it is
// not there the pilot is treated as riding nothing. A carrier about to wrap
// past the field edge drowns its rider.
func Carry(cfg config.FroggerConfig, s State, id string) Pilot {
	p := s.Pilot
	if p.CarrierID == "" || p.CarrierID != id {
		return p
	}

	kind, ok := carrierBand(cfg, p.Y)
	if !ok {
		return p
	}
	c, ok := find(s.Hazards(kind), p.CarrierID)
	if !ok {
		return p
	}

	if WrapsOnAdvance(cfg, c) {
		return respawn(cfg, p)
	}
	return p.At(p.X+c.delta(), p.Y)
}
