package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
)

// Reduce folds one event into s and returns the next state.
//
// Begin returns the state unchanged. Every other event first settles any
// finished landing (spawning the next pilot or completing the round) and
// then applies the move or advance. s is never modified.
func Reduce(cfg config.FroggerConfig, s State, ev Event) State {
	if ev.Kind == EventBegin {
		return s.Clone()
	}

	next := completeRound(cfg, s)

	switch ev.Kind {
	case EventMove:
		next = applyMove(cfg, next, ev.Move)
	case EventAdvance:
		next = applyAdvance(cfg, next, ev.HazardID)
	}

	next.HighScore = max(next.HighScore, next.Score)
	return next
}

// Scan folds events over seed and returns every intermediate state.
func Scan(cfg config.FroggerConfig, seed State, events []Event) []State {
	out := make([]State, 0, len(events))
	s := seed
	for _, ev := range events {
		s = Reduce(cfg, s, ev)
		out = append(out, s)
	}
	return out
}

// Fold folds events over seed and returns the final state.
func Fold(cfg config.FroggerConfig, seed State, events []Event) State {
	s := seed
	for _, ev := range events {
		s = Reduce(cfg, s, ev)
	}
	return s
}

// completeRound handles a settled pilot. After the last landing of a round
// the field is laid out again one round faster; otherwise the next pilot
// starts while occupied zones stay taken.
func completeRound(cfg config.FroggerConfig, s State) State {
	p := s.Pilot
	switch {
	case p.Settled && p.ID >= cfg.Round.Landings:
		next := newRound(cfg, s.Round+1, s.HighScore)
		next.Restart = true
		return next
	case p.Settled:
		next := s.Clone()
		next.Pilot = NewPilot(p.ID+1, cfg.Pilot.StartX, cfg.Pilot.StartY)
		next.Restart = false
		next.Initial = false
		return next
	default:
		next := s.Clone()
		next.Restart = false
		next.Initial = false
		return next
	}
}

func applyMove(cfg config.FroggerConfig, s State, m Move) State {
	var points int
	if onRoad(cfg, s.Pilot.Y) {
		s.Pilot, points = roadMove(cfg, s.Pilot, m, s.Vehicles)
	} else {
		s.Pilot, s.Zones, points = riverMove(cfg, s, m)
	}
	s.Score += points
	return s
}

func applyAdvance(cfg config.FroggerConfig, s State, id string) State {
	if onRoad(cfg, s.Pilot.Y) {
		if hitsAny(s.Pilot.Box(cfg.Pilot.Radius), s.Vehicles) {
			s.Pilot = respawn(cfg, s.Pilot)
		}
	} else {
		s.Pilot = Carry(cfg, s, id)
	}

	carrier := s.Pilot.CarrierID
	s.Vehicles = AdvanceAll(cfg, s.Vehicles, id, carrier)
	s.Planks = AdvanceAll(cfg, s.Planks, id, carrier)
	s.Crocodiles = AdvanceAll(cfg, s.Crocodiles, id, carrier)
	s.Turtles = AdvanceAll(cfg, s.Turtles, id, carrier)
	return s
}
