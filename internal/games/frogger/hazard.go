package frogger

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// span is the range of valid x positions for a hazard: [0, span).
func span(cfg config.FroggerConfig, h Hazard) float64 {
	return cfg.Field.Width - h.W
}

// delta is the signed x distance a hazard covers per advance.
func (h Hazard) delta() float64 {
	if h.Dir == DirLeft {
		return -h.Speed
	}
	return h.Speed
}

// WrapsOnAdvance reports whether the next advance carries h across the field edge.
func WrapsOnAdvance(cfg config.FroggerConfig, h Hazard) bool {
	x := h.X + h.delta()
	return x < 0 || x >= span(cfg, h)
}

// Advance moves h one step along its lane, wrapping at the field edges.
// A turtle is hidden while its x lies in its dive interval, unless it is
// the carrier named by carrierID.
func Advance(cfg config.FroggerConfig, h Hazard, carrierID string) Hazard {
	s := span(cfg, h)
	x := math.Mod(h.X+h.delta(), s)
	if x < 0 {
		x += s
	}
	if x >= s {
		x = 0
	}
	h.X = x

	if h.Kind == KindTurtle {
		h.Hidden = x >= h.Dive[0] && x <= h.Dive[1] && carrierID != h.ID
	}
	return h
}

// AdvanceAll returns a copy of hazards with the hazard named id advanced.
// An id that names no hazard leaves the copy unchanged.
func AdvanceAll(cfg config.FroggerConfig, hazards []Hazard, id, carrierID string) []Hazard {
	out := slices.Clone(hazards)
	if i := indexOf(out, id); i >= 0 {
		out[i] = Advance(cfg, out[i], carrierID)
	}
	return out
}

func indexOf(hazards []Hazard, id string) int {
	return slices.IndexFunc(hazards, func(h Hazard) bool { return h.ID == id })
}

// find returns the hazard named id, if present.
func find(hazards []Hazard, id string) (Hazard, bool) {
	if i := indexOf(hazards, id); i >= 0 {
		return hazards[i], true
	}
	return Hazard{}, false
}
