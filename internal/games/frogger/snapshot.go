package frogger

import "math"

// Snapshot is a flat copy of the simulation state for determinism tests
// and replay summaries.
type Snapshot struct {
	Tick      uint64
	Round     int
	Score     int
	HighScore int

	PilotID   int
	PilotX    float64
	PilotY    float64
	CarrierID string
	Settled   bool

	// Each hazard contributes 2 values: X, Speed
	HazardData []float64
	HiddenData []bool
	Occupied   []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := SnapshotOf(g.state)
	snap.Tick = uint64(g.tickCount) //#nosec G115 -- tick count is always positive
	return snap
}

// SnapshotOf flattens a reducer state.
func SnapshotOf(s State) Snapshot {
	hazards := s.AllHazards()
	snap := Snapshot{
		Round:      s.Round,
		Score:      s.Score,
		HighScore:  s.HighScore,
		PilotID:    s.Pilot.ID,
		PilotX:     s.Pilot.X,
		PilotY:     s.Pilot.Y,
		CarrierID:  s.Pilot.CarrierID,
		Settled:    s.Pilot.Settled,
		HazardData: make([]float64, 0, len(hazards)*2),
		HiddenData: make([]bool, 0, len(hazards)),
		Occupied:   make([]bool, 0, len(s.Zones)),
	}
	for _, h := range hazards {
		snap.HazardData = append(snap.HazardData, h.X, h.Speed)
		snap.HiddenData = append(snap.HiddenData, h.Hidden)
	}
	for _, z := range s.Zones {
		snap.Occupied = append(snap.Occupied, z.Occupied)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Round)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PilotID)   //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PilotX)
	h = h*31 + math.Float64bits(snap.PilotY)
	for _, c := range snap.CarrierID {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + boolBit(snap.Settled)

	for _, v := range snap.HazardData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.HiddenData {
		h = h*31 + boolBit(v)
	}
	for _, v := range snap.Occupied {
		h = h*31 + boolBit(v)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
