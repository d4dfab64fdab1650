package frogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestMovePilotBounds(t *testing.T) {
	cfg := config.DefaultFroggerConfig()

	tests := []struct {
		name  string
		x, y  float64
		move  Move
		wantX float64
		wantY float64
	}{
		{"left allowed to radius", 25, 300, MoveLeft, 20, 300},
		{"left rejected past radius", 24, 300, MoveLeft, 24, 300},
		{"right allowed to edge", 575, 300, MoveRight, 580, 300},
		{"right rejected past edge", 576, 300, MoveRight, 576, 300},
		{"up allowed to radius", 300, 70, MoveUp, 300, 20},
		{"up rejected past radius", 300, 69, MoveUp, 300, 69},
		{"down allowed to edge", 300, 530, MoveDown, 300, 580},
		{"down rejected from start", 250, 580, MoveDown, 250, 580},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := MovePilot(cfg, NewPilot(1, tc.x, tc.y), tc.move)
			assert.InDelta(t, tc.wantX, p.X, 1e-9)
			assert.InDelta(t, tc.wantY, p.Y, 1e-9)
		})
	}
}

func TestMovePilotNeverLeavesField(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	r := cfg.Pilot.Radius

	for x := r; x <= cfg.Field.Width-r; x += 7 {
		for y := r; y <= cfg.Field.Height-r; y += 13 {
			for _, m := range []Move{MoveLeft, MoveRight, MoveUp, MoveDown} {
				p := MovePilot(cfg, NewPilot(1, x, y), m)
				require.GreaterOrEqual(t, p.X, r)
				require.LessOrEqual(t, p.X, cfg.Field.Width-r)
				require.GreaterOrEqual(t, p.Y, r)
				require.LessOrEqual(t, p.Y, cfg.Field.Height-r)
			}
		}
	}
}

func TestSettledPilotDoesNotMove(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	p := NewPilot(2, 72, 80).Settle()

	for _, m := range []Move{MoveLeft, MoveRight, MoveUp, MoveDown} {
		assert.Equal(t, p, MovePilot(cfg, p, m))
	}
}

func TestMouthFrontEdge(t *testing.T) {
	cfg := config.DefaultFroggerConfig()

	left := NewHazard("croc1a", KindCrocodile, 100, 110, 80, 40, DirLeft, 0.5)
	assert.Equal(t, core.NewBox(100, 110, 15, 40), Mouth(cfg, left))

	right := NewHazard("croc1a", KindCrocodile, 100, 110, 80, 40, DirRight, 0.5)
	assert.Equal(t, core.NewBox(165, 110, 15, 40), Mouth(cfg, right))
}

func TestCarrierBand(t *testing.T) {
	cfg := config.DefaultFroggerConfig()

	tests := []struct {
		y    float64
		kind Kind
		ok   bool
	}{
		{280, KindTurtle, true},
		{230, KindPlank, true},
		{180, KindPlank, true},
		{130, KindCrocodile, true},
		{330, 0, false},
		{80, 0, false},
		{530, 0, false},
	}

	for _, tc := range tests {
		kind, ok := carrierBand(cfg, tc.y)
		assert.Equal(t, tc.ok, ok, "y=%v", tc.y)
		if tc.ok {
			assert.Equal(t, tc.kind, kind, "y=%v", tc.y)
		}
	}
}
