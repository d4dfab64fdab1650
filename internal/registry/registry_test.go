package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

type stubGame struct {
	cfg config.FroggerConfig
}

func (g *stubGame) ID() string {
	return "stub"
}

func (g *stubGame) Title() string {
	return "Stub"
}

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func(cfg config.FroggerConfig) Game { return &stubGame{cfg: cfg} })

	assert.True(t, Exists("stub"))
	assert.Contains(t, List(), GameInfo{ID: "stub", Title: "Stub"})

	cfg := config.DefaultFroggerConfig()
	cfg.Hazards.BaseSpeed = 3
	g, err := Create("stub", cfg)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, g.(*stubGame).cfg.Hazards.BaseSpeed, 1e-9)

	assert.Panics(t, func() {
		Register("stub", func(config.FroggerConfig) Game { return &stubGame{} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing", config.DefaultFroggerConfig())
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.False(t, Exists("missing"))
}
