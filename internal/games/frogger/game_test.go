package frogger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// playScripted runs a game for the given number of ticks with a fixed
// input pattern and the journal enabled.
func playScripted(cfg config.FroggerConfig, ticks int) *Game {
	g := New(cfg)
	g.Record(true)
	g.Reset(testRuntime())

	for i := range ticks {
		in := core.NewInputFrame()
		if i%20 == 0 {
			in.Set(core.ActionUp)
		}
		if i%35 == 0 {
			in.Set(core.ActionLeft)
		}
		if i%45 == 0 {
			in.Set(core.ActionRight)
		}
		g.Step(in)
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultFroggerConfig()

	g1 := playScripted(cfg, 600)
	g2 := playScripted(cfg, 600)

	s1 := g1.Snapshot()
	s2 := g2.Snapshot()
	assert.Equal(t, s1, s2)
	assert.Equal(t, s1.Hash(), s2.Hash())
	assert.Equal(t, uint64(600), s1.Tick)
}

func TestGameBeginsOnFirstStep(t *testing.T) {
	g := playScripted(config.DefaultFroggerConfig(), 120)
	journal := g.Journal()
	require.NotEmpty(t, journal)

	assert.Equal(t, BeginEvent(), journal[0])
	for _, ev := range journal[1:] {
		assert.NotEqual(t, EventBegin, ev.Kind)
	}
}

func TestGameMovesInFixedOrder(t *testing.T) {
	g := New(config.DefaultFroggerConfig())
	g.Record(true)
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Set(core.ActionRight)
	in.Set(core.ActionLeft)
	g.Step(in)

	journal := g.Journal()
	require.GreaterOrEqual(t, len(journal), 4)
	assert.Equal(t, []Event{
		BeginEvent(),
		MoveEvent(MoveLeft),
		MoveEvent(MoveRight),
		MoveEvent(MoveDown),
	}, journal[:4])
}

func TestGameAdvancesHazardsOverTime(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	g := New(cfg)
	g.Reset(testRuntime())

	for range 61 {
		g.Step(core.NewInputFrame())
	}

	// Just over one second of virtual time: car1 fires every 50ms.
	assert.InDelta(t, 20*0.5, g.Current().Vehicles[0].X, 1e-9)
}

func TestGamePause(t *testing.T) {
	g := New(config.DefaultFroggerConfig())
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	require.True(t, res.State.Paused)

	before := g.Snapshot()
	for range 30 {
		up := core.NewInputFrame()
		up.Set(core.ActionUp)
		g.Step(up)
	}
	assert.Equal(t, before, g.Snapshot())

	res = g.Step(pause)
	assert.False(t, res.State.Paused)
}

func TestGameResetKeepsHighScore(t *testing.T) {
	g := New(config.DefaultFroggerConfig())
	g.Reset(testRuntime())
	g.state.Score = 70
	g.state.HighScore = 70

	g.Reset(testRuntime())
	st := g.State()
	assert.Zero(t, st.Score)
	assert.Equal(t, 70, st.HighScore)
	assert.Equal(t, 1, st.Pilot)
	assert.Zero(t, st.Round)
}

func TestGameRoundEnded(t *testing.T) {
	g := New(config.DefaultFroggerConfig())
	g.Reset(testRuntime())
	g.state.Pilot = NewPilot(5, 72, 80).Settle()
	g.state.Score = 500
	g.state.HighScore = 500

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	res := g.Step(up)

	require.True(t, res.RoundEnded)
	assert.Equal(t, 500, res.RoundScore)
	assert.Equal(t, 1, res.State.Round)
	assert.Equal(t, 500, res.State.HighScore)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "ROUND 2")

	// The banner is presentation only and clears after the settle delay.
	for range 6 {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	assert.NotContains(t, screen.String(), "ROUND 2")
}

func TestGameRender(t *testing.T) {
	g := New(config.DefaultFroggerConfig())
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.True(t, strings.HasPrefix(screen.Row(0), " Score: 0  Hi: 0  Round: 1  Frog: 1/5"))
	assert.Contains(t, screen.String(), string(PilotChar))
	assert.Contains(t, screen.String(), string(WaterChar))
	assert.Contains(t, screen.String(), string(VehicleChar))
	assert.Equal(t, core.ColorBrightYellow, screen.GetCell(32, 22).Color)
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("frogger", config.DefaultFroggerConfig())
	require.NoError(t, err)
	assert.Equal(t, "frogger", g.ID())
	assert.Equal(t, "Frogger", g.Title())
}
