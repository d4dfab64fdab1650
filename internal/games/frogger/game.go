package frogger

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// moveActions lists the hop actions in the order they are applied when
// several arrive in the same frame.
var moveActions = []struct {
	action core.Action
	move   Move
}{
	{core.ActionLeft, MoveLeft},
	{core.ActionRight, MoveRight},
	{core.ActionUp, MoveUp},
	{core.ActionDown, MoveDown},
}

// Game adapts the reducer to the platform's fixed-tick loop. Each Step turns
// the frame's input into move events, appends the advance events the schedule
// produced for one tick of virtual time, and folds them all into the state.
type Game struct {
	cfg      config.FroggerConfig
	runtime  core.RuntimeConfig
	state    State
	schedule *Schedule

	begun     bool
	paused    bool
	tickCount int
	banner    int // ticks left to show the round banner

	recording bool
	journal   []Event
}

// New creates a Frogger game using the given configuration.
func New(cfg config.FroggerConfig) *Game {
	return &Game{
		cfg:      cfg,
		runtime:  core.DefaultConfig(),
		state:    Initial(cfg),
		schedule: NewSchedule(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Record turns the event journal on or off. Turning it on clears it.
func (g *Game) Record(on bool) {
	g.recording = on
	g.journal = nil
}

// Journal returns a copy of every event folded since recording started.
func (g *Game) Journal() []Event {
	return append([]Event(nil), g.journal...)
}

// Reset starts a new game. The high score survives.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rt

	high := g.state.HighScore
	g.state = Initial(g.cfg)
	g.state.HighScore = high
	g.schedule.Reset()

	g.begun = false
	g.paused = false
	g.tickCount = 0
	g.banner = 0
	if g.recording {
		g.journal = nil
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.banner > 0 {
		g.banner--
	}

	var events []Event
	if !g.begun {
		events = append(events, BeginEvent())
		g.begun = true
	}
	for _, ma := range moveActions {
		if in.Has(ma.action) {
			events = append(events, MoveEvent(ma.move))
		}
	}
	events = append(events, g.schedule.Advance(g.tickDuration())...)

	var result core.StepResult
	for _, ev := range events {
		prev := g.state
		g.state = Reduce(g.cfg, prev, ev)
		if g.state.Restart {
			result.RoundEnded = true
			result.RoundScore = prev.Score
			g.banner = g.bannerTicks()
		}
	}
	if g.recording {
		g.journal = append(g.journal, events...)
	}

	result.State = g.State()
	return result
}

func (g *Game) tickDuration() time.Duration {
	return time.Second / time.Duration(g.runtime.TickRate)
}

func (g *Game) bannerTicks() int {
	return max(1, g.cfg.Round.SettleDelayMS*g.runtime.TickRate/1000)
}

// Current returns the reducer state.
func (g *Game) Current() State {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		Round:     g.state.Round,
		Pilot:     g.state.Pilot.ID,
		Paused:    g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("frogger", func(cfg config.FroggerConfig) registry.Game {
		return New(cfg)
	})
}
