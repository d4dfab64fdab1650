package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// stubGame records its inputs and ends a round whenever Up is pressed.
type stubGame struct {
	resets int
	steps  int
	ups    int
	state  core.GameState
}

func (g *stubGame) ID() string { return "frogger" }

func (g *stubGame) Title() string { return "Frogger" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Round: 1, Pilot: 1, HighScore: g.state.HighScore}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	result := core.StepResult{}
	if in.Has(core.ActionUp) {
		g.ups++
		result.RoundEnded = true
		result.RoundScore = 100 * g.ups
		g.state.Round++
	}
	result.State = g.state
	return result
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}
}

func openMemoryStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// send feeds msg to the model and returns the updated GameModel.
func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm
}

func TestGameModelRecordsFinishedRounds(t *testing.T) {
	store := openMemoryStore(t)
	game := &stubGame{}
	m := NewGameModel(game, store, testConfig(), GameOptions{Player: "alice"})
	m.Init()

	m = send(t, m, runeKey('w'))
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{}) // no input, no round
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, TickMsg{})

	if game.steps != 3 {
		t.Errorf("steps = %d, want 3", game.steps)
	}

	scores, err := store.RunScores(m.RunID())
	if err != nil {
		t.Fatalf("RunScores failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 recorded rounds, got %d", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Score != 100 {
		t.Errorf("first round = %+v", scores[0])
	}
	if scores[1].Score != 200 {
		t.Errorf("second round score = %d, want 200", scores[1].Score)
	}
}

func TestGameModelInputClearedEachTick(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, nil, testConfig(), GameOptions{})
	m.Init()

	m = send(t, m, runeKey('w'))
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})
	send(t, m, TickMsg{})

	if game.ups != 1 {
		t.Errorf("Up reached the game %d times, want 1", game.ups)
	}
}

func TestGameModelRestartStartsNewRun(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, nil, testConfig(), GameOptions{})
	m.Init()
	first := m.RunID()

	m = send(t, m, runeKey('r'))
	m = send(t, m, TickMsg{})

	if m.RunID() == first {
		t.Error("restart should allocate a new run id")
	}
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if game.steps != 0 {
		t.Errorf("restart tick should not step the game, got %d steps", game.steps)
	}
}

func TestGameModelBack(t *testing.T) {
	t.Run("standalone quits", func(t *testing.T) {
		m := NewGameModel(&stubGame{}, nil, testConfig(), GameOptions{})
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.IsQuitting() || m.BackToMenu() {
			t.Error("esc outside a session should quit")
		}
	})

	t.Run("embedded returns to menu", func(t *testing.T) {
		m := NewGameModel(&stubGame{}, nil, testConfig(), GameOptions{Embedded: true})
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.IsQuitting() || !m.BackToMenu() {
			t.Error("esc inside a session should go back to the menu")
		}
	})
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&stubGame{}, nil, testConfig(), GameOptions{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestGameModelViewIncludesHelp(t *testing.T) {
	m := NewGameModel(&stubGame{}, nil, testConfig(), GameOptions{})
	m.Init()

	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Error("view should contain the game frame")
	}
	if !strings.Contains(view, "hop") {
		t.Error("view should contain the help footer")
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, nil, testConfig(), GameOptions{})
	m.Init()

	m = send(t, m, TickMsg{Owner: "some-earlier-game"})
	if game.steps != 0 {
		t.Errorf("a tick from another model should be dropped, steps = %d", game.steps)
	}

	send(t, m, TickMsg{Owner: m.ticker})
	if game.steps != 1 {
		t.Errorf("own tick should step the game, steps = %d", game.steps)
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, nil, testConfig(), GameOptions{})
	m.Init()

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != fieldHeight(30) {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
