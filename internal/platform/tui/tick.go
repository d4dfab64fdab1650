// Package tui provides the Bubble Tea integration for the frogger platform.
// It handles the terminal UI loop, input mapping, the score ledger hook, and
// SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Owner names the game
// model whose tick chain produced it; an empty Owner is accepted by any model.
type TickMsg struct {
	Owner string
	At    time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message for
// owner after the interval implied by tickRate.
func tickCmd(owner string, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Owner: owner, At: t}
	})
}
