// Package tui provides the Bubble Tea integration for Snake Bird.
// It handles the terminal UI loop, input sampling, toasts and the run ledger screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Ticks from an older generation are dropped; pausing bumps the generation.
type TickMsg struct {
	Gen      int
	Interval time.Duration
	At       time.Time
}

// tickCmd schedules the next tick of the given generation.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Interval: interval, At: t}
	})
}
