package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakebird/internal/core"
)

// Toast defaults
const (
	DefaultToastTTL = 2 * time.Second
	maxToasts       = 3
)

var toneStyles = map[core.Tone]lipgloss.Style{
	core.ToneInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ToneGood: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ToneBad:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

type toast struct {
	notice  core.Notice
	expires time.Time
}

// Toasts is a short queue of notices that expire on the wall clock.
type Toasts struct {
	ttl   time.Duration
	items []toast
}

// NewToasts creates an empty queue. A non-positive ttl uses DefaultToastTTL.
func NewToasts(ttl time.Duration) *Toasts {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &Toasts{ttl: ttl}
}

// Push adds a notice. The oldest toast is dropped when the queue is full.
func (t *Toasts) Push(n core.Notice, now time.Time) {
	t.items = append(t.items, toast{notice: n, expires: now.Add(t.ttl)})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
}

// Active prunes expired toasts and returns the rest, oldest first.
func (t *Toasts) Active(now time.Time) []core.Notice {
	kept := t.items[:0]
	for _, it := range t.items {
		if now.Before(it.expires) {
			kept = append(kept, it)
		}
	}
	t.items = kept

	out := make([]core.Notice, len(kept))
	for i, it := range kept {
		out[i] = it.notice
	}
	return out
}

// Clear drops every toast.
func (t *Toasts) Clear() {
	t.items = nil
}

// View renders the active toasts on one line, or "" when there are none.
func (t *Toasts) View(now time.Time) string {
	active := t.Active(now)
	if len(active) == 0 {
		return ""
	}
	parts := make([]string, len(active))
	for i, n := range active {
		parts[i] = toneStyles[n.Tone].Render(n.Text)
	}
	return strings.Join(parts, "  ·  ")
}

// toneName is used in log lines.
func toneName(tone core.Tone) string {
	switch tone {
	case core.ToneGood:
		return "good"
	case core.ToneBad:
		return "bad"
	default:
		return "info"
	}
}
