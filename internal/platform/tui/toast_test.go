package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/snakebird/internal/core"
)

func TestToastsExpire(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	ts := NewToasts(time.Second)

	ts.Push(core.Notice{Tone: core.ToneGood, Text: "Yum! +10"}, base)
	ts.Push(core.Notice{Tone: core.ToneBad, Text: "Bad frog! -5"}, base.Add(500*time.Millisecond))

	if got := len(ts.Active(base.Add(900 * time.Millisecond))); got != 2 {
		t.Errorf("len(Active) = %d, expected 2", got)
	}
	active := ts.Active(base.Add(1200 * time.Millisecond))
	if len(active) != 1 || active[0].Text != "Bad frog! -5" {
		t.Errorf("Active = %+v, expected only the second toast", active)
	}
	if got := len(ts.Active(base.Add(2 * time.Second))); got != 0 {
		t.Errorf("len(Active) = %d, expected 0", got)
	}
}

func TestToastsKeepNewest(t *testing.T) {
	base := time.Now()
	ts := NewToasts(0)

	for _, text := range []string{"a", "b", "c", "d", "e"} {
		ts.Push(core.Notice{Text: text}, base)
	}
	active := ts.Active(base)
	if len(active) != maxToasts {
		t.Fatalf("len(Active) = %d, expected %d", len(active), maxToasts)
	}
	if active[0].Text != "c" || active[maxToasts-1].Text != "e" {
		t.Errorf("Active = %+v, expected c..e", active)
	}
}

func TestToastsView(t *testing.T) {
	base := time.Now()
	ts := NewToasts(time.Second)

	if ts.View(base) != "" {
		t.Error("empty queue should render nothing")
	}
	ts.Push(core.Notice{Tone: core.ToneInfo, Text: "Portal! +50"}, base)
	if !strings.Contains(ts.View(base), "Portal! +50") {
		t.Errorf("View() = %q, expected the toast text", ts.View(base))
	}

	ts.Clear()
	if ts.View(base) != "" {
		t.Error("Clear() should drop every toast")
	}
}
