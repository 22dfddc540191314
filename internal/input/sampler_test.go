package input

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/snakebird/internal/core"
)

func TestSnapshotOverrides(t *testing.T) {
	now := time.Unix(100, 0)

	tests := []struct {
		name    string
		actions []core.Action
		wantX   int
		wantY   int
	}{
		{"none", nil, 0, 0},
		{"up", []core.Action{core.ActionUp}, 0, -1},
		{"down overrides up", []core.Action{core.ActionDown, core.ActionUp}, 0, 1},
		{"right overrides left", []core.Action{core.ActionRight, core.ActionLeft}, 1, 0},
		{"diagonal", []core.Action{core.ActionLeft, core.ActionUp}, -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(time.Second)
			for _, a := range tc.actions {
				s.Press(a, now)
			}
			f := s.Snapshot(now)
			if f.DirX != tc.wantX || f.DirY != tc.wantY {
				t.Errorf("Snapshot() = (%d,%d), expected (%d,%d)", f.DirX, f.DirY, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestUnrecognizedActionsIgnored(t *testing.T) {
	s := New(time.Second)
	now := time.Unix(0, 0)
	for _, a := range []core.Action{core.ActionNone, core.ActionPause, core.ActionQuit, core.Action(99)} {
		if s.Press(a, now) {
			t.Errorf("Press(%v) reported a movement key", a)
		}
	}
	if f := s.Snapshot(now); f.Moving() {
		t.Errorf("Snapshot() = %+v, expected no movement", f)
	}
}

func TestHoldExpiry(t *testing.T) {
	s := New(100 * time.Millisecond)
	start := time.Unix(0, 0)
	s.Press(core.ActionRight, start)

	if f := s.Snapshot(start.Add(50 * time.Millisecond)); f.DirX != 1 {
		t.Errorf("DirX = %d within hold window, expected 1", f.DirX)
	}

	// Autorepeat keeps it alive
	s.Press(core.ActionRight, start.Add(90*time.Millisecond))
	if f := s.Snapshot(start.Add(150 * time.Millisecond)); f.DirX != 1 {
		t.Errorf("DirX = %d after repeat, expected 1", f.DirX)
	}

	if f := s.Snapshot(start.Add(500 * time.Millisecond)); f.DirX != 0 {
		t.Errorf("DirX = %d after hold expired, expected 0", f.DirX)
	}
}

func TestReleaseAndClear(t *testing.T) {
	s := New(time.Second)
	now := time.Unix(0, 0)
	s.Press(core.ActionUp, now)
	s.Press(core.ActionLeft, now)

	s.Release(core.ActionUp)
	if f := s.Snapshot(now); f.DirY != 0 || f.DirX != -1 {
		t.Errorf("after Release(Up) Snapshot() = %+v, expected (-1,0)", f)
	}

	s.TogglePause()
	s.Clear()
	if f := s.Snapshot(now); f.Moving() {
		t.Errorf("after Clear() Snapshot() = %+v, expected no movement", f)
	}
	if !s.Paused() {
		t.Error("Clear() should keep the pause flag")
	}
}

func TestTogglePause(t *testing.T) {
	s := New(0)
	if s.Paused() {
		t.Fatal("new sampler should not be paused")
	}
	if !s.TogglePause() {
		t.Error("TogglePause() = false, expected true")
	}
	if s.TogglePause() {
		t.Error("TogglePause() = true, expected false")
	}
}

func TestConcurrentPresses(t *testing.T) {
	s := New(time.Second)
	now := time.Unix(0, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Press(core.ActionDown, now)
				s.Snapshot(now)
			}
		}()
	}
	wg.Wait()

	if f := s.Snapshot(now); f.DirY != 1 {
		t.Errorf("DirY = %d, expected 1", f.DirY)
	}
}
