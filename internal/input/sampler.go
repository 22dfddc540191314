// Package input samples held movement keys between simulation ticks.
//
// Key events arrive whenever the terminal delivers them; the simulation reads
// one atomic Snapshot at the start of each tick. Most terminals never report
// key releases, so a key counts as held until either Release is called or no
// repeat has been seen for the hold window.
package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/snakebird/internal/core"
)

// DefaultHold covers the usual autorepeat delay of a terminal.
const DefaultHold = 300 * time.Millisecond

type key int

const (
	keyUp key = iota
	keyDown
	keyLeft
	keyRight
	keyCount
)

func keyFor(a core.Action) (key, bool) {
	switch a {
	case core.ActionUp:
		return keyUp, true
	case core.ActionDown:
		return keyDown, true
	case core.ActionLeft:
		return keyLeft, true
	case core.ActionRight:
		return keyRight, true
	}
	return 0, false
}

// Sampler tracks held direction keys and the pause toggle.
// It is safe for concurrent use.
type Sampler struct {
	mu       sync.Mutex
	hold     time.Duration
	lastSeen [keyCount]time.Time
	held     [keyCount]bool
	paused   bool
}

// New creates a sampler. A non-positive hold uses DefaultHold.
func New(hold time.Duration) *Sampler {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Sampler{hold: hold}
}

// Press records a key-down (or autorepeat) for a movement action.
// It reports whether the action was a movement key; other actions are ignored.
func (s *Sampler) Press(a core.Action, now time.Time) bool {
	k, ok := keyFor(a)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held[k] = true
	s.lastSeen[k] = now
	return true
}

// Release records an explicit key-up.
func (s *Sampler) Release(a core.Action) {
	k, ok := keyFor(a)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held[k] = false
}

// TogglePause flips the pause flag and returns the new value.
func (s *Sampler) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}

// SetPaused forces the pause flag.
func (s *Sampler) SetPaused(p bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = p
}

// Paused returns the pause flag.
func (s *Sampler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Clear releases every key. The pause flag is kept.
func (s *Sampler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = [keyCount]bool{}
}

// Snapshot returns the direction for the next tick.
// Up and left are evaluated first, so down overrides up and right overrides left.
func (s *Sampler) Snapshot(now time.Time) core.InputFrame {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f core.InputFrame
	if s.isHeld(keyUp, now) {
		f.DirY = -1
	}
	if s.isHeld(keyDown, now) {
		f.DirY = 1
	}
	if s.isHeld(keyLeft, now) {
		f.DirX = -1
	}
	if s.isHeld(keyRight, now) {
		f.DirX = 1
	}
	return f
}

// isHeld expires stale keys. Caller holds mu.
func (s *Sampler) isHeld(k key, now time.Time) bool {
	if !s.held[k] {
		return false
	}
	if now.Sub(s.lastSeen[k]) > s.hold {
		s.held[k] = false
		return false
	}
	return true
}
