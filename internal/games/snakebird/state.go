package snakebird

import (
	"slices"

	"github.com/vovakirdan/snakebird/internal/core"
	"github.com/vovakirdan/snakebird/internal/games/snakebird/minigame"
)

// EndReason tells why a run ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndCollision
	EndTimeout
)

// String returns a short machine-friendly name.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndCollision:
		return "collision"
	case EndTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Message returns the game-over text shown to the player.
func (r EndReason) Message() string {
	switch r {
	case EndCollision:
		return "You hit a pipe!"
	case EndTimeout:
		return "Lost in the bonus world!"
	default:
		return ""
	}
}

// Player is the bird's head.
type Player struct {
	Pos    core.Vec2 // Center of the square hitbox
	Facing core.Vec2 // Last non-zero movement direction, unit length
	Growth int       // Good frogs eaten

	// Reactions are shown until the simulation clock passes these stamps.
	EatingUntil  float64
	AdverseUntil float64

	InvincibleFor float64 // Remaining seconds of invincibility
}

// Eating reports whether the eating reaction is showing at the given clock.
func (p Player) Eating(clock float64) bool {
	return clock < p.EatingUntil
}

// Adverse reports whether the bad-frog reaction is showing at the given clock.
func (p Player) Adverse(clock float64) bool {
	return clock < p.AdverseUntil
}

// Invincible reports whether obstacle collisions are currently ignored.
func (p Player) Invincible() bool {
	return p.InvincibleFor > 0
}

// Obstacle is a pipe pair with a vertical gap. Portal pipes carry a window
// inside the gap that leads to the bonus world.
type Obstacle struct {
	ID       int
	X        float64 // Left edge
	GapStart float64 // Top of the gap
	Gap      float64 // Gap height
	Passed   bool
	Portal   bool
	Used     bool // Portal already entered; the pipe is inert from then on
}

// GapEnd returns the bottom of the gap.
func (o Obstacle) GapEnd() float64 {
	return o.GapStart + o.Gap
}

// GapCenter returns the vertical center of the gap.
func (o Obstacle) GapCenter() float64 {
	return o.GapStart + o.Gap/2
}

// Window returns the portal window bounds for the given gap fractions.
func (o Obstacle) Window(low, high float64) (top, bottom float64) {
	return o.GapStart + low*o.Gap, o.GapStart + high*o.Gap
}

// Frog is a collectible. Adverse frogs cost points.
type Frog struct {
	ID        int
	Pos       core.Vec2
	Collected bool
	Adverse   bool
}

// BonusWorld is the portal session. Exit and Portal are nil iff inactive.
type BonusWorld struct {
	Active    bool
	Remaining float64
	Exit      *core.Vec2
	Portal    *Obstacle // Copy of the obstacle that was entered
	Frogs     []Frog
}

// State is a full simulation snapshot. Step never mutates its input state.
type State struct {
	Player    Player
	Segments  []core.Vec2
	Obstacles []Obstacle
	Frogs     []Frog // Primary world population
	Bonus     BonusWorld
	MiniGame  *minigame.Result // Shown until dismissed

	Score   int
	Portals int // Bonus worlds entered

	Clock        float64 // Simulated seconds
	Tick         uint64
	NextID       int
	FrogRefillAt float64

	Over EndReason
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Segments = slices.Clone(s.Segments)
	c.Obstacles = slices.Clone(s.Obstacles)
	c.Frogs = slices.Clone(s.Frogs)
	c.Bonus.Frogs = slices.Clone(s.Bonus.Frogs)
	if s.Bonus.Exit != nil {
		exit := *s.Bonus.Exit
		c.Bonus.Exit = &exit
	}
	if s.Bonus.Portal != nil {
		portal := *s.Bonus.Portal
		c.Bonus.Portal = &portal
	}
	if s.MiniGame != nil {
		mg := *s.MiniGame
		c.MiniGame = &mg
	}
	return c
}

// ActiveFrogs returns the frog population of the current world.
func (s State) ActiveFrogs() []Frog {
	if s.Bonus.Active {
		return s.Bonus.Frogs
	}
	return s.Frogs
}

// GameOver reports whether the run has ended.
func (s State) GameOver() bool {
	return s.Over != EndNone
}

func (s *State) nextID() int {
	id := s.NextID
	s.NextID++
	return id
}

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventPassed EventKind = iota
	EventPortalEntered
	EventFrogEaten
	EventBadFrog
	EventWorldExited
	EventGameOver
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventPassed:
		return "passed"
	case EventPortalEntered:
		return "portal_entered"
	case EventFrogEaten:
		return "frog_eaten"
	case EventBadFrog:
		return "bad_frog"
	case EventWorldExited:
		return "world_exited"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for the presenter and logs.
type Event struct {
	Kind       EventKind
	Points     int // Score change caused by the event
	ObstacleID int
	Reason     EndReason
}
