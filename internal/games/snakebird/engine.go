// Package snakebird implements Snake Bird Adventure, a Flappy Bird variant
// where the bird steers freely, eats frogs to grow a tail, and can slip
// through portal windows into a timed bonus world.
//
// The simulation is a state-transition function: Engine.Step takes the
// previous State, one input frame and the elapsed time, and returns a new
// State plus the events of that tick. All randomness comes from the
// engine's seeded *rand.Rand.
package snakebird

import (
	"math/rand"

	"github.com/vovakirdan/snakebird/internal/config"
	"github.com/vovakirdan/snakebird/internal/core"
)

// Engine advances snapshots of the game.
type Engine struct {
	cfg config.SnakeBirdConfig
	rng *rand.Rand
}

// NewEngine creates an engine for the given config and random source.
func NewEngine(cfg config.SnakeBirdConfig, rng *rand.Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the engine configuration.
func (e *Engine) Config() config.SnakeBirdConfig {
	return e.cfg
}

// Initial returns the state of a fresh run.
func (e *Engine) Initial() State {
	s := State{
		Player: Player{
			Pos:    core.V(e.cfg.Player.StartX, e.cfg.Player.StartY),
			Facing: core.V(1, 0),
		},
		NextID: 1,
	}
	s.Player.Pos = e.clampToArena(s.Player.Pos)

	if e.cfg.Features.Frogs {
		s.Frogs = e.spawnFrogs(&s, e.cfg.Frogs.Count, e.cfg.Frogs.AdverseChance)
		s.FrogRefillAt = e.cfg.Frogs.RefillEvery
	}
	return s
}

// Step advances the simulation by dt seconds.
// A finished run is returned unchanged.
func (e *Engine) Step(prev State, in core.InputFrame, dt float64) (State, []Event) {
	if prev.GameOver() {
		return prev, nil
	}

	s := prev.Clone()
	var events []Event

	s.Clock += dt
	s.Tick++

	e.movePlayer(&s, in)
	s.Player.InvincibleFor = max(0, s.Player.InvincibleFor-dt)

	if s.Bonus.Active {
		e.stepBonus(&s, dt, &events)
	} else {
		e.stepPrimary(&s, &events)
	}

	// Segments chase the head's final position, including a bonus-exit jump
	if e.cfg.Features.Growth {
		count := min(e.cfg.Growth.MaxSegments, s.Player.Growth)
		s.Segments = Follow(s.Segments, s.Player.Pos, count, e.cfg.Growth.FollowDistance, s.Player.Facing.Scale(-1))
	}
	return s, events
}

// stepPrimary runs one tick of the pipe world.
func (e *Engine) stepPrimary(s *State, events *[]Event) {
	e.stepObstacles(s, events)
	if s.GameOver() || s.Bonus.Active {
		return
	}
	if e.cfg.Features.Frogs {
		s.Frogs = e.collectFrogs(s, s.Frogs, events)
		e.refillFrogs(s)
	}
}

// Dismiss hides the mini-game overlay. Nothing else changes.
func (e *Engine) Dismiss(prev State) State {
	s := prev.Clone()
	s.MiniGame = nil
	return s
}

// PlayerBox returns the hitbox of a player.
func (e *Engine) PlayerBox(p Player) core.Box {
	return core.BoxAround(p.Pos, e.cfg.Player.Size, e.cfg.Player.Size)
}

func (e *Engine) movePlayer(s *State, in core.InputFrame) {
	if !in.Moving() {
		return
	}
	dir := in.Dir()
	s.Player.Pos = e.clampToArena(s.Player.Pos.Add(dir.Scale(e.cfg.Player.Step)))
	s.Player.Facing = dir.Norm()
}

// clampToArena keeps the whole hitbox inside the arena.
func (e *Engine) clampToArena(p core.Vec2) core.Vec2 {
	half := e.cfg.Player.Size / 2
	return core.V(
		core.ClampF(p.X, half, e.cfg.Arena.Width-half),
		core.ClampF(p.Y, half, e.cfg.Arena.Height-half),
	)
}

// uniform returns a value in [lo, hi], or lo when the range is empty.
func (e *Engine) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Float64()*(hi-lo)
}
