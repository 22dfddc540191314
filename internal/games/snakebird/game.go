package snakebird

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/snakebird/internal/config"
	"github.com/vovakirdan/snakebird/internal/core"
)

// Game wraps the engine into a playable session for the platform layer.
// It owns the current snapshot plus the started and paused flags.
type Game struct {
	variant    Variant
	base       config.SnakeBirdConfig
	cfg        config.SnakeBirdConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	engine     *Engine
	difficulty *config.DifficultyManager
	state      State
	started    bool
	paused     bool
}

// New creates a game for the variant using the configuration set by SetConfig.
func New(v Variant) *Game {
	return NewWithConfig(v, currentConfig())
}

// NewWithConfig creates a game for the variant with an explicit configuration.
func NewWithConfig(v Variant, cfg config.SnakeBirdConfig) *Game {
	g := &Game{variant: v, base: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name of the variant.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns the menu blurb of the variant.
func (g *Game) Description() string {
	return g.variant.Description
}

// Config returns the effective configuration of the session.
func (g *Game) Config() config.SnakeBirdConfig {
	return g.cfg
}

// Snapshot returns a copy of the current simulation state.
func (g *Game) Snapshot() State {
	return g.state.Clone()
}

// Reset starts a fresh, not yet started run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	g.runtime = rt
	g.cfg = g.variant.Apply(g.base)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.engine = NewEngine(g.cfg, g.rng)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Timing)
	g.state = g.engine.Initial()
	g.started = false
	g.paused = false
}

// Step advances the game by one tick.
// The first frame with movement starts the run.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.state.GameOver() || g.paused {
		return core.StepResult{State: g.State()}
	}
	if !g.started {
		if !in.Moving() {
			return core.StepResult{State: g.State()}
		}
		g.started = true
	}

	next, events := g.engine.Step(g.state, in, dt.Seconds())
	g.state = next

	return core.StepResult{State: g.State(), Notices: g.notices(events)}
}

// Command applies a presenter command and returns the new summary.
func (g *Game) Command(c core.Command) core.GameState {
	switch c {
	case core.CommandStart:
		if !g.state.GameOver() {
			g.started = true
		}
	case core.CommandTogglePause:
		if g.started && !g.state.GameOver() {
			g.paused = !g.paused
		}
	case core.CommandReset:
		// A new seed from the session RNG keeps resets reproducible
		rt := g.runtime
		rt.Seed = g.rng.Int63()
		g.Reset(rt)
	case core.CommandDismiss:
		g.state = g.engine.Dismiss(g.state)
	}
	return g.State()
}

// State returns the session summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Frogs:    g.state.Player.Growth,
		Portals:  g.state.Portals,
		Elapsed:  g.state.Clock,
		Started:  g.started,
		Paused:   g.paused,
		GameOver: g.state.GameOver(),
		Reason:   g.state.Over.Message(),
	}
}

// TickInterval returns the period of the next tick; it shrinks as the score grows.
func (g *Game) TickInterval() time.Duration {
	return g.difficulty.TickInterval(g.runtime.TickRate, g.state.Score, g.state.Tick)
}

// notices turns engine events into presenter notifications.
func (g *Game) notices(events []Event) []core.Notice {
	var out []core.Notice
	for _, ev := range events {
		switch ev.Kind {
		case EventPortalEntered:
			out = append(out, core.Notice{Tone: core.ToneGood, Text: fmt.Sprintf("Portal! +%d", ev.Points)})
			if g.state.MiniGame != nil {
				out = append(out, core.Notice{Tone: core.ToneInfo, Text: g.state.MiniGame.Summary()})
			}
		case EventFrogEaten:
			out = append(out, core.Notice{Tone: core.ToneGood, Text: fmt.Sprintf("Yum! +%d", ev.Points)})
		case EventBadFrog:
			out = append(out, core.Notice{Tone: core.ToneBad, Text: fmt.Sprintf("Bad frog! %d", ev.Points)})
		case EventWorldExited:
			text := "Back to the pipes"
			if g.state.Player.Invincible() {
				text = fmt.Sprintf("Back to the pipes, invincible for %.0fs", g.state.Player.InvincibleFor)
			}
			out = append(out, core.Notice{Tone: core.ToneInfo, Text: text})
		case EventGameOver:
			out = append(out, core.Notice{Tone: core.ToneBad, Text: ev.Reason.Message()})
		}
	}
	return out
}
