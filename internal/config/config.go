// Package config provides YAML-based game configuration loading and
// difficulty management for Snake Bird.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SnakeBirdConfig contains all tunables of the simulation.
// Distances are in arena units, durations in seconds of simulated time.
type SnakeBirdConfig struct {
	Arena         ArenaConfig         `yaml:"arena"`
	Player        PlayerConfig        `yaml:"player"`
	Obstacles     ObstacleConfig      `yaml:"obstacles"`
	Frogs         FrogConfig          `yaml:"frogs"`
	Bonus         BonusConfig         `yaml:"bonus"`
	Growth        GrowthConfig        `yaml:"growth"`
	Invincibility InvincibilityConfig `yaml:"invincibility"`
	Scoring       ScoringConfig       `yaml:"scoring"`
	Features      Features            `yaml:"features"`
	Difficulty    DifficultyConfig    `yaml:"difficulty"`
	Timing        TimingConfig        `yaml:"timing"`
}

// ArenaConfig is the logical coordinate space, independent of the terminal.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the bird's hitbox and movement.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"` // Square hitbox edge
	Step   float64 `yaml:"step"` // Displacement per tick per held axis
}

// ObstacleConfig defines pipe spawning, motion and gap sizing.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	Speed        float64 `yaml:"speed"`   // Leftward displacement per tick
	Spacing      float64 `yaml:"spacing"` // Distance from the right edge before the next spawn
	Margin       float64 `yaml:"margin"`  // Safe band kept clear above and below every gap
	InitialGap   float64 `yaml:"initial_gap"`
	MinGap       float64 `yaml:"min_gap"`
	GapStep      float64 `yaml:"gap_step"`  // Gap shrink per GapEvery points
	GapEvery     int     `yaml:"gap_every"` // Score interval between shrinks
	PortalChance float64 `yaml:"portal_chance"`
	WindowLow    float64 `yaml:"window_low"`  // Portal window start as a fraction of the gap
	WindowHigh   float64 `yaml:"window_high"` // Portal window end as a fraction of the gap
}

// FrogConfig defines the primary-world collectibles.
type FrogConfig struct {
	Count         int     `yaml:"count"`        // Uncollected frogs kept on the board
	RefillEvery   float64 `yaml:"refill_every"` // Seconds between refills
	AdverseChance float64 `yaml:"adverse_chance"`
	CollectRadius float64 `yaml:"collect_radius"`
	Margin        float64 `yaml:"margin"` // Keep frogs this far from the arena edges
}

// BonusConfig defines the bonus world reached through portals.
type BonusConfig struct {
	Duration      float64 `yaml:"duration"`
	FrogCount     int     `yaml:"frog_count"`
	AdverseChance float64 `yaml:"adverse_chance"`
	ExitRadius    float64 `yaml:"exit_radius"`
	EntryBonus    int     `yaml:"entry_bonus"`
}

// GrowthConfig defines the trailing body chain.
type GrowthConfig struct {
	MaxSegments    int     `yaml:"max_segments"`
	FollowDistance float64 `yaml:"follow_distance"`
}

// InvincibilityConfig defines invincibility grants.
type InvincibilityConfig struct {
	ExitGrace float64 `yaml:"exit_grace"` // Seconds granted when leaving a bonus world
}

// ScoringConfig defines rewards, penalties and reaction display times.
type ScoringConfig struct {
	PassReward       int     `yaml:"pass_reward"`
	PortalPassReward int     `yaml:"portal_pass_reward"`
	FrogReward       int     `yaml:"frog_reward"`
	AdversePenalty   int     `yaml:"adverse_penalty"`
	EatingDisplay    float64 `yaml:"eating_display"`
	AdverseDisplay   float64 `yaml:"adverse_display"`
}

// Features toggles the successive feature increments of the game.
type Features struct {
	Frogs         bool `yaml:"frogs"`
	Growth        bool `yaml:"growth"`
	BonusWorld    bool `yaml:"bonus_world"`
	MiniGames     bool `yaml:"mini_games"`
	Invincibility bool `yaml:"invincibility"`
}

// TimingConfig bounds the tick scheduler.
type TimingConfig struct {
	MinTickMillis int `yaml:"min_tick_millis"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra tick rate at max difficulty
}

// GapSize returns the gap for a newly spawned obstacle at the given score.
// The gap narrows by GapStep every GapEvery points and never drops below MinGap.
func (o ObstacleConfig) GapSize(score int) float64 {
	every := o.GapEvery
	if every <= 0 {
		every = 10
	}
	return max(o.MinGap, o.InitialGap-float64(score/every)*o.GapStep)
}

// Validate checks that the configuration describes a playable game.
func (c SnakeBirdConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have a positive size", ErrInvalid)
	case c.Player.Size <= 0 || c.Player.Step <= 0:
		return fmt.Errorf("%w: player size and step must be positive", ErrInvalid)
	case c.Obstacles.Width <= 0 || c.Obstacles.Speed <= 0:
		return fmt.Errorf("%w: obstacle width and speed must be positive", ErrInvalid)
	case c.Obstacles.MinGap <= 0 || c.Obstacles.MinGap > c.Obstacles.InitialGap:
		return fmt.Errorf("%w: min_gap %.0f must be positive and not exceed initial_gap %.0f",
			ErrInvalid, c.Obstacles.MinGap, c.Obstacles.InitialGap)
	case c.Obstacles.InitialGap+2*c.Obstacles.Margin > c.Arena.Height:
		return fmt.Errorf("%w: initial_gap plus margins exceeds arena height", ErrInvalid)
	case c.Obstacles.WindowLow < 0 || c.Obstacles.WindowHigh > 1 || c.Obstacles.WindowLow >= c.Obstacles.WindowHigh:
		return fmt.Errorf("%w: portal window must satisfy 0 <= low < high <= 1", ErrInvalid)
	case c.Player.Size > c.Obstacles.MinGap*(c.Obstacles.WindowHigh-c.Obstacles.WindowLow):
		return fmt.Errorf("%w: player does not fit the narrowest portal window", ErrInvalid)
	case !isProbability(c.Obstacles.PortalChance) || !isProbability(c.Frogs.AdverseChance) || !isProbability(c.Bonus.AdverseChance):
		return fmt.Errorf("%w: chances must be within [0, 1]", ErrInvalid)
	case c.Bonus.Duration <= 0 || c.Bonus.ExitRadius <= 0 || c.Frogs.CollectRadius <= 0:
		return fmt.Errorf("%w: bonus duration and radii must be positive", ErrInvalid)
	case c.Growth.MaxSegments < 0 || c.Growth.FollowDistance <= 0:
		return fmt.Errorf("%w: growth needs a non-negative cap and positive follow distance", ErrInvalid)
	case c.Scoring.AdversePenalty < 0:
		return fmt.Errorf("%w: adverse_penalty must not be negative", ErrInvalid)
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset converts a CLI flag value into a preset. An empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
