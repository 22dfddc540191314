package config

import (
	"math"
	"time"
)

// DifficultyManager derives the tick period from score or elapsed ticks.
// A higher level means a shorter period, so the whole game runs faster.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
	minTick      time.Duration
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, timing TimingConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
		minTick:      time.Duration(timing.MinTickMillis) * time.Millisecond,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TickInterval returns the scheduler period for the given base tick rate.
// The rate grows from tickRate to tickRate*(1+speedMultiplier) with the level.
func (d *DifficultyManager) TickInterval(tickRate int, score int, ticks uint64) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	rate := float64(tickRate) * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
	interval := time.Duration(float64(time.Second) / rate)
	if interval < d.minTick {
		interval = d.minTick
	}
	return interval
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
