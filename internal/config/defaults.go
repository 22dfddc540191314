package config

import (
	_ "embed"
)

//go:embed defaults/snakebird.yaml
var defaultSnakeBirdYAML []byte

// DefaultSnakeBirdConfig returns the built-in configuration.
// It mirrors defaults/snakebird.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeBirdConfig() SnakeBirdConfig {
	return SnakeBirdConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX: 120,
			StartY: 300,
			Size:   30,
			Step:   5,
		},
		Obstacles: ObstacleConfig{
			Width:        60,
			Speed:        3,
			Spacing:      300,
			Margin:       50,
			InitialGap:   200,
			MinGap:       120,
			GapStep:      10,
			GapEvery:     10,
			PortalChance: 0.3,
			WindowLow:    0.3,
			WindowHigh:   0.7,
		},
		Frogs: FrogConfig{
			Count:         3,
			RefillEvery:   4,
			AdverseChance: 0.2,
			CollectRadius: 25,
			Margin:        40,
		},
		Bonus: BonusConfig{
			Duration:      15,
			FrogCount:     15,
			AdverseChance: 0.3,
			ExitRadius:    40,
			EntryBonus:    10,
		},
		Growth: GrowthConfig{
			MaxSegments:    20,
			FollowDistance: 18,
		},
		Invincibility: InvincibilityConfig{
			ExitGrace: 2,
		},
		Scoring: ScoringConfig{
			PassReward:       1,
			PortalPassReward: 3,
			FrogReward:       5,
			AdversePenalty:   10,
			EatingDisplay:    0.5,
			AdverseDisplay:   1.0,
		},
		Features: Features{
			Frogs:         true,
			Growth:        true,
			BonusWorld:    true,
			MiniGames:     true,
			Invincibility: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
		Timing: TimingConfig{
			MinTickMillis: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeBirdYAML
}
