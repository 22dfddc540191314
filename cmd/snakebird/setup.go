package main

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/snakebird/internal/config"
	"github.com/vovakirdan/snakebird/internal/core"
	"github.com/vovakirdan/snakebird/internal/games/snakebird"
)

// loadGameConfig resolves --config and --difficulty and installs the result
// for games created through the registry.
func loadGameConfig() (config.SnakeBirdConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeBirdConfig{}, err
	}

	cfg, err := config.LoadSnakeBird(flagConfig)
	if err != nil {
		return config.SnakeBirdConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	snakebird.SetConfig(cfg)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// sessionSeed returns the seed for a new session: the --seed flag when set,
// otherwise the current time.
func sessionSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
