package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakebird/internal/platform/tui"
	"github.com/vovakirdan/snakebird/internal/registry"
	"github.com/vovakirdan/snakebird/internal/storage"
)

const defaultVariant = "snakebird"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: snakebird).

Controls:
  Arrows/WASD  - Move (the first move starts the run)
  P/Esc        - Pause
  Enter        - Start, or close the mini-game overlay
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.snakebird/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, longer bonus worlds
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, fewer portals, harsher red frogs
  fixed  - No progression, stays at config's initial level

Examples:
  snakebird play
  snakebird play classic --difficulty hard
  snakebird play portals --seed 42
  snakebird play --config ./my-snakebird.yaml --log-file /tmp/snakebird.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := defaultVariant
	if len(args) == 1 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'snakebird list' to see available variants)", variant)
	}

	if _, err := loadGameConfig(); err != nil {
		return err
	}

	logger, closeLog, err := openTUILogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	// Runs are kept for this process only
	store, err := storage.Open()
	if err != nil {
		logger.Warn("run ledger unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()
	cfg.Seed = sessionSeed()
	logger.Info("starting", "variant", variant, "seed", cfg.Seed, "fps", cfg.TickRate)

	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
