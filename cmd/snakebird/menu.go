package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakebird/internal/platform/tui"
	"github.com/vovakirdan/snakebird/internal/registry"
	"github.com/vovakirdan/snakebird/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a variant.
After a run you return to the menu; Tab shows the runs of this session.
Runs are forgotten when the program exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Session runs board
  Q            - Quit

Examples:
  snakebird menu
  snakebird menu --fps 30
  snakebird menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := loadGameConfig(); err != nil {
		return err
	}

	logger, closeLog, err := openTUILogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("run ledger unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsRuns {
			goBack, err := tui.RunRunsBoard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("runs board: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "variant", menuResult.GameID, "err", err)
			continue
		}

		// New seed for each game
		cfg.Seed = sessionSeed()
		logger.Info("starting", "variant", menuResult.GameID, "seed", cfg.Seed)

		if err := tui.Run(game, store, logger, cfg); err != nil {
			return fmt.Errorf("running game: %w", err)
		}

		// Loop back to menu
	}
}
