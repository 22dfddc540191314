// snakebird is a terminal Flappy Bird variant with portal pipes, bonus worlds,
// frogs and a growing tail.
//
// Usage:
//
//	snakebird                      - Start the variant picker menu
//	snakebird menu                 - Same as above
//	snakebird play [variant]       - Play a variant directly (default: snakebird)
//	snakebird list                 - List available variants
//	snakebird simulate [variant]   - Run headless autopilot games and print a summary
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file (the TUI never logs to the terminal)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/snakebird/internal/games/snakebird"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakebird",
	Short: "Snake Bird Adventure - a Flappy Bird variant for your terminal",
	Long: `Snake Bird Adventure steers a bird through scrolling pipes.

Thread a portal window to enter a timed bonus world full of frogs, win a
mini-game bonus on the way in, and come back invincible. Good frogs grow
your tail; red frogs cost points.

Available commands:
  menu      - Interactive variant picker (default)
  play      - Play a variant directly
  list      - Show all variants
  simulate  - Headless autopilot runs

Examples:
  snakebird
  snakebird play portals --difficulty easy
  snakebird simulate --runs 100 --ticks 5000`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simulateCmd)
}
