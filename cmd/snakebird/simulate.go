package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/snakebird/internal/config"
	"github.com/vovakirdan/snakebird/internal/core"
	"github.com/vovakirdan/snakebird/internal/games/snakebird"
	"github.com/vovakirdan/snakebird/internal/storage"
)

const survived = "survived"

var (
	flagRuns     int
	flagTicks    int
	flagParallel int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run headless autopilot games and print a summary",
	Long: `Run seeded games without a terminal UI, steered by the built-in autopilot.

Run i uses seed (--seed + i); with --seed 0 the base seed is the current time.
Per-run results are logged to stderr, the summary goes to stdout.

Examples:
  snakebird simulate
  snakebird simulate portals --runs 200 --ticks 3000 --seed 1
  snakebird simulate classic --difficulty hard --log-level warn`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 20, "Number of games")
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Tick limit per game")
	simulateCmd.Flags().IntVar(&flagParallel, "parallel", runtime.NumCPU(), "Games simulated at once")
}

// simResult is the outcome of one headless run.
type simResult struct {
	Seed    int64
	Score   int
	Frogs   int
	Portals int
	Ticks   int
	Elapsed float64
	Reason  string
}

// simulateRun plays one game with the autopilot for at most ticks ticks.
func simulateRun(ctx context.Context, v snakebird.Variant, cfg config.SnakeBirdConfig, seed int64, ticks int) (simResult, error) {
	g := snakebird.NewWithConfig(v, cfg)
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)
	g.Command(core.CommandStart)

	dt := time.Second / time.Duration(rt.TickRate)
	res := simResult{Seed: seed}
	for res.Ticks < ticks && !g.State().GameOver {
		// Checked every second of simulated time
		if res.Ticks%rt.TickRate == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		g.Step(snakebird.Autopilot(g.Snapshot(), g.Config()), dt)
		res.Ticks++
	}

	st := g.State()
	res.Score = st.Score
	res.Frogs = st.Frogs
	res.Portals = st.Portals
	res.Elapsed = st.Elapsed
	res.Reason = survived
	if st.GameOver {
		res.Reason = st.Reason
	}
	return res, nil
}

// simulate runs n games concurrently; results are ordered by run index.
func simulate(ctx context.Context, v snakebird.Variant, cfg config.SnakeBirdConfig, baseSeed int64, n, ticks, parallel int) ([]simResult, error) {
	results := make([]simResult, n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, parallel))
	for i := range n {
		eg.Go(func() error {
			r, err := simulateRun(ctx, v, cfg, baseSeed+int64(i), ticks)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	id := defaultVariant
	if len(args) == 1 {
		id = args[0]
	}
	v, ok := snakebird.VariantByID(id)
	if !ok {
		return fmt.Errorf("unknown variant %q (run 'snakebird list' to see available variants)", id)
	}
	if flagRuns <= 0 || flagTicks <= 0 {
		return fmt.Errorf("--runs and --ticks must be positive")
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	baseSeed := sessionSeed()
	logger.Info("simulating", "variant", id, "runs", flagRuns, "ticks", flagTicks, "seed", baseSeed)

	start := time.Now()
	results, err := simulate(cmd.Context(), v, cfg, baseSeed, flagRuns, flagTicks, flagParallel)
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Info("run", "seed", r.Seed, "score", r.Score, "frogs", r.Frogs,
			"portals", r.Portals, "ticks", r.Ticks, "end", r.Reason)
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		if _, err := store.SaveRun(storage.RunRecord{
			Variant:      id,
			Score:        r.Score,
			Frogs:        r.Frogs,
			Portals:      r.Portals,
			EndReason:    r.Reason,
			DurationSecs: r.Elapsed,
		}); err != nil {
			return err
		}
	}

	logger.Debug("simulation finished", "wall", time.Since(start).Round(time.Millisecond))
	return printSummary(cmd.OutOrStdout(), store, v, results)
}

// printSummary writes aggregate statistics of the recorded runs.
func printSummary(w io.Writer, store *storage.Store, v snakebird.Variant, results []simResult) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	s, ok := stats[v.ID]
	if !ok {
		return fmt.Errorf("no runs recorded for %q", v.ID)
	}

	top, err := store.TopRuns(v.ID, 1)
	if err != nil {
		return err
	}

	reasons := map[string]int{}
	for _, r := range results {
		reasons[r.Reason]++
	}
	names := make([]string, 0, len(reasons))
	for name := range reasons {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "%s: %d runs\n", v.Title, s.Runs)
	fmt.Fprintf(w, "  best score:    %d\n", s.BestScore)
	fmt.Fprintf(w, "  mean score:    %.1f\n", s.AvgScore)
	fmt.Fprintf(w, "  frogs eaten:   %d\n", s.TotalFrogs)
	fmt.Fprintf(w, "  portals:       %d\n", s.TotalPortals)
	if len(top) == 1 {
		fmt.Fprintf(w, "  best run time: %.1fs\n", top[0].DurationSecs)
	}
	fmt.Fprintln(w, "  endings:")
	for _, name := range names {
		fmt.Fprintf(w, "    %-28s %d\n", name, reasons[name])
	}
	return nil
}
