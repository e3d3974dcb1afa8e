package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pulse/internal/registry"
	"github.com/vovakirdan/neon-pulse/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRuns  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top scores for a mode (neonpulse by default).

Examples:
  neonpulse scores
  neonpulse scores neonpulse_classic --limit 20
  neonpulse scores --runs
  neonpulse scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "Show recent runs with statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := resolveMode(args)
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s\n", game.Title())
		return nil
	}

	if flagScoresRuns {
		return printRuns(cmd, store, gameID, game.Title())
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'neonpulse play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Fprintf(out, "\nBest: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printRuns(cmd *cobra.Command, store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Recent Runs - %s\n\n", title)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-8s  %-6s  %-3s  %-6s  %-5s  %-8s  %s\n", "Run", "Score", "Lv", "Pulses", "Items", "End", "Date")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-8s  %-6d  %-3d  %-6d  %-5d  %-8s  %s\n",
			r.RunID[:8], r.Stats.Score, r.Stats.Level, r.Stats.Pulses, r.Stats.PowerUps,
			r.Stats.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if totals, err := store.GetRunTotals(gameID); err == nil {
		fmt.Fprintf(out, "\nRuns: %d  Best level: %d  Pulses: %d  Power-ups: %d\n",
			totals.Runs, totals.BestLevel, totals.Pulses, totals.PowerUps)
	}
	return nil
}
