package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hypnos/internal/registry"
	"github.com/vovakirdan/hypnos/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the best runs for a variant",
	Long: `Display the best runs for the specified variant.

Examples:
  hypnos scores climber
  hypnos scores climber_classic --limit 25`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'hypnos list' to see available games", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Best Runs - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'hypnos play %s' to set the first record!\n", gameID)
		return nil
	}

	printRuns(cmd, runs)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Highest: %dm  Avg: %.0f\n",
		stats.GamesCount, stats.HighScore, stats.BestHeight, stats.AvgScore)
	return nil
}

func printRuns(cmd *cobra.Command, runs []storage.Run) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-7s  %s\n", "Rank", "Score", "Height", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-7s  %s\n", "----", "-----", "------", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-8s  %-7s  %s\n",
			i+1, r.Score, fmt.Sprintf("%dm", r.Height), r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
