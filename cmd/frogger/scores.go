package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagLimit int
	flagRunID string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded rounds",
	Long: `Display the best round scores from the score ledger.
The default ledger is in-memory, so point --db at the file a
previous session wrote to.

Examples:
  frogger scores --db ~/.frogger/scores.db
  frogger scores --db ./scores.db --limit 25
  frogger scores --db ./scores.db --run <run-id>`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show every round of one run instead")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	if flagRunID != "" {
		scores, err = store.RunScores(flagRunID)
	} else {
		scores, err = store.TopScores("frogger", flagLimit)
	}
	if err != nil {
		return err
	}
	logger.Debug("scores loaded", "rows", len(scores), "db", flagDBPath)

	fmt.Println("High Scores - Frogger")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'frogger play --db <path>' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "Rank", "Player", "Round", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-5d  %-8d  %s\n", i+1, entry.Player, entry.Round, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats("frogger"); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Rounds: %d  Avg: %.0f\n",
			stats.HighScore, stats.Runs, stats.Rounds, stats.AvgScore)
	}
	return nil
}
