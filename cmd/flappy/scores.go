package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cli-flappy/internal/storage"
)

var errHistoryDisabled = errors.New("run history is disabled (set storage.history_path or --db)")

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs from the history database.

Examples:
  flappy scores
  flappy scores --limit 5
  flappy scores --clear
  flappy scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().Int("limit", 10, "Number of runs to show")
	scoresCmd.Flags().Bool("clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Storage.HistoryPath == "" {
		return errHistoryDisabled
	}

	history, err := storage.OpenHistory(cfg.Storage.HistoryPath)
	if err != nil {
		return err
	}
	defer history.Close()

	if wipe, _ := cmd.Flags().GetBool("clear"); wipe {
		return clearRuns(cmd.OutOrStdout(), history)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	return printRuns(cmd.OutOrStdout(), history, limit)
}

// clearRuns deletes the history and reports how many runs were removed.
func clearRuns(w io.Writer, history *storage.History) error {
	n, err := history.Count()
	if err != nil {
		return err
	}
	if err := history.Clear(); err != nil {
		return err
	}
	logger.Debug("run history cleared", "runs", n)
	_, err = fmt.Fprintf(w, "Deleted %d recorded runs.\n", n)
	return err
}

// printRuns writes the best limit runs as a ranked table.
func printRuns(w io.Writer, history *storage.History, limit int) error {
	n, err := history.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		_, err := fmt.Fprintln(w, "No scores recorded yet.\n\nPlay 'flappy' to set the first high score!")
		return err
	}

	runs, err := history.TopRuns(limit)
	if err != nil {
		return err
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-14s  %s\n", "Rank", "Score", "Ticks", "Ended", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-14s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		if _, err := fmt.Fprintf(w, "  %-4d  %-8d  %-8d  %-14s  %s\n", i+1, r.Score, r.Ticks, r.Cause, dateStr); err != nil {
			return err
		}
	}

	// Show high score
	fmt.Fprintln(w)
	best, err := history.HighScore()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Best: %d of %d runs\n", best, n)
	return err
}
