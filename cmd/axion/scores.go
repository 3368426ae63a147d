package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/axion/internal/platform/tui"
	"github.com/vovakirdan/axion/internal/storage"
)

var (
	flagScoreLimit int
	flagShowRuns   bool
	flagBrowse     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores of a mode (default: normal) or the most recent runs.

Examples:
  axion scores
  axion scores hard --limit 20
  axion scores --runs
  axion scores --browse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Show recent runs instead of top scores")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}
	if flagShowRuns {
		return printRuns(store)
	}

	mode := "normal"
	if len(args) == 1 {
		mode = args[0]
	}
	return printScores(store, mode)
}

func printScores(store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, flagScoreLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", mode)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		if modes, err := store.Modes(); err == nil && len(modes) > 0 {
			fmt.Printf("Recorded modes: %v\n", modes)
		}
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %s\n", i+1, e.Score, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(mode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.1f  Best level: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel)
	return nil
}

func printRuns(store *storage.Store) error {
	runs, err := store.RecentRuns(flagScoreLimit)
	if err != nil {
		return err
	}

	fmt.Print("Recent Runs\n\n")
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-7s  %-5s  %-6s  %-6s  %s\n", "Date", "Mode", "Outcome", "Level", "Fill", "Score", "Seed")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %-7s  %-5d  %-6s  %-6d  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Mode,
			r.Outcome,
			r.Level,
			fmt.Sprintf("%.1f%%", r.FillPct),
			r.Score,
			r.Seed)
	}
	return nil
}
