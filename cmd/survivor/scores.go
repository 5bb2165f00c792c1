package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

var (
	flagLimit       int
	flagScoresLevel string
	flagRecent      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the best runs from the run history.

Examples:
  survivor scores
  survivor scores --difficulty hard --limit 5
  survivor scores --recent`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresLevel, "difficulty", "", "Only show runs of this difficulty")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
}

func runScores(cmd *cobra.Command, _ []string) error {
	if flagScoresLevel != "" {
		if _, err := config.ParsePreset(flagScoresLevel); err != nil {
			return err
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run database: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var runs []storage.Run
	title := "Best runs"
	if flagRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(ctx, flagLimit)
	} else {
		runs, err = store.TopRuns(ctx, flagScoresLevel, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	if flagScoresLevel != "" && !flagRecent {
		title += " - " + flagScoresLevel
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'survivor play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-7s  %-12s  %s\n", "Rank", "Score", "Level", "Kills", "Bosses", "Mode", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-7s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-6d  %-7s  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Kills, r.BossesDefeated, r.Difficulty, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if st, err := store.Stats(ctx); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Best level: %d\n", st.HighScore, st.Runs, st.AvgScore, st.BestLevel)
	}
	return nil
}
