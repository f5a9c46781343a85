package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkondratov/algo/internal/ranking"
)

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the top submitted scores",
	Long: `Display the top 10 submitted scores.

Examples:
  algo ranking
  algo ranking --db ./ranking.db`,
	Args: cobra.NoArgs,
	Run:  runRanking,
}

func runRanking(_ *cobra.Command, _ []string) {
	store, err := ranking.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ranking database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Top(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving ranking: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Ranking")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores submitted yet.")
		fmt.Println()
		fmt.Println("Play 'algo play' to submit the first score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range entries {
		name := entry.Name
		if name == "" {
			name = "(anonymous)"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-10d  %s\n", i+1, name, entry.Score, dateStr)
	}

	best, err := store.Best()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
