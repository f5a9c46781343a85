// algo is a single-player numeric elimination puzzle played in the terminal.
//
// Usage:
//
//	algo play                - Play a board
//	algo board               - Print the generated board layout
//	algo ranking             - Show the top submitted scores
//	algo serve               - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Override the board seed (0 = use config)
//	--config <path> - Path to a custom board config YAML
//	--db <path>     - Set ranking database path (default: ~/.algo/ranking.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkondratov/algo/internal/config"
	"github.com/nkondratov/algo/internal/game"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "algo",
	Short: "Algo - a numeric elimination puzzle in your terminal",
	Long: `Algo deals a board of numbered tiles. Combine two tiles to subtract
one from the other; the consumed tile leaves the board. When a single tile
remains, its value is your score. The same seed always deals the same board,
so scores on one seed are comparable.

Available commands:
  play     - Play a board
  board    - Print the generated board layout
  ranking  - View the top scores
  serve    - Start SSH server for remote play

Examples:
  algo play
  algo play --seed 42
  algo board --seed 42
  algo ranking
  algo serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Board seed (0 = use config seed)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.algo/ranking.db", "Path to ranking database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadParams resolves the effective board parameters: config file (custom,
// user, project, or embedded default), then the --seed override on top.
func loadParams() (game.BoardParams, error) {
	board, err := config.LoadBoard(flagConfig)
	if err != nil {
		return game.BoardParams{}, err
	}

	params := board.Params()
	if flagSeed != 0 {
		params.Seed = flagSeed
	}
	return params, nil
}
