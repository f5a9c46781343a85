package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nkondratov/algo/internal/game"
	"github.com/nkondratov/algo/internal/ranking"
	"github.com/nkondratov/algo/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Deal a board and play it.

Controls:
  Left/Right, h/l  - Move between tiles
  Enter/Space      - Select a tile (again to deselect, another to combine)
  Mouse click      - Select a tile directly
  Tab              - Switch between Play and Ranking
  u                - Undo (not available yet)
  Q/Ctrl+C         - Quit

Examples:
  algo play
  algo play --seed 42
  algo play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	params, err := loadParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session := game.Generate(params)

	store, err := ranking.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open ranking database: %v\n", err)
		// Continue without ranking - the board is still playable
		store = nil
	}

	runErr := tui.Run(session, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
