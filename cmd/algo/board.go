package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nkondratov/algo/internal/core"
	"github.com/nkondratov/algo/internal/game"
)

const (
	boardPrintW = 80
	boardPrintH = 24
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the generated board layout",
	Long: `Deal a board and print it as plain text without starting the TUI.
Useful for checking what a given seed produces.

Examples:
  algo board
  algo board --seed 42`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, _ []string) {
	params, err := loadParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	session := game.Generate(params)
	view := session.View()

	screen := core.NewScreen(boardPrintW, boardPrintH)
	area := core.NewRect(0, 0, boardPrintW, boardPrintH)
	screen.DrawBox(area)

	for _, tv := range view.Tiles {
		label := strconv.Itoa(tv.Value)
		row := core.Clamp(1+tv.Pos.X*(boardPrintH-2)/40, 1, boardPrintH-2)
		col := core.Clamp(1+tv.Pos.Y*(boardPrintW-2)/80, 1, core.Max(1, boardPrintW-1-len(label)))
		screen.DrawText(col, row, label)
	}

	fmt.Printf("Seed %d, %d tiles\n\n", params.Seed, len(view.Tiles))
	fmt.Println(screen.String())
}
