// Package tui provides the Bubble Tea integration for the game.
// It maps key and mouse input to game actions and the board view to the
// terminal; the session itself is only ever mutated through Apply.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nkondratov/algo/internal/core"
	"github.com/nkondratov/algo/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// Header bar styles.
var (
	headerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("33")).
			Foreground(lipgloss.Color("15")).
			Bold(true).
			Padding(0, 2)

	tabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("33")).
			Foreground(lipgloss.Color("153")).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("33")).
			Foreground(lipgloss.Color("15")).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	headerFillStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("33"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// renderHeader builds the title bar with the Play/Ranking tabs.
func renderHeader(width int, page game.Page) string {
	title := headerStyle.Render("Algo")
	playTab := tabStyle.Render(game.PagePlay.String())
	rankingTab := tabStyle.Render(game.PageRanking.String())
	switch page {
	case game.PagePlay:
		playTab = tabActiveStyle.Render(game.PagePlay.String())
	case game.PageRanking:
		rankingTab = tabActiveStyle.Render(game.PageRanking.String())
	}

	bar := title + playTab + rankingTab
	pad := width - lipgloss.Width(bar)
	if pad > 0 {
		bar += headerFillStyle.Render(strings.Repeat(" ", pad))
	}
	return bar
}
