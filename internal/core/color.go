package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors for board elements. Gray is the idle tile color,
// yellow marks the selected tile, matching the chalkboard look.
const (
	ColorDefault Color = iota
	ColorGray
	ColorYellow
	ColorWhite
	ColorBlue
	ColorGreen
)
