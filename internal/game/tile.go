// Package game implements the numeric elimination puzzle: a board of integer
// tiles is reduced pair by pair through subtraction until a single tile
// remains, whose value is the final score. The package is UI-agnostic and
// deterministic; all mutation goes through Session.Apply.
package game

// Position is a tile location in board units. X is the vertical offset and
// Y the horizontal offset, on a nominal 40x80 board. Both coordinates are
// non-negative; the generator clamps jittered values at zero.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Tile is one numeric board element. ID is the tile's index in the session's
// tile sequence; it is stable for the session lifetime and never reused.
// Once Used becomes true it stays true.
type Tile struct {
	ID    int
	Value int
	Pos   Position
	Used  bool
}

// Page identifies which view of the game the player is looking at.
type Page int

const (
	PagePlay Page = iota
	PageRanking
)

// String returns the display name of the page.
func (p Page) String() string {
	switch p {
	case PagePlay:
		return "Play"
	case PageRanking:
		return "Ranking"
	default:
		return "Unknown"
	}
}
