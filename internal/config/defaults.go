package config

import (
	_ "embed"

	"github.com/nkondratov/algo/internal/game"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultBoard returns the default board configuration. It mirrors the
// embedded defaults/board.yaml and serves as the last-resort fallback.
func DefaultBoard() Board {
	return Board{
		Seed: 13,
		Grid: GridConfig{
			Rows:       []int{6, 18, 30},
			Cols:       []int{16, 28, 40, 52, 64, 76},
			Jitter:     2,
			DefaultPos: game.Position{X: 50, Y: 50},
		},
		Values: ValueRange{Min: -100, Max: 100},
		Tiles:  TileRange{Min: 12, Max: 12},
	}
}
