package game

import (
	"math/rand"
)

// BoardParams configures the board generator. A given parameter set and seed
// always produce the same board.
type BoardParams struct {
	Seed int64

	// Rows and Cols are the base grid coordinates; their cross product forms
	// the candidate tile positions (rows are vertical offsets, cols
	// horizontal, see Position).
	Rows []int
	Cols []int

	// Jitter is the maximum absolute offset applied independently to each
	// coordinate, drawn uniformly from [-Jitter, Jitter].
	Jitter int

	// MinValue and MaxValue bound the tile values, inclusive.
	MinValue int
	MaxValue int

	// MinTiles and MaxTiles bound the tile count N, inclusive.
	MinTiles int
	MaxTiles int

	// DefaultPos pads the position list when the candidate grid yields fewer
	// positions than N.
	DefaultPos Position
}

// DefaultBoardParams returns the classic board: a 3x6 grid on the 40x80
// chalkboard, values in [-100, 100], twelve tiles.
func DefaultBoardParams() BoardParams {
	return BoardParams{
		Seed:       13,
		Rows:       []int{6, 18, 30},
		Cols:       []int{16, 28, 40, 52, 64, 76},
		Jitter:     2,
		MinValue:   -100,
		MaxValue:   100,
		MinTiles:   12,
		MaxTiles:   12,
		DefaultPos: Position{X: 50, Y: 50},
	}
}

// Generate builds a fresh Session from the parameters. All randomness comes
// from one shared stream, consumed in a fixed order: position jitter first
// (x then y per candidate, row-major), then the shuffle, then the tile
// count, then the tile values. Reordering any of these draws changes every
// board for a given seed, so the sequence is part of the contract.
func Generate(p BoardParams) *Session {
	rng := rand.New(rand.NewSource(p.Seed))

	span := 2*p.Jitter + 1
	points := make([]Position, 0, len(p.Rows)*len(p.Cols))
	for _, x := range p.Rows {
		for _, y := range p.Cols {
			jx := x + rng.Intn(span) - p.Jitter
			jy := y + rng.Intn(span) - p.Jitter
			points = append(points, Position{
				X: maxInt(jx, 0),
				Y: maxInt(jy, 0),
			})
		}
	}

	rng.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})

	n := p.MinTiles
	if p.MaxTiles > p.MinTiles {
		n += rng.Intn(p.MaxTiles - p.MinTiles + 1)
	}

	valueSpan := p.MaxValue - p.MinValue + 1
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i].ID = i
		tiles[i].Value = p.MinValue + rng.Intn(valueSpan)
	}

	// Truncate or pad the shuffled positions to exactly n entries.
	for i := range tiles {
		if i < len(points) {
			tiles[i].Pos = points[i]
		} else {
			tiles[i].Pos = p.DefaultPos
		}
	}

	return &Session{
		tiles:    tiles,
		selected: NoSelection,
		page:     PagePlay,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
