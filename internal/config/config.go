// Package config provides YAML-based board configuration loading.
package config

import (
	"fmt"

	"github.com/nkondratov/algo/internal/game"
)

// Board contains all generator configuration for one game board.
type Board struct {
	Seed   int64      `yaml:"seed"`
	Grid   GridConfig `yaml:"grid"`
	Values ValueRange `yaml:"values"`
	Tiles  TileRange  `yaml:"tiles"`
}

// GridConfig defines the candidate position grid and its perturbation.
type GridConfig struct {
	Rows       []int         `yaml:"rows"`
	Cols       []int         `yaml:"cols"`
	Jitter     int           `yaml:"jitter"`
	DefaultPos game.Position `yaml:"default_pos"`
}

// ValueRange bounds the tile values, inclusive.
type ValueRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TileRange bounds the tile count, inclusive.
type TileRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Validate checks the configuration for values the generator cannot work with.
func (b Board) Validate() error {
	if len(b.Grid.Rows) == 0 {
		return fmt.Errorf("config: grid.rows must not be empty")
	}
	if len(b.Grid.Cols) == 0 {
		return fmt.Errorf("config: grid.cols must not be empty")
	}
	if b.Grid.Jitter < 0 {
		return fmt.Errorf("config: grid.jitter must not be negative, got %d", b.Grid.Jitter)
	}
	if b.Values.Min > b.Values.Max {
		return fmt.Errorf("config: inverted value range [%d, %d]", b.Values.Min, b.Values.Max)
	}
	if b.Tiles.Min < 1 {
		return fmt.Errorf("config: tiles.min must be at least 1, got %d", b.Tiles.Min)
	}
	if b.Tiles.Min > b.Tiles.Max {
		return fmt.Errorf("config: inverted tile range [%d, %d]", b.Tiles.Min, b.Tiles.Max)
	}
	return nil
}

// Params converts the configuration into generator parameters.
func (b Board) Params() game.BoardParams {
	return game.BoardParams{
		Seed:       b.Seed,
		Rows:       b.Grid.Rows,
		Cols:       b.Grid.Cols,
		Jitter:     b.Grid.Jitter,
		MinValue:   b.Values.Min,
		MaxValue:   b.Values.Max,
		MinTiles:   b.Tiles.Min,
		MaxTiles:   b.Tiles.Max,
		DefaultPos: b.Grid.DefaultPos,
	}
}
