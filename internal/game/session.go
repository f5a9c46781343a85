package game

import (
	"errors"
	"fmt"
)

// Selection errors. Well-behaved UIs only offer unused tiles, so these
// indicate a platform bug, not player input.
var (
	ErrInvalidTileID   = errors.New("game: invalid tile id")
	ErrTileAlreadyUsed = errors.New("game: tile already used")
)

// NoSelection is the sentinel value of the selected field when no tile is
// currently chosen.
const NoSelection = -1

// Session is the complete mutable state of one play-through. It is created
// by Generate and mutated in place exclusively through Apply. After the
// board is finished only the player name and page can still change.
//
// A Session is not safe for concurrent use; the platform drives it from a
// single event loop, one action at a time.
type Session struct {
	tiles      []Tile
	selected   int
	finished   bool
	playerName string
	page       Page
}

// NewSession builds a session over the given tiles with nothing selected.
// Most callers want Generate instead; this constructor exists for tests and
// for replaying known boards.
func NewSession(tiles []Tile) *Session {
	owned := make([]Tile, len(tiles))
	copy(owned, tiles)
	for i := range owned {
		owned[i].ID = i
	}
	return &Session{
		tiles:    owned,
		selected: NoSelection,
		page:     PagePlay,
	}
}

// Apply handles a single player action to completion. Tile-selection errors
// leave the session untouched. An action type outside the closed vocabulary
// is reported rather than silently ignored.
func (s *Session) Apply(a Action) error {
	switch act := a.(type) {
	case SelectTile:
		return s.selectTile(act.ID)
	case Navigate:
		s.page = act.Page
		return nil
	case SetPlayerName:
		s.playerName = act.Name
		return nil
	case Rollback:
		// Declared but intentionally without semantics; see actions.go.
		return nil
	case SubmitScore:
		// Handoff happens in the platform layer; the session is unchanged.
		return nil
	default:
		return fmt.Errorf("game: unhandled action %T", a)
	}
}

// selectTile implements the select/deselect/combine transition.
func (s *Session) selectTile(id int) error {
	if s.finished {
		// Terminal state: further tile actions are ignored.
		return nil
	}
	if id < 0 || id >= len(s.tiles) {
		return fmt.Errorf("%w: %d", ErrInvalidTileID, id)
	}
	if s.tiles[id].Used {
		return fmt.Errorf("%w: %d", ErrTileAlreadyUsed, id)
	}

	switch s.selected {
	case NoSelection:
		s.selected = id
	case id:
		// Re-clicking the selected tile deselects it; no value changes.
		s.selected = NoSelection
	default:
		s.tiles[s.selected].Value -= s.tiles[id].Value
		s.tiles[id].Used = true
		s.selected = NoSelection
		if s.usedCount() == len(s.tiles)-1 {
			s.finished = true
		}
	}
	return nil
}

// usedCount returns how many tiles have been consumed so far.
func (s *Session) usedCount() int {
	n := 0
	for i := range s.tiles {
		if s.tiles[i].Used {
			n++
		}
	}
	return n
}

// Tiles returns a copy of the full tile sequence, including used tiles.
func (s *Session) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// Len returns the fixed tile count N of this session.
func (s *Session) Len() int {
	return len(s.tiles)
}

// Selected returns the id of the currently selected tile, or NoSelection.
func (s *Session) Selected() int {
	return s.selected
}

// Finished reports whether exactly one tile is left unused.
func (s *Session) Finished() bool {
	return s.finished
}

// PlayerName returns the name typed so far, verbatim.
func (s *Session) PlayerName() string {
	return s.playerName
}

// Page returns the currently visible page.
func (s *Session) Page() Page {
	return s.page
}

// Score returns the value of the sole unused tile. It is meaningful only
// once the session is finished; ok is false before that.
func (s *Session) Score() (score int, ok bool) {
	if !s.finished {
		return 0, false
	}
	for i := range s.tiles {
		if !s.tiles[i].Used {
			return s.tiles[i].Value, true
		}
	}
	// Unreachable: finished guarantees exactly one unused tile.
	return 0, false
}
