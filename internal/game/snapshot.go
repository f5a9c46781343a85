package game

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Values     []int
	Positions  []Position
	Used       []bool
	Selected   int
	Finished   bool
	PlayerName string
	Page       Page
}

// Snapshot returns the current session snapshot for determinism verification.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Values:     make([]int, len(s.tiles)),
		Positions:  make([]Position, len(s.tiles)),
		Used:       make([]bool, len(s.tiles)),
		Selected:   s.selected,
		Finished:   s.finished,
		PlayerName: s.playerName,
		Page:       s.page,
	}
	for i := range s.tiles {
		snap.Values[i] = s.tiles[i].Value
		snap.Positions[i] = s.tiles[i].Pos
		snap.Used[i] = s.tiles[i].Used
	}
	return snap
}
