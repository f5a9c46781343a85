package game

// TileView is one visible tile in the read-only board view.
type TileView struct {
	ID       int
	Value    int
	Pos      Position
	Selected bool
}

// BoardView is the read-only projection of a session consumed by the
// rendering layer. Tiles contains only the unused tiles, in id order.
// Score is valid only while Finished is true.
type BoardView struct {
	Tiles      []TileView
	Finished   bool
	Score      int
	Page       Page
	PlayerName string
	TotalTiles int
}

// View returns the current board view. The result is a snapshot; mutating it
// has no effect on the session.
func (s *Session) View() BoardView {
	v := BoardView{
		Finished:   s.finished,
		Page:       s.page,
		PlayerName: s.playerName,
		TotalTiles: len(s.tiles),
	}
	for i := range s.tiles {
		if s.tiles[i].Used {
			continue
		}
		v.Tiles = append(v.Tiles, TileView{
			ID:       s.tiles[i].ID,
			Value:    s.tiles[i].Value,
			Pos:      s.tiles[i].Pos,
			Selected: s.selected == s.tiles[i].ID,
		})
	}
	if score, ok := s.Score(); ok {
		v.Score = score
	}
	return v
}
