package game

import (
	"errors"
	"testing"
)

// board is a shorthand for building a session from plain values.
func board(values ...int) *Session {
	tiles := make([]Tile, len(values))
	for i, v := range values {
		tiles[i] = Tile{Value: v}
	}
	return NewSession(tiles)
}

func mustApply(t *testing.T, s *Session, a Action) {
	t.Helper()
	if err := s.Apply(a); err != nil {
		t.Fatalf("Apply(%+v) failed: %v", a, err)
	}
}

func TestSelectThenCombine(t *testing.T) {
	s := board(10, 3, 4)

	mustApply(t, s, SelectTile{ID: 0})
	if s.Selected() != 0 {
		t.Fatalf("expected tile 0 selected, got %d", s.Selected())
	}

	mustApply(t, s, SelectTile{ID: 1})

	tiles := s.Tiles()
	if tiles[0].Value != 7 {
		t.Errorf("expected tiles[0] = 10 - 3 = 7, got %d", tiles[0].Value)
	}
	if !tiles[1].Used {
		t.Error("combined tile 1 should be used")
	}
	if tiles[2].Value != 4 || tiles[2].Used {
		t.Error("tile 2 must be untouched by the combine")
	}
	if s.Selected() != NoSelection {
		t.Errorf("selection should clear after combine, got %d", s.Selected())
	}
	if s.Finished() {
		t.Error("one used tile out of three should not finish the board")
	}
}

func TestDeselectSameTile(t *testing.T) {
	s := board(10, 3, 4)

	mustApply(t, s, SelectTile{ID: 2})
	mustApply(t, s, SelectTile{ID: 2})

	if s.Selected() != NoSelection {
		t.Errorf("re-selecting the same tile should deselect, got %d", s.Selected())
	}
	for i, tile := range s.Tiles() {
		if tile.Used {
			t.Errorf("deselect must not consume tiles, tile %d used", i)
		}
	}
	if got := s.Tiles()[2].Value; got != 4 {
		t.Errorf("deselect must not change values, got %d", got)
	}
}

func TestFullGameScenario(t *testing.T) {
	// Playthrough of a 3-tile board: 10-3=7, 7-4=3, finished with score 3.
	s := board(10, 3, 4)

	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 1})
	if s.Finished() {
		t.Fatal("finished too early")
	}

	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 2})

	if !s.Finished() {
		t.Fatal("two used tiles out of three should finish the board")
	}

	score, ok := s.Score()
	if !ok {
		t.Fatal("score must be available once finished")
	}
	if score != 3 {
		t.Errorf("expected score 3 (10-3-4), got %d", score)
	}
}

func TestCompletionExactness(t *testing.T) {
	// finished flips exactly when N-1 tiles are used, not before.
	s := board(1, 2, 3, 4, 5)

	combos := [][2]int{{0, 1}, {0, 2}, {0, 3}}
	for i, c := range combos {
		mustApply(t, s, SelectTile{ID: c[0]})
		mustApply(t, s, SelectTile{ID: c[1]})
		if s.Finished() {
			t.Fatalf("finished after %d combines, expected only after 4", i+1)
		}
	}

	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 4})
	if !s.Finished() {
		t.Error("board with N-1 used tiles must be finished")
	}
}

func TestMonotonicUsage(t *testing.T) {
	s := board(5, 1, 2, 3)

	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 1})

	// A burst of further valid actions must never resurrect tile 1.
	actions := []Action{
		Navigate{Page: PageRanking},
		Navigate{Page: PagePlay},
		Rollback{},
		SetPlayerName{Name: "taro"},
		SelectTile{ID: 2},
		SelectTile{ID: 2}, // deselect
		SelectTile{ID: 0},
		SelectTile{ID: 3},
		SubmitScore{},
	}
	for _, a := range actions {
		mustApply(t, s, a)
		if !s.Tiles()[1].Used {
			t.Fatalf("tile 1 became unused again after %T", a)
		}
	}
}

func TestSelectionNeverPointsAtUsedTile(t *testing.T) {
	s := board(9, 8, 7)

	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 1})

	// Selecting the consumed tile must fail and leave no selection behind.
	err := s.Apply(SelectTile{ID: 1})
	if !errors.Is(err, ErrTileAlreadyUsed) {
		t.Fatalf("expected ErrTileAlreadyUsed, got %v", err)
	}
	if s.Selected() != NoSelection {
		t.Errorf("failed select must not set selection, got %d", s.Selected())
	}
}

func TestSelectInvalidID(t *testing.T) {
	s := board(1, 2)

	tests := []struct {
		name string
		id   int
	}{
		{"negative", -1},
		{"out of range", 2},
		{"far out of range", 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := s.Snapshot()
			err := s.Apply(SelectTile{ID: tc.id})
			if !errors.Is(err, ErrInvalidTileID) {
				t.Fatalf("expected ErrInvalidTileID, got %v", err)
			}
			after := s.Snapshot()
			if after.Selected != before.Selected || after.Finished != before.Finished {
				t.Error("failed select must leave the session untouched")
			}
		})
	}
}

func TestTileActionsIgnoredAfterFinish(t *testing.T) {
	s := board(10, 4)
	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 1})

	if !s.Finished() {
		t.Fatal("two-tile board should finish after one combine")
	}
	score, _ := s.Score()

	// Any further tile action is a no-op, including on the surviving tile.
	mustApply(t, s, SelectTile{ID: 0})
	if s.Selected() != NoSelection {
		t.Error("finished board must ignore tile selection")
	}

	after, _ := s.Score()
	if after != score {
		t.Errorf("score changed after finish: %d -> %d", score, after)
	}
}

func TestNavigatePreservesSelection(t *testing.T) {
	s := board(1, 2, 3)

	mustApply(t, s, SelectTile{ID: 1})
	mustApply(t, s, Navigate{Page: PageRanking})

	if s.Page() != PageRanking {
		t.Errorf("expected Ranking page, got %v", s.Page())
	}
	if s.Selected() != 1 {
		t.Errorf("navigation must not disturb selection, got %d", s.Selected())
	}

	mustApply(t, s, Navigate{Page: PagePlay})
	if s.Selected() != 1 {
		t.Error("selection lost on the way back to the Play page")
	}
}

func TestSetPlayerNameVerbatim(t *testing.T) {
	s := board(1, 2)

	names := []string{"", "a", "田中", "  spaces  ", "very long name with no limit enforced"}
	for _, name := range names {
		mustApply(t, s, SetPlayerName{Name: name})
		if s.PlayerName() != name {
			t.Errorf("expected player name %q, got %q", name, s.PlayerName())
		}
	}
}

func TestRollbackAndSubmitAreNoOps(t *testing.T) {
	s := board(6, 2, 1)
	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 1})
	mustApply(t, s, SelectTile{ID: 2})

	before := s.Snapshot()
	mustApply(t, s, Rollback{})
	mustApply(t, s, SubmitScore{})
	after := s.Snapshot()

	if len(before.Values) != len(after.Values) {
		t.Fatal("tile count changed")
	}
	for i := range before.Values {
		if before.Values[i] != after.Values[i] || before.Used[i] != after.Used[i] {
			t.Errorf("tile %d changed across no-op actions", i)
		}
	}
	if before.Selected != after.Selected || before.Finished != after.Finished {
		t.Error("session flags changed across no-op actions")
	}
}

func TestNegativeValues(t *testing.T) {
	// Subtraction with negative operands: 5 - (-7) = 12.
	s := board(5, -7)

	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 1})

	score, ok := s.Score()
	if !ok {
		t.Fatal("two-tile board should be finished")
	}
	if score != 12 {
		t.Errorf("expected 5 - (-7) = 12, got %d", score)
	}
}

func TestScoreUnavailableBeforeFinish(t *testing.T) {
	s := board(1, 2, 3)
	if _, ok := s.Score(); ok {
		t.Error("score should not be available on a fresh board")
	}
}

func TestViewHidesUsedTiles(t *testing.T) {
	s := board(10, 3, 4)
	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 1})
	mustApply(t, s, SelectTile{ID: 2})

	v := s.View()
	if len(v.Tiles) != 2 {
		t.Fatalf("expected 2 visible tiles, got %d", len(v.Tiles))
	}
	if v.Tiles[0].ID != 0 || v.Tiles[1].ID != 2 {
		t.Errorf("visible tiles out of id order: %d, %d", v.Tiles[0].ID, v.Tiles[1].ID)
	}
	if !v.Tiles[1].Selected {
		t.Error("tile 2 should be marked selected in the view")
	}
	if v.Tiles[0].Selected {
		t.Error("tile 0 should not be marked selected")
	}
	if v.TotalTiles != 3 {
		t.Errorf("expected TotalTiles 3, got %d", v.TotalTiles)
	}
}

func TestViewScoreAndFinish(t *testing.T) {
	s := board(10, 4)
	mustApply(t, s, SelectTile{ID: 0})
	mustApply(t, s, SelectTile{ID: 1})

	v := s.View()
	if !v.Finished {
		t.Fatal("view should report finished")
	}
	if v.Score != 6 {
		t.Errorf("expected view score 6, got %d", v.Score)
	}
	if len(v.Tiles) != 1 || v.Tiles[0].Value != 6 {
		t.Error("view should show exactly the surviving tile")
	}
}
