package ranking

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndTop(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Save("alice", 42); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := store.Save("bob", -17); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := store.Save("carol", 96); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	entries, err := store.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Sorted by score descending
	if entries[0].Name != "carol" || entries[0].Score != 96 {
		t.Errorf("expected carol/96 first, got %s/%d", entries[0].Name, entries[0].Score)
	}
	if entries[1].Name != "alice" || entries[1].Score != 42 {
		t.Errorf("expected alice/42 second, got %s/%d", entries[1].Name, entries[1].Score)
	}
	if entries[2].Name != "bob" || entries[2].Score != -17 {
		t.Errorf("expected bob/-17 last, got %s/%d", entries[2].Name, entries[2].Score)
	}
}

func TestStoreTopLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.Save("p", (i+1)*10)
	}

	entries, err := store.Top(3)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Errorf("expected 3 entries with limit, got %d", len(entries))
	}
	if entries[0].Score != 50 || entries[1].Score != 40 || entries[2].Score != 30 {
		t.Errorf("entries not in expected order: %v", entries)
	}
}

func TestStoreEmptyName(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Names are stored verbatim; the core enforces no validation.
	if _, err := store.Save("", 7); err != nil {
		t.Fatalf("Save() with empty name failed: %v", err)
	}

	entries, err := store.Top(1)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "" {
		t.Error("empty player name should round-trip unchanged")
	}
}

func TestStoreBest(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("expected best 0 for empty store, got %d", best)
	}

	store.Save("a", 10)
	store.Save("b", 30)
	store.Save("c", 20)

	best, err = store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("expected best 30, got %d", best)
	}
}

func TestStoreCountAndClear(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Save("a", 1)
	store.Save("b", 2)

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected count 2, got %d", n)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	n, _ = store.Count()
	if n != 0 {
		t.Errorf("expected count 0 after clear, got %d", n)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}
