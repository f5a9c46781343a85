// Package ranking provides SQLite-based persistence for submitted results.
// It is the collaborator that receives (playerName, score) pairs from the
// platform layer; the game core itself never touches it.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package ranking

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Entry represents a single submitted result.
type Entry struct {
	ID        int64
	Name      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("ranking: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ranking: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("ranking: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ranking: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ranking: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records a submitted result. The name is stored verbatim, including
// an empty string. Returns the ID of the inserted record.
func (s *Store) Save(name string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (player_name, score) VALUES (?, ?)",
		name, score,
	)
	if err != nil {
		return 0, fmt.Errorf("ranking: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ranking: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Top retrieves the top N results, ordered by score descending.
func (s *Store) Top(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player_name, score, created_at
		 FROM results
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ranking: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("ranking: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ranking: row iteration error: %w", err)
	}

	return entries, nil
}

// Best returns the highest submitted score.
// Returns 0 if no results exist.
func (s *Store) Best() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("ranking: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Count returns the number of submitted results.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM results").Scan(&n); err != nil {
		return 0, fmt.Errorf("ranking: cannot count results: %w", err)
	}
	return n, nil
}

// Clear deletes all submitted results.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("ranking: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
