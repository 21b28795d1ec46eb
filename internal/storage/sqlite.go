// Package storage provides a SQLite-backed journal of finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal only records outcomes. Nothing in it is ever used to resume
// a round; a round can be replayed by starting a new game with its seed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the round journal.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID        int64     `csv:"id"`
	GameID    string    `csv:"game"`
	Player    string    `csv:"player"`
	Outcome   string    `csv:"outcome"` // "won" or "lost"
	Ticks     int       `csv:"ticks"`
	Cleared   int       `csv:"cleared"`
	Seed      int64     `csv:"seed"`
	CreatedAt time.Time `csv:"created_at"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_outcome ON rounds(game_id, outcome);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r Round) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, player, outcome, ticks, cleared, seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Outcome, r.Ticks, r.Cleared, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the latest rounds for the given game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, outcome, ticks, cleared, seed, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// AllRounds retrieves every round for the given game (no limit), oldest first.
func (s *Store) AllRounds(gameID string) ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, player, outcome, ticks, cleared, seed, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Outcome, &r.Ticks, &r.Cleared, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// parseTimestamp handles both time.Time and string datetimes.
func parseTimestamp(v any) time.Time {
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

// ClearRounds deletes all rounds for the given game.
func (s *Store) ClearRounds(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// RoundStats contains aggregated statistics for a game.
type RoundStats struct {
	GameID       string
	Rounds       int
	Won          int
	Lost         int
	FastestWin   int // Fewest ticks in a won round, 0 if none
	TotalCleared int64
	LastPlayed   time.Time
}

// Summary retrieves aggregated statistics for a specific game.
func (s *Store) Summary(gameID string) (*RoundStats, error) {
	stats := &RoundStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'won' THEN ticks END), 0),
		        COALESCE(SUM(cleared), 0)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.Won, &stats.Lost, &stats.FastestWin, &stats.TotalCleared)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}
