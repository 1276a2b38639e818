// Package storage provides the SQLite round journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The journal lives in memory for the lifetime of the process; nothing is
// kept between runs.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/number-quest/internal/core"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the SQLite connection for the round journal.
type Store struct {
	db *sql.DB
}

// Session identifies one player's run of the game.
type Session struct {
	ID     string // Random UUID
	Player string // Local user or SSH user name
	GameID string
}

// NewSession starts a journal session with a fresh identifier.
func NewSession(gameID, player string) Session {
	return Session{
		ID:     uuid.NewString(),
		Player: player,
		GameID: gameID,
	}
}

// RoundEntry is a journaled round.
type RoundEntry struct {
	ID        int64
	SessionID string
	Player    string
	GameID    string
	core.RoundResult
	CreatedAt time.Time
}

// Open opens the database at dsn and runs migrations.
// An empty dsn opens an in-memory database.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if dsn == MemoryDSN {
		// Every pooled connection to :memory: would get its own empty database.
		db.SetMaxOpenConns(1)
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

// OpenMemory opens an in-memory journal.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			game_id TEXT NOT NULL,
			round INTEGER NOT NULL,
			operator TEXT NOT NULL,
			won INTEGER NOT NULL,
			lives_left INTEGER NOT NULL,
			mistakes INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id, id DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_score ON rounds(game_id, score DESC);
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

// SaveRound journals a finished round for the session.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(sess Session, r core.RoundResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (session_id, player, game_id, round, operator, won, lives_left, mistakes, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Player, sess.GameID, r.Round, r.Operator, r.Won, r.LivesLeft, r.Mistakes, r.Score,
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

// SessionRounds returns the most recent rounds of a session, newest first.
func (s *Store) SessionRounds(sessionID string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, game_id, round, operator, won, lives_left, mistakes, score, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.Player, &e.GameID,
			&e.Round, &e.Operator, &e.Won, &e.LivesLeft, &e.Mistakes, &e.Score,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SessionStats contains aggregated statistics for a session.
type SessionStats struct {
	SessionID  string
	Player     string
	Rounds     int
	Wins       int
	Losses     int
	Mistakes   int
	BestScore  int
	LastPlayed time.Time
}

// SessionSummary aggregates the rounds of one session.
// A session without rounds yields zero counters.
func (s *Store) SessionSummary(sessionID string) (*SessionStats, error) {
	stats := &SessionStats{SessionID: sessionID}

	var player sql.NullString
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT MAX(player), COUNT(*), COALESCE(SUM(won), 0), COALESCE(SUM(1 - won), 0),
		        COALESCE(SUM(mistakes), 0), COALESCE(MAX(score), 0), MAX(created_at)
		 FROM rounds WHERE session_id = ?`,
		sessionID,
	).Scan(&player, &stats.Rounds, &stats.Wins, &stats.Losses, &stats.Mistakes, &stats.BestScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}

	stats.Player = player.String
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// Leaderboard ranks the sessions of a game by their best score.
func (s *Store) Leaderboard(gameID string, limit int) ([]SessionStats, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT session_id, MAX(player), COUNT(*), SUM(won), SUM(1 - won), SUM(mistakes), MAX(score), MAX(created_at)
		 FROM rounds
		 WHERE game_id = ?
		 GROUP BY session_id
		 ORDER BY MAX(score) DESC, SUM(won) DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var board []SessionStats
	for rows.Next() {
		var st SessionStats
		var lastPlayed any
		if err := rows.Scan(&st.SessionID, &st.Player, &st.Rounds, &st.Wins, &st.Losses, &st.Mistakes, &st.BestScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan leaderboard row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		board = append(board, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return board, nil
}

// OperatorRecord counts the outcomes of one operator within a session.
type OperatorRecord struct {
	Operator string
	Wins     int
	Losses   int
}

// OperatorRecords returns per-operator outcomes for a session, keyed by operator ID.
func (s *Store) OperatorRecords(sessionID string) (map[string]OperatorRecord, error) {
	rows, err := s.db.Query(
		`SELECT operator, SUM(won), SUM(1 - won)
		 FROM rounds
		 WHERE session_id = ?
		 GROUP BY operator`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query operator records: %w", err)
	}
	defer rows.Close()

	records := make(map[string]OperatorRecord)
	for rows.Next() {
		var r OperatorRecord
		if err := rows.Scan(&r.Operator, &r.Wins, &r.Losses); err != nil {
			return nil, fmt.Errorf("storage: cannot scan operator row: %w", err)
		}
		records[r.Operator] = r
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
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
