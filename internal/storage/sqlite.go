// Package storage provides SQLite-based persistence for finished sessions
// and individual jumps. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-skydive/internal/core"
)

// Session outcomes.
const (
	OutcomeWin      = "win"
	OutcomeGameOver = "game_over"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Session is a finished game session.
type Session struct {
	ID        string // uuid v4
	Player    string
	Score     int
	TriesLeft int
	Outcome   string
	Ticks     uint64
	CreatedAt time.Time
}

// Jump is one landing. Positions are framebuffer pixels, speeds pixels per tick.
type Jump struct {
	ID          int64
	SessionID   string
	Player      string
	Outcome     string
	LandingX    float64
	TargetLeft  float64
	TargetRight float64
	TouchdownDY float64
	ChuteOpen   bool
	OpenAt      float64
	WindDX      float64
	CreatedAt   time.Time
}

// JumpFromReport builds a Jump row from a landing report.
func JumpFromReport(sessionID, player string, r core.JumpReport) Jump {
	return Jump{
		SessionID:   sessionID,
		Player:      player,
		Outcome:     r.Outcome,
		LandingX:    r.LandingX,
		TargetLeft:  r.TargetLeft,
		TargetRight: r.TargetRight,
		TouchdownDY: r.TouchdownDY,
		ChuteOpen:   r.ChuteOpen,
		OpenAt:      r.OpenAt,
		WindDX:      r.WindDX,
	}
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			tries_left INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC, ticks ASC);

		CREATE TABLE IF NOT EXISTS jumps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL,
			outcome TEXT NOT NULL,
			landing_x REAL NOT NULL,
			target_left REAL NOT NULL,
			target_right REAL NOT NULL,
			touchdown_dy REAL NOT NULL,
			chute_open INTEGER NOT NULL,
			open_at REAL NOT NULL,
			wind_dx REAL NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_jumps_session ON jumps(session_id);
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

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}

// SaveSession records a finished session. An empty ID is filled with a new
// uuid; the ID used is returned.
func (s *Store) SaveSession(sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = NewSessionID()
	}
	if _, err := uuid.Parse(sess.ID); err != nil {
		return "", fmt.Errorf("storage: invalid session id %q: %w", sess.ID, err)
	}
	if sess.Outcome != OutcomeWin && sess.Outcome != OutcomeGameOver {
		return "", fmt.Errorf("storage: invalid session outcome %q", sess.Outcome)
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions (id, player, score, tries_left, outcome, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Player, sess.Score, sess.TriesLeft, sess.Outcome, int64(sess.Ticks), s.timestamp(), //#nosec G115 -- tick counts fit in int64
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return sess.ID, nil
}

// SaveJump records a landing. Returns the ID of the inserted record.
func (s *Store) SaveJump(j Jump) (int64, error) {
	open := 0
	if j.ChuteOpen {
		open = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO jumps
		 (session_id, player, outcome, landing_x, target_left, target_right, touchdown_dy, chute_open, open_at, wind_dx, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.SessionID, j.Player, j.Outcome, j.LandingX, j.TargetLeft, j.TargetRight,
		j.TouchdownDY, open, j.OpenAt, j.WindDX, s.timestamp(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save jump: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopSessions retrieves the best sessions: highest score first, then the
// fastest, then the most recent.
func (s *Store) TopSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, tries_left, outcome, ticks, created_at
		 FROM sessions
		 ORDER BY score DESC, ticks ASC, created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var ticks int64
		var createdAt any
		if err := rows.Scan(&sess.ID, &sess.Player, &sess.Score, &sess.TriesLeft, &sess.Outcome, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// RecentJumps retrieves the latest landings, newest first.
func (s *Store) RecentJumps(limit int) ([]Jump, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, outcome, landing_x, target_left, target_right,
		        touchdown_dy, chute_open, open_at, wind_dx, created_at
		 FROM jumps
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query jumps: %w", err)
	}
	defer rows.Close()

	var jumps []Jump
	for rows.Next() {
		var j Jump
		var open int
		var createdAt any
		if err := rows.Scan(
			&j.ID, &j.SessionID, &j.Player, &j.Outcome,
			&j.LandingX, &j.TargetLeft, &j.TargetRight,
			&j.TouchdownDY, &open, &j.OpenAt, &j.WindDX, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		j.ChuteOpen = open != 0
		j.CreatedAt = parseTime(createdAt)
		jumps = append(jumps, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return jumps, nil
}

// HighScore returns the best session score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// JumpStats contains aggregated landing statistics.
type JumpStats struct {
	Total     int
	ByOutcome map[string]int
	// AvgOpenAt is the mean chute-opening height over jumps that opened.
	AvgOpenAt float64
	// AvgLandedOffset is the mean absolute distance from the zone center
	// over jumps that landed in the zone.
	AvgLandedOffset float64
	Sessions        int
	Wins            int
}

// JumpStats aggregates every recorded jump and session.
func (s *Store) JumpStats() (JumpStats, error) {
	stats := JumpStats{ByOutcome: make(map[string]int)}

	rows, err := s.db.Query("SELECT outcome, COUNT(*) FROM jumps GROUP BY outcome")
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query jump stats: %w", err)
	}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			rows.Close()
			return stats, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats.ByOutcome[outcome] = n
		stats.Total += n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("storage: row iteration error: %w", err)
	}

	var avgOpen, avgOffset sql.NullFloat64
	err = s.db.QueryRow("SELECT AVG(open_at) FROM jumps WHERE chute_open = 1").Scan(&avgOpen)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query jump stats: %w", err)
	}
	err = s.db.QueryRow(
		"SELECT AVG(ABS(landing_x - (target_left + target_right) / 2.0)) FROM jumps WHERE outcome = ?",
		core.EventLanded.String(),
	).Scan(&avgOffset)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query jump stats: %w", err)
	}
	stats.AvgOpenAt = avgOpen.Float64
	stats.AvgLandedOffset = avgOffset.Float64

	err = s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0) FROM sessions",
		OutcomeWin,
	).Scan(&stats.Sessions, &stats.Wins)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query session stats: %w", err)
	}

	return stats, nil
}

// ClearSessions deletes every session and jump.
func (s *Store) ClearSessions() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM jumps"); err != nil {
		return errors.Join(fmt.Errorf("storage: cannot clear jumps: %w", err), tx.Rollback())
	}
	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return errors.Join(fmt.Errorf("storage: cannot clear sessions: %w", err), tx.Rollback())
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
