package metrics

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	mode        TEXT NOT NULL,
	opponent    TEXT NOT NULL,
	games       INTEGER NOT NULL,
	seed        INTEGER NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT,
	wins        INTEGER NOT NULL DEFAULT 0,
	losses      INTEGER NOT NULL DEFAULT 0,
	draws       INTEGER NOT NULL DEFAULT 0,
	table_size  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS games (
	game_id     TEXT PRIMARY KEY,
	run_id      TEXT NOT NULL,
	idx         INTEGER NOT NULL,
	seat        INTEGER NOT NULL,
	winner      INTEGER NOT NULL,
	won         INTEGER NOT NULL,
	moves       INTEGER NOT NULL,
	turns       INTEGER NOT NULL,
	epsilon     REAL NOT NULL,
	table_size  INTEGER NOT NULL,
	started_at  TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// RunRecord summarises one run.
type RunRecord struct {
	ID        string
	Mode      string
	Opponent  string
	Games     int
	Seed      uint64
	StartTime time.Time
	EndTime   time.Time
	Wins      int
	Losses    int
	Draws     int
	TableSize int
}

// Ledger keeps runs and their games in SQLite.
type Ledger struct {
	db *sql.DB
}

// NewLedger opens a SQLite database and runs migrations.
func NewLedger(dbPath string) (*Ledger, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Ledger{db: db}, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// StartRun registers a run before its games are recorded.
func (l *Ledger) StartRun(run RunRecord) error {
	_, err := l.db.Exec(
		`INSERT INTO runs (run_id, mode, opponent, games, seed, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Mode, run.Opponent, run.Games, int64(run.Seed), run.StartTime.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// FinishRun stores the results of a started run.
func (l *Ledger) FinishRun(run RunRecord) error {
	res, err := l.db.Exec(
		`UPDATE runs SET finished_at = ?, wins = ?, losses = ?, draws = ?, table_size = ?
		 WHERE run_id = ?`,
		run.EndTime.UTC().Format(time.RFC3339Nano), run.Wins, run.Losses, run.Draws, run.TableSize, run.ID,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run not found: %s", run.ID)
	}
	return nil
}

func (l *Ledger) RecordGame(record GameRecord) error {
	won := 0
	if record.Won {
		won = 1
	}
	_, err := l.db.Exec(
		`INSERT INTO games (game_id, run_id, idx, seat, winner, won, moves, turns, epsilon, table_size, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Run, record.Index, record.Seat, record.Winner, won,
		record.TotalMoves, record.Turns, record.Epsilon, record.TableSize,
		record.StartTime.UTC().Format(time.RFC3339Nano), record.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", record.ID, err)
	}
	return nil
}

// GetRun returns a run by ID.
func (l *Ledger) GetRun(id string) (RunRecord, error) {
	var run RunRecord
	var seed int64
	var started string
	var finished sql.NullString
	err := l.db.QueryRow(
		`SELECT run_id, mode, opponent, games, seed, started_at, finished_at, wins, losses, draws, table_size
		 FROM runs WHERE run_id = ?`, id,
	).Scan(&run.ID, &run.Mode, &run.Opponent, &run.Games, &seed, &started, &finished,
		&run.Wins, &run.Losses, &run.Draws, &run.TableSize)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", id, err)
	}
	run.Seed = uint64(seed)
	run.StartTime, err = time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return RunRecord{}, fmt.Errorf("parse started_at of run %s: %w", id, err)
	}
	if finished.Valid {
		run.EndTime, err = time.Parse(time.RFC3339Nano, finished.String)
		if err != nil {
			return RunRecord{}, fmt.Errorf("parse finished_at of run %s: %w", id, err)
		}
	}
	return run, nil
}

// CountGames returns how many games were recorded for a run, and how many of
// them the learner won.
func (l *Ledger) CountGames(runID string) (games, wins int, err error) {
	err = l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0) FROM games WHERE run_id = ?`, runID,
	).Scan(&games, &wins)
	if err != nil {
		return 0, 0, fmt.Errorf("count games: %w", err)
	}
	return games, wins, nil
}
