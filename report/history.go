package report

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// HistoryFileName is the run index kept next to the report files
const HistoryFileName = "history.sqlite3"

// HistoryEntry is one indexed run
type HistoryEntry struct {
	RunID       string
	RecordedAt  time.Time
	Seed        int64
	Population  int
	Generations int
	BestFitness int
	Ones        int
	Verdict     Verdict
}

// History indexes finished runs so seeds can be compared across sessions
type History struct {
	db *sql.DB
}

// OpenHistory opens or creates the index in dir
func OpenHistory(dir string) (*History, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, HistoryFileName))
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs(
			run_id TEXT PRIMARY KEY,
			recorded_at INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			population INTEGER NOT NULL,
			generations INTEGER NOT NULL,
			best_fitness INTEGER NOT NULL,
			ones INTEGER NOT NULL,
			verdict TEXT NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init history: %w", err)
	}
	return &History{db: db}, nil
}

// Record indexes a report; recording the same run twice is an error
func (h *History) Record(ctx context.Context, r *Report) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO runs(run_id, recorded_at, seed, population, generations, best_fitness, ones, verdict)
		 VALUES(?,?,?,?,?,?,?,?)`,
		r.RunID, time.Now().UnixNano(), r.Config.Seed, r.Config.PopulationSize,
		r.Config.Generations, r.BestFitness, r.Ones, string(r.Verdict))
	if err != nil {
		return fmt.Errorf("record run %s: %w", r.RunID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first
func (h *History) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT run_id, recorded_at, seed, population, generations, best_fitness, ones, verdict
		 FROM runs ORDER BY recorded_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var ts int64
		var verdict string
		if err := rows.Scan(&e.RunID, &ts, &e.Seed, &e.Population, &e.Generations,
			&e.BestFitness, &e.Ones, &verdict); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.RecordedAt = time.Unix(0, ts)
		e.Verdict = Verdict(verdict)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database
func (h *History) Close() error {
	return h.db.Close()
}
