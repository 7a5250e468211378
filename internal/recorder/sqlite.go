package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"SignalSentinel/internal/model"
	"SignalSentinel/internal/report"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists evaluation history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS evaluations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			bar_date    TEXT NOT NULL,
			close       REAL,
			sma_short   REAL,
			sma_long    REAL,
			rsi         REAL,
			signal      TEXT,
			short       INTEGER,
			long        INTEGER,
			rsi_period  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_evaluations_symbol_ts ON evaluations(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordEvaluation(evt *Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := evt.RecordedAt
	if at.IsZero() {
		at = time.Now()
	}
	s := evt.Summary
	_, err := r.db.Exec(`INSERT INTO evaluations
		(timestamp, symbol, bar_date, close, sma_short, sma_long, rsi, signal, short, long, rsi_period)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		at.Unix(), s.Symbol, s.Date.Format(time.DateOnly), s.Close, s.SMAShort, s.SMALong, s.RSI,
		s.Signal.String(), s.Params.Short, s.Params.Long, s.Params.RSIPeriod,
	)
	return err
}

// History returns the most recent evaluations for symbol, newest first.
func (r *SQLiteRecorder) History(symbol string, limit int) ([]Evaluation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT timestamp, bar_date, close, sma_short, sma_long, rsi, signal, short, long, rsi_period
		FROM evaluations WHERE symbol = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		var (
			ts      int64
			barDate string
			label   string
			s       = report.Summary{Symbol: symbol}
		)
		if err := rows.Scan(&ts, &barDate, &s.Close, &s.SMAShort, &s.SMALong, &s.RSI, &label,
			&s.Params.Short, &s.Params.Long, &s.Params.RSIPeriod); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		s.Date, err = time.Parse(time.DateOnly, barDate)
		if err != nil {
			return nil, fmt.Errorf("parse bar date %q: %w", barDate, err)
		}
		s.Signal = model.ParseSignal(label)
		out = append(out, Evaluation{RecordedAt: time.Unix(ts, 0), Summary: &s})
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
