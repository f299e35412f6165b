package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (Grafana reads while
	// the service writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			period      TEXT,
			price       REAL,
			rsi         REAL,
			macd        REAL,
			signal_line REAL,
			bias        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol_ts ON analysis_snapshots(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS forecast_points (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES analysis_snapshots(id),
			date        INTEGER NOT NULL,
			price       REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_forecast_snapshot ON forecast_points(snapshot_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(snap *AnalysisSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, period, price, rsi, macd, signal_line, bias)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Symbol, snap.Period,
		snap.Price, snap.RSI, snap.MACD, snap.SignalLine, snap.Bias,
	)
	if err != nil {
		return err
	}

	snapshotID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, p := range snap.Forecast {
		if _, err := tx.Exec(`INSERT INTO forecast_points (snapshot_id, date, price) VALUES (?,?,?)`,
			snapshotID, p.Date.Unix(), p.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
