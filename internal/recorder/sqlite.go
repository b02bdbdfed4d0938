package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder archives refresh summaries to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block watch-mode writes.
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
		`CREATE TABLE IF NOT EXISTS quotes (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			symbol         TEXT NOT NULL,
			close          REAL,
			change_percent REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_ts ON quotes(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_symbol ON quotes(symbol)`,

		`CREATE TABLE IF NOT EXISTS sentiment_readings (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			value          REAL,
			classification TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sentiment_ts ON sentiment_readings(timestamp)`,

		`CREATE TABLE IF NOT EXISTS hibor_readings (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			tenor     TEXT NOT NULL,
			rate      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hibor_ts ON hibor_readings(timestamp)`,

		`CREATE TABLE IF NOT EXISTS breadth_readings (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			advancers     INTEGER,
			decliners     INTEGER,
			neutral       INTEGER,
			total_symbols INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_breadth_ts ON breadth_readings(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRefresh(rec *RefreshRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.FetchedAt.Unix()

	for _, q := range rec.Quotes {
		if _, err := r.db.Exec(
			`INSERT INTO quotes (timestamp, symbol, close, change_percent) VALUES (?,?,?,?)`,
			ts, q.Symbol, q.Close, nullableFloat(q.ChangePercent),
		); err != nil {
			return fmt.Errorf("record quote %s: %w", q.Symbol, err)
		}
	}

	if s := rec.Sentiment; s != nil {
		if _, err := r.db.Exec(
			`INSERT INTO sentiment_readings (timestamp, value, classification) VALUES (?,?,?)`,
			ts, s.Value, s.Classification,
		); err != nil {
			return fmt.Errorf("record sentiment: %w", err)
		}
	}

	if rates := rec.Rates; rates != nil {
		for tenor, rate := range rates.Rates {
			if _, err := r.db.Exec(
				`INSERT INTO hibor_readings (timestamp, tenor, rate) VALUES (?,?,?)`,
				ts, tenor, rate,
			); err != nil {
				return fmt.Errorf("record hibor %s: %w", tenor, err)
			}
		}
	}

	if b := rec.Breadth; b != nil {
		if _, err := r.db.Exec(
			`INSERT INTO breadth_readings (timestamp, advancers, decliners, neutral, total_symbols) VALUES (?,?,?,?,?)`,
			ts, b.Advancers, b.Decliners, b.Neutral, b.TotalSymbols,
		); err != nil {
			return fmt.Errorf("record breadth: %w", err)
		}
	}

	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
