package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"StockPulse/internal/model"
)

// SQLiteRecorder persists one row per produced report.
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

	// WAL mode so external readers do not block the writer.
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
		`CREATE TABLE IF NOT EXISTS reports (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			symbol           TEXT NOT NULL,
			close            REAL,
			volume           INTEGER,
			sma20            REAL,
			sma50            REAL,
			sma200           REAL,
			ema12            REAL,
			ema26            REAL,
			rsi14            REAL,
			volatility20     REAL,
			momentum_short   REAL,
			momentum_1m      REAL,
			momentum_12m     REAL,
			short_signal     TEXT,
			short_reasons    TEXT,
			short_confidence REAL,
			long_signal      TEXT,
			long_reasons     TEXT,
			long_confidence  REAL,
			sentiment        TEXT,
			narrative        TEXT,
			analyst_buy      INTEGER,
			analyst_hold     INTEGER,
			analyst_sell     INTEGER,
			news_count       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_ts ON reports(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_symbol_ts ON reports(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps an undefined indicator value to SQL NULL.
func nullable(v model.Value) any {
	if !v.Defined {
		return nil
	}
	return v.Val
}

func (r *SQLiteRecorder) RecordReport(rep *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ind := rep.Indicators
	last := rep.Series.Last()

	var analystBuy, analystHold, analystSell any
	if rep.Analyst != nil {
		analystBuy, analystHold, analystSell = rep.Analyst.Buy, rep.Analyst.Hold, rep.Analyst.Sell
	}

	_, err := r.db.Exec(`INSERT INTO reports
		(timestamp, symbol, close, volume,
		 sma20, sma50, sma200, ema12, ema26, rsi14, volatility20,
		 momentum_short, momentum_1m, momentum_12m,
		 short_signal, short_reasons, short_confidence,
		 long_signal, long_reasons, long_confidence,
		 sentiment, narrative,
		 analyst_buy, analyst_hold, analyst_sell, news_count)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rep.GeneratedAt.Unix(), rep.Symbol, last.Close, last.Volume,
		nullable(ind.SMA20.Last()), nullable(ind.SMA50.Last()), nullable(ind.SMA200.Last()),
		nullable(ind.EMA12.Last()), nullable(ind.EMA26.Last()),
		nullable(ind.RSI14.Last()), nullable(ind.Volatility20.Last()),
		nullable(ind.MomentumAt(14).Last()), nullable(ind.MomentumAt(21).Last()), nullable(ind.MomentumAt(252).Last()),
		string(rep.ShortTerm.Category), strings.Join(rep.ShortTerm.Reasons, "; "), rep.ShortTerm.Confidence,
		string(rep.LongTerm.Category), strings.Join(rep.LongTerm.Reasons, "; "), rep.LongTerm.Confidence,
		string(rep.Trend.Sentiment), rep.Trend.Narrative,
		analystBuy, analystHold, analystSell, len(rep.News),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
