package main

import (
	"database/sql"
	"fmt"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// statsWriter logs one report row per run to a SQLite database, in the
// teacher's xid-run-id, atexit-flushed writer shape (tracing.SQLiteTraceWriter),
// scaled down from a batched task trace to a single row written once the
// replay finishes.
type statsWriter struct {
	db   *sql.DB
	stmt *sql.Stmt

	pending *report
}

// newStatsWriter opens (creating if necessary) the SQLite database at path
// and registers flush as an atexit handler. atexit runs that handler only
// when the process exits through atexit.Exit, which smsreplay does not
// call, so the row is committed by the caller's own flush call; a panic
// before that call leaves the row unwritten.
func newStatsWriter(path string) (*statsWriter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("smsreplay: opening %s: %w", path, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS run
		(
			run_id                  VARCHAR(20) PRIMARY KEY,
			accesses                INTEGER,
			demand_hits             INTEGER,
			demand_misses           INTEGER,
			prefetches_issued       INTEGER,
			prefetch_hits           INTEGER,
			coverage                REAL,
			accuracy                REAL,
			filter_table_len        INTEGER,
			accumulation_table_len  INTEGER,
			pattern_history_len     INTEGER
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("smsreplay: creating run table: %w", err)
	}

	stmt, err := db.Prepare(`
		INSERT INTO run VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("smsreplay: preparing insert: %w", err)
	}

	w := &statsWriter{db: db, stmt: stmt}
	atexit.Register(w.flush)

	return w, nil
}

// Write buffers r to be committed on flush. Only the most recent call is
// kept: smsreplay logs exactly one run per process.
func (w *statsWriter) Write(r report) {
	w.pending = &r
}

func (w *statsWriter) flush() {
	if w.pending == nil {
		return
	}

	r := w.pending
	w.pending = nil

	_, err := w.stmt.Exec(
		r.RunID,
		r.Accesses,
		r.DemandHits,
		r.DemandMisses,
		r.PrefetchesIssued,
		r.PrefetchHits,
		r.coverage(),
		r.accuracy(),
		r.FilterTableLen,
		r.AccumulationTableLen,
		r.PatternHistoryLen,
	)
	if err != nil {
		fmt.Println("smsreplay: failed to write run row:", err)
	}

	w.stmt.Close()
	w.db.Close()
}

func newRunID() string {
	return xid.New().String()
}
