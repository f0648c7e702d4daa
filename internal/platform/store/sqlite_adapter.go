package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"assistant/internal/platform/logger"

	_ "modernc.org/sqlite" // pure Go sqlite driver
)

// sqliteAdapter wraps *sql.DB and implements RowQuerier + TxRunner
type sqliteAdapter struct {
	db     *sql.DB
	log    *logger.Logger
	logSQL bool
	slowUS int64
}

// openSQLite opens the database file, applies pragmas, and ensures the schema
func openSQLite(ctx context.Context, cfg Config, s *Store) (*sqliteAdapter, error) {
	db, err := sql.Open("sqlite", cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// sqlite allows one writer; keep the pool tiny and serialize writes
	maxConns := cfg.SQLite.MaxConns
	if maxConns <= 0 {
		maxConns = 1
	}
	db.SetMaxOpenConns(maxConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		fmt.Sprintf("PRAGMA busy_timeout=%d", cfg.SQLite.BusyTimeout.Milliseconds()),
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	a := &sqliteAdapter{
		db:     db,
		log:    s.Log,
		logSQL: cfg.SQLite.LogSQL,
		slowUS: int64(cfg.SQLite.SlowQueryMs) * 1000,
	}

	if err := ensureSchema(ctx, a); err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("sqlite: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *sqliteAdapter) Close() error { return a.db.Close() }

func (a *sqliteAdapter) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := a.db.ExecContext(ctx, q, args...)
	a.emit(ctx, q, start, err)
	if err != nil {
		return nil, err
	}
	return tag{res}, nil
}

func (a *sqliteAdapter) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.db.QueryContext(ctx, q, args...)
	a.emit(ctx, q, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (a *sqliteAdapter) QueryRow(ctx context.Context, q string, args ...any) Row {
	start := time.Now()
	r := a.db.QueryRowContext(ctx, q, args...)
	return row{
		r: r,
		after: func(scanErr error) {
			a.emit(ctx, q, start, scanErr)
		},
	}
}

func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(txQuerier{tx: tx, a: a}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// emit logs slow or traced queries
func (a *sqliteAdapter) emit(ctx context.Context, q string, start time.Time, err error) {
	if a == nil || a.log == nil {
		return
	}
	elapsedUS := time.Since(start).Microseconds()
	slow := a.slowUS > 0 && elapsedUS >= a.slowUS
	if !a.logSQL && !slow && err == nil {
		return
	}
	evt := a.log.Debug()
	if slow {
		evt = a.log.Warn().Bool("slow", true)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		evt = a.log.Error().Err(err)
	}
	evt.Str("sql", q).Int64("elapsed_us", elapsedUS).Msg("query")
}

// adapters for database/sql to our tiny Row/Rows/CommandTag

type row struct {
	r     *sql.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rows struct{ r *sql.Rows }

func (x rows) Next() bool            { return x.r.Next() }
func (x rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rows) Err() error            { return x.r.Err() }
func (x rows) Close()                { _ = x.r.Close() }
func (x rows) Columns() []string {
	cols, err := x.r.Columns()
	if err != nil {
		return nil
	}
	return cols
}

type tag struct{ res sql.Result }

func (t tag) String() string { return "OK" }
func (t tag) RowsAffected() int64 {
	n, err := t.res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

// txQuerier satisfies RowQuerier inside a Tx
type txQuerier struct {
	tx *sql.Tx
	a  *sqliteAdapter
}

func (t txQuerier) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, q, args...)
	t.a.emit(ctx, q, start, err)
	if err != nil {
		return nil, err
	}
	return tag{res}, nil
}

func (t txQuerier) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.tx.QueryContext(ctx, q, args...)
	t.a.emit(ctx, q, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (t txQuerier) QueryRow(ctx context.Context, q string, args ...any) Row {
	start := time.Now()
	r := t.tx.QueryRowContext(ctx, q, args...)
	return row{
		r: r,
		after: func(scanErr error) {
			t.a.emit(ctx, q, start, scanErr)
		},
	}
}
