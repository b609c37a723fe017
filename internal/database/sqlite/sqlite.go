package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"resume-match/internal/database"

	_ "modernc.org/sqlite"
)

type DB struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database file at path. ":memory:" is
// accepted for throwaway stores.
func Open(ctx context.Context, path string) (database.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty sqlite path")
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
	}

	sqldb, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite")
	if err != nil {
		return nil, err
	}
	// One writer at a time; also keeps ":memory:" on a single connection.
	sqldb.SetMaxOpenConns(1)

	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return &DB{sqlDB: sqldb}, nil
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// rebind turns postgres-style $N placeholders into sqlite ?N so repositories
// can share one set of queries.
func rebind(query string) string {
	return placeholderRe.ReplaceAllString(query, "?$1")
}

func (d *DB) Dialect() string {
	return database.DialectSQLite
}

func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.sqlDB == nil {
		return fmt.Errorf("nil db")
	}
	return d.sqlDB.PingContext(ctx)
}

func (d *DB) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if d == nil || d.sqlDB == nil {
		return 0, fmt.Errorf("nil db")
	}
	res, err := d.sqlDB.ExecContext(ctx, rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if d == nil || d.sqlDB == nil {
		return nil, fmt.Errorf("nil db")
	}
	r, err := d.sqlDB.QueryContext(ctx, rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if d == nil || d.sqlDB == nil {
		return nilRow{}
	}
	return d.sqlDB.QueryRowContext(ctx, rebind(query), args...)
}

func (d *DB) Begin(ctx context.Context) (database.Tx, error) {
	if d == nil || d.sqlDB == nil {
		return nil, fmt.Errorf("nil db")
	}
	tx, err := d.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

func (d *DB) SQLDB() *sql.DB {
	if d == nil {
		return nil
	}
	return d.sqlDB
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t sqlTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	r, err := t.tx.QueryContext(ctx, rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (t sqlTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.tx.QueryRowContext(ctx, rebind(query), args...)
}

func (t sqlTx) Commit(context.Context) error {
	return t.tx.Commit()
}

func (t sqlTx) Rollback(context.Context) error {
	return t.tx.Rollback()
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Close() {
	_ = r.rows.Close()
}

func (r sqlRows) Next() bool {
	return r.rows.Next()
}

func (r sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r sqlRows) Err() error {
	return r.rows.Err()
}

type nilRow struct{}

func (nilRow) Scan(_ ...any) error {
	return fmt.Errorf("nil db")
}
