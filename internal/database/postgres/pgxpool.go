package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-match/internal/config"
	"resume-match/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const defaultPingTimeout = 5 * time.Second

var errNotConnected = errors.New("postgres: not connected")

// querier is the statement surface shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type statements struct {
	q querier
}

func (s statements) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if s.q == nil {
		return 0, errNotConnected
	}
	tag, err := s.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Query returns pgx rows as is; they already satisfy database.Rows.
func (s statements) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if s.q == nil {
		return nil, errNotConnected
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s statements) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if s.q == nil {
		return errRow{err: errNotConnected}
	}
	return s.q.QueryRow(ctx, query, args...)
}

// Pool is the postgres store. Statements go through pgxpool; goose gets a
// database/sql handle over the same pool.
type Pool struct {
	statements
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

var _ database.DB = (*Pool)(nil)

// DSN prefers DATABASE_URL and otherwise assembles a keyword/value string
// from the individual settings.
func DSN(cfg config.DatabaseConfig) string {
	if u := strings.TrimSpace(cfg.URL); u != "" {
		return u
	}
	parts := []string{
		"host=" + strings.TrimSpace(cfg.DBHost),
		"port=" + strings.TrimSpace(cfg.DBPort),
		"user=" + strings.TrimSpace(cfg.DBUser),
		"dbname=" + strings.TrimSpace(cfg.DBName),
	}
	if cfg.DBPassword != "" {
		parts = append(parts, "password="+quoteValue(cfg.DBPassword))
	}
	if mode := strings.TrimSpace(cfg.DBSSLMode); mode != "" {
		parts = append(parts, "sslmode="+mode)
	}
	return strings.Join(parts, " ")
}

// quoteValue escapes a keyword/value DSN value that may hold spaces or quotes.
func quoteValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	pcfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.PoolMaxConns > 0 {
		pcfg.MaxConns = cfg.PoolMaxConns
	}
	if cfg.PoolMinConns > 0 {
		pcfg.MinConns = cfg.PoolMinConns
	}
	return pcfg, nil
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	pcfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, defaultPingTimeout)
		defer cancel()
	}
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Pool{
		statements: statements{q: p},
		pool:       p,
		sqlDB:      stdlib.OpenDBFromPool(p),
	}, nil
}

func (p *Pool) Dialect() string {
	return database.DialectPostgres
}

func (p *Pool) Ping(ctx context.Context) error {
	if p.pool == nil {
		return errNotConnected
	}
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() error {
	var err error
	if p.sqlDB != nil {
		err = p.sqlDB.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return err
}

func (p *Pool) Begin(ctx context.Context) (database.Tx, error) {
	if p.pool == nil {
		return nil, errNotConnected
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return pgxTx{statements: statements{q: tx}, tx: tx}, nil
}

func (p *Pool) SQLDB() *sql.DB {
	return p.sqlDB
}

type pgxTx struct {
	statements
	tx pgx.Tx
}

func (t pgxTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t pgxTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
