package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"resume-match/internal/database"
	"resume-match/internal/pkg/logging"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrations embed.FS

type Runner struct {
	Dialect string
	Logger  *logging.Logger
}

// Run applies every pending migration for the runner's dialect.
func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	p, err := r.provider(db)
	if err != nil {
		return err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}

	log := logging.OrNop(r.Logger)
	for _, res := range results {
		log.Info("migration applied",
			"version", res.Source.Version,
			"file", res.Source.Path,
			"duration", res.Duration,
		)
	}
	return nil
}

// Version reports the current schema version.
func (r Runner) Version(ctx context.Context, db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errors.New("nil db")
	}
	p, err := r.provider(db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}

func (r Runner) provider(db *sql.DB) (*goose.Provider, error) {
	var dialect goose.Dialect
	switch r.Dialect {
	case database.DialectPostgres:
		dialect = goose.DialectPostgres
	case database.DialectSQLite:
		dialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("unsupported migration dialect %q", r.Dialect)
	}

	fsys, err := fs.Sub(migrations, r.Dialect)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(dialect, db, fsys)
}

// Up is the shorthand used by the entry points.
func Up(ctx context.Context, db database.DB, logger *logging.Logger) error {
	if db == nil {
		return errors.New("nil db")
	}
	return Runner{Dialect: db.Dialect(), Logger: logger}.Run(ctx, db.SQLDB())
}
