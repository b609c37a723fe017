package app

import (
	"context"
	"fmt"
	"time"

	"resume-match/internal/config"
	"resume-match/internal/database"
	"resume-match/internal/database/migration"
	dbpostgres "resume-match/internal/database/postgres"
	dbsqlite "resume-match/internal/database/sqlite"
	"resume-match/internal/extract"
	"resume-match/internal/infrastructure/cache"
	"resume-match/internal/pkg/logging"
	"resume-match/internal/repository"
	"resume-match/internal/usecase"
	"resume-match/internal/ws"
)

// Container owns every long-lived dependency of one process.
type Container struct {
	Config config.Config
	Logger *logging.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Parser *extract.Parser

	Resumes  *usecase.Resumes
	Jobs     *usecase.Jobs
	Matching *usecase.Matching
	Tracker  *usecase.Tracker
}

// OpenDB connects to the configured store.
func OpenDB(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return dbpostgres.Connect(ctx, cfg)
	case config.DriverSQLite, "":
		return dbsqlite.Open(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewContainer connects storage, applies pending migrations and builds the
// usecases. The hub is created but not started.
func NewContainer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	logger = logging.OrNop(logger)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := OpenDB(connectCtx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := migration.Up(connectCtx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	vocab, err := extract.LoadVocabulary(cfg.Vocabulary.File)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(ctx, cfg.Redis, logger.With("component", "cache")),
		Hub:    ws.NewHub(logger.With("component", "ws")),
		Parser: extract.NewParser(extract.WithVocabulary(vocab)),
	}

	jobRepo := repository.NewJobRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	appRepo := repository.NewApplicationRepository(db)

	c.Resumes = usecase.NewResumeUsecase(c.Parser, resumeRepo, c.Cache, cfg.Redis.TTL, logger.With("component", "resumes"))
	c.Jobs = usecase.NewJobUsecase(jobRepo, c.Cache, logger.With("component", "jobs"))
	c.Matching = usecase.NewMatchingUsecase(c.Resumes, jobRepo, c.Cache, c.Hub, usecase.MatchingConfig{
		TopN:        cfg.Matching.TopN,
		WriteBack:   cfg.Matching.WriteBack,
		CorpusLimit: cfg.Matching.CorpusLimit,
	}, logger.With("component", "matching"))
	c.Tracker = usecase.NewTrackerUsecase(appRepo, c.Hub, logger.With("component", "tracker"))

	logger.Info("container ready",
		"db_driver", db.Dialect(),
		"cache", c.Cache.Available(),
		"skills", len(vocab.Skills),
		"degrees", len(vocab.Degrees),
	)
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	_ = c.Cache.Close()
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
