package seeder

import (
	"context"
	"fmt"

	"resume-match/internal/database"
	"resume-match/internal/pkg/logging"
)

type Runner struct {
	Seeders []Seeder
	Logger  *logging.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	logger := logging.OrNop(r.Logger)
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Run(ctx, db)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeded", "seeder", s.Name(), "rows", n)
	}
	return nil
}
