// Package seeder loads sample data into a migrated store.
package seeder

import (
	"context"

	"resume-match/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) (int, error)
}
