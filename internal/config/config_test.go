package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "job_search.db", cfg.Database.SQLitePath)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Zero(t, cfg.App.RateLimitRPS)
	assert.Equal(t, 5, cfg.App.RateLimitBurst)
	assert.Equal(t, 5, cfg.Matching.TopN)
	assert.True(t, cfg.Matching.WriteBack)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_PostgresMissingRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "DB_USER")
}

func TestLoad_PostgresURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/jobs")
	t.Setenv("REDIS_TTL", "90s")
	t.Setenv("MATCH_TOP_N", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/jobs", cfg.Database.URL)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 10, cfg.Matching.TopN)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
}
