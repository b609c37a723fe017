package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App        AppConfig
	Log        LogConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Matching   MatchingConfig
	Vocabulary VocabularyConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	// RateLimitRPS caps parse, upload and match requests; 0 disables it.
	RateLimitRPS   float64
	RateLimitBurst int
}

type LogConfig struct {
	Level string
}

type DatabaseConfig struct {
	Driver string

	URL        string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	SQLitePath string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type MatchingConfig struct {
	TopN        int
	WriteBack   bool
	CorpusLimit int
}

type VocabularyConfig struct {
	File string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "resume-match"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),

		RateLimitRPS:   floatOr(opt("RATE_LIMIT_RPS", ""), 0),
		RateLimitBurst: intOr(opt("RATE_LIMIT_BURST", ""), 5),
	}

	cfg.Log = LogConfig{Level: opt("LOG_LEVEL", "info")}

	driver := strings.ToLower(opt("DB_DRIVER", DriverSQLite))
	cfg.Database = DatabaseConfig{
		Driver:         driver,
		SQLitePath:     opt("SQLITE_PATH", "job_search.db"),
		ConnectTimeout: durationSeconds(opt("DB_CONNECT_TIMEOUT", ""), 5*time.Second),
		PoolMaxConns:   int32(intOr(opt("DB_POOL_MAX_CONNS", ""), 0)),
		PoolMinConns:   int32(intOr(opt("DB_POOL_MIN_CONNS", ""), 0)),
	}
	switch driver {
	case DriverPostgres:
		cfg.Database.URL = opt("DATABASE_URL", "")
		if cfg.Database.URL == "" {
			cfg.Database.DBHost = req("DB_HOST")
			cfg.Database.DBPort = opt("DB_PORT", "5432")
			cfg.Database.DBName = req("DB_NAME")
			cfg.Database.DBUser = req("DB_USER")
			cfg.Database.DBPassword = opt("DB_PASSWORD", "")
			cfg.Database.DBSSLMode = opt("DB_SSL_MODE", "disable")
		}
	case DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	cfg.Redis = RedisConfig{
		Enabled:  boolOr(opt("REDIS_ENABLED", ""), false),
		Addr:     opt("REDIS_ADDR", "localhost:6379"),
		Password: opt("REDIS_PASSWORD", ""),
		DB:       intOr(opt("REDIS_DB", ""), 0),
		TTL:      durationSeconds(opt("REDIS_TTL", ""), 600*time.Second),
	}

	cfg.Matching = MatchingConfig{
		TopN:        intOr(opt("MATCH_TOP_N", ""), 5),
		WriteBack:   boolOr(opt("MATCH_WRITE_BACK", ""), true),
		CorpusLimit: intOr(opt("MATCH_CORPUS_LIMIT", ""), 100),
	}

	cfg.Vocabulary = VocabularyConfig{File: opt("VOCABULARY_FILE", "")}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func intOr(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func floatOr(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func boolOr(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// durationSeconds accepts either a Go duration ("90s") or a bare number of seconds.
func durationSeconds(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
