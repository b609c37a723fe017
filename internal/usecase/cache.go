package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"resume-match/internal/domain/job"
)

// Cache is the JSON cache the usecases read through. A nil Cache disables
// caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// EventPublisher fans domain events out to live subscribers.
type EventPublisher interface {
	Publish(eventType string, data any)
}

const (
	parsedResumeKeyPrefix = "resume:parsed:"
	jobSearchKeyPrefix    = "jobs:search:"
	jobSearchKeyPattern   = jobSearchKeyPrefix + "*"
)

func ParsedResumeCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return parsedResumeKeyPrefix + hex.EncodeToString(sum[:])
}

type jobSearchCacheKeyInput struct {
	Query    string `json:"query"`
	Status   string `json:"status"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Limit    int    `json:"limit"`
}

func normalizeSearchValue(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func JobSearchCacheKey(query string, f job.Filter, limit int) string {
	b, _ := json.Marshal(jobSearchCacheKeyInput{
		Query:    normalizeSearchValue(query),
		Status:   string(f.Status),
		Company:  normalizeSearchValue(f.Company),
		Location: normalizeSearchValue(f.Location),
		Limit:    limit,
	})
	sum := sha256.Sum256(b)
	return jobSearchKeyPrefix + hex.EncodeToString(sum[:])
}
