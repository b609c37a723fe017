package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-match/internal/corpus"
	"resume-match/internal/domain/job"
	"resume-match/internal/pkg/logging"
	"resume-match/internal/repository"
	"resume-match/internal/search"
)

const (
	defaultJobListLimit = 100
	maxJobListLimit     = 500
	// searchPoolFactor widens the store read for keyword searches so that
	// ranking sees more candidates than it returns.
	searchPoolFactor = 5
)

type JobListParams struct {
	Query  string
	Filter job.Filter
	Limit  int
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type JobUsecase interface {
	Add(ctx context.Context, p job.Posting) (int64, error)
	List(ctx context.Context, params JobListParams) ([]job.Posting, error)
	Get(ctx context.Context, id int64) (job.Posting, error)
	UpdateStatus(ctx context.Context, id int64, status string, notes *string) (bool, error)
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)
}

type Jobs struct {
	jobs   repository.JobRepository
	cache  Cache
	logger *logging.Logger
	now    func() time.Time
}

func NewJobUsecase(jobs repository.JobRepository, cache Cache, logger *logging.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, logger: logging.OrNop(logger), now: time.Now}
}

func (u *Jobs) Add(ctx context.Context, p job.Posting) (int64, error) {
	if strings.TrimSpace(p.Title) == "" {
		return 0, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	id, err := u.jobs.AddJob(ctx, p)
	if err != nil {
		u.logger.Error("add job failed", "title", p.Title, "error", err)
		return 0, ErrInternal
	}
	u.invalidateSearch(ctx)
	return id, nil
}

// List returns stored postings. A non-empty query narrows the listing to
// postings hit by the query or one of its synonym variants, best first.
func (u *Jobs) List(ctx context.Context, params JobListParams) ([]job.Posting, error) {
	limit := params.Limit
	if limit == 0 {
		limit = defaultJobListLimit
	}
	if limit < 0 || limit > maxJobListLimit {
		return nil, ErrInvalidInput
	}
	if params.Filter.Status != "" {
		st, err := job.ParseStatus(string(params.Filter.Status))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		params.Filter.Status = st
	}

	q := search.ProcessQuery(params.Query)
	if q.Normalized == "" {
		out, err := u.jobs.GetJobs(ctx, params.Filter, limit)
		if err != nil {
			return nil, ErrInternal
		}
		return out, nil
	}

	cacheKey := JobSearchCacheKey(q.Normalized, params.Filter, limit)
	if u.cache != nil {
		var cached []job.Posting
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logger.Debug("job search cache hit", "key", cacheKey)
			return cached, nil
		}
	}

	pool, err := u.jobs.GetJobs(ctx, params.Filter, limit*searchPoolFactor)
	if err != nil {
		return nil, ErrInternal
	}
	out := search.Rank(pool, q.Variants, u.now().UTC())
	if len(out) > limit {
		out = out[:limit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err != nil {
			u.logger.Warn("job search cache set failed", "key", cacheKey, "error", err)
		}
	}
	return out, nil
}

func (u *Jobs) Get(ctx context.Context, id int64) (job.Posting, error) {
	if id <= 0 {
		return job.Posting{}, ErrInvalidInput
	}
	p, err := u.jobs.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

// UpdateStatus reports false when no posting has the id.
func (u *Jobs) UpdateStatus(ctx context.Context, id int64, status string, notes *string) (bool, error) {
	st, err := job.ParseStatus(status)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ok, err := u.jobs.UpdateJobStatus(ctx, id, st, notes)
	if err != nil {
		u.logger.Error("update job status failed", "job_id", id, "error", err)
		return false, ErrInternal
	}
	if ok {
		u.invalidateSearch(ctx)
	}
	return ok, nil
}

// ImportCSV stores every readable row of a job export. Rows without a
// title are skipped; a missing required column aborts the import.
func (u *Jobs) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	feed, err := corpus.ReadCSV(r, corpus.ImportColumns...)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	res := ImportResult{Skipped: feed.Skipped}
	for _, p := range feed.Postings {
		if strings.TrimSpace(p.Title) == "" {
			res.Skipped++
			continue
		}
		if _, err := u.jobs.AddJob(ctx, p); err != nil {
			u.logger.Error("import job failed", "title", p.Title, "error", err)
			return res, ErrInternal
		}
		res.Imported++
	}

	if res.Imported > 0 {
		u.invalidateSearch(ctx)
	}
	u.logger.Info("jobs imported", "imported", res.Imported, "skipped", res.Skipped)
	return res, nil
}

func (u *Jobs) invalidateSearch(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, jobSearchKeyPattern); err != nil {
		u.logger.Warn("job search cache invalidation failed", "error", err)
	}
}
