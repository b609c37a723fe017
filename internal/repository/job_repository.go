package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"resume-match/internal/database"
	"resume-match/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

const defaultJobListLimit = 100

type JobRepository interface {
	AddJob(ctx context.Context, p job.Posting) (int64, error)
	GetJobs(ctx context.Context, f job.Filter, limit int) ([]job.Posting, error)
	GetJob(ctx context.Context, id int64) (job.Posting, error)
	UpdateJobStatus(ctx context.Context, id int64, status job.Status, notes *string) (bool, error)
	UpdateJobMatch(ctx context.Context, id int64, score float64, notes string) (bool, error)
}

type SQLJobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *SQLJobRepository {
	return &SQLJobRepository{db: db}
}

// AddJob stores a new posting with score 0 and status new.
func (r *SQLJobRepository) AddJob(ctx context.Context, p job.Posting) (int64, error) {
	scraped := time.Now().UTC()
	if p.DateScraped != nil && !p.DateScraped.IsZero() {
		scraped = p.DateScraped.UTC()
	}

	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, description, url, date_posted, date_scraped, match_score, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, '')
		 RETURNING id`,
		strings.TrimSpace(p.Title),
		strings.TrimSpace(p.Company),
		strings.TrimSpace(p.Location),
		p.Description,
		strings.TrimSpace(p.URL),
		strings.TrimSpace(p.DatePosted),
		scraped,
		string(job.StatusNew),
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetJobs lists postings newest first. Company and location match as
// case-insensitive substrings; an empty filter field matches everything.
func (r *SQLJobRepository) GetJobs(ctx context.Context, f job.Filter, limit int) ([]job.Posting, error) {
	if limit <= 0 {
		limit = defaultJobListLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, location, description, url, date_posted, date_scraped, match_score, status, notes
		 FROM jobs
		 WHERE ($1 = '' OR status = $1)
		   AND ($2 = '' OR LOWER(company) LIKE '%' || LOWER($2) || '%')
		   AND ($3 = '' OR LOWER(location) LIKE '%' || LOWER($3) || '%')
		 ORDER BY date_scraped DESC, id DESC
		 LIMIT $4`,
		string(f.Status),
		strings.TrimSpace(f.Company),
		strings.TrimSpace(f.Location),
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLJobRepository) GetJob(ctx context.Context, id int64) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, company, location, description, url, date_posted, date_scraped, match_score, status, notes
		 FROM jobs
		 WHERE id = $1`,
		id,
	)
	p, err := scanPosting(row)
	if err != nil {
		if isNoRows(err) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

// UpdateJobStatus reports false when no posting has the given id. A nil
// notes pointer leaves the stored notes untouched.
func (r *SQLJobRepository) UpdateJobStatus(ctx context.Context, id int64, status job.Status, notes *string) (bool, error) {
	var (
		n   int64
		err error
	)
	if notes == nil {
		n, err = r.db.Exec(ctx, `UPDATE jobs SET status = $1 WHERE id = $2`, string(status), id)
	} else {
		n, err = r.db.Exec(ctx, `UPDATE jobs SET status = $1, notes = $2 WHERE id = $3`, string(status), *notes, id)
	}
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLJobRepository) UpdateJobMatch(ctx context.Context, id int64, score float64, notes string) (bool, error) {
	n, err := r.db.Exec(ctx, `UPDATE jobs SET match_score = $1, notes = $2 WHERE id = $3`, score, notes, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanPosting(row database.Row) (job.Posting, error) {
	var (
		p       job.Posting
		status  string
		scraped *time.Time
	)
	if err := row.Scan(
		&p.ID, &p.Title, &p.Company, &p.Location, &p.Description, &p.URL,
		&p.DatePosted, &scraped, &p.MatchScore, &status, &p.Notes,
	); err != nil {
		return job.Posting{}, err
	}
	p.Status = job.Status(status)
	p.DateScraped = scraped
	return p, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
