package seeder

import (
	"context"
	"fmt"
	"time"

	"resume-match/internal/database"
	"resume-match/internal/domain/job"
)

// JobsSeeder inserts a small sample corpus. Postings are keyed by URL, so
// running it twice adds nothing.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

var sampleJobs = []job.Posting{
	{
		Title:       "Backend Engineer (Go)",
		Company:     "Northwind Labs",
		Location:    "Remote",
		URL:         "https://example.com/jobs/backend-go",
		Description: "Build and maintain Go services, REST APIs and PostgreSQL-backed systems. Docker and Kubernetes experience is a plus.",
	},
	{
		Title:       "Data Analyst",
		Company:     "Insight Works",
		Location:    "London, UK",
		URL:         "https://example.com/jobs/data-analyst",
		Description: "Python and SQL reporting, Tableau dashboards and stakeholder communication.",
	},
	{
		Title:       "Frontend Developer",
		Company:     "Pixel Studio",
		Location:    "Berlin, DE",
		URL:         "https://example.com/jobs/frontend",
		Description: "React, TypeScript, HTML and CSS. Work closely with designers on accessible interfaces.",
	},
	{
		Title:       "DevOps Engineer",
		Company:     "Cloud Harbor",
		Location:    "Remote",
		URL:         "https://example.com/jobs/devops",
		Description: "Operate CI/CD pipelines, Terraform, AWS and Kubernetes for production workloads.",
	},
	{
		Title:       "Machine Learning Engineer",
		Company:     "Deep Signal",
		Location:    "San Francisco, CA",
		URL:         "https://example.com/jobs/ml-engineer",
		Description: "Train and deploy models with Python, TensorFlow and PyTorch. Strong statistics background.",
	},
	{
		Title:       "Sous Chef",
		Company:     "Bistro Verde",
		Location:    "Paris, FR",
		URL:         "https://example.com/jobs/sous-chef",
		Description: "Cooking, baking and menu planning in a busy kitchen.",
	},
}

func (JobsSeeder) Run(ctx context.Context, db database.DB) (int, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	inserted := 0
	for _, p := range sampleJobs {
		var n int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE url = $1`, p.URL).Scan(&n); err != nil {
			return 0, err
		}
		if n > 0 {
			continue
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO jobs (title, company, location, description, url, date_posted, date_scraped, match_score, status, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, '')`,
			p.Title, p.Company, p.Location, p.Description, p.URL, now.Format("2006-01-02"), now, string(job.StatusNew),
		); err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}
