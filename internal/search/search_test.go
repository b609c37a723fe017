package search

import (
	"testing"
	"time"

	"resume-match/internal/domain/job"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "senior go developer", NormalizeQuery("  Senior   Go-Developer! "))
	assert.Equal(t, "", NormalizeQuery("   "))
	assert.Equal(t, "nodejs front end", NormalizeQuery("Node.js Front-End"))
	assert.Equal(t, "ci cd", NormalizeQuery("CI/CD"))
}

func TestExpandQuery(t *testing.T) {
	assert.Equal(t, []string{}, ExpandQuery(""))

	v := ExpandQuery("devops")
	assert.Equal(t, "devops", v[0])
	assert.Contains(t, v, "site reliability")

	v = ExpandQuery("fullstack jakarta")
	assert.Contains(t, v, "full stack jakarta")
	assert.Contains(t, v, "full stack developer jakarta")
	assert.LessOrEqual(t, len(v), maxVariants)
}

func TestRank_FiltersAndOrders(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	fresh := now.Add(-2 * time.Hour)
	old := now.Add(-60 * 24 * time.Hour)

	postings := []job.Posting{
		{ID: 1, Title: "Chef", Description: "kitchen work", DateScraped: &fresh},
		{ID: 2, Title: "Platform Engineer", Description: "kubernetes", DateScraped: &old},
		{ID: 3, Title: "DevOps Engineer", Company: "Acme", Description: "site reliability", DateScraped: &fresh},
	}

	out := Rank(postings, ProcessQuery("DevOps").Variants, now)
	if assert.Len(t, out, 2) {
		assert.Equal(t, int64(3), out[0].ID)
		assert.Equal(t, int64(2), out[1].ID)
	}
}

func TestRelevance_Capped(t *testing.T) {
	p := job.Posting{Title: "go go", Description: "go", Company: "go"}
	assert.Equal(t, 10.0, Relevance(p, []string{"go", "go", "go"}))
}
