package usecase

import (
	"context"
	"strings"
	"testing"

	"resume-match/internal/domain/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobs_AddRequiresTitle(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil, nil)
	_, err := uc.Add(context.Background(), job.Posting{Company: "Acme"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobs_ListInvalidLimit(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil, nil)
	_, err := uc.List(context.Background(), JobListParams{Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.List(context.Background(), JobListParams{Filter: job.Filter{Status: "archived"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobs_SearchRanksAndCaches(t *testing.T) {
	repo := newFakeJobRepo(
		job.Posting{Title: "Chef", Description: "cooking"},
		job.Posting{Title: "Backend Engineer", Description: "Go services"},
		job.Posting{Title: "Server Developer", Description: "APIs"},
	)
	cache := newMemCache()
	uc := NewJobUsecase(repo, cache, nil)

	out, err := uc.List(context.Background(), JobListParams{Query: "Backend"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Backend Engineer", out[0].Title)
	assert.Equal(t, "Server Developer", out[1].Title)
	assert.Len(t, cache.data, 1)

	_, err = uc.Add(context.Background(), job.Posting{Title: "Backend Lead"})
	require.NoError(t, err)
	assert.Empty(t, cache.data)
	assert.Contains(t, cache.deletes, jobSearchKeyPattern)
}

func TestJobs_UpdateStatus(t *testing.T) {
	repo := newFakeJobRepo(job.Posting{Title: "Chef"})
	uc := NewJobUsecase(repo, nil, nil)

	ok, err := uc.UpdateStatus(context.Background(), 1, "Applied", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, job.StatusApplied, repo.postings[1].Status)

	ok, err = uc.UpdateStatus(context.Background(), 99, "offer", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = uc.UpdateStatus(context.Background(), 1, "hired", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobs_ImportCSV(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil, nil)

	csvData := "Title,Company,Location,Job Link,Description\n" +
		"Data Analyst,Acme,Remote,https://acme.io/1,Python SQL reporting\n" +
		",NoTitle Inc,Berlin,,\n" +
		"Chef,Bistro,Paris,https://bistro.fr,cooking baking\n"

	res, err := uc.ImportCSV(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "https://acme.io/1", repo.postings[1].URL)

	_, err = uc.ImportCSV(context.Background(), strings.NewReader("Title,Company\nChef,Bistro\n"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
