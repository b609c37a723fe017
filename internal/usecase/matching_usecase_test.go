package usecase

import (
	"context"
	"strings"
	"testing"

	"resume-match/internal/domain/job"
	"resume-match/internal/domain/matching"
	"resume-match/internal/domain/resume"
	"resume-match/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatching(t *testing.T, jobs *fakeJobRepo, resumes *fakeResumeRepo, events EventPublisher, writeBack bool) *Matching {
	t.Helper()
	parser := &countingParser{profile: resume.Profile{Skills: []string{"Python", "SQL"}}}
	ru := NewResumeUsecase(parser, resumes, nil, 0, nil)
	return NewMatchingUsecase(ru, jobs, nil, events, MatchingConfig{TopN: 5, WriteBack: writeBack, CorpusLimit: 100}, nil)
}

func TestMatching_StoreCorpusWritesBack(t *testing.T) {
	jobs := newFakeJobRepo(
		job.Posting{Title: "Data Analyst", Description: "Python SQL reporting"},
		job.Posting{Title: "Chef", Description: "cooking baking"},
	)
	events := &fakePublisher{}
	uc := newMatching(t, jobs, newFakeResumeRepo(), events, true)

	out, err := uc.MatchText(context.Background(), "resume text", MatchParams{TopN: 1})
	require.NoError(t, err)
	require.Len(t, out.Result.Matches, 1)
	assert.Equal(t, "Data Analyst", out.Result.Matches[0].Posting.Title)
	assert.Greater(t, out.Result.Matches[0].Score, 0.0)

	assert.Equal(t, WriteBackReport{Attempted: 1, Updated: 1}, out.WriteBack)
	assert.Equal(t, out.Result.Matches[0].Score, jobs.postings[1].MatchScore)
	assert.Equal(t, job.MatchNote(out.Result.Matches[0].Score), jobs.postings[1].Notes)
	assert.Zero(t, jobs.postings[2].MatchScore)

	assert.Equal(t, []string{ws.EventJobsRanked}, events.types())
}

func TestMatching_SkipWriteBack(t *testing.T) {
	jobs := newFakeJobRepo(job.Posting{Title: "Data Analyst", Description: "Python SQL"})
	uc := newMatching(t, jobs, newFakeResumeRepo(), nil, true)

	out, err := uc.MatchText(context.Background(), "resume text", MatchParams{SkipWriteBack: true})
	require.NoError(t, err)
	assert.Zero(t, out.WriteBack.Attempted)
	assert.Zero(t, jobs.postings[1].MatchScore)
}

func TestMatching_WriteBackFailureDoesNotFailRanking(t *testing.T) {
	jobs := newFakeJobRepo(
		job.Posting{Title: "Data Analyst", Description: "Python SQL"},
		job.Posting{Title: "SQL Developer", Description: "SQL"},
	)
	jobs.matchErr[1] = errStore
	uc := newMatching(t, jobs, newFakeResumeRepo(), nil, true)

	out, err := uc.MatchText(context.Background(), "resume text", MatchParams{})
	require.NoError(t, err)
	assert.Len(t, out.Result.Matches, 2)
	assert.Equal(t, WriteBackReport{Attempted: 2, Updated: 1, Failed: 1}, out.WriteBack)
}

func TestMatching_CSVCorpusNeverWrittenBack(t *testing.T) {
	jobs := newFakeJobRepo()
	uc := newMatching(t, jobs, newFakeResumeRepo(), nil, true)

	corpus, err := LoadCorpus(strings.NewReader("title,description\nData Analyst,Python SQL reporting\nChef,cooking baking\n"))
	require.NoError(t, err)

	out, err := uc.MatchText(context.Background(), "resume text", MatchParams{Corpus: corpus, TopN: -1})
	require.NoError(t, err)
	require.Len(t, out.Result.Matches, 2)
	assert.Equal(t, "Data Analyst", out.Result.Matches[0].Posting.Title)
	assert.Zero(t, out.WriteBack.Attempted)
}

func TestMatching_Signals(t *testing.T) {
	uc := newMatching(t, newFakeJobRepo(), newFakeResumeRepo(), nil, true)

	out, err := uc.MatchProfile(context.Background(), resume.Profile{Skills: []string{}}, MatchParams{})
	require.NoError(t, err)
	assert.Equal(t, matching.SignalNoSkills, out.Result.Signal)
	assert.Empty(t, out.Result.Matches)

	out, err = uc.MatchProfile(context.Background(), resume.Profile{Skills: []string{"Go"}}, MatchParams{})
	require.NoError(t, err)
	assert.Equal(t, matching.SignalNoJobs, out.Result.Signal)
}

func TestMatching_MatchResume(t *testing.T) {
	resumes := newFakeResumeRepo()
	id, _ := resumes.AddResume(context.Background(), resume.Profile{Skills: []string{"Python"}})
	jobs := newFakeJobRepo(job.Posting{Title: "Python Developer", Description: "Python"})
	uc := newMatching(t, jobs, resumes, nil, false)

	out, err := uc.MatchResume(context.Background(), id, MatchParams{})
	require.NoError(t, err)
	assert.Equal(t, id, out.ResumeID)
	assert.Len(t, out.Result.Matches, 1)

	_, err = uc.MatchResume(context.Background(), 999, MatchParams{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMatching_MarkMatched(t *testing.T) {
	resumes := newFakeResumeRepo()
	id, _ := resumes.AddResume(context.Background(), resume.Profile{})
	jobs := newFakeJobRepo(job.Posting{Title: "A"}, job.Posting{Title: "B"})
	uc := newMatching(t, jobs, resumes, nil, true)

	ok, err := uc.MarkMatched(context.Background(), id, map[int64]float64{1: 0.5, 2: 0.25})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, job.StatusMatched, jobs.postings[1].Status)
	assert.Equal(t, job.MatchedNote(id, 0.5), jobs.postings[1].Notes)

	ok, err = uc.MarkMatched(context.Background(), id, map[int64]float64{2: 0.1, 77: 0.9})
	require.NoError(t, err)
	assert.False(t, ok)
}
