package usecase

import (
	"context"
	"fmt"
	"io"
	"slices"

	"resume-match/internal/corpus"
	"resume-match/internal/domain/job"
	"resume-match/internal/domain/matching"
	"resume-match/internal/domain/resume"
	"resume-match/internal/pkg/logging"
	"resume-match/internal/repository"
	"resume-match/internal/ws"
)

// MatchParams tunes one ranking run. TopN 0 uses the configured default and
// a negative TopN ranks the whole corpus. A non-nil Corpus replaces the store
// corpus; postings without an id are never written back.
type MatchParams struct {
	TopN          int
	SkipWriteBack bool
	Corpus        []job.Posting
	Filter        job.Filter
}

type WriteBackReport struct {
	Attempted int `json:"attempted"`
	Updated   int `json:"updated"`
	Failed    int `json:"failed"`
}

type MatchOutcome struct {
	ResumeID  int64
	Profile   resume.Profile
	Result    matching.Result
	WriteBack WriteBackReport
}

type MatchingUsecase interface {
	MatchText(ctx context.Context, text string, params MatchParams) (MatchOutcome, error)
	MatchResume(ctx context.Context, resumeID int64, params MatchParams) (MatchOutcome, error)
	MatchProfile(ctx context.Context, p resume.Profile, params MatchParams) (MatchOutcome, error)
	MarkMatched(ctx context.Context, resumeID int64, scores map[int64]float64) (bool, error)
}

type MatchingConfig struct {
	TopN        int
	WriteBack   bool
	CorpusLimit int
}

type Matching struct {
	resumes ResumeUsecase
	jobs    repository.JobRepository
	cache   Cache
	events  EventPublisher
	cfg     MatchingConfig
	logger  *logging.Logger
}

func NewMatchingUsecase(resumes ResumeUsecase, jobs repository.JobRepository, cache Cache, events EventPublisher, cfg MatchingConfig, logger *logging.Logger) *Matching {
	return &Matching{resumes: resumes, jobs: jobs, cache: cache, events: events, cfg: cfg, logger: logging.OrNop(logger)}
}

// LoadCorpus reads an ephemeral corpus from a job export. Only the title
// column is required.
func LoadCorpus(r io.Reader) ([]job.Posting, error) {
	feed, err := corpus.ReadCSV(r, corpus.FieldTitle)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return feed.Postings, nil
}

func (u *Matching) MatchText(ctx context.Context, text string, params MatchParams) (MatchOutcome, error) {
	p, err := u.resumes.Parse(ctx, text, "")
	if err != nil {
		return MatchOutcome{}, err
	}
	return u.MatchProfile(ctx, p, params)
}

func (u *Matching) MatchResume(ctx context.Context, resumeID int64, params MatchParams) (MatchOutcome, error) {
	rec, err := u.resumes.Get(ctx, resumeID)
	if err != nil {
		return MatchOutcome{}, err
	}
	return u.rank(ctx, resumeID, rec.Profile, params)
}

// MatchProfile ranks the corpus against the profile's skills, then writes
// scores back to stored postings unless the run opts out. Write-back
// failures are logged and counted, never returned.
func (u *Matching) MatchProfile(ctx context.Context, p resume.Profile, params MatchParams) (MatchOutcome, error) {
	return u.rank(ctx, 0, p, params)
}

func (u *Matching) rank(ctx context.Context, resumeID int64, p resume.Profile, params MatchParams) (MatchOutcome, error) {
	out := MatchOutcome{ResumeID: resumeID, Profile: p}

	postings := params.Corpus
	fromStore := postings == nil
	if fromStore && p.HasSkills() {
		var err error
		postings, err = u.jobs.GetJobs(ctx, params.Filter, u.cfg.CorpusLimit)
		if err != nil {
			u.logger.Error("load match corpus failed", "error", err)
			return out, ErrInternal
		}
	}

	topN := params.TopN
	if topN == 0 {
		topN = u.cfg.TopN
	}

	out.Result = matching.Rank(p.Skills, postings, topN)
	if out.Result.Signal != matching.SignalNone {
		u.logger.Info("ranking produced no matches", "signal", out.Result.Signal)
		return out, nil
	}

	if u.cfg.WriteBack && !params.SkipWriteBack {
		out.WriteBack = u.writeBack(ctx, out.Result)
	}

	u.logger.Info("jobs ranked",
		"corpus", len(postings),
		"matches", len(out.Result.Matches),
		"written_back", out.WriteBack.Updated,
		"write_back_failed", out.WriteBack.Failed,
	)
	u.publishRanked(out)
	return out, nil
}

func (u *Matching) writeBack(ctx context.Context, res matching.Result) WriteBackReport {
	var rep WriteBackReport
	for _, m := range res.Stored() {
		rep.Attempted++
		ok, err := u.jobs.UpdateJobMatch(ctx, m.Posting.ID, m.Score, job.MatchNote(m.Score))
		if err != nil || !ok {
			rep.Failed++
			u.logger.Warn("match write-back failed", "job_id", m.Posting.ID, "found", ok, "error", err)
			continue
		}
		rep.Updated++
	}
	if rep.Updated > 0 && u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, jobSearchKeyPattern); err != nil {
			u.logger.Warn("job search cache invalidation failed", "error", err)
		}
	}
	return rep
}

// MarkMatched flags each job as matched with the resume and its score. It
// reports true only when every job was updated.
func (u *Matching) MarkMatched(ctx context.Context, resumeID int64, scores map[int64]float64) (bool, error) {
	if resumeID <= 0 || len(scores) == 0 {
		return false, ErrInvalidInput
	}
	if _, err := u.resumes.Get(ctx, resumeID); err != nil {
		return false, err
	}

	ids := make([]int64, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	all := true
	for _, jobID := range ids {
		score := scores[jobID]
		note := job.MatchedNote(resumeID, score)
		ok, err := u.jobs.UpdateJobStatus(ctx, jobID, job.StatusMatched, &note)
		if err != nil {
			u.logger.Error("mark matched failed", "job_id", jobID, "error", err)
			return false, ErrInternal
		}
		if !ok {
			all = false
			continue
		}
		if _, err := u.jobs.UpdateJobMatch(ctx, jobID, score, note); err != nil {
			u.logger.Warn("store matched score failed", "job_id", jobID, "error", err)
		}
	}
	return all, nil
}

type rankedEvent struct {
	ResumeID int64     `json:"resume_id,omitempty"`
	JobIDs   []int64   `json:"job_ids"`
	Scores   []float64 `json:"scores"`
}

func (u *Matching) publishRanked(out MatchOutcome) {
	if u.events == nil {
		return
	}
	evt := rankedEvent{
		ResumeID: out.ResumeID,
		JobIDs:   make([]int64, 0, len(out.Result.Matches)),
		Scores:   make([]float64, 0, len(out.Result.Matches)),
	}
	for _, m := range out.Result.Matches {
		evt.JobIDs = append(evt.JobIDs, m.Posting.ID)
		evt.Scores = append(evt.Scores, m.Score)
	}
	u.events.Publish(ws.EventJobsRanked, evt)
}
