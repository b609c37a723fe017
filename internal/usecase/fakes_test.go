package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"resume-match/internal/domain/application"
	"resume-match/internal/domain/job"
	"resume-match/internal/domain/resume"
	"resume-match/internal/repository"
)

type fakeJobRepo struct {
	mu       sync.Mutex
	postings map[int64]job.Posting
	nextID   int64
	err      error
	matchErr map[int64]error
}

func newFakeJobRepo(ps ...job.Posting) *fakeJobRepo {
	r := &fakeJobRepo{postings: map[int64]job.Posting{}, matchErr: map[int64]error{}}
	for _, p := range ps {
		r.nextID++
		if p.ID == 0 {
			p.ID = r.nextID
		}
		r.postings[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakeJobRepo) AddJob(_ context.Context, p job.Posting) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	p.ID = r.nextID
	p.Status = job.StatusNew
	r.postings[p.ID] = p
	return p.ID, nil
}

func (r *fakeJobRepo) GetJobs(_ context.Context, f job.Filter, limit int) ([]job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]job.Posting, 0, len(r.postings))
	for id := int64(1); id <= r.nextID; id++ {
		p, ok := r.postings[id]
		if !ok || (f.Status != "" && p.Status != f.Status) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeJobRepo) GetJob(_ context.Context, id int64) (job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.postings[id]
	if !ok {
		return job.Posting{}, repository.ErrJobNotFound
	}
	return p, nil
}

func (r *fakeJobRepo) UpdateJobStatus(_ context.Context, id int64, status job.Status, notes *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	p, ok := r.postings[id]
	if !ok {
		return false, nil
	}
	p.Status = status
	if notes != nil {
		p.Notes = *notes
	}
	r.postings[id] = p
	return true, nil
}

func (r *fakeJobRepo) UpdateJobMatch(_ context.Context, id int64, score float64, notes string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.matchErr[id]; err != nil {
		return false, err
	}
	p, ok := r.postings[id]
	if !ok {
		return false, nil
	}
	p.MatchScore = score
	p.Notes = notes
	r.postings[id] = p
	return true, nil
}

type fakeResumeRepo struct {
	records map[int64]resume.Record
	nextID  int64
	err     error
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{records: map[int64]resume.Record{}}
}

func (r *fakeResumeRepo) AddResume(_ context.Context, p resume.Profile) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	r.records[r.nextID] = resume.Record{ID: r.nextID, Profile: p, DateParsed: time.Now()}
	return r.nextID, nil
}

func (r *fakeResumeRepo) GetResumes(_ context.Context, limit int) ([]resume.Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]resume.Record, 0)
	for id := r.nextID; id > 0 && (limit <= 0 || len(out) < limit); id-- {
		if rec, ok := r.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeResumeRepo) GetResume(_ context.Context, id int64) (resume.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return resume.Record{}, repository.ErrResumeNotFound
	}
	return rec, nil
}

type fakeApplicationRepo struct {
	records map[int64]application.Record
	nextID  int64
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{records: map[int64]application.Record{}}
}

func (r *fakeApplicationRepo) AddApplication(_ context.Context, rec application.Record) (int64, error) {
	r.nextID++
	rec.ID = r.nextID
	r.records[rec.ID] = rec
	return rec.ID, nil
}

func (r *fakeApplicationRepo) GetApplications(_ context.Context, status application.Status) ([]application.Record, error) {
	out := make([]application.Record, 0)
	for id := int64(1); id <= r.nextID; id++ {
		rec, ok := r.records[id]
		if !ok || (status != "" && rec.Status != status) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeApplicationRepo) GetApplication(_ context.Context, id int64) (application.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return application.Record{}, repository.ErrApplicationNotFound
	}
	return rec, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id int64, status application.Status) (bool, error) {
	rec, ok := r.records[id]
	if !ok {
		return false, nil
	}
	rec.Status = status
	r.records[id] = rec
	return true, nil
}

func (r *fakeApplicationRepo) DeleteApplication(_ context.Context, id int64) (bool, error) {
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

type memCache struct {
	data    map[string][]byte
	deletes []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deletes = append(c.deletes, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type recordedEvent struct {
	Type string
	Data any
}

type fakePublisher struct {
	events []recordedEvent
}

func (p *fakePublisher) Publish(eventType string, data any) {
	p.events = append(p.events, recordedEvent{Type: eventType, Data: data})
}

func (p *fakePublisher) types() []string {
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type countingParser struct {
	calls   int
	profile resume.Profile
}

func (p *countingParser) Parse(string) resume.Profile {
	p.calls++
	return p.profile
}

var errStore = errors.New("store down")
