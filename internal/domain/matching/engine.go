package matching

import (
	"sort"
	"strings"

	"resume-match/internal/domain/job"
)

// Signal explains an empty ranking. It is not an error.
type Signal string

const (
	SignalNone     Signal = ""
	SignalNoSkills Signal = "no_skills"
	SignalNoJobs   Signal = "no_jobs"
)

type Ranked struct {
	Posting job.Posting
	Score   float64
}

type Result struct {
	Matches []Ranked
	Signal  Signal
}

// Rank scores corpus against skills and returns the best topN postings by
// descending score. Equal scores keep their corpus order. topN <= 0 returns
// every posting. Inputs are never mutated; each Ranked carries a copy of its
// posting with MatchScore set.
func Rank(skills []string, corpus []job.Posting, topN int) Result {
	if !hasSkill(skills) {
		return Result{Matches: []Ranked{}, Signal: SignalNoSkills}
	}
	if len(corpus) == 0 {
		return Result{Matches: []Ranked{}, Signal: SignalNoJobs}
	}

	texts := make([]string, len(corpus))
	for i, p := range corpus {
		texts[i] = p.Text()
	}
	scores := ComputeSimilarity(skills, texts)

	order := make([]int, len(corpus))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if topN <= 0 || topN > len(order) {
		topN = len(order)
	}

	out := make([]Ranked, 0, topN)
	for _, idx := range order[:topN] {
		p := corpus[idx]
		p.MatchScore = scores[idx]
		out = append(out, Ranked{Posting: p, Score: scores[idx]})
	}
	return Result{Matches: out}
}

// Stored returns the ranked postings that have a store identity and can
// therefore receive a score write-back.
func (r Result) Stored() []Ranked {
	out := make([]Ranked, 0, len(r.Matches))
	for _, m := range r.Matches {
		if m.Posting.Stored() {
			out = append(out, m)
		}
	}
	return out
}

func hasSkill(skills []string) bool {
	for _, s := range skills {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
