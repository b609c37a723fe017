package search

import (
	"sort"
	"strings"
	"time"

	"resume-match/internal/domain/job"
)

type Score struct {
	Relevance   float64
	Freshness   float64
	DataQuality float64
	Final       float64
}

// Relevance counts variant hits: 3 for the title, 1 each for description
// and company. Capped at 10.
func Relevance(p job.Posting, variants []string) float64 {
	title := strings.ToLower(p.Title)
	desc := strings.ToLower(p.Description)
	company := strings.ToLower(p.Company)

	score := 0.0
	for _, v := range variants {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if strings.Contains(title, v) {
			score += 3
		}
		if strings.Contains(desc, v) {
			score++
		}
		if strings.Contains(company, v) {
			score++
		}
		if score >= 10 {
			return 10
		}
	}
	return score
}

func Freshness(p job.Posting, now time.Time) float64 {
	if p.DateScraped == nil || p.DateScraped.IsZero() {
		return 0
	}
	age := now.Sub(*p.DateScraped)
	switch {
	case age <= 24*time.Hour:
		return 5
	case age <= 3*24*time.Hour:
		return 4
	case age <= 7*24*time.Hour:
		return 3
	case age <= 14*24*time.Hour:
		return 2
	case age <= 30*24*time.Hour:
		return 1
	}
	return 0
}

func DataQuality(p job.Posting) float64 {
	score := 0.0
	for _, s := range []string{p.Title, p.Company, p.Location, p.URL} {
		if strings.TrimSpace(s) != "" {
			score++
		}
	}
	if len(strings.TrimSpace(p.Description)) > 100 {
		score++
	}
	return score
}

func ScorePosting(p job.Posting, variants []string, now time.Time) Score {
	s := Score{
		Relevance:   Relevance(p, variants),
		Freshness:   Freshness(p, now),
		DataQuality: DataQuality(p),
	}
	s.Final = s.Relevance*2 + s.Freshness*1.5 + s.DataQuality*0.5
	return s
}

// Rank keeps postings matching at least one variant and orders them by
// final score, stable on ties.
func Rank(postings []job.Posting, variants []string, now time.Time) []job.Posting {
	type scored struct {
		p     job.Posting
		score Score
	}

	hits := make([]scored, 0, len(postings))
	for _, p := range postings {
		s := ScorePosting(p, variants, now)
		if s.Relevance == 0 {
			continue
		}
		hits = append(hits, scored{p: p, score: s})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score.Final > hits[j].score.Final
	})

	out := make([]job.Posting, len(hits))
	for i, h := range hits {
		out[i] = h.p
	}
	return out
}
