package matching

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Tokens are runs of two or more word characters, lower-cased.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

type vector struct {
	terms   []string
	weights map[string]float64
	norm    float64
}

// ComputeSimilarity scores every description against the skills joined into
// one pseudo-document. The TF-IDF space is built over the pseudo-document
// plus all descriptions, with smoothed idf = ln((1+n)/(1+df)) + 1 and raw
// term counts. Scores are cosine similarities in [0,1], in input order, and 0
// whenever either vector is empty.
func ComputeSimilarity(skills []string, descriptions []string) []float64 {
	scores := make([]float64, len(descriptions))
	if len(descriptions) == 0 {
		return scores
	}

	docs := make([]map[string]int, 0, len(descriptions)+1)
	docs = append(docs, termCounts(strings.Join(skills, " ")))
	for _, d := range descriptions {
		docs = append(docs, termCounts(d))
	}

	idf := inverseDocumentFrequency(docs)
	query := weigh(docs[0], idf)
	if query.norm == 0 {
		return scores
	}

	for i, d := range docs[1:] {
		scores[i] = clamp01(query.cosine(weigh(d, idf)))
	}
	return scores
}

func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, t := range Tokenize(text) {
		counts[t]++
	}
	return counts
}

func inverseDocumentFrequency(docs []map[string]int) map[string]float64 {
	df := make(map[string]int)
	for _, d := range docs {
		for t := range d {
			df[t]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for t, f := range df {
		idf[t] = math.Log((1+n)/(1+float64(f))) + 1
	}
	return idf
}

// weigh keeps terms sorted so sums are evaluated in a fixed order and equal
// documents always get bit-identical scores.
func weigh(counts map[string]int, idf map[string]float64) vector {
	v := vector{
		terms:   make([]string, 0, len(counts)),
		weights: make(map[string]float64, len(counts)),
	}
	for t := range counts {
		v.terms = append(v.terms, t)
	}
	sort.Strings(v.terms)

	sum := 0.0
	for _, t := range v.terms {
		w := float64(counts[t]) * idf[t]
		v.weights[t] = w
		sum += w * w
	}
	v.norm = math.Sqrt(sum)
	return v
}

func (v vector) cosine(o vector) float64 {
	if v.norm == 0 || o.norm == 0 {
		return 0
	}
	dot := 0.0
	for _, t := range v.terms {
		if w, ok := o.weights[t]; ok {
			dot += v.weights[t] * w
		}
	}
	return dot / (v.norm * o.norm)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
