package search

import (
	"strings"
	"unicode"
)

const maxVariants = 10

type Query struct {
	Original   string
	Normalized string
	Variants   []string
}

// NormalizeQuery lowercases input and collapses whitespace. Hyphens,
// underscores and slashes separate words; other punctuation is dropped.
func NormalizeQuery(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '_', r == '/':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ExpandQuery returns normalized followed by synonym variants, at most ten.
// A compact first word ("fullstack") also matches a spaced synonym key.
func ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	for _, syn := range GetSynonyms(normalized) {
		add(syn)
	}

	words := strings.Fields(normalized)
	withRest := func(head string, rest []string) string {
		if len(rest) == 0 {
			return head
		}
		return head + " " + strings.Join(rest, " ")
	}
	prefix := func(phrase string, rest []string) {
		for _, syn := range GetSynonyms(phrase) {
			add(withRest(syn, rest))
		}
	}

	prefix(words[0], words[1:])
	if len(words) >= 2 {
		prefix(words[0]+" "+words[1], words[2:])
	}

	for k := range Synonyms {
		if !strings.Contains(k, " ") || strings.ReplaceAll(k, " ", "") != words[0] {
			continue
		}
		add(withRest(k, words[1:]))
		prefix(k, words[1:])
		break
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

func ProcessQuery(input string) Query {
	q := Query{Original: input, Normalized: NormalizeQuery(input)}
	q.Variants = ExpandQuery(q.Normalized)
	return q
}
