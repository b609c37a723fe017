package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-match/internal/domain/resume"
	"resume-match/internal/ner"
)

const (
	nameScanLines  = 10
	nerWindowRunes = 1000
)

var emailMatchers = regexMatchers("email", `(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)

// Order matters: the international forms must be tried before the bare
// ten-digit form or "+62 812 3456 7890" would lose its country code.
var phoneMatchers = regexMatchers("phone",
	`\+\d{1,3}[ \t.-]*\(\d{1,4}\)[ \t.-]*\d{1,4}[ \t.-]*\d{1,4}`,
	`\+\d{1,3}[ \t.-]*\d{1,4}[ \t.-]*\d{1,4}[ \t.-]*\d{1,4}`,
	`\+\d{9,15}`,
	`\(\d{3}\)\s*\d{3}[-. ]?\d{4}`,
	`\d{3}[-. ]?\d{3}[-. ]?\d{4}`,
	`\d{5,6}[-. ]?\d{5,6}`,
)

var nameStopWords = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "cv": true,
	"address": true, "phone": true, "email": true,
}

func ExtractEmail(text string) string {
	if v, ok := emailMatchers.First(text); ok {
		return v
	}
	return resume.NotFound
}

func ExtractPhone(text string) string {
	if v, ok := phoneMatchers.First(text); ok {
		return strings.TrimSpace(v)
	}
	return resume.NotFound
}

// ExtractName looks for a plausible name line near the top of the document
// and falls back to the longest PERSON entity in the leading window.
func ExtractName(text string, recognizer ner.Recognizer) string {
	if name, ok := nameFromHeaderLines(text); ok {
		return name
	}
	if recognizer == nil {
		return resume.NotFound
	}

	best := ""
	for _, e := range ner.Filter(recognizer.Entities(truncateRunes(text, nerWindowRunes)), ner.LabelPerson) {
		candidate := strings.TrimSpace(e.Text)
		if utf8.RuneCountInString(candidate) > utf8.RuneCountInString(best) {
			best = candidate
		}
	}
	if best == "" {
		return resume.NotFound
	}
	return best
}

func nameFromHeaderLines(text string) (string, bool) {
	seen := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if seen == nameScanLines {
			break
		}
		seen++
		if looksLikeName(line) {
			return line, true
		}
	}
	return "", false
}

func looksLikeName(line string) bool {
	if strings.Contains(line, "@") || strings.Contains(line, "www") || strings.Contains(line, "http") {
		return false
	}
	if strings.IndexFunc(line, unicode.IsDigit) >= 0 {
		return false
	}
	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 5 {
		return false
	}
	for _, t := range tokens {
		if nameStopWords[strings.ToLower(t)] {
			return false
		}
	}
	return true
}
