package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var skillsSection = section{
	headers:     headers(true, "SKILLS", "TECHNICAL SKILLS", "TECHNOLOGIES", "CORE COMPETENCIES", "KEY SKILLS"),
	stopAtBlank: true,
}

var skillTokenSplit = regexp.MustCompile(`[,\n•*|]`)

type termPattern struct {
	term string
	re   *regexp.Regexp
}

// compileSkillTerms builds case-insensitive whole-term patterns. Terms are
// quoted so "C++" and "Node.js" match literally; the boundary is any
// non-word rune, which keeps "R" from matching inside "React".
func compileSkillTerms(terms []string) []termPattern {
	out := make([]termPattern, 0, len(terms))
	for _, t := range terms {
		out = append(out, termPattern{
			term: t,
			re:   regexp.MustCompile(`(?i)(?:^|[^\pL\pN_])` + regexp.QuoteMeta(t) + `(?:[^\pL\pN_]|$)`),
		})
	}
	return out
}

// skills unions vocabulary hits across the whole text with tokens taken from
// an explicit skills section. The result is sorted and never nil.
func skills(text string, vocab []termPattern) []string {
	set := make(map[string]struct{})

	for _, p := range vocab {
		if p.re.MatchString(text) {
			set[p.term] = struct{}{}
		}
	}

	if body, ok := skillsSection.capture(text); ok {
		for _, tok := range skillTokenSplit.Split(body, -1) {
			tok = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(tok), "-–·"))
			if utf8.RuneCountInString(tok) <= 2 {
				continue
			}
			if strings.IndexFunc(tok, unicode.IsDigit) >= 0 {
				continue
			}
			set[tok] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
