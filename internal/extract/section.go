package extract

import (
	"regexp"
	"strings"
)

var blankLineRe = regexp.MustCompile(`\n[ \t]*\n`)

// section locates a labelled block of a résumé. Headers are tried in order
// and the first one found anywhere in the text wins, even when a later
// variant would have matched earlier in the document.
type section struct {
	headers     []*regexp.Regexp
	stop        *regexp.Regexp
	stopAtBlank bool
}

// header builds a line-anchored header pattern. The label may be followed by
// a colon and the rest of the line belongs to the section body.
func header(label string, caseInsensitive bool) *regexp.Regexp {
	p := `(?m)^[ \t]*` + regexp.QuoteMeta(label) + `\b[ \t]*:?`
	if caseInsensitive {
		p = `(?i)` + p
	}
	return regexp.MustCompile(p)
}

func headers(caseInsensitive bool, labels ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(labels))
	for _, l := range labels {
		out = append(out, header(l, caseInsensitive))
	}
	return out
}

// stopAt matches a header line starting with any of the given labels. A
// label may be a word prefix ("CERTIF"); the word it starts must end the line
// or be followed by a colon, so prose such as "Projects shipped..." does not
// close a section.
func stopAt(labels ...string) *regexp.Regexp {
	quoted := make([]string, 0, len(labels))
	for _, l := range labels {
		quoted = append(quoted, regexp.QuoteMeta(l))
	}
	return regexp.MustCompile(`(?mi)^[ \t]*(?:` + strings.Join(quoted, "|") + `)\w*[ \t]*(?::|$)`)
}

// capture returns the trimmed body of the first matching header and whether
// any header matched at all.
func (s section) capture(text string) (string, bool) {
	for _, h := range s.headers {
		loc := h.FindStringIndex(text)
		if loc == nil {
			continue
		}
		return strings.TrimSpace(s.body(text[loc[1]:])), true
	}
	return "", false
}

func (s section) body(rest string) string {
	end := len(rest)
	if s.stopAtBlank {
		if loc := blankLineRe.FindStringIndex(rest); loc != nil && loc[0] < end {
			end = loc[0]
		}
	}
	if s.stop != nil {
		// The remainder of the header line is always part of the body.
		from := strings.IndexByte(rest, '\n')
		if from >= 0 && from < end {
			if loc := s.stop.FindStringIndex(rest[from+1:]); loc != nil && from+1+loc[0] < end {
				end = from + 1 + loc[0]
			}
		}
	}
	return rest[:end]
}

var yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// splitEntries breaks a section body into entries. A line beginning with a
// date token opens a new entry once the current entry already carries a
// date, so "Title\n2019-2022\n..." layouts stay in one entry. A blank line
// only separates entries when the paragraph after it names a year in its
// first two lines; otherwise the paragraph continues the previous entry.
func splitEntries(body string, entryStart *regexp.Regexp) []string {
	var out []string
	for _, para := range blankLineRe.Split(body, -1) {
		for i, chunk := range splitDated(para, entryStart) {
			if i == 0 && len(out) > 0 && !leadsWithYear(chunk) {
				out[len(out)-1] += "\n" + chunk
				continue
			}
			out = append(out, chunk)
		}
	}
	return out
}

func splitDated(para string, entryStart *regexp.Regexp) []string {
	var (
		out     []string
		cur     []string
		curDate bool
	)
	for _, raw := range strings.Split(para, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(cur) > 0 && curDate && entryStart.MatchString(line) {
			out = append(out, strings.Join(cur, "\n"))
			cur, curDate = nil, false
		}
		cur = append(cur, line)
		if yearRe.MatchString(line) {
			curDate = true
		}
	}
	if len(cur) > 0 {
		out = append(out, strings.Join(cur, "\n"))
	}
	return out
}

func leadsWithYear(chunk string) bool {
	lines := strings.SplitN(chunk, "\n", 3)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	for _, l := range lines {
		if yearRe.MatchString(l) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
