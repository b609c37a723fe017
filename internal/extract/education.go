package extract

import (
	"regexp"
	"strings"

	"resume-match/internal/domain/resume"
	"resume-match/internal/ner"
)

var educationSection = section{
	headers: append(
		headers(false, "EDUCATION", "Education", "ACADEMIC BACKGROUND", "Academic Background"),
		headers(true, "QUALIFICATION")...,
	),
	stop:        stopAt("EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT", "PROFESSIONAL EXPERIENCE", "SKILLS", "PROJECT", "CERTIF", "ACHIEV", "SUMMARY"),
	stopAtBlank: true,
}

var educationEntryStart = regexp.MustCompile(`^(?:\d{4}|\w+ \d{4}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)|\w+'s)`)

// durationRe matches year ranges; the end may also be "Present" or "Now".
var durationRe = regexp.MustCompile(`(?:19|20)\d{2}\s*[-–]\s*(?:(?:19|20)\d{2}|(?i:present|now))`)

// compileDegrees builds one pattern per degree keyword. Matching is case
// sensitive. A keyword may be followed by "'s" and an "of/in <field>" phrase
// on the same line.
func compileDegrees(terms []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(terms))
	for _, t := range terms {
		out = append(out, regexp.MustCompile(
			`(?:^|[^\pL\pN.])(`+regexp.QuoteMeta(t)+`(?:'s)?(?:[ \t]+(?:of|in)[ \t]+[A-Za-z&][A-Za-z&. ]*)?)`,
		))
	}
	return out
}

func education(text string, degrees []*regexp.Regexp, recognizer ner.Recognizer) []resume.EducationEntry {
	body, ok := educationSection.capture(text)
	if !ok || body == "" {
		return []resume.EducationEntry{}
	}

	out := []resume.EducationEntry{}
	for _, entry := range splitEntries(body, educationEntryStart) {
		e := resume.NewEducationEntry()

		for _, re := range degrees {
			if sm := re.FindStringSubmatch(entry); sm != nil {
				e.Degree = strings.TrimRight(sm[1], " \t")
				break
			}
		}

		if recognizer != nil {
			for _, org := range ner.Filter(recognizer.Entities(truncateRunes(entry, nerWindowRunes)), ner.LabelOrg) {
				name := strings.TrimSpace(org.Text)
				if name == "" || strings.Contains(e.Degree, name) {
					continue
				}
				e.Institution = name
				break
			}
		}

		if d := durationRe.FindString(entry); d != "" {
			e.Duration = d
		}

		out = append(out, e)
	}
	return out
}
