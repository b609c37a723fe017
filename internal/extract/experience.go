package extract

import (
	"regexp"
	"strings"

	"resume-match/internal/domain/resume"
	"resume-match/internal/ner"
)

const titleScanChars = 1000

var experienceSection = section{
	headers: headers(true,
		"EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT", "PROFESSIONAL EXPERIENCE",
	),
	stop: stopAt("EDUCATION", "SKILLS", "PROJECT", "CERTIF", "ACHIEV", "ACADEMIC BACKGROUND", "TECHNICAL SKILLS"),
}

var summarySection = section{
	headers: headers(true, "SUMMARY", "PROFILE", "PROFESSIONAL SUMMARY", "ABOUT ME", "PROFESSIONAL PROFILE"),
	stop:    stopAt("EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT", "PROFESSIONAL EXPERIENCE", "EDUCATION", "SKILLS"),
}

var experienceEntryStart = regexp.MustCompile(`^(?:\d{4}|\w+ \d{4}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec))`)

var titleMatchers = regexMatchers("title",
	`(?i)\b(?:Software Engineer|Software Developer|Senior Developer|IT Specialist|Data Engineer|Data Scientist|Data Analyst|Product Manager|Project Manager|Web Developer|Frontend Developer|Backend Developer|Full Stack Developer|DevOps Engineer|Machine Learning Engineer|UI/UX Designer|Business Analyst|QA Engineer|System Administrator|Database Administrator)\b`,
	`(?i)\b(?:Sr\.|Senior|Junior|Jr\.|Lead) (?:Engineer|Developer|Programmer|Analyst)\b`,
	`(?i)\b(?:Engineer|Developer|Programmer|Analyst|Specialist|Consultant)\b`,
)

func jobTitle(text string) (string, bool) {
	return titleMatchers.First(truncateRunes(text, titleScanChars))
}

func experience(text string, recognizer ner.Recognizer) []resume.ExperienceEntry {
	title, titleFound := jobTitle(text)

	body, ok := experienceSection.capture(text)
	if !ok || body == "" {
		if !titleFound {
			return []resume.ExperienceEntry{}
		}
		e := resume.NewExperienceEntry()
		e.Title = title
		if summary, ok := summarySection.capture(text); ok && summary != "" {
			e.Description = summary
		}
		return []resume.ExperienceEntry{e}
	}

	out := []resume.ExperienceEntry{}
	for _, block := range splitEntries(body, experienceEntryStart) {
		out = append(out, experienceEntry(block, recognizer))
	}
	return out
}

func experienceEntry(block string, recognizer ner.Recognizer) resume.ExperienceEntry {
	e := resume.NewExperienceEntry()
	lines := strings.Split(block, "\n")

	duration := durationRe.FindString(block)
	if duration != "" {
		e.Duration = duration
	}

	headerLine, rest := lines[0], lines[1:]
	if duration != "" && strings.Contains(headerLine, duration) {
		headerLine = strings.Trim(strings.Replace(headerLine, duration, "", 1), " \t,|:-–()")
		if headerLine == "" && len(rest) > 0 {
			headerLine, rest = rest[0], rest[1:]
		}
	}

	title, company := splitTitleCompany(headerLine)
	if title != "" {
		e.Title = title
	}
	if company != "" {
		e.Company = company
	} else if recognizer != nil {
		if orgs := ner.Filter(recognizer.Entities(truncateRunes(block, nerWindowRunes)), ner.LabelOrg); len(orgs) > 0 {
			e.Company = strings.TrimSpace(orgs[0].Text)
		}
	}

	desc := strings.Join(rest, "\n")
	if duration != "" {
		desc = strings.ReplaceAll(desc, duration, "")
	}
	if desc = strings.TrimSpace(desc); desc != "" {
		e.Description = desc
	}
	return e
}

// splitTitleCompany reads "Title | Company", "Title, Company",
// "Title - Company" or "Title at Company". Without a separator the whole line
// is the title.
func splitTitleCompany(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	if strings.Contains(line, "|") {
		parts := strings.Split(line, "|")
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	for _, sep := range []string{",", "-", " at "} {
		if before, after, ok := strings.Cut(line, sep); ok {
			return strings.TrimSpace(before), strings.TrimSpace(after)
		}
	}
	return line, ""
}
