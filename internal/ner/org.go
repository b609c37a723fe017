package ner

import (
	"strings"
	"unicode"
)

var defaultOrgMarkers = []string{
	"University", "College", "Institute", "School", "Academy", "Polytechnic",
	"Inc", "Inc.", "LLC", "Ltd", "Ltd.", "Limited", "Corp", "Corp.", "Corporation",
	"Company", "Co.", "GmbH", "AG", "PLC", "Technologies", "Solutions",
	"Systems", "Labs", "Group", "Partners",
	"Bank", "Agency", "Studio", "Studios", "Foundation", "Hospital", "Services",
}

var connectors = map[string]bool{"of": true, "and": true, "&": true, "the": true, "for": true}

// OrgRules tags runs of capitalized words as ORG when the run contains an
// organization marker word ("University", "Inc", "Technologies", ...).
type OrgRules struct {
	markers map[string]bool
}

func NewOrgRules(markers ...string) *OrgRules {
	if len(markers) == 0 {
		markers = defaultOrgMarkers
	}
	m := make(map[string]bool, len(markers))
	for _, w := range markers {
		m[strings.ToLower(w)] = true
	}
	return &OrgRules{markers: m}
}

func (o *OrgRules) Entities(text string) []Entity {
	var out []Entity
	for _, line := range strings.Split(text, "\n") {
		for _, clause := range splitClauses(line) {
			out = append(out, o.scan(clause)...)
		}
	}
	return out
}

func (o *OrgRules) scan(clause string) []Entity {
	words := strings.Fields(clause)
	var out []Entity

	flush := func(run []string) {
		for len(run) > 0 && connectors[strings.ToLower(run[len(run)-1])] {
			run = run[:len(run)-1]
		}
		if len(run) == 0 {
			return
		}
		for _, w := range run {
			if o.markers[strings.ToLower(strings.Trim(w, ".,"))] || o.markers[strings.ToLower(w)] {
				out = append(out, Entity{Text: strings.Join(run, " "), Label: LabelOrg})
				return
			}
		}
	}

	var run []string
	for _, w := range words {
		switch {
		case isCapitalized(w):
			run = append(run, w)
		case len(run) > 0 && connectors[strings.ToLower(w)]:
			run = append(run, w)
		default:
			flush(run)
			run = nil
		}
	}
	flush(run)
	return out
}

// splitClauses breaks a line at punctuation that never appears inside an
// organization name.
func splitClauses(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ',', '|', ';', '(', ')', '•', '–', '—':
			return true
		}
		return false
	})
}

func isCapitalized(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}
