// Package ner finds person and organization spans in free text. It is a
// fallback signal for the extractors, never a primary source.
package ner

const (
	LabelPerson = "PERSON"
	LabelOrg    = "ORG"
)

type Entity struct {
	Text  string
	Label string
}

type Recognizer interface {
	Entities(text string) []Entity
}

// Filter returns the entities carrying label, in document order.
func Filter(entities []Entity, label string) []Entity {
	out := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if e.Label == label {
			out = append(out, e)
		}
	}
	return out
}

// Chain runs every recognizer and concatenates their results.
type Chain []Recognizer

func (c Chain) Entities(text string) []Entity {
	var out []Entity
	for _, r := range c {
		if r == nil {
			continue
		}
		out = append(out, r.Entities(text)...)
	}
	return out
}

// Static always returns the same entities. Handy for wiring tests.
type Static []Entity

func (s Static) Entities(string) []Entity {
	return append([]Entity(nil), s...)
}

// Default is the recognizer the parser uses when none is injected.
func Default() Recognizer {
	return Chain{NewProse(), NewOrgRules()}
}
