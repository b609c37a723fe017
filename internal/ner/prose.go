package ner

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Prose recognizes PERSON spans with the averaged-perceptron model bundled
// in prose. Other prose labels are dropped.
type Prose struct{}

func NewProse() *Prose {
	return &Prose{}
}

func (p *Prose) Entities(text string) []Entity {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil
	}

	var out []Entity
	for _, e := range doc.Entities() {
		if e.Label != LabelPerson {
			continue
		}
		out = append(out, Entity{Text: e.Text, Label: LabelPerson})
	}
	return out
}
