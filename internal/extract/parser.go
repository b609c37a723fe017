// Package extract turns plain résumé text into a structured profile using
// ordered pattern lists, section headers and entity recognition as a
// fallback. Every operation is total: missing data yields sentinel values,
// never errors.
package extract

import (
	"regexp"

	"resume-match/internal/domain/resume"
	"resume-match/internal/ner"
)

type Parser struct {
	vocab      Vocabulary
	recognizer ner.Recognizer
	skillTerms []termPattern
	degrees    []*regexp.Regexp
}

type Option func(*Parser)

func WithVocabulary(v Vocabulary) Option {
	return func(p *Parser) { p.vocab = v }
}

// WithRecognizer swaps the entity recognizer. A nil recognizer disables the
// NER fallbacks entirely.
func WithRecognizer(r ner.Recognizer) Option {
	return func(p *Parser) { p.recognizer = r }
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		vocab:      DefaultVocabulary(),
		recognizer: ner.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.skillTerms = compileSkillTerms(p.vocab.Skills)
	p.degrees = compileDegrees(p.vocab.Degrees)
	return p
}

func (p *Parser) Vocabulary() Vocabulary { return p.vocab }

func (p *Parser) Name(text string) string { return ExtractName(text, p.recognizer) }

func (p *Parser) Skills(text string) []string { return skills(text, p.skillTerms) }

func (p *Parser) Education(text string) []resume.EducationEntry {
	return education(text, p.degrees, p.recognizer)
}

func (p *Parser) Experience(text string) []resume.ExperienceEntry {
	return experience(text, p.recognizer)
}

// Parse runs every extractor over text. The same text always produces the
// same profile.
func (p *Parser) Parse(text string) resume.Profile {
	return resume.Profile{
		Name:       p.Name(text),
		Email:      ExtractEmail(text),
		Phone:      ExtractPhone(text),
		Skills:     p.Skills(text),
		Experience: p.Experience(text),
		Education:  p.Education(text),
	}
}
