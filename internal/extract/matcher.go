package extract

import "regexp"

// Matcher is one entry of a priority-ordered pattern list.
type Matcher interface {
	Match(text string) (string, bool)
}

// RegexMatcher yields capture group Group (0 = whole match) of the leftmost match.
type RegexMatcher struct {
	Name  string
	Re    *regexp.Regexp
	Group int
}

func (m RegexMatcher) Match(text string) (string, bool) {
	sm := m.Re.FindStringSubmatch(text)
	if sm == nil || m.Group >= len(sm) {
		return "", false
	}
	return sm[m.Group], true
}

type MatcherFunc func(text string) (string, bool)

func (f MatcherFunc) Match(text string) (string, bool) {
	return f(text)
}

// Matchers is evaluated in order; the first matcher that matches anywhere in
// the text wins, regardless of where later matchers would have matched.
type Matchers []Matcher

func (ms Matchers) First(text string) (string, bool) {
	for _, m := range ms {
		if m == nil {
			continue
		}
		if v, ok := m.Match(text); ok {
			return v, true
		}
	}
	return "", false
}

func regexMatchers(name string, patterns ...string) Matchers {
	out := make(Matchers, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, RegexMatcher{Name: name, Re: regexp.MustCompile(p)})
	}
	return out
}
