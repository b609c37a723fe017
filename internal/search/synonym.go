package search

// Synonyms maps a normalized query phrase to the phrases searched alongside it.
var Synonyms = map[string][]string{
	"frontend":          {"front end", "frontend developer", "ui developer"},
	"backend":           {"back end", "server developer"},
	"fullstack":         {"full stack", "full stack developer"},
	"data analyst":      {"business analyst", "data analytics"},
	"data scientist":    {"machine learning", "ml engineer"},
	"devops":            {"site reliability", "platform engineer", "sre"},
	"ml":                {"machine learning"},
	"golang":            {"go developer", "go engineer"},
	"js":                {"javascript"},
	"k8s":               {"kubernetes"},
	"qa":                {"quality assurance", "test engineer"},
	"designer":          {"ui designer", "ux designer", "product designer"},
	"project manager":   {"program manager", "delivery manager"},
	"product manager":   {"product owner"},
	"software engineer": {"software developer", "programmer"},
}

func GetSynonyms(query string) []string {
	v, ok := Synonyms[query]
	if !ok {
		return []string{}
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
