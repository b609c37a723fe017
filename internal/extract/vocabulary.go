package extract

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Vocabulary is the controlled term list the keyword stages match against.
// It is read-only once handed to a Parser.
type Vocabulary struct {
	Skills  []string `yaml:"skills"`
	Degrees []string `yaml:"degrees"`
}

var defaultSkills = []string{
	"Python", "SQL", "Power BI", "Machine Learning", "Excel", "Data Analysis",
	"Deep Learning", "TensorFlow", "NLP", "Cloud Computing", "Java",
	"C++", "Tableau", "Git", "Django", "Flask", "Angular", "React", "AWS", "Azure",
	"Hadoop", "Big Data", "Keras", "Pandas", "NumPy", "R", "SPSS", "Jupyter",
	"Docker", "Kubernetes", "REST API", "ETL", "Data Engineering", "Statistics",
	"Computer Vision", "FastAPI", "Scikit-learn", "JavaScript", "TypeScript",
	"Node.js", "Express", "MongoDB", "PostgreSQL", "MySQL", "PHP", "Laravel",
	"Vue.js", "Redux", "HTML", "CSS", "SASS", "LESS", "Bootstrap", "Tailwind",
	"DevOps", "CI/CD", "Jenkins", "GitHub", "BitBucket", "Jira", "Confluence",
	"Agile", "Scrum", "Kanban", "UI/UX", "Figma", "Adobe XD", "Illustrator",
	"Photoshop", "Mobile Development", "Android", "iOS", "Flutter", "React Native",
	"GraphQL", "Apollo", "Next.js", "Gatsby", "Web Development",
	"Frontend", "Backend", "Full Stack", "Microservices", "API Design",
	"Database Design", "OOP", "Functional Programming", "Software Architecture",
}

var defaultDegrees = []string{
	"Bachelor", "Master", "PhD", "Doctorate", "B.Tech", "M.Tech", "BSc", "MSc",
	"B.E.", "M.E.", "B.A.", "M.A.", "B.Com", "M.Com", "B.B.A", "M.B.A", "Diploma",
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Skills:  append([]string(nil), defaultSkills...),
		Degrees: append([]string(nil), defaultDegrees...),
	}
}

// LoadVocabulary reads a YAML vocabulary file. Lists that are absent or empty
// in the file keep their built-in defaults.
func LoadVocabulary(path string) (Vocabulary, error) {
	v := DefaultVocabulary()
	if strings.TrimSpace(path) == "" {
		return v, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}

	var fileVocab Vocabulary
	if err := yaml.Unmarshal(b, &fileVocab); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}

	if terms := cleanTerms(fileVocab.Skills); len(terms) > 0 {
		v.Skills = terms
	}
	if terms := cleanTerms(fileVocab.Degrees); len(terms) > 0 {
		v.Degrees = terms
	}
	return v, nil
}

func cleanTerms(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
