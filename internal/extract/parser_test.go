package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match/internal/domain/resume"
	"resume-match/internal/ner"
)

const sampleResume = `John Doe
john.doe@example.com | (555) 123-4567

SUMMARY
Full stack developer who enjoys building data products.

EXPERIENCE
Senior Software Engineer, ABC Technologies
2019-2022
- Developed full-stack web applications using React and Node.js
- Led a team of 5 developers

Data Analyst | Acme Corp
2016 - 2019
- Built Tableau dashboards

EDUCATION
Bachelor of Science in Computer Science
University of Technology, 2012-2016

SKILLS
Go, Docker, Kubernetes, Team Leadership, 3D Printing
`

func newTestParser() *Parser {
	return NewParser(WithRecognizer(ner.NewOrgRules()))
}

func TestParse_MinimalResume(t *testing.T) {
	p := newTestParser()

	got := p.Parse("Jane Smith\nEmail: jane@co.io\nSKILLS\nPython, SQL, Leadership")

	assert.Equal(t, "Jane Smith", got.Name)
	assert.Equal(t, "jane@co.io", got.Email)
	assert.Equal(t, resume.NotFound, got.Phone)
	assert.Subset(t, got.Skills, []string{"Python", "SQL", "Leadership"})
	assert.Empty(t, got.Experience)
	assert.NotNil(t, got.Experience)
	assert.Empty(t, got.Education)
}

func TestParse_FullResume(t *testing.T) {
	p := newTestParser()

	got := p.Parse(sampleResume)

	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john.doe@example.com", got.Email)
	assert.Equal(t, "(555) 123-4567", got.Phone)

	assert.Subset(t, got.Skills, []string{"React", "Node.js", "Tableau", "Docker", "Kubernetes", "Team Leadership"})
	assert.NotContains(t, got.Skills, "Go", "two-rune tokens are dropped")
	assert.NotContains(t, got.Skills, "3D Printing", "tokens with digits are dropped")
	assert.IsIncreasing(t, got.Skills)

	require.Len(t, got.Experience, 2)
	first := got.Experience[0]
	assert.Equal(t, "Senior Software Engineer", first.Title)
	assert.Equal(t, "ABC Technologies", first.Company)
	assert.Equal(t, "2019-2022", first.Duration)
	assert.Equal(t, "- Developed full-stack web applications using React and Node.js\n- Led a team of 5 developers", first.Description)

	second := got.Experience[1]
	assert.Equal(t, "Data Analyst", second.Title)
	assert.Equal(t, "Acme Corp", second.Company)
	assert.Equal(t, "2016 - 2019", second.Duration)
	assert.Equal(t, "- Built Tableau dashboards", second.Description)

	require.Len(t, got.Education, 1)
	assert.Equal(t, resume.EducationEntry{
		Degree:      "Bachelor of Science in Computer Science",
		Institution: "University of Technology",
		Duration:    "2012-2016",
	}, got.Education[0])
}

func TestParse_Deterministic(t *testing.T) {
	p := newTestParser()
	assert.Equal(t, p.Parse(sampleResume), p.Parse(sampleResume))
}

func TestParse_EmptyText(t *testing.T) {
	got := newTestParser().Parse("")

	assert.Equal(t, resume.NotFound, got.Name)
	assert.Equal(t, resume.NotFound, got.Email)
	assert.Equal(t, resume.NotFound, got.Phone)
	assert.NotNil(t, got.Skills)
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Experience)
	assert.Empty(t, got.Education)
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, resume.NotFound, ExtractEmail("no contact info here"))
	assert.Equal(t, "a.b+c@sub.example.org", ExtractEmail("mail: a.b+c@sub.example.org, or x@y.io"))
}

func TestExtractPhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"international grouped", "call +62 812 3456 7890 now", "+62 812 3456 7890"},
		{"international with area parens", "+1 (415) 555 0100", "+1 (415) 555 0100"},
		{"international compact", "tel:+447911123456", "+447911123456"},
		{"area code", "Phone (555) 123-4567", "(555) 123-4567"},
		{"bare ten digit", "555.123.4567", "555.123.4567"},
		{"regional", "021 55 nope 12345-67890", "12345-67890"},
		{"international beats earlier bare number", "555-123-4567 / +44 20 7946 0958", "+44 20 7946 0958"},
		{"none", "no digits at all", resume.NotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractPhone(tc.in))
		})
	}
}

func TestExtractName(t *testing.T) {
	t.Run("skips header words and contact lines", func(t *testing.T) {
		text := "Curriculum Vitae\njane@x.io\n+1 555 000 1111\nMaria del Carmen Ruiz\n"
		assert.Equal(t, "Maria del Carmen Ruiz", ExtractName(text, nil))
	})

	t.Run("falls back to longest person entity", func(t *testing.T) {
		rec := ner.Static{
			{Text: "Ann Lee", Label: ner.LabelPerson},
			{Text: "Acme Corporation", Label: ner.LabelOrg},
			{Text: "Annabel Lee-Smith", Label: ner.LabelPerson},
		}
		assert.Equal(t, "Annabel Lee-Smith", ExtractName("RESUME\ncontact: ann@x.io", rec))
	})

	t.Run("ties keep the first entity", func(t *testing.T) {
		rec := ner.Static{
			{Text: "Ann Lee", Label: ner.LabelPerson},
			{Text: "Bob Kim", Label: ner.LabelPerson},
		}
		assert.Equal(t, "Ann Lee", ExtractName("CV", rec))
	})

	t.Run("only the first ten lines are candidates", func(t *testing.T) {
		text := "CV\n1\n2\n3\n4\n5\n6\n7\n8\n9\nLate Name\n"
		assert.Equal(t, resume.NotFound, ExtractName(text, nil))
	})
}

func TestSkills_SpecialCharactersAndBoundaries(t *testing.T) {
	p := NewParser(
		WithRecognizer(nil),
		WithVocabulary(Vocabulary{Skills: []string{"C++", "R", "Node.js", "Java"}}),
	)

	got := p.Skills("Wrote C++ and node.js services. Reactive JavaScript only.")

	assert.Equal(t, []string{"C++", "Node.js"}, got)
}

func TestSkills_FirstHeaderWins(t *testing.T) {
	p := NewParser(WithRecognizer(nil), WithVocabulary(Vocabulary{}))

	text := "TECHNICAL SKILLS\nRust, Elixir\n\nSKILLS\nHaskell\n"
	assert.Equal(t, []string{"Haskell"}, p.Skills(text))
}

func TestExperience_TitleWithoutSection(t *testing.T) {
	p := newTestParser()

	t.Run("uses summary as description", func(t *testing.T) {
		got := p.Experience("Kim Park\nBackend Developer\n\nSUMMARY\nBuilds payment APIs.\n")
		require.Len(t, got, 1)
		assert.Equal(t, "Backend Developer", got[0].Title)
		assert.Equal(t, "Builds payment APIs.", got[0].Description)
		assert.Equal(t, resume.NotSpecified, got[0].Company)
		assert.Equal(t, resume.NotSpecified, got[0].Duration)
	})

	t.Run("no summary", func(t *testing.T) {
		got := p.Experience("Kim Park\nsenior engineer\n")
		require.Len(t, got, 1)
		assert.Equal(t, "senior engineer", got[0].Title)
		assert.Equal(t, resume.NotSpecified, got[0].Description)
	})

	t.Run("nothing found", func(t *testing.T) {
		assert.Empty(t, p.Experience("Kim Park\nGardening enthusiast\n"))
	})
}

func TestExperience_DateLedHeaderAndCompanyFallback(t *testing.T) {
	p := newTestParser()
	text := "WORK EXPERIENCE\n2020 - Present\nPlatform Engineer\nGlobex Corporation\nOwned the CI fleet\n"

	got := p.Experience(text)

	require.Len(t, got, 1)
	assert.Equal(t, "2020 - Present", got[0].Duration)
	assert.Equal(t, "Platform Engineer", got[0].Title)
	assert.Equal(t, "Globex Corporation", got[0].Company)
	assert.Equal(t, "Globex Corporation\nOwned the CI fleet", got[0].Description)
}

func TestEducation_MultipleEntries(t *testing.T) {
	p := newTestParser()
	text := "Education\nMaster's in Data Science, Stanford University 2018-2020\nBachelor's in Economics\nOhio State University 2014 - 2018\n"

	got := p.Education(text)

	require.Len(t, got, 2)
	assert.Equal(t, "Master's in Data Science", got[0].Degree)
	assert.Equal(t, "Stanford University", got[0].Institution)
	assert.Equal(t, "2018-2020", got[0].Duration)
	assert.Equal(t, "Bachelor's in Economics", got[1].Degree)
	assert.Equal(t, "Ohio State University", got[1].Institution)
	assert.Equal(t, "2014 - 2018", got[1].Duration)
}

func TestEducation_UnknownDegree(t *testing.T) {
	got := newTestParser().Education("EDUCATION\nCoding bootcamp\n")
	require.Len(t, got, 1)
	assert.Equal(t, resume.NotSpecified, got[0].Degree)
	assert.Equal(t, resume.NotSpecified, got[0].Institution)
	assert.Equal(t, resume.NotSpecified, got[0].Duration)
}

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skills:\n  - Go\n  - Go\n  - \" Rust \"\n"), 0o600))

	v, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, v.Skills)
	assert.Equal(t, DefaultVocabulary().Degrees, v.Degrees)

	_, err = LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	v, err = LoadVocabulary("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVocabulary(), v)
}

func TestExperience_BlankLineInsideEntry(t *testing.T) {
	p := newTestParser()
	text := "EXPERIENCE\nSoftware Engineer, Acme Corp (2019-2022)\n\nBuilt payment APIs in Go.\nLed a team of four."

	got := p.Experience(text)

	require.Len(t, got, 1)
	assert.Equal(t, "Software Engineer", got[0].Title)
	assert.Equal(t, "Acme Corp", got[0].Company)
	assert.Equal(t, "2019-2022", got[0].Duration)
	assert.Equal(t, "Built payment APIs in Go.\nLed a team of four.", got[0].Description)
}

func TestExperience_ProseDoesNotCloseSection(t *testing.T) {
	p := newTestParser()
	text := "EXPERIENCE\nPlatform Engineer | Globex\n2018-2021\nProjects shipped on a weekly cadence\nCertified the build pipeline\n\nEDUCATION\nBachelor of Arts\n"

	got := p.Experience(text)

	require.Len(t, got, 1)
	assert.Equal(t, "Projects shipped on a weekly cadence\nCertified the build pipeline", got[0].Description)
}

func TestExperience_ProminentTitles(t *testing.T) {
	p := newTestParser()
	tests := []struct {
		text string
		want string
	}{
		{"Ana Ruiz\nData Engineer\n", "Data Engineer"},
		{"Ana Ruiz\nSoftware Developer\n", "Software Developer"},
		{"Ana Ruiz\nIT Specialist\n", "IT Specialist"},
		{"Ana Ruiz\nSenior Developer\n", "Senior Developer"},
		{"Ana Ruiz\nSecurity Consultant\n", "Consultant"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := p.Experience(tt.text)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Title)
		})
	}
}

func TestSkills_TechnologiesBeforeCoreCompetencies(t *testing.T) {
	p := NewParser(WithRecognizer(nil), WithVocabulary(Vocabulary{}))

	text := "CORE COMPETENCIES\nNegotiation\n\nTECHNOLOGIES\nHaskell"
	assert.Equal(t, []string{"Haskell"}, p.Skills(text))
}
