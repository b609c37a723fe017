package resume

import "time"

const (
	// NotFound marks a contact field no extraction strategy could resolve.
	NotFound = "Not Found"
	// NotSpecified marks an unresolved field of an experience or education entry.
	NotSpecified = "Not specified"
)

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Duration    string `json:"duration"`
}

// Profile is the structured result of parsing one résumé. Skills is sorted,
// deduplicated and never nil.
type Profile struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	SourceFile string            `json:"source_file,omitempty"`
}

func (p Profile) HasSkills() bool {
	return len(p.Skills) > 0
}

// Record is a stored profile.
type Record struct {
	ID         int64
	Profile    Profile
	DateParsed time.Time
}

func NewExperienceEntry() ExperienceEntry {
	return ExperienceEntry{
		Title:       NotSpecified,
		Company:     NotSpecified,
		Duration:    NotSpecified,
		Description: NotSpecified,
	}
}

func NewEducationEntry() EducationEntry {
	return EducationEntry{
		Degree:      NotSpecified,
		Institution: NotSpecified,
		Duration:    NotSpecified,
	}
}
