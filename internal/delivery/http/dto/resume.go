package dto

import (
	"time"

	"resume-match/internal/domain/resume"
)

type ParseResumeRequest struct {
	Text       string `json:"text"`
	SourceFile string `json:"source_file"`
	Save       bool   `json:"save"`
}

type ResumeResponse struct {
	ID         int64                    `json:"id,omitempty"`
	Name       string                   `json:"name"`
	Email      string                   `json:"email"`
	Phone      string                   `json:"phone"`
	Skills     []string                 `json:"skills"`
	Experience []resume.ExperienceEntry `json:"experience"`
	Education  []resume.EducationEntry  `json:"education"`
	SourceFile string                   `json:"source_file,omitempty"`
	DateParsed string                   `json:"date_parsed,omitempty"`
}

func NewResumeResponse(id int64, p resume.Profile, parsed time.Time) ResumeResponse {
	out := ResumeResponse{
		ID:         id,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Skills:     p.Skills,
		Experience: p.Experience,
		Education:  p.Education,
		SourceFile: p.SourceFile,
	}
	if !parsed.IsZero() {
		out.DateParsed = parsed.UTC().Format(time.RFC3339)
	}
	return out
}
