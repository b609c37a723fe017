package dto

import (
	"time"

	"resume-match/internal/domain/job"
)

type AddJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	DatePosted  string `json:"date_posted"`
}

func (r AddJobRequest) Posting() job.Posting {
	return job.Posting{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		URL:         r.URL,
		DatePosted:  r.DatePosted,
	}
}

type UpdateJobStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

type JobResponse struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	DatePosted  string  `json:"date_posted"`
	DateScraped string  `json:"date_scraped,omitempty"`
	MatchScore  float64 `json:"match_score"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
}

func NewJobResponse(p job.Posting) JobResponse {
	out := JobResponse{
		ID:          p.ID,
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Description: p.Description,
		URL:         p.URL,
		DatePosted:  p.DatePosted,
		MatchScore:  p.MatchScore,
		Status:      string(p.Status),
		Notes:       p.Notes,
	}
	if p.DateScraped != nil && !p.DateScraped.IsZero() {
		out.DateScraped = p.DateScraped.UTC().Format(time.RFC3339)
	}
	return out
}

func NewJobResponses(ps []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewJobResponse(p))
	}
	return out
}
