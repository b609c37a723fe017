package job

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusMatched   Status = "matched"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusNew, StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusMatched:
		return st, nil
	}
	return "", fmt.Errorf("invalid job status %q", s)
}

// Posting is a job posting. ID is zero for postings that never went through
// the store (CSV imports used as an ephemeral corpus).
type Posting struct {
	ID          int64
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	DatePosted  string
	DateScraped *time.Time
	MatchScore  float64
	Status      Status
	Notes       string
}

func (p Posting) Stored() bool {
	return p.ID > 0
}

// Text is the single field the matcher scores against.
func (p Posting) Text() string {
	return p.Title + " " + p.Description
}

type Filter struct {
	Status   Status
	Company  string
	Location string
}

// MatchNote is the annotation written back with a match score.
func MatchNote(score float64) string {
	return fmt.Sprintf("Match score: %.2f", score)
}

func MatchedNote(resumeID int64, score float64) string {
	return fmt.Sprintf("Matched with resume %d. Score: %.2f", resumeID, score)
}
