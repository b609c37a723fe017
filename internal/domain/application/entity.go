package application

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusApplied            Status = "Applied"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusOffer              Status = "Offer"
	StatusRejected           Status = "Rejected"
)

var statuses = []Status{StatusApplied, StatusInterviewScheduled, StatusOffer, StatusRejected}

// ParseStatus matches s case-insensitively against the known statuses and
// returns the canonical spelling. "Interview" is accepted as shorthand.
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if norm == "interview" {
		return StatusInterviewScheduled, nil
	}
	for _, st := range statuses {
		if strings.ToLower(string(st)) == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid application status %q", s)
}

// Record is one tracked application. Dates are YYYY-MM-DD strings.
type Record struct {
	ID           int64  `json:"id"`
	JobTitle     string `json:"job_title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	JobLink      string `json:"job_link"`
	Status       Status `json:"status"`
	AppliedDate  string `json:"applied_date"`
	FollowUpDate string `json:"follow_up_date"`
}
