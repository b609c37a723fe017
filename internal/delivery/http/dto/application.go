package dto

type RecordApplicationRequest struct {
	JobTitle     string `json:"job_title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	JobLink      string `json:"job_link"`
	Status       string `json:"status"`
	AppliedDate  string `json:"applied_date"`
	FollowUpDate string `json:"follow_up_date"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}
