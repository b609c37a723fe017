package dto

import "resume-match/internal/usecase"

type MatchRequest struct {
	Text          string `json:"text"`
	ResumeID      int64  `json:"resume_id"`
	TopN          int    `json:"top_n"`
	SkipWriteBack bool   `json:"skip_write_back"`
}

type MarkMatchedRequest struct {
	ResumeID int64             `json:"resume_id"`
	Scores   map[int64]float64 `json:"scores"`
}

type MatchItem struct {
	Job   JobResponse `json:"job"`
	Score float64     `json:"score"`
}

type MatchResponse struct {
	ResumeID  int64                   `json:"resume_id,omitempty"`
	Skills    []string                `json:"skills"`
	Signal    string                  `json:"signal,omitempty"`
	Matches   []MatchItem             `json:"matches"`
	WriteBack usecase.WriteBackReport `json:"write_back"`
}

func NewMatchResponse(out usecase.MatchOutcome) MatchResponse {
	res := MatchResponse{
		ResumeID:  out.ResumeID,
		Skills:    out.Profile.Skills,
		Signal:    string(out.Result.Signal),
		Matches:   make([]MatchItem, 0, len(out.Result.Matches)),
		WriteBack: out.WriteBack,
	}
	if res.Skills == nil {
		res.Skills = []string{}
	}
	for _, m := range out.Result.Matches {
		res.Matches = append(res.Matches, MatchItem{Job: NewJobResponse(m.Posting), Score: m.Score})
	}
	return res
}
