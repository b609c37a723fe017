package handler

import (
	"bytes"
	"errors"
	"strconv"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/response"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/match")
	grp.Post("/", h.Match)
	grp.Post("/csv", h.MatchCSV)
	grp.Post("/mark", h.MarkMatched)
}

// Match ranks stored jobs against résumé text or a stored résumé.
func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	params := usecase.MatchParams{TopN: req.TopN, SkipWriteBack: req.SkipWriteBack}
	return h.run(c, req.ResumeID, req.Text, params)
}

// MatchCSV ranks an uploaded job export ("corpus") that is never stored.
// The résumé comes from the "text" or "resume_id" form values.
func (h *MatchHandler) MatchCSV(c fiber.Ctx) error {
	_, data, err := readUpload(c, "corpus")
	if err != nil {
		return err
	}
	postings, err := usecase.LoadCorpus(bytes.NewReader(data))
	if err != nil {
		return mapUsecaseError(err)
	}

	params := usecase.MatchParams{Corpus: postings}
	if s := c.FormValue("top_n"); s != "" {
		if params.TopN, err = strconv.Atoi(s); err != nil {
			return badRequest(err)
		}
	}
	var resumeID int64
	if s := c.FormValue("resume_id"); s != "" {
		if resumeID, err = strconv.ParseInt(s, 10, 64); err != nil {
			return badRequest(err)
		}
	}
	return h.run(c, resumeID, c.FormValue("text"), params)
}

func (h *MatchHandler) run(c fiber.Ctx, resumeID int64, text string, params usecase.MatchParams) error {
	var (
		out usecase.MatchOutcome
		err error
	)
	switch {
	case resumeID > 0:
		out, err = h.uc.MatchResume(c.Context(), resumeID, params)
	case text != "":
		out, err = h.uc.MatchText(c.Context(), text, params)
	default:
		return badRequest(errors.New("text or resume_id is required"))
	}
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(out))
}

func (h *MatchHandler) MarkMatched(c fiber.Ctx) error {
	var req dto.MarkMatchedRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	ok, err := h.uc.MarkMatched(c.Context(), req.ResumeID, req.Scores)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"updated": ok})
}
