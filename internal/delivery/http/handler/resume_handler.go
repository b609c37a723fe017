package handler

import (
	"time"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/response"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/resumes")
	grp.Post("/parse", h.Parse)
	grp.Post("/upload", h.Upload)
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
}

// Parse extracts a profile from text, storing it when save is set.
func (h *ResumeHandler) Parse(c fiber.Ctx) error {
	var req dto.ParseResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	if !req.Save {
		p, err := h.uc.Parse(c.Context(), req.Text, req.SourceFile)
		if err != nil {
			return mapUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeResponse(0, p, time.Time{}))
	}

	rec, err := h.uc.ParseAndSave(c.Context(), req.Text, req.SourceFile)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewResumeResponse(rec.ID, rec.Profile, rec.DateParsed))
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	name, data, err := readUpload(c, "file")
	if err != nil {
		return err
	}
	rec, err := h.uc.Upload(c.Context(), name, data)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewResumeResponse(rec.ID, rec.Profile, rec.DateParsed))
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return badRequest(err)
	}
	recs, err := h.uc.List(c.Context(), limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ResumeResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, dto.NewResumeResponse(rec.ID, rec.Profile, rec.DateParsed))
	}
	return response.List(c, len(out), out)
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	rec, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeResponse(rec.ID, rec.Profile, rec.DateParsed))
}
