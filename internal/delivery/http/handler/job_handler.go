package handler

import (
	"bytes"
	"io"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/response"
	"resume-match/internal/domain/job"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Post("/", h.Add)
	grp.Get("/", h.List)
	grp.Post("/import", h.Import)
	grp.Get("/:id", h.Get)
	grp.Patch("/:id/status", h.UpdateStatus)
}

func (h *JobHandler) Add(c fiber.Ctx) error {
	var req dto.AddJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	id, err := h.uc.Add(c.Context(), req.Posting())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, fiber.Map{"id": id})
}

func (h *JobHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return badRequest(err)
	}

	items, err := h.uc.List(c.Context(), usecase.JobListParams{
		Query: c.Query("q"),
		Filter: job.Filter{
			Status:   job.Status(c.Query("status")),
			Company:  c.Query("company"),
			Location: c.Query("location"),
		},
		Limit: limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.List(c, len(items), dto.NewJobResponses(items))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(p))
}

func (h *JobHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.UpdateJobStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	ok, err := h.uc.UpdateStatus(c.Context(), id, req.Status, req.Notes)
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "job not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id, "status": req.Status})
}

// Import accepts a CSV export either as the multipart field "file" or as
// the raw request body.
func (h *JobHandler) Import(c fiber.Ctx) error {
	var r io.Reader
	if _, err := c.FormFile("file"); err == nil {
		_, data, err := readUpload(c, "file")
		if err != nil {
			return err
		}
		r = bytes.NewReader(data)
	} else {
		body := c.Body()
		if len(body) == 0 {
			return badRequest(nil)
		}
		r = bytes.NewReader(body)
	}

	res, err := h.uc.ImportCSV(c.Context(), r)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, res)
}
