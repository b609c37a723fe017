package handler

import (
	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/response"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.TrackerUsecase
}

func NewApplicationHandler(uc usecase.TrackerUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/applications")
	grp.Post("/", h.Record)
	grp.Get("/", h.List)
	grp.Patch("/:id/status", h.UpdateStatus)
	grp.Delete("/:id", h.Delete)
}

func (h *ApplicationHandler) Record(c fiber.Ctx) error {
	var req dto.RecordApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	rec, err := h.uc.Record(c.Context(), usecase.RecordApplicationParams{
		JobTitle:     req.JobTitle,
		Company:      req.Company,
		Location:     req.Location,
		JobLink:      req.JobLink,
		Status:       req.Status,
		AppliedDate:  req.AppliedDate,
		FollowUpDate: req.FollowUpDate,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, rec)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	recs, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.List(c, len(recs), recs)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.UpdateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	ok, err := h.uc.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "application not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id, "status": req.Status})
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	ok, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "application not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id})
}
