package handlers

import (
	"shellwatch/internal/middleware"
	"shellwatch/internal/services/report"
	"shellwatch/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var req report.SubmitRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	created := h.reportService.Submit(c.UserContext(), req)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Report submitted",
		"data":    created,
	})
}

func (h *ReportHandler) List(c *fiber.Ctx) error {
	role := c.Query("role", report.RoleAnalyst)
	reporterID := c.Query("reporter_id")
	if role == report.RoleInformer && reporterID == "" {
		return response.BadRequest(c, "reporter_id is required for the informer role")
	}
	return c.JSON(h.reportService.List(c.UserContext(), role, reporterID))
}

func (h *ReportHandler) Review(c *fiber.Ctx) error {
	var req report.ReviewRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	if req.AnalystID == "" {
		req.AnalystID = middleware.AnalystID(c)
	}

	note, err := h.reportService.Review(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Report reviewed", note)
}
