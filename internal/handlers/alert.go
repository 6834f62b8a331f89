package handlers

import (
	"shellwatch/internal/middleware"
	"shellwatch/internal/services/alert"
	"shellwatch/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AlertHandler struct {
	alertService alert.Service
}

func NewAlertHandler(alertService alert.Service) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

func (h *AlertHandler) ListAlerts(c *fiber.Ctx) error {
	return c.JSON(h.alertService.List(c.UserContext()))
}

func (h *AlertHandler) SuppressAlert(c *fiber.Ctx) error {
	var req alert.SuppressRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	if req.AnalystID == "" {
		req.AnalystID = middleware.AnalystID(c)
	}

	updated, err := h.alertService.Suppress(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Alert suppressed and feedback logged", updated)
}
