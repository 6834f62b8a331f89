package handlers

import (
	"shellwatch/internal/services/dashboard"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	return c.JSON(h.dashboardService.Metrics(c.UserContext()))
}
