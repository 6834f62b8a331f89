package handlers

import (
	"shellwatch/internal/middleware"
	"shellwatch/internal/services/compliance"
	"shellwatch/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ComplianceHandler struct {
	complianceService compliance.Service
}

func NewComplianceHandler(complianceService compliance.Service) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

func (h *ComplianceHandler) CreateCaseFile(c *fiber.Ctx) error {
	var req compliance.CaseFileRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	if req.AnalystID == "" {
		req.AnalystID = middleware.AnalystID(c)
	}

	cf, err := h.complianceService.CreateCaseFile(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Case file created", cf)
}

func (h *ComplianceHandler) DraftSAR(c *fiber.Ctx) error {
	var req compliance.SARRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	if req.AnalystID == "" {
		req.AnalystID = middleware.AnalystID(c)
	}

	doc, err := h.complianceService.DraftSAR(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "SAR draft created", doc)
}

func (h *ComplianceHandler) Escalate(c *fiber.Ctx) error {
	var req compliance.EscalationRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	if req.AnalystID == "" {
		req.AnalystID = middleware.AnalystID(c)
	}

	doc, err := h.complianceService.Escalate(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "FIU escalation created", doc)
}

func (h *ComplianceHandler) CreateInquiry(c *fiber.Ctx) error {
	var req compliance.InquiryRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	if req.AnalystID == "" {
		req.AnalystID = middleware.AnalystID(c)
	}

	doc, err := h.complianceService.CreateInquiry(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Legal inquiry packet generated", doc)
}

func (h *ComplianceHandler) AuditLogs(c *fiber.Ctx) error {
	return c.JSON(h.complianceService.AuditLogs(c.QueryInt("limit", compliance.DefaultAuditLogLimit)))
}
