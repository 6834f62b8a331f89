package handlers

import (
	"shellwatch/internal/services/company"
	"shellwatch/internal/utils/pagination"
	"shellwatch/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const defaultCompanyPageSize = 20

type CompanyHandler struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// ListCompanies returns every company by score, or one page of them when
// page or limit is given.
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	companies := h.companyService.ListCompanies(c.UserContext())
	if !pagination.Requested(c) {
		return c.JSON(companies)
	}

	p := pagination.ParseFromRequest(c, defaultCompanyPageSize)
	page := pagination.Slice(&p, companies)
	return c.JSON(pagination.Response(p, page))
}

func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	profile, err := h.companyService.GetCompany(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(profile)
}

func (h *CompanyHandler) GetNetwork(c *fiber.Ctx) error {
	network, err := h.companyService.GetNetwork(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(network)
}
