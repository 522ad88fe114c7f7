package handler

import (
	appcatalog "github.com/bizdesk/backend/internal/application/catalog"
	appcrm "github.com/bizdesk/backend/internal/application/crm"
	apphr "github.com/bizdesk/backend/internal/application/hr"
	apppartner "github.com/bizdesk/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// MasterDataHandler serves the read-only master data endpoints
type MasterDataHandler struct {
	BaseHandler
	products  *appcatalog.ProductService
	partners  *apppartner.PartnerService
	employees *apphr.EmployeeService
	leads     *appcrm.LeadService
}

// NewMasterDataHandler creates a new MasterDataHandler
func NewMasterDataHandler(
	products *appcatalog.ProductService,
	partners *apppartner.PartnerService,
	employees *apphr.EmployeeService,
	leads *appcrm.LeadService,
) *MasterDataHandler {
	return &MasterDataHandler{
		products:  products,
		partners:  partners,
		employees: employees,
		leads:     leads,
	}
}

// ListProducts handles GET /products
func (h *MasterDataHandler) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// ListPartners handles GET /partners
func (h *MasterDataHandler) ListPartners(c *gin.Context) {
	partners, err := h.partners.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, partners)
}

// ListEmployees handles GET /employees
func (h *MasterDataHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employees.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employees)
}

// ListLeads handles GET /leads
func (h *MasterDataHandler) ListLeads(c *gin.Context) {
	leads, err := h.leads.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, leads)
}
