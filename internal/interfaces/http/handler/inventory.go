package handler

import (
	appinv "github.com/bizdesk/backend/internal/application/inventory"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler serves the stock ledger endpoints
type InventoryHandler struct {
	BaseHandler
	service *appinv.AdjustmentService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *appinv.AdjustmentService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// ListMovements handles GET /inventory/movements
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	movements, err := h.service.ListMovements(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}

// CreateAdjustment handles POST /inventory/adjustments
func (h *InventoryHandler) CreateAdjustment(c *gin.Context) {
	var req dto.StockAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	movement, err := h.service.Adjust(c.Request.Context(), appinv.AdjustmentRequest{
		ProductID: uuid.MustParse(req.ProductID),
		Direction: req.Type,
		Quantity:  req.Quantity,
		Reference: req.Reference,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, movement)
}
