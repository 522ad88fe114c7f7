package handler

import (
	"time"

	apptrade "github.com/bizdesk/backend/internal/application/trade"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler serves the trade document endpoints
type TransactionHandler struct {
	BaseHandler
	service *apptrade.DocumentService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(service *apptrade.DocumentService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// List handles GET /transactions?type=
func (h *TransactionHandler) List(c *gin.Context) {
	var query dto.TransactionTypeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	var docType *string
	if query.Type != "" {
		docType = &query.Type
	}

	summaries, err := h.service.List(c.Request.Context(), docType)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summaries)
}

// ListItems handles GET /transactions/:id/items
func (h *TransactionHandler) ListItems(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	id := uuid.MustParse(req.ID)

	items, err := h.service.ListItems(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Create handles POST /transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.BadRequest(c, "Invalid date: "+req.Date)
		return
	}

	partnerID, err := parseOptionalUUID(req.PartnerID)
	if err != nil {
		h.BadRequest(c, "Invalid partner_id")
		return
	}
	employeeID, err := parseOptionalUUID(req.EmployeeID)
	if err != nil {
		h.BadRequest(c, "Invalid employee_id")
		return
	}

	serviceReq := apptrade.CreateDocumentRequest{
		Number:      req.Number,
		Type:        req.Type,
		Date:        date,
		PartnerID:   partnerID,
		EmployeeID:  employeeID,
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
		Items:       toItemRequests(req.Items),
	}

	resp, err := h.service.Create(c.Request.Context(), serviceReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update handles PUT /transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.ValidationError(c, err)
		return
	}
	id := uuid.MustParse(idReq.ID)

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	serviceReq := apptrade.UpdateDocumentRequest{
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
	}
	if req.Items != nil {
		items := toItemRequests(*req.Items)
		serviceReq.Items = &items
	}

	if err := h.service.Update(c.Request.Context(), id, serviceReq); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"id": id})
}

// Delete handles DELETE /transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	id := uuid.MustParse(req.ID)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"id": id})
}

func toItemRequests(items []dto.TransactionItemRequest) []apptrade.DocumentItemRequest {
	out := make([]apptrade.DocumentItemRequest, 0, len(items))
	for _, item := range items {
		out = append(out, apptrade.DocumentItemRequest{
			ProductID: uuid.MustParse(item.ProductID),
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		})
	}
	return out
}

// parseDate accepts a bare date or a full RFC3339 timestamp; empty means now
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
