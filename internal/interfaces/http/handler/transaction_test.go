package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	appinventory "github.com/bizdesk/backend/internal/application/inventory"
	apptrade "github.com/bizdesk/backend/internal/application/trade"
	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/infrastructure/persistence"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, persistence.AutoMigrate(db))

	documentService := apptrade.NewDocumentService(
		persistence.NewGormTradeTransactionScope(db),
		persistence.NewGormDocumentRepository(db),
	)
	adjustmentService := appinventory.NewAdjustmentService(
		persistence.NewGormInventoryTransactionScope(db),
		persistence.NewGormStockMovementRepository(db),
	)

	transactionHandler := NewTransactionHandler(documentService)
	inventoryHandler := NewInventoryHandler(adjustmentService)

	engine := gin.New()
	api := engine.Group("/api")
	api.GET("/transactions", transactionHandler.List)
	api.POST("/transactions", transactionHandler.Create)
	api.GET("/transactions/:id/items", transactionHandler.ListItems)
	api.PUT("/transactions/:id", transactionHandler.Update)
	api.DELETE("/transactions/:id", transactionHandler.Delete)
	api.GET("/inventory/movements", inventoryHandler.ListMovements)
	api.POST("/inventory/adjustments", inventoryHandler.CreateAdjustment)

	return &testServer{engine: engine, db: db}
}

func (s *testServer) request(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (s *testServer) seedProduct(t *testing.T, code string, stock int64) *catalog.Product {
	t.Helper()
	repo := persistence.NewGormProductRepository(s.db)
	product, err := catalog.NewProduct(code, "Product "+code, "Hardware", "pcs",
		decimal.NewFromInt(100), decimal.NewFromInt(150))
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), product))
	if stock != 0 {
		require.NoError(t, repo.AdjustStock(context.Background(), product.ID, decimal.NewFromInt(stock)))
	}
	return product
}

func TestTransactionHandler_Create(t *testing.T) {
	srv := setupTestServer(t)
	product := srv.seedProduct(t, "P001", 0)

	t.Run("returns 201 with the new document", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodPost, "/api/transactions", gin.H{
			"number":       "SO-001",
			"type":         "SO",
			"date":         "2024-02-20",
			"total_amount": "300",
			"items": []gin.H{
				{"product_id": product.ID.String(), "qty": "2", "price": "150", "subtotal": "300"},
			},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, resp.Success)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "SO-001", data["number"])
		assert.NotEmpty(t, data["id"])
	})

	t.Run("returns 400 for unknown type", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodPost, "/api/transactions", gin.H{
			"number": "XX-001",
			"type":   "RETURN",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("returns 400 for missing number", func(t *testing.T) {
		w, _ := srv.request(t, http.MethodPost, "/api/transactions", gin.H{"type": "SO"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 409 for duplicate number", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodPost, "/api/transactions", gin.H{
			"number": "SO-001",
			"type":   "SO",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	})

	t.Run("returns 400 for malformed date", func(t *testing.T) {
		w, _ := srv.request(t, http.MethodPost, "/api/transactions", gin.H{
			"number": "SO-002",
			"type":   "SO",
			"date":   "not-a-date",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionHandler_Update(t *testing.T) {
	srv := setupTestServer(t)
	product := srv.seedProduct(t, "P001", 5)

	_, created := srv.request(t, http.MethodPost, "/api/transactions", gin.H{
		"number": "PO-001",
		"type":   "PO",
		"items": []gin.H{
			{"product_id": product.ID.String(), "qty": "10", "price": "100", "subtotal": "1000"},
		},
	})
	require.True(t, created.Success)
	docID := created.Data.(map[string]any)["id"].(string)

	t.Run("completion returns 200 and posts stock", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodPut, "/api/transactions/"+docID, gin.H{
			"status": "COMPLETED",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)

		repo := persistence.NewGormProductRepository(srv.db)
		stored, err := repo.FindByID(context.Background(), product.ID)
		require.NoError(t, err)
		assert.True(t, stored.StockQty.Equal(decimal.NewFromInt(15)))
	})

	t.Run("returns 400 for unknown status", func(t *testing.T) {
		w, _ := srv.request(t, http.MethodPut, "/api/transactions/"+docID, gin.H{
			"status": "VOID",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 for malformed id", func(t *testing.T) {
		w, _ := srv.request(t, http.MethodPut, "/api/transactions/not-a-uuid", gin.H{
			"status": "DRAFT",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodPut, "/api/transactions/00000000-0000-0000-0000-000000000001", gin.H{
			"status": "DRAFT",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestTransactionHandler_ListAndItems(t *testing.T) {
	srv := setupTestServer(t)
	product := srv.seedProduct(t, "P001", 0)

	_, created := srv.request(t, http.MethodPost, "/api/transactions", gin.H{
		"number": "SO-100",
		"type":   "SO",
		"items": []gin.H{
			{"product_id": product.ID.String(), "qty": "2", "price": "150", "subtotal": "300"},
		},
	})
	require.True(t, created.Success)
	docID := created.Data.(map[string]any)["id"].(string)
	_, other := srv.request(t, http.MethodPost, "/api/transactions", gin.H{"number": "PO-100", "type": "PO"})
	require.True(t, other.Success)

	t.Run("lists all documents", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodGet, "/api/transactions", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, resp.Data, 2)
	})

	t.Run("filters by type", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodGet, "/api/transactions?type=SO", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		items, ok := resp.Data.([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		assert.Equal(t, "SO-100", items[0].(map[string]any)["number"])
	})

	t.Run("rejects unknown type filter", func(t *testing.T) {
		w, _ := srv.request(t, http.MethodGet, "/api/transactions?type=RETURN", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lists the items of a document", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodGet, fmt.Sprintf("/api/transactions/%s/items", docID), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		items, ok := resp.Data.([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		assert.Equal(t, "P001", items[0].(map[string]any)["product_code"])
	})

	t.Run("returns 404 for items of unknown document", func(t *testing.T) {
		w, _ := srv.request(t, http.MethodGet, "/api/transactions/00000000-0000-0000-0000-000000000001/items", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	srv := setupTestServer(t)

	_, created := srv.request(t, http.MethodPost, "/api/transactions", gin.H{"number": "Q-001", "type": "QUOTATION"})
	require.True(t, created.Success)
	docID := created.Data.(map[string]any)["id"].(string)

	t.Run("deletes an existing document", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodDelete, "/api/transactions/"+docID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
	})

	t.Run("returns 404 when already deleted", func(t *testing.T) {
		w, _ := srv.request(t, http.MethodDelete, "/api/transactions/"+docID, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInventoryHandler(t *testing.T) {
	srv := setupTestServer(t)
	product := srv.seedProduct(t, "P001", 10)

	t.Run("creates an adjustment", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodPost, "/api/inventory/adjustments", gin.H{
			"product_id": product.ID.String(),
			"type":       "OUT",
			"qty":   "3",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, resp.Success)

		repo := persistence.NewGormProductRepository(srv.db)
		stored, err := repo.FindByID(context.Background(), product.ID)
		require.NoError(t, err)
		assert.True(t, stored.StockQty.Equal(decimal.NewFromInt(7)))
	})

	t.Run("rejects an unknown direction", func(t *testing.T) {
		w, _ := srv.request(t, http.MethodPost, "/api/inventory/adjustments", gin.H{
			"product_id": product.ID.String(),
			"type":       "SIDEWAYS",
			"qty":   "1",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 404 for unknown product", func(t *testing.T) {
		w, _ := srv.request(t, http.MethodPost, "/api/inventory/adjustments", gin.H{
			"product_id": "00000000-0000-0000-0000-000000000001",
			"type":       "IN",
			"qty":   "1",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("lists the ledger with product details", func(t *testing.T) {
		w, resp := srv.request(t, http.MethodGet, "/api/inventory/movements", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		items, ok := resp.Data.([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		entry := items[0].(map[string]any)
		assert.Equal(t, "OUT", entry["type"])
		assert.Equal(t, "P001", entry["product_code"])
		assert.Equal(t, "MANUAL-ADJUSTMENT", entry["reference"])
	})
}
