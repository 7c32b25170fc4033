package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/adapter/http/middleware"
	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newStockRouter(h *StockHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Actor())
	r.POST("/v1/stock-items", h.CreateStockItem)
	r.GET("/v1/stock-items/:item_id", h.GetStockItem)
	r.DELETE("/v1/stock-items/:item_id", h.DeleteStockItem)
	r.POST("/v1/stock-items/:item_id/replenish", h.ReplenishStockItem)
	return r
}

func stockHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, "user-1")
	req.Header.Set(middleware.HeaderPermissions, entities.PermissionStock)
}

func TestStockHandler_CreateStockItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ entities.Actor, input usecase.CreateStockItemInput) (entities.StockItem, error) {
				return entities.StockItem{
					ID:        "item-1",
					Name:      input.Name,
					Kind:      entities.ItemKindProduto,
					Quantity:  input.Quantity,
					UnitPrice: input.UnitPrice,
				}, nil
			})

		body := `{"name":"Filtro de oleo","quantity":10,"unit_price":19.9}`
		req := httptest.NewRequest(http.MethodPost, "/v1/stock-items", bytes.NewBufferString(body))
		stockHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.StockItem{}, &domainErrors.ValidationError{Fields: []string{"unit_price"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/stock-items", bytes.NewBufferString(`{"name":"filtro","quantity":1,"unit_price":-5}`))
		stockHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "VALIDATION_FAILED" {
			t.Fatalf("expected VALIDATION_FAILED, got %v", resp["code"])
		}
	})
}

func TestStockHandler_GetStockItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("low stock flag in response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.StockItem{
			ID:          "item-1",
			Name:        "filtro",
			Quantity:    2,
			MinQuantity: 5,
			UnitPrice:   decimal.NewFromInt(10),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/stock-items/item-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["low_stock"] != true {
			t.Fatalf("expected low_stock true, got %v", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.StockItem{}, domainErrors.ErrStockItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/stock-items/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestStockHandler_DeleteStockItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("item in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "item-1").Return(domainErrors.ErrStockItemInUse)

		req := httptest.NewRequest(http.MethodDelete, "/v1/stock-items/item-1", nil)
		stockHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "STOCK_ITEM_IN_USE" {
			t.Fatalf("expected STOCK_ITEM_IN_USE, got %v", resp["code"])
		}
	})
}

func TestStockHandler_ReplenishStockItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStockUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().Replenish(gomock.Any(), gomock.Any(), "item-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ entities.Actor, _ string, input usecase.ReplenishInput) (entities.StockItem, error) {
				if input.Quantity != 5 {
					t.Fatalf("expected quantity 5, got %d", input.Quantity)
				}
				return entities.StockItem{ID: "item-1", Quantity: 7}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/stock-items/item-1/replenish", bytes.NewBufferString(`{"quantity":5,"unit_price":8.5,"supplier":"Auto Pecas Ltda"}`))
		stockHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["quantity"] != 7.0 {
			t.Fatalf("expected quantity 7, got %v", resp["quantity"])
		}
	})
}
