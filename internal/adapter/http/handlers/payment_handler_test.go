package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/:order_id", h.CreatePaymentByOrderID)
	r.GET("/v1/payments/:order_id", h.GetPaymentByOrderID)
	return r
}

func TestPaymentHandler_CreatePaymentByOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with envelope payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreateAndApprove(gomock.Any(), "os-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, orderID string, mpPayload json.RawMessage) (entities.Payment, error) {
				var req map[string]any
				if err := json.Unmarshal(mpPayload, &req); err != nil {
					t.Fatalf("payload is not valid json: %v", err)
				}
				// The mp_payload envelope must be unwrapped before the use case.
				if req["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", mpPayload)
				}
				return entities.Payment{
					ID:             "12345",
					ServiceOrderID: orderID,
					Status:         entities.PaymentStatusAprovado,
					Date:           time.Now().UTC(),
				}, nil
			})

		body := `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"a@b.com"}}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/os-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/os-1", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not finalized", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreateAndApprove(gomock.Any(), "os-1", gomock.Any()).
			Return(entities.Payment{}, domainErrors.ErrOrderNotFinalized)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/os-1", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "ORDER_NOT_FINALIZED" {
			t.Fatalf("expected ORDER_NOT_FINALIZED, got %v", resp["code"])
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreateAndApprove(gomock.Any(), "os-1", gomock.Any()).
			Return(entities.Payment{}, domainErrors.ErrPaymentNotSupported)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/os-1", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPaymentByOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		older := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
		newer := older.Add(48 * time.Hour)
		uc.EXPECT().ListByServiceOrderID(gomock.Any(), "os-1").Return([]entities.Payment{
			{ID: "pay-1", ServiceOrderID: "os-1", Date: older, Status: entities.PaymentStatusAprovado},
			{ID: "pay-2", ServiceOrderID: "os-1", Date: newer, Status: entities.PaymentStatusAprovado},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "pay-2" {
			t.Fatalf("expected latest payment pay-2, got %v", resp["id"])
		}
	})

	t.Run("no payments yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ListByServiceOrderID(gomock.Any(), "os-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
