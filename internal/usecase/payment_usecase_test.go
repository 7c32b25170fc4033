package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"
)

func newPaymentFixture(t *testing.T) (*PaymentUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewPaymentUseCase(repo, orders, gateway, zap.NewNop()), repo, orders, gateway
}

func TestPaymentUseCaseCreateAndApprove(t *testing.T) {
	ctx := context.Background()
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.com"}}`)

	t.Run("invalid payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc, _, _, _ := newPaymentFixture(t)

		if _, err := uc.CreateAndApprove(ctx, "os-1", json.RawMessage("not json")); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewPaymentUseCase(repo, orders, nil, zap.NewNop())

		if _, err := uc.CreateAndApprove(ctx, "os-1", payload); !errors.Is(err, domainErrors.ErrPaymentNotSupported) {
			t.Fatalf("expected ErrPaymentNotSupported, got %v", err)
		}
	})

	t.Run("order must be finalized", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc, _, orders, _ := newPaymentFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(entities.ServiceOrder{
			ID:     "os-1",
			Status: entities.OrderStatusEmAndamento,
		}, nil)

		if _, err := uc.CreateAndApprove(ctx, "os-1", payload); !errors.Is(err, domainErrors.ErrOrderNotFinalized) {
			t.Fatalf("expected ErrOrderNotFinalized, got %v", err)
		}
	})

	t.Run("charged amount comes from the order value", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc, repo, orders, gateway := newPaymentFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(entities.ServiceOrder{
			ID:     "os-1",
			Status: entities.OrderStatusFinalizada,
			Value:  decimal.NewFromFloat(249.9),
		}, nil)

		gateway.EXPECT().CreatePayment(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(requestPayload, &req); err != nil {
					t.Fatalf("gateway payload is not valid json: %v", err)
				}
				if req["transaction_amount"] != 249.9 {
					t.Fatalf("expected transaction_amount 249.9, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "os-1" {
					t.Fatalf("expected external_reference os-1, got %v", req["external_reference"])
				}
				return "12345", "approved", json.RawMessage(`{"id":12345,"status":"approved"}`), nil
			})

		repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				return p, nil
			})

		created, err := uc.CreateAndApprove(ctx, "os-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "12345" {
			t.Fatalf("expected provider payment id 12345, got %s", created.ID)
		}
		if created.Status != entities.PaymentStatusAprovado {
			t.Fatalf("expected aprovado, got %s", created.Status)
		}
		if created.ServiceOrderID != "os-1" {
			t.Fatalf("expected linkage to os-1, got %s", created.ServiceOrderID)
		}
	})

	t.Run("unauthorized gateway response maps to sentinel", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc, _, orders, gateway := newPaymentFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(entities.ServiceOrder{
			ID:     "os-1",
			Status: entities.OrderStatusFinalizada,
			Value:  decimal.NewFromInt(100),
		}, nil)
		gateway.EXPECT().CreatePayment(ctx, gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		if _, err := uc.CreateAndApprove(ctx, "os-1", payload); !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("mock mode approves without calling the gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		uc, repo, orders, _ := newPaymentFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(entities.ServiceOrder{
			ID:     "os-1",
			Status: entities.OrderStatusFinalizada,
			Value:  decimal.NewFromInt(100),
		}, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				return p, nil
			})

		created, err := uc.CreateAndApprove(ctx, "os-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.PaymentStatusAprovado {
			t.Fatalf("expected aprovado, got %s", created.Status)
		}
		if created.MPPayload["status"] != "approved" {
			t.Fatalf("expected approved mock payload, got %v", created.MPPayload)
		}
	})
}

func TestPaymentUseCaseGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown payment", func(t *testing.T) {
		uc, repo, _, _ := newPaymentFixture(t)

		repo.EXPECT().GetByID(ctx, "pay-404").Return(entities.Payment{}, nil)

		if _, err := uc.GetByID(ctx, "pay-404"); !errors.Is(err, domainErrors.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}
