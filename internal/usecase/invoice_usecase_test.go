package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"
)

func newInvoiceFixture(t *testing.T) (*InvoiceUseCase, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIInvoiceRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	return NewInvoiceUseCase(orders, invoices, zap.NewNop()), orders, invoices
}

func finalizedOrderWithLines() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:        "os-1",
		Status:    entities.OrderStatusFinalizada,
		LaborCost: decimal.NewFromInt(50),
		Items: []entities.OrderItem{
			{StockItemID: "item-1", Quantity: 1, UnitPrice: decimal.NewFromInt(25), Kind: entities.ItemKindProduto},
			{StockItemID: "item-2", Quantity: 2, UnitPrice: decimal.NewFromInt(40), Kind: entities.ItemKindServico},
		},
	}
}

func TestInvoiceUseCaseCheckEmission(t *testing.T) {
	ctx := context.Background()

	t.Run("eligible order splits lines per document type", func(t *testing.T) {
		uc, orders, invoices := newInvoiceFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(finalizedOrderWithLines(), nil)
		invoices.EXPECT().ListByServiceOrderID(ctx, "os-1").Return(nil, nil)

		check, err := uc.CheckEmission(ctx, "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !check.Decision.Eligible {
			t.Fatalf("expected eligible, got %+v", check.Decision)
		}
		if len(check.ProductLines) != 1 || len(check.ServiceLines) != 1 {
			t.Fatalf("expected one product and one service line, got %d/%d",
				len(check.ProductLines), len(check.ServiceLines))
		}
		if len(check.DocumentTypes) != 2 {
			t.Fatalf("expected both document types, got %v", check.DocumentTypes)
		}
	})

	t.Run("unfinalized order reports not_finalized", func(t *testing.T) {
		uc, orders, invoices := newInvoiceFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(entities.ServiceOrder{
			ID:     "os-1",
			Status: entities.OrderStatusAguardandoPecas,
		}, nil)
		invoices.EXPECT().ListByServiceOrderID(ctx, "os-1").Return(nil, nil)

		check, err := uc.CheckEmission(ctx, "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.Decision.Eligible || check.Decision.Reason != entities.EmissionBlockNotFinalized {
			t.Fatalf("expected not_finalized block, got %+v", check.Decision)
		}
	})

	t.Run("existing invoice reports already_invoiced", func(t *testing.T) {
		uc, orders, invoices := newInvoiceFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(finalizedOrderWithLines(), nil)
		invoices.EXPECT().ListByServiceOrderID(ctx, "os-1").Return([]entities.Invoice{
			{ID: "inv-1", ServiceOrderID: "os-1", Status: entities.InvoiceStatusEmitida},
		}, nil)

		check, err := uc.CheckEmission(ctx, "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.Decision.Eligible || check.Decision.Reason != entities.EmissionBlockAlreadyInvoiced {
			t.Fatalf("expected already_invoiced block, got %+v", check.Decision)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		uc, orders, _ := newInvoiceFixture(t)

		orders.EXPECT().GetByID(ctx, "os-404").Return(entities.ServiceOrder{}, nil)

		if _, err := uc.CheckEmission(ctx, "os-404"); !errors.Is(err, domainErrors.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCaseRecordEmitted(t *testing.T) {
	ctx := context.Background()
	actor := entities.NewActor("user-1", entities.PermissionServiceOrders)

	t.Run("eligible order gets the linkage record", func(t *testing.T) {
		uc, orders, invoices := newInvoiceFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(finalizedOrderWithLines(), nil)
		invoices.EXPECT().ListByServiceOrderID(ctx, "os-1").Return(nil, nil)
		invoices.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				return inv, nil
			})

		issuedAt := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
		created, err := uc.RecordEmitted(ctx, actor, "os-1", RecordInvoiceInput{
			Type:     entities.InvoiceTypeNFProduto,
			IssuedAt: issuedAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ServiceOrderID != "os-1" {
			t.Fatalf("expected linkage to os-1, got %s", created.ServiceOrderID)
		}
		if created.Status != entities.InvoiceStatusEmitida {
			t.Fatalf("expected emitida, got %s", created.Status)
		}
		if !created.IssuedAt.Equal(issuedAt) {
			t.Fatalf("expected issued at %s, got %s", issuedAt, created.IssuedAt)
		}
	})

	t.Run("ineligible order is refused with the gate reason", func(t *testing.T) {
		uc, orders, invoices := newInvoiceFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(entities.ServiceOrder{
			ID:     "os-1",
			Status: entities.OrderStatusEmAndamento,
		}, nil)
		invoices.EXPECT().ListByServiceOrderID(ctx, "os-1").Return(nil, nil)

		_, err := uc.RecordEmitted(ctx, actor, "os-1", RecordInvoiceInput{Type: entities.InvoiceTypeNFProduto})
		var eErr *domainErrors.InvoiceNotEligibleError
		if !errors.As(err, &eErr) {
			t.Fatalf("expected InvoiceNotEligibleError, got %v", err)
		}
		if eErr.Reason != string(entities.EmissionBlockNotFinalized) {
			t.Fatalf("expected not_finalized reason, got %s", eErr.Reason)
		}
	})

	t.Run("unknown document type", func(t *testing.T) {
		uc, orders, invoices := newInvoiceFixture(t)

		orders.EXPECT().GetByID(ctx, "os-1").Return(finalizedOrderWithLines(), nil)
		invoices.EXPECT().ListByServiceOrderID(ctx, "os-1").Return(nil, nil)

		_, err := uc.RecordEmitted(ctx, actor, "os-1", RecordInvoiceInput{Type: "boleto"})
		var vErr *domainErrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		uc, _, _ := newInvoiceFixture(t)

		_, err := uc.RecordEmitted(ctx, entities.Actor{ID: "user-1"}, "os-1", RecordInvoiceInput{})
		if !errors.Is(err, domainErrors.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})
}
