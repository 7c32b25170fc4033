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

func newFinanceFixture(t *testing.T) (*FinanceUseCase, *mock_interfaces.MockICashRepository, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIStockItemRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cash := mock_interfaces.NewMockICashRepository(ctrl)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	stock := mock_interfaces.NewMockIStockItemRepository(ctrl)
	return NewFinanceUseCase(cash, orders, stock, zap.NewNop()), cash, orders, stock
}

func financeActor() entities.Actor {
	return entities.NewActor("user-1", entities.PermissionFinance)
}

func TestFinanceUseCaseRecordTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("permission denied", func(t *testing.T) {
		uc, _, _, _ := newFinanceFixture(t)

		_, err := uc.RecordTransaction(ctx, entities.Actor{ID: "user-1"}, TransactionInput{})
		if !errors.Is(err, domainErrors.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		uc, _, _, _ := newFinanceFixture(t)

		_, err := uc.RecordTransaction(ctx, financeActor(), TransactionInput{
			Type:   "emprestimo",
			Amount: decimal.NewFromInt(-10),
		})
		var vErr *domainErrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(vErr.Fields) != 3 {
			t.Fatalf("expected type, amount and description flagged, got %v", vErr.Fields)
		}
	})

	t.Run("linked order must exist", func(t *testing.T) {
		uc, _, orders, _ := newFinanceFixture(t)

		orders.EXPECT().GetByID(ctx, "os-404").Return(entities.ServiceOrder{}, nil)

		_, err := uc.RecordTransaction(ctx, financeActor(), TransactionInput{
			Type:           entities.TransactionTypeReceita,
			Amount:         decimal.NewFromInt(100),
			Description:    "pagamento da OS",
			ServiceOrderID: "os-404",
		})
		if !errors.Is(err, domainErrors.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("amount is stored rounded to cents", func(t *testing.T) {
		uc, cash, _, _ := newFinanceFixture(t)

		cash.EXPECT().CreateTransaction(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tx entities.CashTransaction) (entities.CashTransaction, error) {
				return tx, nil
			})

		created, err := uc.RecordTransaction(ctx, financeActor(), TransactionInput{
			Type:        entities.TransactionTypeDespesa,
			Amount:      decimal.NewFromFloat(33.339),
			Description: "compra de pecas",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created.Amount.Equal(decimal.NewFromFloat(33.34)) {
			t.Fatalf("expected 33.34, got %s", created.Amount)
		}
	})
}

func TestFinanceUseCaseMonthlySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid period", func(t *testing.T) {
		uc, _, _, _ := newFinanceFixture(t)

		if _, err := uc.MonthlySummary(ctx, 1999, time.March); !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod, got %v", err)
		}
		if _, err := uc.MonthlySummary(ctx, 2026, time.Month(13)); !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("order-linked revenue is not double counted", func(t *testing.T) {
		uc, cash, orders, _ := newFinanceFixture(t)

		year, month := 2026, time.March
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		cash.EXPECT().ListTransactionsByMonth(ctx, year, month).Return([]entities.CashTransaction{
			// Linked to the finalized order below: must not add to revenue.
			{Type: entities.TransactionTypeReceita, Amount: decimal.NewFromInt(500), ServiceOrderID: "os-1"},
			{Type: entities.TransactionTypeReceita, Amount: decimal.NewFromInt(200)},
			{Type: entities.TransactionTypeDespesa, Amount: decimal.NewFromInt(80)},
		}, nil)
		orders.EXPECT().ListFinalizedInRange(ctx, from, to).Return([]entities.ServiceOrder{
			{ID: "os-1", Status: entities.OrderStatusFinalizada, Value: decimal.NewFromInt(500)},
		}, nil)
		cash.EXPECT().ListExpensesByMonth(ctx, year, month).Return([]entities.Expense{
			{Amount: decimal.NewFromInt(120)},
		}, nil)

		summary, err := uc.MonthlySummary(ctx, year, month)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.Revenue.Equal(decimal.NewFromInt(700)) {
			t.Fatalf("expected revenue 700, got %s", summary.Revenue)
		}
		if !summary.Expenses.Equal(decimal.NewFromInt(200)) {
			t.Fatalf("expected expenses 200, got %s", summary.Expenses)
		}
		if !summary.Profit.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("expected profit 500, got %s", summary.Profit)
		}
		if !summary.Margin.Equal(decimal.NewFromFloat(0.7143)) {
			t.Fatalf("expected margin 0.7143, got %s", summary.Margin)
		}
	})

	t.Run("zero revenue keeps margin at zero", func(t *testing.T) {
		uc, cash, orders, _ := newFinanceFixture(t)

		year, month := 2026, time.April
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		cash.EXPECT().ListTransactionsByMonth(ctx, year, month).Return([]entities.CashTransaction{
			{Type: entities.TransactionTypeDespesa, Amount: decimal.NewFromInt(150)},
		}, nil)
		orders.EXPECT().ListFinalizedInRange(ctx, from, to).Return(nil, nil)
		cash.EXPECT().ListExpensesByMonth(ctx, year, month).Return(nil, nil)

		summary, err := uc.MonthlySummary(ctx, year, month)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.Margin.IsZero() {
			t.Fatalf("expected margin 0 with no revenue, got %s", summary.Margin)
		}
		if !summary.Profit.Equal(decimal.NewFromInt(-150)) {
			t.Fatalf("expected profit -150, got %s", summary.Profit)
		}
	})
}

func TestFinanceUseCaseTotalInvested(t *testing.T) {
	ctx := context.Background()

	uc, _, _, stock := newFinanceFixture(t)

	stock.EXPECT().ListAllPurchases(ctx).Return([]entities.PurchaseHistoryEntry{
		{Quantity: 10, UnitPrice: decimal.NewFromFloat(12.5)},
		{Quantity: 2, UnitPrice: decimal.NewFromInt(40)},
	}, nil)

	total, err := uc.TotalInvested(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(205)) {
		t.Fatalf("expected 205, got %s", total)
	}
}
