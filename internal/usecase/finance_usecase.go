package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidPeriod = errors.New("invalid reporting period")
)

// TransactionInput records a manual cash movement. ServiceOrderID links the
// transaction to a finalized order; linked revenue is excluded from the
// rollup's manual sum because the order's derived value already covers it.
type TransactionInput struct {
	Type           entities.TransactionType
	Amount         decimal.Decimal
	Description    string
	ServiceOrderID string
	Date           time.Time
}

// ExpenseInput records an entry of the separate expense ledger.
type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Recurring   bool
	Date        time.Time
}

// IFinanceUseCase is the read-mostly financial aggregator plus the writes
// that feed it (manual transactions and the expense ledger).

type IFinanceUseCase interface {
	RecordTransaction(ctx context.Context, actor entities.Actor, input TransactionInput) (entities.CashTransaction, error)
	ListTransactions(ctx context.Context) ([]entities.CashTransaction, error)
	RecordExpense(ctx context.Context, actor entities.Actor, input ExpenseInput) (entities.Expense, error)
	ListExpenses(ctx context.Context) ([]entities.Expense, error)
	MonthlySummary(ctx context.Context, year int, month time.Month) (entities.MonthlySummary, error)
	TotalInvested(ctx context.Context) (decimal.Decimal, error)
}

type FinanceUseCase struct {
	cash   interfaces.ICashRepository
	orders interfaces.IServiceOrderRepository
	stock  interfaces.IStockItemRepository
	logger *zap.Logger
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(
	cash interfaces.ICashRepository,
	orders interfaces.IServiceOrderRepository,
	stock interfaces.IStockItemRepository,
	logger *zap.Logger,
) *FinanceUseCase {
	return &FinanceUseCase{cash: cash, orders: orders, stock: stock, logger: logger}
}

func (u *FinanceUseCase) RecordTransaction(ctx context.Context, actor entities.Actor, input TransactionInput) (entities.CashTransaction, error) {
	if !actor.Can(entities.PermissionFinance) {
		return entities.CashTransaction{}, domainErrors.ErrPermissionDenied
	}

	input.Description = strings.TrimSpace(input.Description)
	input.ServiceOrderID = strings.TrimSpace(input.ServiceOrderID)

	var fields []string
	if !input.Type.Valid() {
		fields = append(fields, "type")
	}
	if !input.Amount.IsPositive() {
		fields = append(fields, "amount")
	}
	if input.Description == "" {
		fields = append(fields, "description")
	}
	if len(fields) > 0 {
		return entities.CashTransaction{}, &domainErrors.ValidationError{Fields: fields}
	}

	if input.ServiceOrderID != "" {
		order, err := u.orders.GetByID(ctx, input.ServiceOrderID)
		if err != nil {
			return entities.CashTransaction{}, err
		}
		if order.ID == "" {
			return entities.CashTransaction{}, domainErrors.ErrOrderNotFound
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	tx := entities.CashTransaction{
		ID:             uuid.NewString(),
		Type:           input.Type,
		Amount:         input.Amount.Round(2),
		Description:    input.Description,
		ServiceOrderID: input.ServiceOrderID,
		Date:           date,
		CreatedAt:      time.Now().UTC(),
	}
	return u.cash.CreateTransaction(ctx, tx)
}

func (u *FinanceUseCase) ListTransactions(ctx context.Context) ([]entities.CashTransaction, error) {
	return u.cash.ListTransactions(ctx)
}

func (u *FinanceUseCase) RecordExpense(ctx context.Context, actor entities.Actor, input ExpenseInput) (entities.Expense, error) {
	if !actor.Can(entities.PermissionFinance) {
		return entities.Expense{}, domainErrors.ErrPermissionDenied
	}

	input.Description = strings.TrimSpace(input.Description)

	var fields []string
	if input.Description == "" {
		fields = append(fields, "description")
	}
	if !input.Amount.IsPositive() {
		fields = append(fields, "amount")
	}
	if len(fields) > 0 {
		return entities.Expense{}, &domainErrors.ValidationError{Fields: fields}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	expense := entities.Expense{
		ID:          uuid.NewString(),
		Description: input.Description,
		Amount:      input.Amount.Round(2),
		Recurring:   input.Recurring,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
	return u.cash.CreateExpense(ctx, expense)
}

func (u *FinanceUseCase) ListExpenses(ctx context.Context) ([]entities.Expense, error) {
	return u.cash.ListExpenses(ctx)
}

// MonthlySummary rolls one calendar month up.
//
// Revenue is the sum of finalized orders dated in the month plus the manual
// revenue transactions of that month that are NOT linked to an order; the
// linkage rule is what prevents the same job from being counted twice when
// the cashier also registers the money movement.
func (u *FinanceUseCase) MonthlySummary(ctx context.Context, year int, month time.Month) (entities.MonthlySummary, error) {
	if year < 2000 || year > 2200 || month < time.January || month > time.December {
		return entities.MonthlySummary{}, ErrInvalidPeriod
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	transactions, err := u.cash.ListTransactionsByMonth(ctx, year, month)
	if err != nil {
		return entities.MonthlySummary{}, err
	}
	finalized, err := u.orders.ListFinalizedInRange(ctx, from, to)
	if err != nil {
		return entities.MonthlySummary{}, err
	}
	ledger, err := u.cash.ListExpensesByMonth(ctx, year, month)
	if err != nil {
		return entities.MonthlySummary{}, err
	}

	revenue := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case entities.TransactionTypeReceita:
			if tx.ServiceOrderID == "" {
				revenue = revenue.Add(tx.Amount)
			}
		case entities.TransactionTypeDespesa:
			expenses = expenses.Add(tx.Amount)
		}
	}
	for _, order := range finalized {
		revenue = revenue.Add(order.Value)
	}
	for _, e := range ledger {
		expenses = expenses.Add(e.Amount)
	}

	profit := revenue.Sub(expenses)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Round(4)
	}

	return entities.MonthlySummary{
		Year:     year,
		Month:    month,
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   profit,
		Margin:   margin,
	}, nil
}

// TotalInvested is the cumulative money spent on stock replenishments, read
// from the append-only purchase history.
func (u *FinanceUseCase) TotalInvested(ctx context.Context) (decimal.Decimal, error) {
	purchases, err := u.stock.ListAllPurchases(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.Invested())
	}
	return total, nil
}
