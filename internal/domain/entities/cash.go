package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType splits manually recorded cash movements.

type TransactionType string

const (
	TransactionTypeReceita TransactionType = "receita"
	TransactionTypeDespesa TransactionType = "despesa"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeReceita || t == TransactionTypeDespesa
}

// CashTransaction is a manually recorded revenue or expense movement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (month-index): month (YYYY-MM)
//
// ServiceOrderID, when set, marks the transaction as the cash counterpart of
// a finalized order; the financial rollup then counts the order's value, not
// this record, so the same job is never summed twice.
type CashTransaction struct {
	ID             string
	Type           TransactionType
	Amount         decimal.Decimal
	Description    string
	ServiceOrderID string
	Date           time.Time
	CreatedAt      time.Time
}

// Expense is one entry of the separate recurring/one-off expense ledger
// (rent, payroll, utilities). Kept apart from CashTransaction on purpose:
// the source system records both and the rollup sums both.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (month-index): month (YYYY-MM)
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Recurring   bool
	Date        time.Time
	CreatedAt   time.Time
}

// MonthlySummary is the financial rollup for one calendar month.
type MonthlySummary struct {
	Year     int
	Month    time.Month
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Profit   decimal.Decimal
	Margin   decimal.Decimal
}
