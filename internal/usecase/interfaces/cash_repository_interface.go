package interfaces

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
)

// ICashRepository abstracts DynamoDB persistence for the manual cash ledger
// (transactions) and the separate expense ledger.

type ICashRepository interface {
	CreateTransaction(ctx context.Context, t entities.CashTransaction) (entities.CashTransaction, error)
	ListTransactions(ctx context.Context) ([]entities.CashTransaction, error)
	ListTransactionsByMonth(ctx context.Context, year int, month time.Month) ([]entities.CashTransaction, error)
	CreateExpense(ctx context.Context, e entities.Expense) (entities.Expense, error)
	ListExpenses(ctx context.Context) ([]entities.Expense, error)
	ListExpensesByMonth(ctx context.Context, year int, month time.Month) ([]entities.Expense, error)
}
