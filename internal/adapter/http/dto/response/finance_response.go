package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type CashTransactionResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Amount         float64   `json:"amount"`
	Description    string    `json:"description"`
	ServiceOrderID string    `json:"service_order_id,omitempty"`
	Date           time.Time `json:"date"`
}

func FromCashTransaction(t entities.CashTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		ID:             t.ID,
		Type:           string(t.Type),
		Amount:         t.Amount.InexactFloat64(),
		Description:    t.Description,
		ServiceOrderID: t.ServiceOrderID,
		Date:           t.Date,
	}
}

func FromCashTransactions(transactions []entities.CashTransaction) []CashTransactionResponse {
	out := make([]CashTransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, FromCashTransaction(t))
	}
	return out
}

type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Recurring   bool      `json:"recurring"`
	Date        time.Time `json:"date"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		Recurring:   e.Recurring,
		Date:        e.Date,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}

type MonthlySummaryResponse struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	Margin   float64 `json:"margin"`
}

func FromMonthlySummary(s entities.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Year:     s.Year,
		Month:    int(s.Month),
		Revenue:  s.Revenue.InexactFloat64(),
		Expenses: s.Expenses.InexactFloat64(),
		Profit:   s.Profit.InexactFloat64(),
		Margin:   s.Margin.InexactFloat64(),
	}
}

type TotalInvestedResponse struct {
	TotalInvested float64 `json:"total_invested"`
}
