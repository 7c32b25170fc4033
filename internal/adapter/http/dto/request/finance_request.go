package request

import (
	"github.com/shopspring/decimal"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type CreateTransactionRequest struct {
	Type           string  `json:"type" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	ServiceOrderID string  `json:"service_order_id"`
	Date           string  `json:"date"`
}

func (r CreateTransactionRequest) ToInput() usecase.TransactionInput {
	return usecase.TransactionInput{
		Type:           entities.TransactionType(r.Type),
		Amount:         decimal.NewFromFloat(r.Amount),
		Description:    r.Description,
		ServiceOrderID: r.ServiceOrderID,
		Date:           parseDate(r.Date),
	}
}

type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Recurring   bool    `json:"recurring"`
	Date        string  `json:"date"`
}

func (r CreateExpenseRequest) ToInput() usecase.ExpenseInput {
	return usecase.ExpenseInput{
		Description: r.Description,
		Amount:      decimal.NewFromFloat(r.Amount),
		Recurring:   r.Recurring,
		Date:        parseDate(r.Date),
	}
}
