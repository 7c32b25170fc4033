package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type InvoiceResponse struct {
	ID             string    `json:"id"`
	ServiceOrderID string    `json:"service_order_id"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	IssuedAt       time.Time `json:"issued_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             inv.ID,
		ServiceOrderID: inv.ServiceOrderID,
		Type:           string(inv.Type),
		Status:         string(inv.Status),
		IssuedAt:       inv.IssuedAt,
		CreatedAt:      inv.CreatedAt,
	}
}

// EmissionCheckResponse is the eligibility verdict plus the line breakdown
// the external emitter consumes.
type EmissionCheckResponse struct {
	ServiceOrderID string              `json:"service_order_id"`
	Number         string              `json:"number"`
	Eligible       bool                `json:"eligible"`
	Reason         string              `json:"reason,omitempty"`
	ProductLines   []OrderItemResponse `json:"product_lines"`
	ServiceLines   []OrderItemResponse `json:"service_lines"`
	LaborCost      float64             `json:"labor_cost"`
	DocumentTypes  []string            `json:"document_types"`
}

func FromEmissionCheck(check usecase.EmissionCheck) EmissionCheckResponse {
	types := make([]string, 0, len(check.DocumentTypes))
	for _, t := range check.DocumentTypes {
		types = append(types, string(t))
	}
	return EmissionCheckResponse{
		ServiceOrderID: check.Order.ID,
		Number:         check.Order.DisplayNumber(),
		Eligible:       check.Decision.Eligible,
		Reason:         string(check.Decision.Reason),
		ProductLines:   fromOrderItems(check.ProductLines),
		ServiceLines:   fromOrderItems(check.ServiceLines),
		LaborCost:      check.LaborCost.InexactFloat64(),
		DocumentTypes:  types,
	}
}

func fromOrderItems(items []entities.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemResponse{
			StockItemID: it.StockItemID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			Kind:        string(it.Kind),
			Subtotal:    it.Subtotal().InexactFloat64(),
		})
	}
	return out
}
