package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type StockItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Category    string    `json:"category"`
	Kind        string    `json:"kind"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LowStock    bool      `json:"low_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromStockItem(s entities.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:          s.ID,
		Name:        s.Name,
		Code:        s.Code,
		Category:    s.Category,
		Kind:        string(s.Kind),
		Quantity:    s.Quantity,
		MinQuantity: s.MinQuantity,
		UnitPrice:   s.UnitPrice.InexactFloat64(),
		LowStock:    s.LowStock(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromStockItems(items []entities.StockItem) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromStockItem(s))
	}
	return out
}

type PurchaseHistoryResponse struct {
	ID          string    `json:"id"`
	StockItemID string    `json:"stock_item_id"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Supplier    string    `json:"supplier"`
	Invested    float64   `json:"invested"`
	Date        time.Time `json:"date"`
}

func FromPurchases(entries []entities.PurchaseHistoryEntry) []PurchaseHistoryResponse {
	out := make([]PurchaseHistoryResponse, 0, len(entries))
	for _, p := range entries {
		out = append(out, PurchaseHistoryResponse{
			ID:          p.ID,
			StockItemID: p.StockItemID,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice.InexactFloat64(),
			Supplier:    p.Supplier,
			Invested:    p.Invested().InexactFloat64(),
			Date:        p.Date,
		})
	}
	return out
}
