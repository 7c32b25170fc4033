package request

import (
	"github.com/shopspring/decimal"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type CreateStockItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code"`
	Category    string  `json:"category"`
	Kind        string  `json:"kind"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"min_quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (r CreateStockItemRequest) ToInput() usecase.CreateStockItemInput {
	return usecase.CreateStockItemInput{
		Name:        r.Name,
		Code:        r.Code,
		Category:    r.Category,
		Kind:        entities.ItemKind(r.Kind),
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		UnitPrice:   decimal.NewFromFloat(r.UnitPrice),
	}
}

type UpdateStockItemRequest struct {
	Name        *string  `json:"name"`
	Code        *string  `json:"code"`
	Category    *string  `json:"category"`
	Kind        *string  `json:"kind"`
	MinQuantity *int     `json:"min_quantity"`
	UnitPrice   *float64 `json:"unit_price"`
}

func (r UpdateStockItemRequest) ToPatch() usecase.StockItemPatch {
	patch := usecase.StockItemPatch{
		Name:        r.Name,
		Code:        r.Code,
		Category:    r.Category,
		MinQuantity: r.MinQuantity,
	}
	if r.Kind != nil {
		k := entities.ItemKind(*r.Kind)
		patch.Kind = &k
	}
	if r.UnitPrice != nil {
		v := decimal.NewFromFloat(*r.UnitPrice)
		patch.UnitPrice = &v
	}
	return patch
}

type ReplenishStockRequest struct {
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	Supplier  string  `json:"supplier"`
	Date      string  `json:"date"`
}

func (r ReplenishStockRequest) ToInput() usecase.ReplenishInput {
	return usecase.ReplenishInput{
		Quantity:  r.Quantity,
		UnitPrice: decimal.NewFromFloat(r.UnitPrice),
		Supplier:  r.Supplier,
		Date:      parseDate(r.Date),
	}
}
