package request

import (
	"github.com/shopspring/decimal"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type OrderItemRequest struct {
	StockItemID string `json:"stock_item_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

// CreateServiceOrderRequest opens a new service order. Item prices are never
// accepted from the client; the engine snapshots them from stock.
type CreateServiceOrderRequest struct {
	ClientID    string             `json:"client_id" binding:"required"`
	VehicleID   string             `json:"vehicle_id" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Status      string             `json:"status"`
	Priority    string             `json:"priority"`
	LaborCost   float64            `json:"labor_cost"`
	Items       []OrderItemRequest `json:"items"`
	Date        string             `json:"date"`
}

func (r CreateServiceOrderRequest) ToInput(tenantID string) usecase.CreateServiceOrderInput {
	return usecase.CreateServiceOrderInput{
		TenantID:    tenantID,
		ClientID:    r.ClientID,
		VehicleID:   r.VehicleID,
		Description: r.Description,
		Status:      entities.OrderStatus(r.Status),
		Priority:    entities.OrderPriority(r.Priority),
		LaborCost:   decimal.NewFromFloat(r.LaborCost),
		Items:       toItemInputs(r.Items),
		Date:        parseDate(r.Date),
	}
}

// UpdateServiceOrderRequest is a partial update; absent fields stay as they
// are, which is why everything is a pointer.
type UpdateServiceOrderRequest struct {
	ClientID    *string             `json:"client_id"`
	VehicleID   *string             `json:"vehicle_id"`
	Description *string             `json:"description"`
	Status      *string             `json:"status"`
	Priority    *string             `json:"priority"`
	LaborCost   *float64            `json:"labor_cost"`
	Items       *[]OrderItemRequest `json:"items"`
}

func (r UpdateServiceOrderRequest) ToPatch() usecase.ServiceOrderPatch {
	patch := usecase.ServiceOrderPatch{
		ClientID:    r.ClientID,
		VehicleID:   r.VehicleID,
		Description: r.Description,
	}
	if r.Status != nil {
		s := entities.OrderStatus(*r.Status)
		patch.Status = &s
	}
	if r.Priority != nil {
		p := entities.OrderPriority(*r.Priority)
		patch.Priority = &p
	}
	if r.LaborCost != nil {
		v := decimal.NewFromFloat(*r.LaborCost)
		patch.LaborCost = &v
	}
	if r.Items != nil {
		items := toItemInputs(*r.Items)
		patch.Items = &items
	}
	return patch
}

func toItemInputs(items []OrderItemRequest) []usecase.OrderItemInput {
	inputs := make([]usecase.OrderItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, usecase.OrderItemInput{
			StockItemID: it.StockItemID,
			Quantity:    it.Quantity,
		})
	}
	return inputs
}
