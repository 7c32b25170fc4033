package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type OrderItemResponse struct {
	StockItemID string  `json:"stock_item_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Kind        string  `json:"kind"`
	Subtotal    float64 `json:"subtotal"`
}

type ServiceOrderResponse struct {
	ID          string              `json:"id"`
	Number      string              `json:"number"`
	TenantID    string              `json:"tenant_id"`
	ClientID    string              `json:"client_id"`
	VehicleID   string              `json:"vehicle_id"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	Priority    string              `json:"priority"`
	LaborCost   float64             `json:"labor_cost"`
	Items       []OrderItemResponse `json:"items"`
	Value       float64             `json:"value"`
	Date        time.Time           `json:"date"`
	CreatedBy   string              `json:"created_by"`
	EditedBy    string              `json:"edited_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			StockItemID: it.StockItemID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			Kind:        string(it.Kind),
			Subtotal:    it.Subtotal().InexactFloat64(),
		})
	}
	return ServiceOrderResponse{
		ID:          o.ID,
		Number:      o.DisplayNumber(),
		TenantID:    o.TenantID,
		ClientID:    o.ClientID,
		VehicleID:   o.VehicleID,
		Description: o.Description,
		Status:      string(o.Status),
		Priority:    string(o.Priority),
		LaborCost:   o.LaborCost.InexactFloat64(),
		Items:       items,
		Value:       o.Value.InexactFloat64(),
		Date:        o.Date,
		CreatedBy:   o.CreatedBy,
		EditedBy:    o.EditedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

type QuotaResponse struct {
	TenantID  string `json:"tenant_id"`
	Used      int    `json:"used"`
	Total     int    `json:"total"`
	Unlimited bool   `json:"unlimited"`
}

func FromQuota(q entities.QuotaCounter) QuotaResponse {
	return QuotaResponse{
		TenantID:  q.TenantID,
		Used:      q.Used,
		Total:     q.Total,
		Unlimited: q.Unlimited(),
	}
}
