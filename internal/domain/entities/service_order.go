package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - An order is created "em_andamento" and may move back and forth to
//     "aguardando_pecas" while parts are on backorder.
//   - "finalizada" is terminal: the order becomes immutable except for
//     invoice-linkage metadata.

type OrderStatus string

const (
	OrderStatusEmAndamento     OrderStatus = "em_andamento"
	OrderStatusAguardandoPecas OrderStatus = "aguardando_pecas"
	OrderStatusFinalizada      OrderStatus = "finalizada"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusEmAndamento, OrderStatusAguardandoPecas, OrderStatusFinalizada:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is allowed.
// em_andamento and aguardando_pecas oscillate freely; finalizada is one-way.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	return s != OrderStatusFinalizada
}

// OrderPriority drives scheduling display only; no engine rule depends on it.

type OrderPriority string

const (
	OrderPriorityAlta   OrderPriority = "alta"
	OrderPriorityNormal OrderPriority = "normal"
	OrderPriorityBaixa  OrderPriority = "baixa"
)

func (p OrderPriority) Valid() bool {
	switch p {
	case OrderPriorityAlta, OrderPriorityNormal, OrderPriorityBaixa:
		return true
	}
	return false
}

// ItemKind tells which fiscal document type an order line contributes to.

type ItemKind string

const (
	ItemKindProduto ItemKind = "produto"
	ItemKindServico ItemKind = "servico"
)

// OrderItem is one stock line attached to a service order.
//
// UnitPrice is snapshotted from the stock item when the line is added and is
// never re-read afterwards; repricing the stock item does not reprice open
// orders. An item has no identity outside its order.
type OrderItem struct {
	StockItemID string
	Quantity    int
	UnitPrice   decimal.Decimal
	Kind        ItemKind
}

// Subtotal is quantity * unit price, with negative unit prices clamped to
// zero (defensive: never let a bad price row turn into negative revenue).
func (i OrderItem) Subtotal() decimal.Decimal {
	price := i.UnitPrice
	if price.IsNegative() {
		price = decimal.Zero
	}
	if i.Quantity < 1 {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ServiceOrder is one workshop job for one client/vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-date-index): status / date
//
// Value is derived from labor + items on every mutation and never trusted
// from input.
type ServiceOrder struct {
	ID          string
	TenantID    string
	ClientID    string
	VehicleID   string
	Description string
	Status      OrderStatus
	Priority    OrderPriority
	LaborCost   decimal.Decimal
	Items       []OrderItem
	Value       decimal.Decimal
	Date        time.Time
	CreatedBy   string
	EditedBy    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayNumber is the human-readable order number shown on screens and
// print-outs. It is derived from the true identifier and must never be used
// as a lookup key.
func (o ServiceOrder) DisplayNumber() string {
	compact := strings.ReplaceAll(o.ID, "-", "")
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return "OS-" + strings.ToUpper(compact)
}

// StockDelta is one pending change to a stock item's on-hand quantity,
// expressed as the move from the quantity the order already holds (Prior) to
// the quantity it wants (Requested). Negative Delta values are reservations,
// positive ones are releases.
type StockDelta struct {
	StockItemID string
	Prior       int
	Requested   int
}

// Delta is the signed on-hand adjustment: Prior - Requested.
func (d StockDelta) Delta() int {
	return d.Prior - d.Requested
}

// DiffItems computes the stock deltas needed to move the ledger from the old
// item snapshot to the new one. The arithmetic "give the order's own quantity
// back before checking the new request" falls out of the subtraction: a line
// going from 2 to 4 yields a single -2 adjustment against current on-hand.
func DiffItems(old, updated []OrderItem) []StockDelta {
	oldQty := make(map[string]int, len(old))
	for _, it := range old {
		oldQty[it.StockItemID] += it.Quantity
	}
	newQty := make(map[string]int, len(updated))
	for _, it := range updated {
		newQty[it.StockItemID] += it.Quantity
	}

	var deltas []StockDelta
	// Changed and added lines, in the order they appear in the new list.
	seen := make(map[string]bool, len(updated))
	for _, it := range updated {
		if seen[it.StockItemID] {
			continue
		}
		seen[it.StockItemID] = true
		if oldQty[it.StockItemID] != newQty[it.StockItemID] {
			deltas = append(deltas, StockDelta{
				StockItemID: it.StockItemID,
				Prior:       oldQty[it.StockItemID],
				Requested:   newQty[it.StockItemID],
			})
		}
	}
	// Removed lines give everything back.
	for _, it := range old {
		if seen[it.StockItemID] {
			continue
		}
		seen[it.StockItemID] = true
		deltas = append(deltas, StockDelta{
			StockItemID: it.StockItemID,
			Prior:       oldQty[it.StockItemID],
			Requested:   0,
		})
	}
	return deltas
}

// ReserveAll returns the deltas that reserve every line of a new order.
func ReserveAll(items []OrderItem) []StockDelta {
	return DiffItems(nil, items)
}

// ReleaseAll returns the deltas that give every line back, used when an
// order is deleted outright.
func ReleaseAll(items []OrderItem) []StockDelta {
	return DiffItems(items, nil)
}
