package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is one part (or catalogued service) tracked by the stock ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Quantity is the current on-hand count, already net of every reservation
// held by non-deleted orders. MinQuantity is a reorder threshold used for
// display only; the engine never blocks on it.
type StockItem struct {
	ID          string
	Name        string
	Code        string
	Category    string
	Kind        ItemKind
	Quantity    int
	MinQuantity int
	UnitPrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock reports whether the item is at or below its reorder threshold.
func (s StockItem) LowStock() bool {
	return s.MinQuantity > 0 && s.Quantity <= s.MinQuantity
}

// PurchaseHistoryEntry is one stock replenishment record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (stock_item_id-index): stock_item_id
//
// This is an append-only ledger: entries are never mutated or deleted. It
// backs the cumulative "money invested" figure in reporting.
type PurchaseHistoryEntry struct {
	ID          string
	StockItemID string
	Quantity    int
	UnitPrice   decimal.Decimal
	Supplier    string
	Date        time.Time
	CreatedAt   time.Time
}

// Invested is quantity * unit price for this replenishment.
func (p PurchaseHistoryEntry) Invested() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
