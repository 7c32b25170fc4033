package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IStockItemRepository abstracts DynamoDB persistence for StockItem and its
// append-only purchase history.
//
// Replenish must apply the quantity increment and the history append
// atomically; history entries are never updated or deleted.

type IStockItemRepository interface {
	Create(ctx context.Context, item entities.StockItem) (entities.StockItem, error)
	GetByID(ctx context.Context, id string) (entities.StockItem, error)
	List(ctx context.Context) ([]entities.StockItem, error)
	Update(ctx context.Context, item entities.StockItem) (entities.StockItem, error)
	Delete(ctx context.Context, id string) error
	Replenish(ctx context.Context, entry entities.PurchaseHistoryEntry) (entities.StockItem, error)
	ListPurchases(ctx context.Context, stockItemID string) ([]entities.PurchaseHistoryEntry, error)
	ListAllPurchases(ctx context.Context) ([]entities.PurchaseHistoryEntry, error)
}
