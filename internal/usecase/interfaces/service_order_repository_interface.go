package interfaces

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Create, Update and Delete take the stock deltas produced by the item-list
// diff and must apply order write, quota counter and every stock mutation in
// a single transaction: a failed line leaves nothing changed. Implementations
// translate conditional failures into the typed errors of
// internal/domain/errors (InsufficientStockError, QuotaExceededError).

type IServiceOrderRepository interface {
	Create(ctx context.Context, order entities.ServiceOrder, deltas []entities.StockDelta) (entities.ServiceOrder, error)
	Update(ctx context.Context, order entities.ServiceOrder, deltas []entities.StockDelta) (entities.ServiceOrder, error)
	Delete(ctx context.Context, order entities.ServiceOrder, deltas []entities.StockDelta) error
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ListFinalizedInRange(ctx context.Context, from, to time.Time) ([]entities.ServiceOrder, error)
}
