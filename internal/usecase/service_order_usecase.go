package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID = errors.New("invalid service order id")
)

// DefaultTenantID is used when the caller does not identify a tenant;
// single-workshop deployments never send one.
const DefaultTenantID = "oficina"

// OrderItemInput is one requested line. The unit price is deliberately
// absent: it is snapshotted from the stock item by the engine, never trusted
// from input.
type OrderItemInput struct {
	StockItemID string
	Quantity    int
}

// CreateServiceOrderInput carries everything needed to open an order.
type CreateServiceOrderInput struct {
	TenantID    string
	ClientID    string
	VehicleID   string
	Description string
	Status      entities.OrderStatus
	Priority    entities.OrderPriority
	LaborCost   decimal.Decimal
	Items       []OrderItemInput
	Date        time.Time
}

// ServiceOrderPatch is a partial update; nil fields are left untouched.
type ServiceOrderPatch struct {
	ClientID    *string
	VehicleID   *string
	Description *string
	Status      *entities.OrderStatus
	Priority    *entities.OrderPriority
	LaborCost   *decimal.Decimal
	Items       *[]OrderItemInput
}

// TouchesRestricted reports whether the patch changes anything a finalized
// order no longer permits. Status and priority stay patchable because the
// transition table itself rejects any move out of the terminal state.
func (p ServiceOrderPatch) TouchesRestricted() bool {
	return p.ClientID != nil || p.VehicleID != nil || p.Description != nil ||
		p.LaborCost != nil || p.Items != nil
}

// IServiceOrderUseCase owns the order lifecycle: status transitions, value
// derivation and stock reservation bookkeeping.
//
// Every mutating operation takes the caller's capability object and fails
// with ErrPermissionDenied when the service-orders edit permission is
// missing; authorization is decided here, not in the UI.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, actor entities.Actor, input CreateServiceOrderInput) (entities.ServiceOrder, error)
	Update(ctx context.Context, actor entities.Actor, orderID string, patch ServiceOrderPatch) (entities.ServiceOrder, error)
	Finalize(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, actor entities.Actor, orderID string) error
	GetByID(ctx context.Context, orderID string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Quota(ctx context.Context, tenantID string) (entities.QuotaCounter, error)
}

type ServiceOrderUseCase struct {
	orders interfaces.IServiceOrderRepository
	stock  interfaces.IStockItemRepository
	quota  interfaces.IQuotaRepository
	logger *zap.Logger
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	stock interfaces.IStockItemRepository,
	quota interfaces.IQuotaRepository,
	logger *zap.Logger,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{orders: orders, stock: stock, quota: quota, logger: logger}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, actor entities.Actor, input CreateServiceOrderInput) (entities.ServiceOrder, error) {
	if !actor.Can(entities.PermissionServiceOrders) {
		return entities.ServiceOrder{}, domainErrors.ErrPermissionDenied
	}

	input.TenantID = strings.TrimSpace(input.TenantID)
	if input.TenantID == "" {
		input.TenantID = DefaultTenantID
	}
	input.ClientID = strings.TrimSpace(input.ClientID)
	input.VehicleID = strings.TrimSpace(input.VehicleID)
	input.Description = strings.TrimSpace(input.Description)
	if input.Status == "" {
		input.Status = entities.OrderStatusEmAndamento
	}
	if input.Priority == "" {
		input.Priority = entities.OrderPriorityNormal
	}

	if fields := validateCreateInput(input); len(fields) > 0 {
		return entities.ServiceOrder{}, &domainErrors.ValidationError{Fields: fields}
	}

	// Early quota read for a friendly error; the create transaction re-checks
	// the counter so concurrent creations cannot race past this point.
	counter, err := u.quota.Get(ctx, input.TenantID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !counter.Allows() {
		return entities.ServiceOrder{}, &domainErrors.QuotaExceededError{Used: counter.Used, Total: counter.Total}
	}

	items, err := u.snapshotItems(ctx, input.Items, nil)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	labor := input.LaborCost
	if labor.IsNegative() {
		labor = decimal.Zero
	}
	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	now := time.Now().UTC()
	order := entities.ServiceOrder{
		ID:          uuid.NewString(),
		TenantID:    input.TenantID,
		ClientID:    input.ClientID,
		VehicleID:   input.VehicleID,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		LaborCost:   labor,
		Items:       items,
		Value:       RoundValue(ComputeTotal(labor, items)),
		Date:        date,
		CreatedBy:   actor.ID,
		EditedBy:    actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.orders.Create(ctx, order, entities.ReserveAll(items))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	u.logger.Info("service order created",
		zap.String("order_id", created.ID),
		zap.String("number", created.DisplayNumber()),
		zap.String("value", created.Value.String()),
		zap.Int("lines", len(created.Items)))
	return created, nil
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, actor entities.Actor, orderID string, patch ServiceOrderPatch) (entities.ServiceOrder, error) {
	if !actor.Can(entities.PermissionServiceOrders) {
		return entities.ServiceOrder{}, domainErrors.ErrPermissionDenied
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	current, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if current.ID == "" {
		return entities.ServiceOrder{}, domainErrors.ErrOrderNotFound
	}

	if current.Status == entities.OrderStatusFinalizada && patch.TouchesRestricted() {
		return entities.ServiceOrder{}, &domainErrors.OrderFinalizedError{OrderID: current.ID}
	}

	next := current
	var fields []string

	if patch.Status != nil {
		if !current.Status.CanTransitionTo(*patch.Status) {
			return entities.ServiceOrder{}, fmt.Errorf("%w: %s -> %s",
				domainErrors.ErrInvalidTransition, current.Status, *patch.Status)
		}
		next.Status = *patch.Status
	}
	if patch.ClientID != nil {
		next.ClientID = strings.TrimSpace(*patch.ClientID)
		if next.ClientID == "" {
			fields = append(fields, "client_id")
		}
	}
	if patch.VehicleID != nil {
		next.VehicleID = strings.TrimSpace(*patch.VehicleID)
		if next.VehicleID == "" {
			fields = append(fields, "vehicle_id")
		}
	}
	if patch.Description != nil {
		next.Description = strings.TrimSpace(*patch.Description)
		if next.Description == "" {
			fields = append(fields, "description")
		}
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			fields = append(fields, "priority")
		} else {
			next.Priority = *patch.Priority
		}
	}
	if patch.LaborCost != nil {
		next.LaborCost = *patch.LaborCost
		if next.LaborCost.IsNegative() {
			next.LaborCost = decimal.Zero
		}
	}
	if patch.Items != nil {
		for i, in := range *patch.Items {
			if strings.TrimSpace(in.StockItemID) == "" {
				fields = append(fields, fmt.Sprintf("items[%d].stock_item_id", i))
			}
			if in.Quantity < 1 {
				fields = append(fields, fmt.Sprintf("items[%d].quantity", i))
			}
		}
	}
	if len(fields) > 0 {
		return entities.ServiceOrder{}, &domainErrors.ValidationError{Fields: fields}
	}

	var deltas []entities.StockDelta
	if patch.Items != nil {
		items, err := u.snapshotItems(ctx, *patch.Items, current.Items)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		next.Items = items
		deltas = entities.DiffItems(current.Items, next.Items)
	}

	next.Value = RoundValue(ComputeTotal(next.LaborCost, next.Items))
	next.EditedBy = actor.ID
	next.UpdatedAt = time.Now().UTC()

	updated, err := u.orders.Update(ctx, next, deltas)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	u.logger.Info("service order updated",
		zap.String("order_id", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.String("value", updated.Value.String()),
		zap.Int("stock_deltas", len(deltas)))
	return updated, nil
}

func (u *ServiceOrderUseCase) Finalize(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error) {
	if !actor.Can(entities.PermissionServiceOrders) {
		return entities.ServiceOrder{}, domainErrors.ErrPermissionDenied
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	current, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if current.ID == "" {
		return entities.ServiceOrder{}, domainErrors.ErrOrderNotFound
	}

	// Idempotent: re-finalizing is a benign no-op, not a failure.
	if current.Status == entities.OrderStatusFinalizada {
		u.logger.Warn("service order already finalized", zap.String("order_id", current.ID))
		return current, nil
	}

	next := current
	next.Status = entities.OrderStatusFinalizada
	next.EditedBy = actor.ID
	next.UpdatedAt = time.Now().UTC()

	finalized, err := u.orders.Update(ctx, next, nil)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.logger.Info("service order finalized",
		zap.String("order_id", finalized.ID),
		zap.String("value", finalized.Value.String()))
	return finalized, nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, actor entities.Actor, orderID string) error {
	if !actor.Can(entities.PermissionServiceOrders) {
		return domainErrors.ErrPermissionDenied
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return domainErrors.ErrOrderNotFound
	}

	if err := u.orders.Delete(ctx, order, entities.ReleaseAll(order.Items)); err != nil {
		return err
	}
	u.logger.Info("service order deleted",
		zap.String("order_id", order.ID),
		zap.Int("released_lines", len(order.Items)))
	return nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, orderID string) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, domainErrors.ErrOrderNotFound
	}
	return order, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.orders.List(ctx)
}

func (u *ServiceOrderUseCase) Quota(ctx context.Context, tenantID string) (entities.QuotaCounter, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		tenantID = DefaultTenantID
	}
	return u.quota.Get(ctx, tenantID)
}

// snapshotItems turns requested lines into order items. Lines already on the
// order keep their snapshotted unit price and kind; new lines read both from
// the stock item at this moment and never again.
func (u *ServiceOrderUseCase) snapshotItems(ctx context.Context, inputs []OrderItemInput, existing []entities.OrderItem) ([]entities.OrderItem, error) {
	known := make(map[string]entities.OrderItem, len(existing))
	for _, it := range existing {
		known[it.StockItemID] = it
	}

	items := make([]entities.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		id := strings.TrimSpace(in.StockItemID)
		if prior, ok := known[id]; ok {
			items = append(items, entities.OrderItem{
				StockItemID: id,
				Quantity:    in.Quantity,
				UnitPrice:   prior.UnitPrice,
				Kind:        prior.Kind,
			})
			continue
		}

		stockItem, err := u.stock.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if stockItem.ID == "" {
			return nil, fmt.Errorf("%w: %s", domainErrors.ErrStockItemNotFound, id)
		}
		kind := stockItem.Kind
		if kind == "" {
			kind = entities.ItemKindProduto
		}
		items = append(items, entities.OrderItem{
			StockItemID: id,
			Quantity:    in.Quantity,
			UnitPrice:   stockItem.UnitPrice,
			Kind:        kind,
		})
	}
	return items, nil
}

func validateCreateInput(input CreateServiceOrderInput) []string {
	var fields []string
	if input.ClientID == "" {
		fields = append(fields, "client_id")
	}
	if input.VehicleID == "" {
		fields = append(fields, "vehicle_id")
	}
	if input.Description == "" {
		fields = append(fields, "description")
	}
	if !input.Status.Valid() {
		fields = append(fields, "status")
	}
	if !input.Priority.Valid() {
		fields = append(fields, "priority")
	}
	for i, in := range input.Items {
		if strings.TrimSpace(in.StockItemID) == "" {
			fields = append(fields, fmt.Sprintf("items[%d].stock_item_id", i))
		}
		if in.Quantity < 1 {
			fields = append(fields, fmt.Sprintf("items[%d].quantity", i))
		}
	}
	return fields
}
