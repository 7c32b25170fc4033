package usecase

import (
	"context"
	"errors"
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
	ErrInvalidStockItemID = errors.New("invalid stock item id")
)

// CreateStockItemInput carries a new part or catalogued service.
type CreateStockItemInput struct {
	Name        string
	Code        string
	Category    string
	Kind        entities.ItemKind
	Quantity    int
	MinQuantity int
	UnitPrice   decimal.Decimal
}

// StockItemPatch is a partial update; nil fields are left untouched.
// On-hand quantity is deliberately not patchable: it only moves through
// order reservations/releases and Replenish, so the ledger invariant holds.
type StockItemPatch struct {
	Name        *string
	Code        *string
	Category    *string
	Kind        *entities.ItemKind
	MinQuantity *int
	UnitPrice   *decimal.Decimal
}

// ReplenishInput records a stock purchase.
type ReplenishInput struct {
	Quantity  int
	UnitPrice decimal.Decimal
	Supplier  string
	Date      time.Time
}

// IStockUseCase exposes stock catalogue management and replenishment.

type IStockUseCase interface {
	Create(ctx context.Context, actor entities.Actor, input CreateStockItemInput) (entities.StockItem, error)
	GetByID(ctx context.Context, id string) (entities.StockItem, error)
	List(ctx context.Context) ([]entities.StockItem, error)
	Update(ctx context.Context, actor entities.Actor, id string, patch StockItemPatch) (entities.StockItem, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
	Replenish(ctx context.Context, actor entities.Actor, id string, input ReplenishInput) (entities.StockItem, error)
	Purchases(ctx context.Context, id string) ([]entities.PurchaseHistoryEntry, error)
}

type StockUseCase struct {
	repo   interfaces.IStockItemRepository
	orders interfaces.IServiceOrderRepository
	logger *zap.Logger
}

var _ IStockUseCase = (*StockUseCase)(nil)

func NewStockUseCase(repo interfaces.IStockItemRepository, orders interfaces.IServiceOrderRepository, logger *zap.Logger) *StockUseCase {
	return &StockUseCase{repo: repo, orders: orders, logger: logger}
}

func (u *StockUseCase) Create(ctx context.Context, actor entities.Actor, input CreateStockItemInput) (entities.StockItem, error) {
	if !actor.Can(entities.PermissionStock) {
		return entities.StockItem{}, domainErrors.ErrPermissionDenied
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Code = strings.TrimSpace(input.Code)
	if input.Kind == "" {
		input.Kind = entities.ItemKindProduto
	}

	var fields []string
	if input.Name == "" {
		fields = append(fields, "name")
	}
	if input.Kind != entities.ItemKindProduto && input.Kind != entities.ItemKindServico {
		fields = append(fields, "kind")
	}
	if input.Quantity < 0 {
		fields = append(fields, "quantity")
	}
	if input.MinQuantity < 0 {
		fields = append(fields, "min_quantity")
	}
	if input.UnitPrice.IsNegative() {
		fields = append(fields, "unit_price")
	}
	if len(fields) > 0 {
		return entities.StockItem{}, &domainErrors.ValidationError{Fields: fields}
	}

	now := time.Now().UTC()
	item := entities.StockItem{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Code:        input.Code,
		Category:    strings.TrimSpace(input.Category),
		Kind:        input.Kind,
		Quantity:    input.Quantity,
		MinQuantity: input.MinQuantity,
		UnitPrice:   input.UnitPrice.Round(2),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, item)
}

func (u *StockUseCase) GetByID(ctx context.Context, id string) (entities.StockItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.StockItem{}, ErrInvalidStockItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.StockItem{}, err
	}
	if item.ID == "" {
		return entities.StockItem{}, domainErrors.ErrStockItemNotFound
	}
	return item, nil
}

func (u *StockUseCase) List(ctx context.Context) ([]entities.StockItem, error) {
	return u.repo.List(ctx)
}

func (u *StockUseCase) Update(ctx context.Context, actor entities.Actor, id string, patch StockItemPatch) (entities.StockItem, error) {
	if !actor.Can(entities.PermissionStock) {
		return entities.StockItem{}, domainErrors.ErrPermissionDenied
	}

	item, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.StockItem{}, err
	}

	var fields []string
	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
		if item.Name == "" {
			fields = append(fields, "name")
		}
	}
	if patch.Code != nil {
		item.Code = strings.TrimSpace(*patch.Code)
	}
	if patch.Category != nil {
		item.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Kind != nil {
		if *patch.Kind != entities.ItemKindProduto && *patch.Kind != entities.ItemKindServico {
			fields = append(fields, "kind")
		} else {
			item.Kind = *patch.Kind
		}
	}
	if patch.MinQuantity != nil {
		if *patch.MinQuantity < 0 {
			fields = append(fields, "min_quantity")
		} else {
			item.MinQuantity = *patch.MinQuantity
		}
	}
	if patch.UnitPrice != nil {
		if patch.UnitPrice.IsNegative() {
			fields = append(fields, "unit_price")
		} else {
			// Reprices future lines only; existing order lines keep their
			// snapshotted price.
			item.UnitPrice = patch.UnitPrice.Round(2)
		}
	}
	if len(fields) > 0 {
		return entities.StockItem{}, &domainErrors.ValidationError{Fields: fields}
	}

	item.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, item)
}

func (u *StockUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.Can(entities.PermissionStock) {
		return domainErrors.ErrPermissionDenied
	}
	item, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// A referenced item must stay. Deleting its row would strand the
	// release adjustments of every order still holding it, leaving those
	// orders impossible to edit or delete.
	orders, err := u.orders.List(ctx)
	if err != nil {
		return err
	}
	for _, order := range orders {
		for _, line := range order.Items {
			if line.StockItemID == item.ID {
				return domainErrors.ErrStockItemInUse
			}
		}
	}

	return u.repo.Delete(ctx, item.ID)
}

func (u *StockUseCase) Replenish(ctx context.Context, actor entities.Actor, id string, input ReplenishInput) (entities.StockItem, error) {
	if !actor.Can(entities.PermissionStock) {
		return entities.StockItem{}, domainErrors.ErrPermissionDenied
	}

	item, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.StockItem{}, err
	}

	var fields []string
	if input.Quantity < 1 {
		fields = append(fields, "quantity")
	}
	if input.UnitPrice.IsNegative() {
		fields = append(fields, "unit_price")
	}
	if len(fields) > 0 {
		return entities.StockItem{}, &domainErrors.ValidationError{Fields: fields}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	entry := entities.PurchaseHistoryEntry{
		ID:          uuid.NewString(),
		StockItemID: item.ID,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice.Round(2),
		Supplier:    strings.TrimSpace(input.Supplier),
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}

	updated, err := u.repo.Replenish(ctx, entry)
	if err != nil {
		return entities.StockItem{}, err
	}
	u.logger.Info("stock replenished",
		zap.String("stock_item_id", item.ID),
		zap.Int("quantity", entry.Quantity),
		zap.String("invested", entry.Invested().String()))
	return updated, nil
}

func (u *StockUseCase) Purchases(ctx context.Context, id string) ([]entities.PurchaseHistoryEntry, error) {
	if _, err := u.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.repo.ListPurchases(ctx, strings.TrimSpace(id))
}
