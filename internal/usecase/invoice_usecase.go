package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase/interfaces"
)

// EmissionCheck is the eligibility decision together with the line breakdown
// the external emitter needs to build the fiscal documents. Product lines
// feed a goods invoice, service lines plus labor feed a service invoice.
type EmissionCheck struct {
	Order         entities.ServiceOrder
	Decision      entities.EmissionDecision
	ProductLines  []entities.OrderItem
	ServiceLines  []entities.OrderItem
	LaborCost     decimal.Decimal
	DocumentTypes []entities.InvoiceType
}

// RecordInvoiceInput reports a document issued by the external subsystem.
type RecordInvoiceInput struct {
	Type     entities.InvoiceType
	IssuedAt time.Time
}

// IInvoiceUseCase is the invoice eligibility gate. It decides whether fiscal
// emission may be attempted for an order; building the document and its tax
// math stay external.

type IInvoiceUseCase interface {
	CheckEmission(ctx context.Context, orderID string) (EmissionCheck, error)
	RecordEmitted(ctx context.Context, actor entities.Actor, orderID string, input RecordInvoiceInput) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	orders   interfaces.IServiceOrderRepository
	invoices interfaces.IInvoiceRepository
	logger   *zap.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(orders interfaces.IServiceOrderRepository, invoices interfaces.IInvoiceRepository, logger *zap.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{orders: orders, invoices: invoices, logger: logger}
}

func (u *InvoiceUseCase) CheckEmission(ctx context.Context, orderID string) (EmissionCheck, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return EmissionCheck{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return EmissionCheck{}, err
	}
	if order.ID == "" {
		return EmissionCheck{}, domainErrors.ErrOrderNotFound
	}

	existing, err := u.invoices.ListByServiceOrderID(ctx, order.ID)
	if err != nil {
		return EmissionCheck{}, err
	}

	check := EmissionCheck{
		Order:     order,
		Decision:  entities.DecideEmission(order, existing),
		LaborCost: order.LaborCost,
	}
	for _, it := range order.Items {
		if it.Kind == entities.ItemKindServico {
			check.ServiceLines = append(check.ServiceLines, it)
		} else {
			check.ProductLines = append(check.ProductLines, it)
		}
	}
	if len(check.ProductLines) > 0 {
		check.DocumentTypes = append(check.DocumentTypes, entities.InvoiceTypeNFProduto)
	}
	if len(check.ServiceLines) > 0 || order.LaborCost.IsPositive() {
		check.DocumentTypes = append(check.DocumentTypes, entities.InvoiceTypeNFServico)
	}
	return check, nil
}

func (u *InvoiceUseCase) RecordEmitted(ctx context.Context, actor entities.Actor, orderID string, input RecordInvoiceInput) (entities.Invoice, error) {
	if !actor.Can(entities.PermissionServiceOrders) {
		return entities.Invoice{}, domainErrors.ErrPermissionDenied
	}

	check, err := u.CheckEmission(ctx, orderID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !check.Decision.Eligible {
		return entities.Invoice{}, &domainErrors.InvoiceNotEligibleError{
			OrderID: check.Order.ID,
			Reason:  string(check.Decision.Reason),
		}
	}

	if input.Type != entities.InvoiceTypeNFProduto && input.Type != entities.InvoiceTypeNFServico {
		return entities.Invoice{}, &domainErrors.ValidationError{Fields: []string{"type"}}
	}
	issuedAt := input.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now().UTC()
	}

	invoice := entities.Invoice{
		ID:             uuid.NewString(),
		ServiceOrderID: check.Order.ID,
		Type:           input.Type,
		Status:         entities.InvoiceStatusEmitida,
		IssuedAt:       issuedAt,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := u.invoices.Create(ctx, invoice)
	if err != nil {
		return entities.Invoice{}, err
	}
	u.logger.Info("invoice recorded",
		zap.String("order_id", check.Order.ID),
		zap.String("invoice_id", created.ID),
		zap.String("type", string(created.Type)))
	return created, nil
}
