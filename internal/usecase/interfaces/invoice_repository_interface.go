package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for invoice linkage
// records. The fiscal documents themselves live in an external subsystem;
// only existence-by-order matters here.

type IInvoiceRepository interface {
	Create(ctx context.Context, invoice entities.Invoice) (entities.Invoice, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.Invoice, error)
}
