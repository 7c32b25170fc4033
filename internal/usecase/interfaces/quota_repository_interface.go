package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IQuotaRepository reads the tenant order-quota counter.
//
// The counter itself is mutated only inside service-order transactions (used
// goes up on create, down on delete); Get creates the default counter for an
// unseen tenant.

type IQuotaRepository interface {
	Get(ctx context.Context, tenantID string) (entities.QuotaCounter, error)
}
