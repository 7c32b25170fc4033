package entities

import "time"

// InvoiceType tells which fiscal document a record represents. Product lines
// feed a goods invoice (NF), service lines and labor feed a service invoice
// (NFS-e). The documents themselves are built by an external subsystem; this
// service only keeps the linkage records.

type InvoiceType string

const (
	InvoiceTypeNFProduto InvoiceType = "nf_produto"
	InvoiceTypeNFServico InvoiceType = "nfs_servico"
)

type InvoiceStatus string

const (
	InvoiceStatusEmitida   InvoiceStatus = "emitida"
	InvoiceStatusCancelada InvoiceStatus = "cancelada"
)

// Invoice is the linkage record for a fiscal document issued against a
// service order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_order_id-index): service_order_id
type Invoice struct {
	ID             string
	ServiceOrderID string
	Type           InvoiceType
	Status         InvoiceStatus
	IssuedAt       time.Time
	CreatedAt      time.Time
}

// EmissionBlockReason explains why emission may not be attempted.

type EmissionBlockReason string

const (
	EmissionBlockNotFinalized    EmissionBlockReason = "not_finalized"
	EmissionBlockAlreadyInvoiced EmissionBlockReason = "already_invoiced"
)

// EmissionDecision is the outcome of the invoice eligibility gate.
type EmissionDecision struct {
	Eligible bool
	Reason   EmissionBlockReason
}

// DecideEmission is the eligibility gate: emission may be attempted only for
// a finalized order with no invoice already referencing it. Pure, item
// contents play no part in the decision.
func DecideEmission(order ServiceOrder, existing []Invoice) EmissionDecision {
	if order.Status != OrderStatusFinalizada {
		return EmissionDecision{Eligible: false, Reason: EmissionBlockNotFinalized}
	}
	for _, inv := range existing {
		if inv.ServiceOrderID == order.ID {
			return EmissionDecision{Eligible: false, Reason: EmissionBlockAlreadyInvoiced}
		}
	}
	return EmissionDecision{Eligible: true}
}
