package request

import (
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

// RecordInvoiceRequest reports a fiscal document issued by the external
// emitter.
type RecordInvoiceRequest struct {
	Type     string `json:"type" binding:"required"`
	IssuedAt string `json:"issued_at"`
}

func (r RecordInvoiceRequest) ToInput() usecase.RecordInvoiceInput {
	return usecase.RecordInvoiceInput{
		Type:     entities.InvoiceType(r.Type),
		IssuedAt: parseDate(r.IssuedAt),
	}
}
