package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type PaymentResponse struct {
	ID             string                 `json:"id"`
	ServiceOrderID string                 `json:"service_order_id"`
	Date           time.Time              `json:"date"`
	Status         string                 `json:"status"`
	MPPayload      map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		ServiceOrderID: p.ServiceOrderID,
		Date:           p.Date,
		Status:         string(p.Status),
		MPPayload:      p.MPPayload,
	}
}
