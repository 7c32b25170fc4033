package usecase

import (
	"github.com/shopspring/decimal"

	"oficina_xpto/internal/domain/entities"
)

// ComputeTotal derives an order's value from labor cost plus its item lines.
//
// Pure, no I/O. Negative labor is clamped to zero and each line clamps its
// own bad inputs, so a corrupt row degrades to "free" instead of producing a
// negative total. No rounding happens here; intermediate sums keep full
// precision and RoundValue is applied once at the point of persistence to
// avoid cumulative drift.
func ComputeTotal(laborCost decimal.Decimal, items []entities.OrderItem) decimal.Decimal {
	total := laborCost
	if total.IsNegative() {
		total = decimal.Zero
	}
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// RoundValue rounds a monetary amount to cents for persistence.
func RoundValue(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}
