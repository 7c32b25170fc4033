package usecase

import (
	"testing"

	"github.com/shopspring/decimal"

	"oficina_xpto/internal/domain/entities"
)

func TestComputeTotal(t *testing.T) {
	t.Run("labor plus item lines", func(t *testing.T) {
		items := []entities.OrderItem{
			{StockItemID: "a", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
			{StockItemID: "b", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
		}
		got := ComputeTotal(decimal.NewFromInt(50), items)
		if !got.Equal(decimal.NewFromInt(75)) {
			t.Fatalf("expected 75, got %s", got)
		}
	})

	t.Run("negative labor clamps to zero", func(t *testing.T) {
		items := []entities.OrderItem{{StockItemID: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(30)}}
		got := ComputeTotal(decimal.NewFromInt(-100), items)
		if !got.Equal(decimal.NewFromInt(30)) {
			t.Fatalf("expected 30, got %s", got)
		}
	})

	t.Run("negative line price contributes nothing", func(t *testing.T) {
		items := []entities.OrderItem{{StockItemID: "a", Quantity: 3, UnitPrice: decimal.NewFromInt(-5)}}
		got := ComputeTotal(decimal.NewFromInt(40), items)
		if !got.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("expected 40, got %s", got)
		}
	})

	t.Run("empty order is labor only", func(t *testing.T) {
		got := ComputeTotal(decimal.NewFromFloat(79.9), nil)
		if !got.Equal(decimal.NewFromFloat(79.9)) {
			t.Fatalf("expected 79.9, got %s", got)
		}
	})

	t.Run("intermediate sums keep full precision", func(t *testing.T) {
		// Three lines at 0.333 each; rounding per line would give 0.99,
		// rounding once at the end gives 1.00.
		items := []entities.OrderItem{
			{StockItemID: "a", Quantity: 1, UnitPrice: decimal.NewFromFloat(0.333)},
			{StockItemID: "b", Quantity: 1, UnitPrice: decimal.NewFromFloat(0.333)},
			{StockItemID: "c", Quantity: 1, UnitPrice: decimal.NewFromFloat(0.333)},
		}
		total := ComputeTotal(decimal.Zero, items)
		if !total.Equal(decimal.NewFromFloat(0.999)) {
			t.Fatalf("expected unrounded 0.999, got %s", total)
		}
		if got := RoundValue(total); !got.Equal(decimal.NewFromInt(1)) {
			t.Fatalf("expected 1.00 after rounding, got %s", got)
		}
	})
}

func TestRoundValue(t *testing.T) {
	cases := []struct {
		name string
		in   decimal.Decimal
		want decimal.Decimal
	}{
		{name: "half rounds up", in: decimal.NewFromFloat(10.005), want: decimal.NewFromFloat(10.01)},
		{name: "truncating case", in: decimal.NewFromFloat(10.004), want: decimal.NewFromFloat(10.00)},
		{name: "already cents", in: decimal.NewFromFloat(10.10), want: decimal.NewFromFloat(10.10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoundValue(tc.in); !got.Equal(tc.want) {
				t.Fatalf("RoundValue(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}
