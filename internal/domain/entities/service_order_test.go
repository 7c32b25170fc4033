package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "in progress to awaiting parts", from: OrderStatusEmAndamento, to: OrderStatusAguardandoPecas, want: true},
		{name: "awaiting parts back to in progress", from: OrderStatusAguardandoPecas, to: OrderStatusEmAndamento, want: true},
		{name: "in progress to finalized", from: OrderStatusEmAndamento, to: OrderStatusFinalizada, want: true},
		{name: "awaiting parts to finalized", from: OrderStatusAguardandoPecas, to: OrderStatusFinalizada, want: true},
		{name: "finalized to in progress", from: OrderStatusFinalizada, to: OrderStatusEmAndamento, want: false},
		{name: "finalized to awaiting parts", from: OrderStatusFinalizada, to: OrderStatusAguardandoPecas, want: false},
		{name: "finalized to finalized", from: OrderStatusFinalizada, to: OrderStatusFinalizada, want: true},
		{name: "same status no-op", from: OrderStatusEmAndamento, to: OrderStatusEmAndamento, want: true},
		{name: "unknown target", from: OrderStatusEmAndamento, to: OrderStatus("cancelada"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Fatalf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestOrderItemSubtotal(t *testing.T) {
	t.Run("quantity times price", func(t *testing.T) {
		it := OrderItem{Quantity: 3, UnitPrice: decimal.NewFromFloat(12.5)}
		if got := it.Subtotal(); !got.Equal(decimal.NewFromFloat(37.5)) {
			t.Fatalf("expected 37.5, got %s", got)
		}
	})

	t.Run("negative price clamps to zero", func(t *testing.T) {
		it := OrderItem{Quantity: 2, UnitPrice: decimal.NewFromInt(-10)}
		if got := it.Subtotal(); !got.IsZero() {
			t.Fatalf("expected zero, got %s", got)
		}
	})

	t.Run("non-positive quantity yields zero", func(t *testing.T) {
		it := OrderItem{Quantity: 0, UnitPrice: decimal.NewFromInt(10)}
		if got := it.Subtotal(); !got.IsZero() {
			t.Fatalf("expected zero, got %s", got)
		}
	})
}

func TestDisplayNumber(t *testing.T) {
	o := ServiceOrder{ID: "9b2d7f11-3c44-4d55-8e66-aa77bb88cc99"}
	if got := o.DisplayNumber(); got != "OS-9B2D7F11" {
		t.Fatalf("expected OS-9B2D7F11, got %s", got)
	}
}

func TestDiffItems(t *testing.T) {
	t.Run("new order reserves every line", func(t *testing.T) {
		deltas := ReserveAll([]OrderItem{
			{StockItemID: "a", Quantity: 2},
			{StockItemID: "b", Quantity: 1},
		})
		if len(deltas) != 2 {
			t.Fatalf("expected 2 deltas, got %d", len(deltas))
		}
		if deltas[0].Delta() != -2 || deltas[1].Delta() != -1 {
			t.Fatalf("expected reservations, got %+v", deltas)
		}
	})

	t.Run("deleted order releases every line", func(t *testing.T) {
		deltas := ReleaseAll([]OrderItem{{StockItemID: "a", Quantity: 4}})
		if len(deltas) != 1 || deltas[0].Delta() != 4 {
			t.Fatalf("expected +4 release, got %+v", deltas)
		}
	})

	t.Run("quantity raise nets against prior holding", func(t *testing.T) {
		old := []OrderItem{{StockItemID: "a", Quantity: 2}}
		updated := []OrderItem{{StockItemID: "a", Quantity: 4}}
		deltas := DiffItems(old, updated)
		if len(deltas) != 1 {
			t.Fatalf("expected 1 delta, got %d", len(deltas))
		}
		if deltas[0].Prior != 2 || deltas[0].Requested != 4 || deltas[0].Delta() != -2 {
			t.Fatalf("expected -2 net reservation, got %+v", deltas[0])
		}
	})

	t.Run("unchanged line yields no delta", func(t *testing.T) {
		items := []OrderItem{{StockItemID: "a", Quantity: 2}}
		if deltas := DiffItems(items, items); len(deltas) != 0 {
			t.Fatalf("expected no deltas, got %+v", deltas)
		}
	})

	t.Run("removed line gives everything back", func(t *testing.T) {
		old := []OrderItem{
			{StockItemID: "a", Quantity: 2},
			{StockItemID: "b", Quantity: 3},
		}
		updated := []OrderItem{{StockItemID: "a", Quantity: 2}}
		deltas := DiffItems(old, updated)
		if len(deltas) != 1 || deltas[0].StockItemID != "b" || deltas[0].Delta() != 3 {
			t.Fatalf("expected +3 release of b, got %+v", deltas)
		}
	})

	t.Run("duplicate lines aggregate per stock item", func(t *testing.T) {
		updated := []OrderItem{
			{StockItemID: "a", Quantity: 1},
			{StockItemID: "a", Quantity: 2},
		}
		deltas := DiffItems(nil, updated)
		if len(deltas) != 1 || deltas[0].Requested != 3 {
			t.Fatalf("expected aggregated request of 3, got %+v", deltas)
		}
	})
}
