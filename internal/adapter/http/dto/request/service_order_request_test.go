package request

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"oficina_xpto/internal/domain/entities"
)

func TestCreateServiceOrderRequestToInput(t *testing.T) {
	r := CreateServiceOrderRequest{
		ClientID:    "client-1",
		VehicleID:   "vehicle-1",
		Description: "troca de oleo",
		Status:      "aguardando_pecas",
		Priority:    "alta",
		LaborCost:   50,
		Items: []OrderItemRequest{
			{StockItemID: "item-1", Quantity: 2},
		},
		Date: "2026-03-10",
	}

	input := r.ToInput("tenant-1")
	if input.TenantID != "tenant-1" {
		t.Fatalf("expected tenant-1, got %s", input.TenantID)
	}
	if input.Status != entities.OrderStatusAguardandoPecas {
		t.Fatalf("expected aguardando_pecas, got %s", input.Status)
	}
	if input.Priority != entities.OrderPriorityAlta {
		t.Fatalf("expected alta, got %s", input.Priority)
	}
	if len(input.Items) != 1 || input.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", input.Items)
	}
	if input.Date != time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected date %s", input.Date)
	}
}

func TestUpdateServiceOrderRequestToPatch(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		patch := UpdateServiceOrderRequest{}.ToPatch()
		if patch.ClientID != nil || patch.Status != nil || patch.LaborCost != nil || patch.Items != nil {
			t.Fatalf("expected empty patch, got %+v", patch)
		}
		if patch.TouchesRestricted() {
			t.Fatalf("empty patch must not touch restricted fields")
		}
	})

	t.Run("present fields are converted", func(t *testing.T) {
		status := "finalizada"
		labor := 99.9
		items := []OrderItemRequest{{StockItemID: "item-1", Quantity: 3}}
		patch := UpdateServiceOrderRequest{
			Status:    &status,
			LaborCost: &labor,
			Items:     &items,
		}.ToPatch()

		if patch.Status == nil || *patch.Status != entities.OrderStatusFinalizada {
			t.Fatalf("expected finalizada status, got %+v", patch.Status)
		}
		if patch.LaborCost == nil || !patch.LaborCost.Equal(decimal.NewFromFloat(99.9)) {
			t.Fatalf("expected labor 99.9, got %+v", patch.LaborCost)
		}
		if patch.Items == nil || len(*patch.Items) != 1 || (*patch.Items)[0].StockItemID != "item-1" {
			t.Fatalf("expected item-1 line, got %+v", patch.Items)
		}
		if !patch.TouchesRestricted() {
			t.Fatalf("labor and items patch must touch restricted fields")
		}
	})
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "rfc3339", in: "2026-03-10T12:30:00Z", want: time.Date(2026, time.March, 10, 12, 30, 0, 0, time.UTC)},
		{name: "plain date", in: "2026-03-10", want: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{name: "blank", in: "   ", want: time.Time{}},
		{name: "garbage", in: "10/03/2026", want: time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseDate(tc.in); !got.Equal(tc.want) {
				t.Fatalf("parseDate(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}
