package entities

import "testing"

func TestDecideEmission(t *testing.T) {
	finalized := ServiceOrder{ID: "os-1", Status: OrderStatusFinalizada}

	t.Run("not finalized", func(t *testing.T) {
		d := DecideEmission(ServiceOrder{ID: "os-1", Status: OrderStatusEmAndamento}, nil)
		if d.Eligible || d.Reason != EmissionBlockNotFinalized {
			t.Fatalf("expected not_finalized block, got %+v", d)
		}
	})

	t.Run("awaiting parts is not eligible either", func(t *testing.T) {
		d := DecideEmission(ServiceOrder{ID: "os-1", Status: OrderStatusAguardandoPecas}, nil)
		if d.Eligible || d.Reason != EmissionBlockNotFinalized {
			t.Fatalf("expected not_finalized block, got %+v", d)
		}
	})

	t.Run("already invoiced", func(t *testing.T) {
		existing := []Invoice{{ID: "inv-1", ServiceOrderID: "os-1"}}
		d := DecideEmission(finalized, existing)
		if d.Eligible || d.Reason != EmissionBlockAlreadyInvoiced {
			t.Fatalf("expected already_invoiced block, got %+v", d)
		}
	})

	t.Run("other order's invoice does not block", func(t *testing.T) {
		existing := []Invoice{{ID: "inv-1", ServiceOrderID: "os-2"}}
		d := DecideEmission(finalized, existing)
		if !d.Eligible {
			t.Fatalf("expected eligible, got %+v", d)
		}
	})

	t.Run("finalized with no invoice is eligible", func(t *testing.T) {
		d := DecideEmission(finalized, nil)
		if !d.Eligible || d.Reason != "" {
			t.Fatalf("expected eligible, got %+v", d)
		}
	})
}
