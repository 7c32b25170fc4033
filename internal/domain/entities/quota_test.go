package entities

import "testing"

func TestQuotaCounterAllows(t *testing.T) {
	cases := []struct {
		name  string
		quota QuotaCounter
		want  bool
	}{
		{name: "zero total is unlimited", quota: QuotaCounter{Used: 999, Total: 0}, want: true},
		{name: "under the ceiling", quota: QuotaCounter{Used: 4, Total: 5}, want: true},
		{name: "at the ceiling", quota: QuotaCounter{Used: 5, Total: 5}, want: false},
		{name: "over the ceiling", quota: QuotaCounter{Used: 6, Total: 5}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.quota.Allows(); got != tc.want {
				t.Fatalf("Allows() = %v, want %v", got, tc.want)
			}
		})
	}
}
