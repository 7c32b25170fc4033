package repository

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Monetary amounts and timestamps are stored as strings: decimals keep their
// exact representation and RFC3339Nano sorts lexicographically, which the
// date-range GSI queries rely on.

func decimalToString(v decimal.Decimal) string {
	return v.String()
}

func stringToDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// monthKey is the YYYY-MM partition used by the month-index GSIs.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
