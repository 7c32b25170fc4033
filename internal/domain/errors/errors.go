package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across use cases and repositories.
var (
	ErrOrderNotFound       = errors.New("service order not found")
	ErrStockItemNotFound   = errors.New("stock item not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrStockItemInUse      = errors.New("stock item referenced by an order")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrOrderNotFinalized   = errors.New("service order not finalized")
	ErrPaymentNotSupported = errors.New("payment gateway not configured")
)

// InsufficientStockError is returned when a reservation asks for more than
// the ledger has on hand. Available already accounts for the quantity the
// same order holds, so callers can show the real headroom.
type InsufficientStockError struct {
	StockItemID string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: requested %d, available %d",
		e.StockItemID, e.Requested, e.Available)
}

// QuotaExceededError is returned when the tenant's order ceiling is reached.
type QuotaExceededError struct {
	Used  int
	Total int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("service order quota exceeded: %d of %d used", e.Used, e.Total)
}

// OrderFinalizedError is returned for any mutation of a finalized order
// beyond status metadata and invoice linkage.
type OrderFinalizedError struct {
	OrderID string
}

func (e *OrderFinalizedError) Error() string {
	return fmt.Sprintf("service order %s is finalized and cannot be edited", e.OrderID)
}

// ValidationError lists the input fields that failed domain validation. The
// caller is expected to correct them and re-submit.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// InvoiceNotEligibleError carries the eligibility gate's refusal reason.
type InvoiceNotEligibleError struct {
	OrderID string
	Reason  string
}

func (e *InvoiceNotEligibleError) Error() string {
	return fmt.Sprintf("invoice emission not eligible for order %s: %s", e.OrderID, e.Reason)
}
