package entities

// QuotaCounter is the tenant-scoped ceiling on how many service orders may
// exist. Used is a live count across all statuses; Total comes from the
// tenant's plan, with 0 meaning unlimited.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
type QuotaCounter struct {
	TenantID string
	Used     int
	Total    int
}

// Unlimited reports whether the plan imposes no ceiling.
func (q QuotaCounter) Unlimited() bool {
	return q.Total == 0
}

// Allows reports whether one more order may be created.
func (q QuotaCounter) Allows() bool {
	return q.Unlimited() || q.Used < q.Total
}
