package model

// DashboardSummary is a flat mapping of metric name to count. A nil value
// marshals to JSON null and means the underlying lookup found nothing.
type DashboardSummary map[string]*int64

// Count returns a pointer suitable for a DashboardSummary value.
func Count(n int64) *int64 {
	return &n
}
