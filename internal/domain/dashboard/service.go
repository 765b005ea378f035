package dashboard

import "context"

type Service interface {
	// GetDashboard derives the overview stats from the current workforce
	// snapshot. An empty collection yields zero counts and a zero average,
	// never NaN.
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
