package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard aggregates every summary for the records matching criteria
	GetDashboard(ctx context.Context, criteria filter.Criteria) (*DashboardResponse, error)

	GetLeaveSummary(ctx context.Context, criteria filter.Criteria) (LeaveSummary, error)
	GetOvertimeSummary(ctx context.Context, criteria filter.Criteria) (OvertimeSummary, error)
	GetWorkReportSummary(ctx context.Context, criteria filter.Criteria) (WorkReportSummary, error)
}
