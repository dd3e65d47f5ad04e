package report

import "context"

// WorkReportRepository defines the interface for work report storage
type WorkReportRepository interface {
	Create(ctx context.Context, r WorkReport) (WorkReport, error)
	GetByID(ctx context.Context, id string) (WorkReport, error)
	List(ctx context.Context) ([]WorkReport, error)
	Update(ctx context.Context, r WorkReport) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
