package memory

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/report"
)

type workReportRepositoryImpl struct {
	*crud[report.WorkReport]
}

func NewWorkReportRepository(store *Store) report.WorkReportRepository {
	return &workReportRepositoryImpl{&crud[report.WorkReport]{
		store: store,
		table: store.workReports,
		id:    func(r report.WorkReport) string { return r.ID },
		assign: func(r *report.WorkReport, id string, now time.Time) {
			r.ID, r.CreatedAt, r.UpdatedAt = id, now, now
		},
		touch: func(r *report.WorkReport, old report.WorkReport, now time.Time) {
			r.CreatedAt, r.UpdatedAt = old.CreatedAt, now
		},
		notFound: report.ErrWorkReportNotFound,
	}}
}
