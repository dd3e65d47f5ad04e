package report

import "errors"

var (
	ErrWorkReportNotFound = errors.New("work report not found")
	ErrInvalidDateRange   = errors.New("week end date must not be before week start date")
)
