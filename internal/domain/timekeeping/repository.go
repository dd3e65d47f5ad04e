package timekeeping

import (
	"context"
	"time"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	// FindByEmployeeDate returns found=false when the employee has no entry on date.
	FindByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (TimeEntry, bool, error)
	List(ctx context.Context) ([]TimeEntry, error)
	Update(ctx context.Context, entry TimeEntry) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type DeviceRepository interface {
	Create(ctx context.Context, device TimekeepingDevice) (TimekeepingDevice, error)
	GetByID(ctx context.Context, id string) (TimekeepingDevice, error)
	List(ctx context.Context) ([]TimekeepingDevice, error)
	Update(ctx context.Context, device TimekeepingDevice) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RawTimeDataRepository interface {
	Create(ctx context.Context, raw RawTimeData) (RawTimeData, error)
	List(ctx context.Context, processed *bool) ([]RawTimeData, error)
	MarkProcessed(ctx context.Context, ids []string) (int, error)
}
