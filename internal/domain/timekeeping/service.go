package timekeeping

import (
	"context"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
)

type TimekeepingService interface {
	// Time entries
	CreateTimeEntry(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error)
	ListTimeEntries(ctx context.Context, criteria filter.Criteria) ([]TimeEntryResponse, error)
	UpdateTimeEntry(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
	DeleteTimeEntry(ctx context.Context, id string) error

	// Devices
	CreateDevice(ctx context.Context, req CreateDeviceRequest) (DeviceResponse, error)
	ListDevices(ctx context.Context) ([]DeviceResponse, error)
	UpdateDevice(ctx context.Context, req UpdateDeviceRequest) (DeviceResponse, error)
	DeleteDevice(ctx context.Context, id string) error

	// Raw punches
	IngestRawData(ctx context.Context, req IngestRawDataRequest) ([]RawTimeDataResponse, error)
	ListRawData(ctx context.Context, processed *bool) ([]RawTimeDataResponse, error)
	// ProcessRawData folds unprocessed punches into device-sourced time entries.
	ProcessRawData(ctx context.Context) (ProcessResult, error)
}
