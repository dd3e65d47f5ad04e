package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/timekeeping"
)

type timeEntryRepositoryImpl struct {
	*crud[timekeeping.TimeEntry]
}

func NewTimeEntryRepository(store *Store) timekeeping.TimeEntryRepository {
	return &timeEntryRepositoryImpl{&crud[timekeeping.TimeEntry]{
		store: store,
		table: store.timeEntries,
		id:    func(t timekeeping.TimeEntry) string { return t.ID },
		assign: func(t *timekeeping.TimeEntry, id string, now time.Time) {
			t.ID, t.CreatedAt, t.UpdatedAt = id, now, now
		},
		touch: func(t *timekeeping.TimeEntry, old timekeeping.TimeEntry, now time.Time) {
			t.CreatedAt, t.UpdatedAt = old.CreatedAt, now
		},
		notFound: timekeeping.ErrTimeEntryNotFound,
	}}
}

// FindByEmployeeDate implements timekeeping.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) FindByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (timekeeping.TimeEntry, bool, error) {
	entry, ok := r.first(ctx, func(t timekeeping.TimeEntry) bool {
		return t.EmployeeID == employeeID && t.Date.Equal(date)
	})
	return entry, ok, nil
}

type deviceRepositoryImpl struct {
	*crud[timekeeping.TimekeepingDevice]
}

func NewDeviceRepository(store *Store) timekeeping.DeviceRepository {
	return &deviceRepositoryImpl{&crud[timekeeping.TimekeepingDevice]{
		store: store,
		table: store.devices,
		id:    func(d timekeeping.TimekeepingDevice) string { return d.ID },
		assign: func(d *timekeeping.TimekeepingDevice, id string, now time.Time) {
			d.ID, d.CreatedAt, d.UpdatedAt = id, now, now
		},
		touch: func(d *timekeeping.TimekeepingDevice, old timekeeping.TimekeepingDevice, now time.Time) {
			d.CreatedAt, d.UpdatedAt = old.CreatedAt, now
		},
		notFound: timekeeping.ErrDeviceNotFound,
	}}
}

type rawTimeDataRepositoryImpl struct {
	store *Store
}

func NewRawTimeDataRepository(store *Store) timekeeping.RawTimeDataRepository {
	return &rawTimeDataRepositoryImpl{store: store}
}

// Create implements timekeeping.RawTimeDataRepository.
func (r *rawTimeDataRepositoryImpl) Create(ctx context.Context, raw timekeeping.RawTimeData) (timekeeping.RawTimeData, error) {
	unlock := r.store.write(ctx)
	defer unlock()

	raw.ID = newID()
	raw.CreatedAt = r.store.timestamp()
	r.store.rawTimeData.insert(raw.ID, raw)
	return raw, nil
}

// List returns punches in arrival order, optionally narrowed by processed flag.
func (r *rawTimeDataRepositoryImpl) List(ctx context.Context, processed *bool) ([]timekeeping.RawTimeData, error) {
	unlock := r.store.read(ctx)
	defer unlock()

	return r.store.rawTimeData.filter(func(raw timekeeping.RawTimeData) bool {
		return processed == nil || raw.Processed == *processed
	}), nil
}

// MarkProcessed flags the given punches and returns how many were changed.
func (r *rawTimeDataRepositoryImpl) MarkProcessed(ctx context.Context, ids []string) (int, error) {
	unlock := r.store.write(ctx)
	defer unlock()

	marked := 0
	for _, id := range ids {
		raw, ok := r.store.rawTimeData.get(id)
		if !ok || raw.Processed {
			continue
		}
		raw.Processed = true
		r.store.rawTimeData.replace(id, raw)
		marked++
	}
	return marked, nil
}
