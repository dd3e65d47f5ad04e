package timekeeping

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
)

type Source string

const (
	SourceManual Source = "manual"
	SourceDevice Source = "device"
)

// TimeEntry is one employee's attendance on one date.
type TimeEntry struct {
	ID          string
	EmployeeID  string
	WorkShiftID *string
	Date        time.Time
	CheckIn     *string // HH:MM
	CheckOut    *string // HH:MM
	Hours       *float64
	Source      Source
	Note        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Recalculate derives Hours when both punches are present. A check-out before the
// check-in is treated as the next day.
func (t *TimeEntry) Recalculate() error {
	if t.CheckIn == nil || t.CheckOut == nil {
		t.Hours = nil
		return nil
	}
	hours, err := utils.NormalizedHoursBetween(*t.CheckIn, *t.CheckOut)
	if err != nil {
		return err
	}
	t.Hours = &hours
	return nil
}

type DeviceStatus string

const (
	DeviceStatusActive   DeviceStatus = "active"
	DeviceStatusInactive DeviceStatus = "inactive"
)

var DeviceStatusValues = []string{string(DeviceStatusActive), string(DeviceStatusInactive)}

type TimekeepingDevice struct {
	ID           string
	Name         string
	SerialNumber string
	Location     *string
	IPAddress    *string
	Status       DeviceStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RawTimeData is a single punch read from a device, before it is folded into a TimeEntry.
type RawTimeData struct {
	ID           string
	DeviceID     string
	EmployeeCode string
	PunchedAt    time.Time
	Processed    bool
	CreatedAt    time.Time
}
