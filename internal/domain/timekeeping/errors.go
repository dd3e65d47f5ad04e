package timekeeping

import "errors"

var (
	ErrTimeEntryNotFound  = errors.New("time entry not found")
	ErrTimeEntryExists    = errors.New("a time entry already exists for this employee and date")
	ErrDeviceNotFound     = errors.New("timekeeping device not found")
	ErrDeviceInactive     = errors.New("timekeeping device is inactive")
	ErrDeviceSerialExists = errors.New("device serial number already registered")
)
