package schedule

import "errors"

var (
	ErrWorkShiftNotFound      = errors.New("work shift not found")
	ErrWorkShiftCodeExists    = errors.New("work shift with this code already exists")
	ErrInvalidRecurrenceRule  = errors.New("invalid recurrence rule")
	ErrOccurrenceRangeTooWide = errors.New("occurrence range must not exceed 366 days")
)
