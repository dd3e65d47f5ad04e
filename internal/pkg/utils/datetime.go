package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// DaysBetween returns the inclusive number of calendar days covered by start and end.
// Argument order does not matter and the result is never below 1.
func DaysBetween(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := math.Ceil(float64(diff) / float64(24*time.Hour))
	return int(days) + 1
}

// ClockMinutes converts "HH:MM" into minutes since midnight.
func ClockMinutes(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock %q: expected HH:MM", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid clock %q: hour out of range", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock %q: minute out of range", clock)
	}
	return hours*60 + minutes, nil
}

// HoursBetween returns (end - start) / 60 using same-day minute totals.
// A span crossing midnight is not wrapped: 22:00 -> 02:00 yields -20.
func HoursBetween(start, end string) (float64, error) {
	startMinutes, err := ClockMinutes(start)
	if err != nil {
		return 0, err
	}
	endMinutes, err := ClockMinutes(end)
	if err != nil {
		return 0, err
	}
	return float64(endMinutes-startMinutes) / 60, nil
}

// NormalizedHoursBetween is HoursBetween with the end moved to the next day when it
// falls before start.
func NormalizedHoursBetween(start, end string) (float64, error) {
	hours, err := HoursBetween(start, end)
	if err != nil {
		return 0, err
	}
	if hours < 0 {
		hours += 24
	}
	return hours, nil
}

// IsValidClock reports whether s is a well-formed "HH:MM" value.
func IsValidClock(s string) bool {
	_, err := ClockMinutes(s)
	return err == nil
}

// ParseDate parses a "YYYY-MM-DD" string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// StartOfDay truncates t to 00:00:00.000 in its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay moves t to 23:59:59.999 in its location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// MonthBounds returns the first and last calendar day of the month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// Today returns the current date at midnight UTC.
func Today() time.Time {
	return StartOfDay(time.Now().UTC())
}
