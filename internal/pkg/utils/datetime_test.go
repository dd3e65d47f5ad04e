package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-03-01", "2024-03-01", 1},
		{"2024-03-01", "2024-03-02", 2},
		{"2024-03-01", "2024-03-05", 5},
		{"2024-02-27", "2024-03-01", 4}, // leap year
		{"2024-12-30", "2025-01-02", 4},
	}
	for _, c := range cases {
		got := DaysBetween(date(t, c.start), date(t, c.end))
		assert.Equal(t, c.want, got, "DaysBetween(%s, %s)", c.start, c.end)
	}
}

func TestDaysBetween_SymmetricAndAtLeastOne(t *testing.T) {
	pairs := [][2]string{
		{"2024-01-01", "2024-01-31"},
		{"2023-06-15", "2024-06-15"},
		{"2024-05-05", "2024-05-05"},
		{"2024-11-30", "2024-10-01"},
	}
	for _, p := range pairs {
		a, b := date(t, p[0]), date(t, p[1])
		assert.Equal(t, DaysBetween(a, b), DaysBetween(b, a))
		assert.GreaterOrEqual(t, DaysBetween(a, b), 1)
	}
}

func TestDaysBetween_PartialDayRoundsUp(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(start, end))
}

func TestHoursBetween(t *testing.T) {
	hours, err := HoursBetween("17:30", "19:30")
	require.NoError(t, err)
	assert.Equal(t, 2.0, hours)

	hours, err = HoursBetween("08:00", "08:45")
	require.NoError(t, err)
	assert.Equal(t, 0.75, hours)

	// overnight spans are not wrapped
	hours, err = HoursBetween("22:00", "02:00")
	require.NoError(t, err)
	assert.Equal(t, -20.0, hours)
}

func TestNormalizedHoursBetween(t *testing.T) {
	hours, err := NormalizedHoursBetween("22:00", "02:00")
	require.NoError(t, err)
	assert.Equal(t, 4.0, hours)

	hours, err = NormalizedHoursBetween("17:30", "19:30")
	require.NoError(t, err)
	assert.Equal(t, 2.0, hours)
}

func TestHoursBetween_InvalidClock(t *testing.T) {
	invalid := []string{"", "7", "24:00", "12:60", "ab:cd", "12:5", "12-30"}
	for _, s := range invalid {
		_, err := HoursBetween(s, "10:00")
		assert.Error(t, err, "clock %q", s)
		assert.False(t, IsValidClock(s), "clock %q", s)
	}
	assert.True(t, IsValidClock("9:05"))
	assert.True(t, IsValidClock("23:59"))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(date(t, "2024-02-14"))
	assert.Equal(t, "2024-02-01", first.Format(DateLayout))
	assert.Equal(t, "2024-02-29", last.Format(DateLayout))

	first, last = MonthBounds(date(t, "2023-12-31"))
	assert.Equal(t, "2023-12-01", first.Format(DateLayout))
	assert.Equal(t, "2023-12-31", last.Format(DateLayout))
}

func TestStartAndEndOfDay(t *testing.T) {
	ts := time.Date(2024, 7, 9, 13, 45, 12, 500, time.UTC)
	assert.Equal(t, time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
	assert.Equal(t, time.Date(2024, 7, 9, 23, 59, 59, 999000000, time.UTC), EndOfDay(ts))
}
