package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkShift_Hours(t *testing.T) {
	day := WorkShift{StartTime: "08:00", EndTime: "17:00", BreakMinutes: 60}
	hours, err := day.Hours()
	require.NoError(t, err)
	assert.Equal(t, 8.0, hours)

	night := WorkShift{StartTime: "22:00", EndTime: "06:00", BreakMinutes: 30}
	hours, err = night.Hours()
	require.NoError(t, err)
	assert.Equal(t, 7.5, hours)
}

func TestWorkShift_OccurrencesWithoutRule(t *testing.T) {
	s := WorkShift{StartDate: date(2024, 6, 5)}

	dates, err := s.Occurrences(date(2024, 6, 1), date(2024, 6, 30))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, 6, 5)}, dates)

	dates, err = s.Occurrences(date(2024, 7, 1), date(2024, 7, 31))
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestWorkShift_OccurrencesWeekly(t *testing.T) {
	rule := "FREQ=WEEKLY;BYDAY=MO,WE,FR"
	s := WorkShift{StartDate: date(2024, 6, 3), RecurrenceRule: &rule}

	dates, err := s.Occurrences(date(2024, 6, 3), date(2024, 6, 9))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, 6, 3), date(2024, 6, 5), date(2024, 6, 7)}, dates)
}

func TestWorkShift_OccurrencesSkipExceptions(t *testing.T) {
	rule := "RRULE:FREQ=DAILY"
	s := WorkShift{
		StartDate:      date(2024, 6, 1),
		RecurrenceRule: &rule,
		ExceptionDates: []time.Time{date(2024, 6, 2)},
	}

	dates, err := s.Occurrences(date(2024, 6, 1), date(2024, 6, 3))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, 6, 1), date(2024, 6, 3)}, dates)
}

func TestParseRecurrence_Invalid(t *testing.T) {
	_, err := ParseRecurrence("FREQ=SOMETIMES", date(2024, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidRecurrenceRule)
}
