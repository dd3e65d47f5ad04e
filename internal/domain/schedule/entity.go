package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/teambition/rrule-go"
)

// WorkShift is a shift template. With a RecurrenceRule it repeats from StartDate,
// without one it occurs on StartDate only.
type WorkShift struct {
	ID             string
	Code           string
	Name           string
	StartTime      string // HH:MM
	EndTime        string // HH:MM, may be on the next day
	BreakMinutes   int
	StartDate      time.Time
	RecurrenceRule *string
	ExceptionDates []time.Time
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Hours is the paid length of the shift: end minus start, wrapped past midnight, minus the break.
func (s WorkShift) Hours() (float64, error) {
	hours, err := utils.NormalizedHoursBetween(s.StartTime, s.EndTime)
	if err != nil {
		return 0, err
	}
	return hours - float64(s.BreakMinutes)/60, nil
}

// ParseRecurrence builds the rule anchored at dtstart. A leading "RRULE:" is accepted.
func ParseRecurrence(rule string, dtstart time.Time) (*rrule.RRule, error) {
	rule = strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:")
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrenceRule, err)
	}
	opt.Dtstart = dtstart
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrenceRule, err)
	}
	return r, nil
}

// Occurrences lists the dates the shift takes place on within [from, to], both inclusive.
func (s WorkShift) Occurrences(from, to time.Time) ([]time.Time, error) {
	from, to = utils.StartOfDay(from), utils.EndOfDay(to)

	if s.RecurrenceRule == nil || strings.TrimSpace(*s.RecurrenceRule) == "" {
		if s.StartDate.Before(from) || s.StartDate.After(to) || s.isException(s.StartDate) {
			return []time.Time{}, nil
		}
		return []time.Time{s.StartDate}, nil
	}

	r, err := ParseRecurrence(*s.RecurrenceRule, s.StartDate)
	if err != nil {
		return nil, err
	}

	set := rrule.Set{}
	set.RRule(r)
	for _, d := range s.ExceptionDates {
		set.ExDate(d)
	}

	dates := set.Between(from, to, true)
	if dates == nil {
		dates = []time.Time{}
	}
	return dates, nil
}

func (s WorkShift) isException(d time.Time) bool {
	for _, ex := range s.ExceptionDates {
		if ex.Equal(d) {
			return true
		}
	}
	return false
}
