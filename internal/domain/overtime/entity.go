package overtime

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// OvertimeType is reference data: the pay multiplier applied to overtime hours.
type OvertimeType struct {
	ID          string
	Code        string
	Name        string
	Coefficient decimal.Decimal
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Overtime struct {
	ID             string
	EmployeeID     string
	OvertimeTypeID string
	DepartmentID   string

	OvertimeDate time.Time
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	Hours        float64

	Reason *string

	workflow.Approval

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recalculate refreshes the derived hours. Without normalizeOvernight a span past midnight
// yields a negative value.
func (o *Overtime) Recalculate(normalizeOvernight bool) error {
	hoursBetween := utils.HoursBetween
	if normalizeOvernight {
		hoursBetween = utils.NormalizedHoursBetween
	}
	hours, err := hoursBetween(o.StartTime, o.EndTime)
	if err != nil {
		return err
	}
	o.Hours = hours
	return nil
}

// WeightedHours is hours x coefficient rounded to two places.
func WeightedHours(hours float64, coefficient decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(hours).Mul(coefficient).Round(2)
}
