package fixtures

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// SeededDataIDs holds the ids assigned to the sample dataset
type SeededDataIDs struct {
	OrganizationID string

	// Department IDs by code
	DepartmentIDs map[string]string // e.g., "ENG" -> "uuid"

	// Position IDs by code
	PositionIDs map[string]string

	// Employee IDs by employee code
	EmployeeIDs map[string]string // e.g., "NV001" -> "uuid"

	LeaveTypeIDs    map[string]string
	OvertimeTypeIDs map[string]string
	WorkShiftIDs    map[string]string

	OvertimeIDs []string

	// User IDs by email
	UserIDs map[string]string
}

// NewSeededDataIDs creates a new SeededDataIDs with initialized maps
func NewSeededDataIDs() *SeededDataIDs {
	return &SeededDataIDs{
		DepartmentIDs:   make(map[string]string),
		PositionIDs:     make(map[string]string),
		EmployeeIDs:     make(map[string]string),
		LeaveTypeIDs:    make(map[string]string),
		OvertimeTypeIDs: make(map[string]string),
		WorkShiftIDs:    make(map[string]string),
		UserIDs:         make(map[string]string),
	}
}

// ==========================================
// DEFAULT POSITIONS
// ==========================================

// GetDefaultPositions returns standard job positions
func GetDefaultPositions() []position.Position {
	return []position.Position{
		{Code: "DIR", Name: "Director"},
		{Code: "MGR", Name: "Manager"},
		{Code: "LEAD", Name: "Team Lead"},
		{Code: "SENIOR", Name: "Senior Staff"},
		{Code: "STAFF", Name: "Staff"},
		{Code: "INTERN", Name: "Intern"},
	}
}

// ==========================================
// DEFAULT LEAVE TYPES
// ==========================================

// GetDefaultLeaveTypes returns the leave types every installation starts with
func GetDefaultLeaveTypes() []leave.LeaveType {
	return []leave.LeaveType{
		// Annual leave - 12 days per year
		{
			Code:           "ANNUAL",
			Name:           "Annual Leave",
			Description:    strPtr("Paid annual leave entitlement"),
			MaxDaysPerYear: intPtr(12),
			IsPaid:         true,
		},
		{
			Code:        "SICK",
			Name:        "Sick Leave",
			Description: strPtr("Sick leave, medical certificate required for more than one day"),
			IsPaid:      true,
		},
		{
			Code:           "MARRIAGE",
			Name:           "Marriage Leave",
			Description:    strPtr("Leave for the employee's own wedding"),
			MaxDaysPerYear: intPtr(3),
			IsPaid:         true,
		},
		{
			Code:           "BEREAVE",
			Name:           "Bereavement Leave",
			MaxDaysPerYear: intPtr(3),
			IsPaid:         true,
		},
		{
			Code:           "MATERNITY",
			Name:           "Maternity Leave",
			MaxDaysPerYear: intPtr(180),
			IsPaid:         true,
		},
		{
			Code:        "UNPAID",
			Name:        "Unpaid Leave",
			Description: strPtr("Leave without pay, subject to manager approval"),
			IsPaid:      false,
		},
	}
}

// ==========================================
// DEFAULT OVERTIME TYPES
// ==========================================

// nightUplift is applied on top of the day rate for hours worked between 22:00 and 06:00
var nightUplift = decimal.RequireFromString("1.3")

// GetDefaultOvertimeTypes returns the statutory overtime multipliers and their night variants
func GetDefaultOvertimeTypes() []overtime.OvertimeType {
	day := []overtime.OvertimeType{
		{Code: "WEEKDAY", Name: "Weekday overtime", Coefficient: decimal.RequireFromString("1.5")},
		{Code: "WEEKEND", Name: "Weekend overtime", Coefficient: decimal.NewFromInt(2)},
		{Code: "HOLIDAY", Name: "Public holiday overtime", Coefficient: decimal.NewFromInt(3)},
	}

	types := make([]overtime.OvertimeType, 0, len(day)*2)
	types = append(types, day...)
	for _, t := range day {
		types = append(types, overtime.OvertimeType{
			Code:        t.Code + "-NIGHT",
			Name:        t.Name + " (night)",
			Coefficient: t.Coefficient.Mul(nightUplift),
			Description: strPtr("Night shift rate: " + t.Coefficient.String() + " x 1.3"),
		})
	}
	return types
}

// ==========================================
// DEFAULT WORK SHIFTS
// ==========================================

// GetDefaultWorkShifts returns the office, night and weekend shifts
func GetDefaultWorkShifts(startDate time.Time) []schedule.WorkShift {
	return []schedule.WorkShift{
		{
			Code:           "OFFICE",
			Name:           "Standard Office Hours",
			StartTime:      "08:00",
			EndTime:        "17:00",
			BreakMinutes:   60,
			StartDate:      startDate,
			RecurrenceRule: strPtr("FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"),
		},
		{
			Code:           "NIGHT",
			Name:           "Night Shift",
			StartTime:      "22:00",
			EndTime:        "06:00",
			BreakMinutes:   30,
			StartDate:      startDate,
			RecurrenceRule: strPtr("FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR,SA"),
			Description:    strPtr("Ends on the following day"),
		},
		{
			Code:           "SAT-HALF",
			Name:           "Saturday Half Day",
			StartTime:      "08:00",
			EndTime:        "12:00",
			StartDate:      startDate,
			RecurrenceRule: strPtr("FREQ=WEEKLY;INTERVAL=2;BYDAY=SA"),
		},
	}
}
