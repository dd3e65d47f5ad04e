package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"golang.org/x/crypto/bcrypt"
)

// Options controls the seeded login accounts.
type Options struct {
	AdminEmail    string
	AdminPassword string
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

const (
	ManagerEmail  = "manager@hris.local"
	EmployeeEmail = "employee@hris.local"
)

type seedEmployee struct {
	code, name, email, gender string
	hired                     time.Time
	departments               []string
	position                  string
}

var sampleEmployees = []seedEmployee{
	{"NV001", "Nguyen Van An", "an.nguyen@hris.local", "male", date(2019, 3, 1), []string{"BOD"}, "DIR"},
	{"NV002", "Tran Thi Binh", "binh.tran@hris.local", "female", date(2020, 7, 15), []string{"ENG"}, "MGR"},
	{"NV003", "Le Van Cuong", "cuong.le@hris.local", "male", date(2021, 1, 4), []string{"ENG"}, "SENIOR"},
	{"NV004", "Pham Thi Dung", "dung.pham@hris.local", "female", date(2022, 5, 9), []string{"ENG", "HR"}, "STAFF"},
	{"NV005", "Hoang Van Em", "em.hoang@hris.local", "male", date(2021, 9, 20), []string{"SALES"}, "LEAD"},
	{"NV006", "Vo Thi Phuong", "phuong.vo@hris.local", "female", date(2023, 2, 1), []string{"SALES"}, "STAFF"},
	{"NV007", "Dang Van Giang", "giang.dang@hris.local", "male", date(2023, 8, 14), []string{"HR"}, "STAFF"},
}

type seedOvertime struct {
	employee, department, overtimeType string
	day                                time.Time
	start, end                         string
	status                             workflow.Status
}

// sampleOvertimes are the twelve requests of the sample dataset, spread over three
// departments and every workflow status.
var sampleOvertimes = []seedOvertime{
	{"NV003", "ENG", "WEEKDAY", date(2024, 6, 3), "17:30", "19:30", workflow.StatusApproved},
	{"NV003", "ENG", "WEEKDAY", date(2024, 6, 5), "17:30", "20:00", workflow.StatusApproved},
	{"NV004", "ENG", "WEEKEND", date(2024, 6, 8), "08:00", "12:00", workflow.StatusDepartmentApproved},
	{"NV004", "ENG", "WEEKDAY", date(2024, 6, 11), "18:00", "21:00", workflow.StatusPending},
	{"NV002", "ENG", "WEEKDAY-NIGHT", date(2024, 6, 12), "22:00", "02:00", workflow.StatusPending},
	{"NV005", "SALES", "WEEKDAY", date(2024, 6, 4), "17:00", "19:00", workflow.StatusApproved},
	{"NV005", "SALES", "HOLIDAY", date(2024, 6, 1), "09:00", "13:00", workflow.StatusRejected},
	{"NV006", "SALES", "WEEKEND", date(2024, 6, 15), "09:00", "15:00", workflow.StatusPending},
	{"NV006", "SALES", "WEEKDAY", date(2024, 6, 18), "17:30", "18:30", workflow.StatusDepartmentApproved},
	{"NV007", "HR", "WEEKDAY", date(2024, 6, 6), "17:00", "18:30", workflow.StatusApproved},
	{"NV007", "HR", "WEEKDAY", date(2024, 6, 20), "17:00", "20:00", workflow.StatusRejected},
	{"NV004", "HR", "WEEKEND", date(2024, 6, 22), "08:00", "11:00", workflow.StatusPending},
}

// Seed loads the sample organization into store. Ids are assigned by the repositories.
func Seed(ctx context.Context, store *memory.Store, opts Options) (*SeededDataIDs, error) {
	ids := NewSeededDataIDs()

	err := memory.WithTransaction(ctx, store, func(ctx context.Context) error {
		steps := []struct {
			name string
			fn   func(context.Context, *memory.Store, *SeededDataIDs) error
		}{
			{"reference data", seedReferenceData},
			{"organization", seedOrganization},
			{"employees", seedEmployees},
			{"requests", seedRequests},
		}
		for _, step := range steps {
			if err := step.fn(ctx, store, ids); err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.name, err)
			}
		}
		if err := seedUsers(ctx, store, ids, opts); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Sample data seeded",
		"employees", len(ids.EmployeeIDs),
		"departments", len(ids.DepartmentIDs),
		"overtimes", len(ids.OvertimeIDs),
		"users", len(ids.UserIDs),
	)
	return ids, nil
}

func seedReferenceData(ctx context.Context, store *memory.Store, ids *SeededDataIDs) error {
	positionRepo := memory.NewPositionRepository(store)
	for _, p := range GetDefaultPositions() {
		created, err := positionRepo.Create(ctx, p)
		if err != nil {
			return err
		}
		ids.PositionIDs[created.Code] = created.ID
	}

	leaveTypeRepo := memory.NewLeaveTypeRepository(store)
	for _, lt := range GetDefaultLeaveTypes() {
		created, err := leaveTypeRepo.Create(ctx, lt)
		if err != nil {
			return err
		}
		ids.LeaveTypeIDs[created.Code] = created.ID
	}

	overtimeTypeRepo := memory.NewOvertimeTypeRepository(store)
	for _, ot := range GetDefaultOvertimeTypes() {
		created, err := overtimeTypeRepo.Create(ctx, ot)
		if err != nil {
			return err
		}
		ids.OvertimeTypeIDs[created.Code] = created.ID
	}

	shiftRepo := memory.NewWorkShiftRepository(store)
	for _, s := range GetDefaultWorkShifts(date(2024, 1, 1)) {
		created, err := shiftRepo.Create(ctx, s)
		if err != nil {
			return err
		}
		ids.WorkShiftIDs[created.Code] = created.ID
	}
	return nil
}

func seedOrganization(ctx context.Context, store *memory.Store, ids *SeededDataIDs) error {
	org, err := memory.NewOrganizationRepository(store).Create(ctx, organization.Organization{
		Name:    "HRIS Lite Demo Company",
		Code:    "DEMO",
		Address: strPtr("12 Nguyen Hue, District 1, Ho Chi Minh City"),
		Email:   strPtr("contact@hris.local"),
	})
	if err != nil {
		return err
	}
	ids.OrganizationID = org.ID

	departmentRepo := memory.NewDepartmentRepository(store)
	for _, d := range []organization.Department{
		{Code: "BOD", Name: "Board of Directors"},
		{Code: "ENG", Name: "Engineering"},
		{Code: "SALES", Name: "Sales"},
		{Code: "HR", Name: "Human Resources"},
	} {
		d.OrganizationID = org.ID
		created, err := departmentRepo.Create(ctx, d)
		if err != nil {
			return err
		}
		ids.DepartmentIDs[created.Code] = created.ID
	}
	return nil
}

func seedEmployees(ctx context.Context, store *memory.Store, ids *SeededDataIDs) error {
	employeeRepo := memory.NewEmployeeRepository(store)
	assignmentRepo := memory.NewAssignmentRepository(store)

	for _, se := range sampleEmployees {
		gender := employee.Gender(se.gender)
		e, err := employeeRepo.Create(ctx, employee.Employee{
			EmployeeCode:     se.code,
			FullName:         se.name,
			Email:            se.email,
			Gender:           &gender,
			HireDate:         se.hired,
			EmploymentStatus: employee.EmploymentStatusActive,
		})
		if err != nil {
			return err
		}
		ids.EmployeeIDs[se.code] = e.ID

		for _, code := range se.departments {
			m := employee.DepartmentMembership{EmployeeID: e.ID, DepartmentID: ids.DepartmentIDs[code]}
			if _, err := assignmentRepo.AddDepartmentMembership(ctx, m); err != nil {
				return err
			}
		}
		a := employee.PositionAssignment{EmployeeID: e.ID, PositionID: ids.PositionIDs[se.position]}
		if _, err := assignmentRepo.AddPositionAssignment(ctx, a); err != nil {
			return err
		}
	}

	// Department heads
	departmentRepo := memory.NewDepartmentRepository(store)
	for deptCode, empCode := range map[string]string{"BOD": "NV001", "ENG": "NV002", "SALES": "NV005"} {
		d, err := departmentRepo.GetByID(ctx, ids.DepartmentIDs[deptCode])
		if err != nil {
			return err
		}
		d.ManagerID = strPtr(ids.EmployeeIDs[empCode])
		if _, err := departmentRepo.Update(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func seedRequests(ctx context.Context, store *memory.Store, ids *SeededDataIDs) error {
	approver := ids.EmployeeIDs["NV001"]
	deptHead := ids.EmployeeIDs["NV002"]

	overtimeRepo := memory.NewOvertimeRepository(store)
	for _, so := range sampleOvertimes {
		o := overtime.Overtime{
			EmployeeID:     ids.EmployeeIDs[so.employee],
			OvertimeTypeID: ids.OvertimeTypeIDs[so.overtimeType],
			DepartmentID:   ids.DepartmentIDs[so.department],
			OvertimeDate:   so.day,
			StartTime:      so.start,
			EndTime:        so.end,
			Approval:       sampleApproval(so.status, so.day, deptHead, approver),
		}
		if err := o.Recalculate(false); err != nil {
			return err
		}
		created, err := overtimeRepo.Create(ctx, o)
		if err != nil {
			return err
		}
		ids.OvertimeIDs = append(ids.OvertimeIDs, created.ID)
	}

	leaveRepo := memory.NewLeaveRepository(store)
	for _, l := range []leave.Leave{
		{EmployeeID: ids.EmployeeIDs["NV003"], LeaveTypeID: ids.LeaveTypeIDs["ANNUAL"], DepartmentID: ids.DepartmentIDs["ENG"],
			StartDate: date(2024, 6, 24), EndDate: date(2024, 6, 26), Reason: strPtr("Family trip"),
			Approval: sampleApproval(workflow.StatusApproved, date(2024, 6, 17), deptHead, approver)},
		{EmployeeID: ids.EmployeeIDs["NV006"], LeaveTypeID: ids.LeaveTypeIDs["SICK"], DepartmentID: ids.DepartmentIDs["SALES"],
			StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 10), Reason: strPtr("Fever"),
			Approval: sampleApproval(workflow.StatusDepartmentApproved, date(2024, 6, 10), deptHead, approver)},
		{EmployeeID: ids.EmployeeIDs["NV007"], LeaveTypeID: ids.LeaveTypeIDs["ANNUAL"], DepartmentID: ids.DepartmentIDs["HR"],
			StartDate: date(2024, 7, 1), EndDate: date(2024, 7, 5),
			Approval: workflow.NewRequestApproval()},
	} {
		l.Recalculate()
		if _, err := leaveRepo.Create(ctx, l); err != nil {
			return err
		}
	}

	reportRepo := memory.NewWorkReportRepository(store)
	for _, wr := range []report.WorkReport{
		{EmployeeID: ids.EmployeeIDs["NV003"], WeekStartDate: date(2024, 6, 3), WeekEndDate: date(2024, 6, 7),
			TasksCompleted: "Leave approval API", TasksInProgress: "Dashboard filters", NextWeekPlans: "Notification stream",
			Approval: sampleApproval(workflow.StatusApproved, date(2024, 6, 7), "", approver)},
		{EmployeeID: ids.EmployeeIDs["NV004"], WeekStartDate: date(2024, 6, 3), WeekEndDate: date(2024, 6, 7),
			TasksCompleted: "Onboarding checklist", Issues: "Waiting for laptop",
			Approval: sampleApproval(workflow.StatusSubmitted, date(2024, 6, 7), "", approver)},
		{EmployeeID: ids.EmployeeIDs["NV006"], WeekStartDate: date(2024, 6, 10), WeekEndDate: date(2024, 6, 14),
			TasksCompleted: "Client visits in District 7",
			Approval:       workflow.NewReportApproval()},
	} {
		if _, err := reportRepo.Create(ctx, wr); err != nil {
			return err
		}
	}
	return nil
}

// sampleApproval fills the audit trail a record would carry after reaching status on day.
func sampleApproval(status workflow.Status, day time.Time, deptHead, approver string) workflow.Approval {
	a := workflow.Approval{Status: status}
	switch status {
	case workflow.StatusSubmitted:
		a.SubmittedAt = &day
	case workflow.StatusDepartmentApproved:
		a.DepartmentApprovedBy, a.DepartmentApprovedAt = &deptHead, &day
	case workflow.StatusApproved:
		if deptHead != "" {
			a.DepartmentApprovedBy, a.DepartmentApprovedAt = &deptHead, &day
		} else {
			a.SubmittedAt = &day
		}
		a.ApprovedBy, a.ApprovedAt = &approver, &day
	case workflow.StatusRejected:
		a.RejectedBy, a.RejectedAt = &approver, &day
		a.RejectionReason = strPtr("Not covered by the current project budget")
	}
	return a
}

func seedUsers(ctx context.Context, store *memory.Store, ids *SeededDataIDs, opts Options) error {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	userRepo := memory.NewUserRepository(store)
	for _, u := range []struct {
		email    string
		role     user.Role
		employee string
	}{
		{opts.AdminEmail, user.RoleAdmin, "NV001"},
		{ManagerEmail, user.RoleManager, "NV002"},
		{EmployeeEmail, user.RoleEmployee, "NV003"},
	} {
		created, err := userRepo.Create(ctx, user.User{
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			EmployeeID:   strPtr(ids.EmployeeIDs[u.employee]),
		})
		if err != nil {
			return err
		}
		ids.UserIDs[created.Email] = created.ID
	}
	return nil
}
