package user

type Permission string

const (
	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Organization and master data
	PermissionOrganizationView   Permission = "organization.view"
	PermissionOrganizationManage Permission = "organization.manage"
	PermissionMasterManage       Permission = "master.manage"

	// Leave, overtime and work reports
	PermissionRequestCreate            Permission = "request.create"
	PermissionRequestViewAll           Permission = "request.view_all"
	PermissionRequestDepartmentApprove Permission = "request.department_approve"
	PermissionRequestApprove           Permission = "request.approve"
	PermissionReportReview             Permission = "report.review"

	// Timekeeping and shifts
	PermissionTimekeepingViewAll Permission = "timekeeping.view_all"
	PermissionTimekeepingManage  Permission = "timekeeping.manage"
	PermissionScheduleView       Permission = "schedule.view"
	PermissionScheduleManage     Permission = "schedule.manage"

	// Recruitment
	PermissionRecruitmentManage Permission = "recruitment.manage"

	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionOrganizationView,
		PermissionOrganizationManage,
		PermissionMasterManage,
		PermissionRequestCreate,
		PermissionRequestViewAll,
		PermissionRequestDepartmentApprove,
		PermissionRequestApprove,
		PermissionReportReview,
		PermissionTimekeepingViewAll,
		PermissionTimekeepingManage,
		PermissionScheduleView,
		PermissionScheduleManage,
		PermissionRecruitmentManage,
		PermissionDashboardView,
		PermissionUserManage,
	},
	RoleManager: {
		// Manager signs off first-stage approvals and reviews reports
		PermissionEmployeeViewAll,
		PermissionOrganizationView,
		PermissionRequestCreate,
		PermissionRequestViewAll,
		PermissionRequestDepartmentApprove,
		PermissionReportReview,
		PermissionTimekeepingViewAll,
		PermissionScheduleView,
		PermissionDashboardView,
	},
	RoleEmployee: {
		// Employee has basic access
		PermissionOrganizationView,
		PermissionRequestCreate,
		PermissionScheduleView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
