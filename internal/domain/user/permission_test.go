package user

import "testing"

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionRequestApprove, true},
		{RoleManager, PermissionRequestApprove, false},
		{RoleManager, PermissionRequestDepartmentApprove, true},
		{RoleEmployee, PermissionRequestDepartmentApprove, false},
		{RoleEmployee, PermissionRequestCreate, true},
		{Role("guest"), PermissionRequestCreate, false},
	}
	for _, c := range cases {
		if got := HasPermission(c.role, c.permission); got != c.want {
			t.Errorf("HasPermission(%s, %s) = %v, want %v", c.role, c.permission, got, c.want)
		}
	}
}
