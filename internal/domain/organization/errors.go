package organization

import "errors"

var (
	ErrOrganizationNotFound       = errors.New("organization not found")
	ErrOrganizationHasDepartments = errors.New("organization still has departments")
	ErrOrganizationCodeExists     = errors.New("organization code already exists")
	ErrDepartmentNotFound         = errors.New("department not found")
	ErrDepartmentCodeExists       = errors.New("department code already exists in this organization")
)
