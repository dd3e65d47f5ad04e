package organization

import "context"

type OrganizationService interface {
	CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error)
	GetOrganization(ctx context.Context, id string) (OrganizationResponse, error)
	ListOrganizations(ctx context.Context) ([]OrganizationResponse, error)
	UpdateOrganization(ctx context.Context, req UpdateOrganizationRequest) (OrganizationResponse, error)
	// DeleteOrganization fails with ErrOrganizationHasDepartments while any department belongs to it.
	DeleteOrganization(ctx context.Context, id string) error

	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (DepartmentResponse, error)
	ListDepartments(ctx context.Context, organizationID *string) ([]DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
}
