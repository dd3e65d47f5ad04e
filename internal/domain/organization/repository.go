package organization

import "context"

type OrganizationRepository interface {
	Create(ctx context.Context, org Organization) (Organization, error)
	GetByID(ctx context.Context, id string) (Organization, error)
	List(ctx context.Context) ([]Organization, error)
	Update(ctx context.Context, org Organization) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Department, error)
	Update(ctx context.Context, dept Department) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
