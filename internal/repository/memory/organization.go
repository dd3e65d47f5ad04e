package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
)

type organizationRepositoryImpl struct {
	*crud[organization.Organization]
}

func NewOrganizationRepository(store *Store) organization.OrganizationRepository {
	return &organizationRepositoryImpl{&crud[organization.Organization]{
		store: store,
		table: store.organizations,
		id:    func(o organization.Organization) string { return o.ID },
		assign: func(o *organization.Organization, id string, now time.Time) {
			o.ID, o.CreatedAt, o.UpdatedAt = id, now, now
		},
		touch: func(o *organization.Organization, old organization.Organization, now time.Time) {
			o.CreatedAt, o.UpdatedAt = old.CreatedAt, now
		},
		notFound: organization.ErrOrganizationNotFound,
	}}
}

type departmentRepositoryImpl struct {
	*crud[organization.Department]
}

func NewDepartmentRepository(store *Store) organization.DepartmentRepository {
	return &departmentRepositoryImpl{&crud[organization.Department]{
		store: store,
		table: store.departments,
		id:    func(d organization.Department) string { return d.ID },
		assign: func(d *organization.Department, id string, now time.Time) {
			d.ID, d.CreatedAt, d.UpdatedAt = id, now, now
		},
		touch: func(d *organization.Department, old organization.Department, now time.Time) {
			d.CreatedAt, d.UpdatedAt = old.CreatedAt, now
		},
		notFound: organization.ErrDepartmentNotFound,
	}}
}

// ListByOrganization implements organization.DepartmentRepository.
func (r *departmentRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]organization.Department, error) {
	return r.where(ctx, func(d organization.Department) bool {
		return d.OrganizationID == organizationID
	}), nil
}
