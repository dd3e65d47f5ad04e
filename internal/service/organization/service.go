package organization

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
)

type OrganizationServiceImpl struct {
	store          *memory.Store
	orgRepo        organization.OrganizationRepository
	departmentRepo organization.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewOrganizationService(
	store *memory.Store,
	orgRepo organization.OrganizationRepository,
	departmentRepo organization.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
) organization.OrganizationService {
	return &OrganizationServiceImpl{
		store:          store,
		orgRepo:        orgRepo,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// CreateOrganization implements organization.OrganizationService.
func (s *OrganizationServiceImpl) CreateOrganization(ctx context.Context, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	var created organization.Organization
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if err := s.ensureOrganizationCode(ctx, "", req.Code); err != nil {
			return err
		}
		var err error
		created, err = s.orgRepo.Create(ctx, organization.Organization{
			Name:    strings.TrimSpace(req.Name),
			Code:    req.Code,
			Address: req.Address,
			Phone:   req.Phone,
			Email:   req.Email,
		})
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	slog.Info("Organization created", "organization_id", created.ID, "code", created.Code)
	return organization.ToOrganizationResponse(created, nil), nil
}

func (s *OrganizationServiceImpl) ensureOrganizationCode(ctx context.Context, excludeID, code string) error {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}
	for _, o := range orgs {
		if o.ID != excludeID && strings.EqualFold(o.Code, code) {
			return organization.ErrOrganizationCodeExists
		}
	}
	return nil
}

// GetOrganization implements organization.OrganizationService.
func (s *OrganizationServiceImpl) GetOrganization(ctx context.Context, id string) (organization.OrganizationResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	departments, err := s.departmentRepo.ListByOrganization(ctx, id)
	if err != nil {
		return organization.OrganizationResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}
	return organization.ToOrganizationResponse(org, departments), nil
}

// ListOrganizations implements organization.OrganizationService.
func (s *OrganizationServiceImpl) ListOrganizations(ctx context.Context) ([]organization.OrganizationResponse, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	byOrg := make(map[string][]organization.Department)
	for _, d := range departments {
		byOrg[d.OrganizationID] = append(byOrg[d.OrganizationID], d)
	}

	responses := make([]organization.OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		responses = append(responses, organization.ToOrganizationResponse(o, byOrg[o.ID]))
	}
	return responses, nil
}

// UpdateOrganization implements organization.OrganizationService.
func (s *OrganizationServiceImpl) UpdateOrganization(ctx context.Context, req organization.UpdateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		org, err := s.orgRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&org)
		if err := s.ensureOrganizationCode(ctx, org.ID, org.Code); err != nil {
			return err
		}
		found, err := s.orgRepo.Update(ctx, org)
		if err != nil {
			return fmt.Errorf("failed to update organization: %w", err)
		}
		if !found {
			return organization.ErrOrganizationNotFound
		}
		return nil
	})
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	return s.GetOrganization(ctx, req.ID)
}

// DeleteOrganization refuses while departments still reference the organization.
func (s *OrganizationServiceImpl) DeleteOrganization(ctx context.Context, id string) error {
	return memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		departments, err := s.departmentRepo.ListByOrganization(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list departments: %w", err)
		}
		if len(departments) > 0 {
			return organization.ErrOrganizationHasDepartments
		}

		found, err := s.orgRepo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete organization: %w", err)
		}
		if found {
			slog.Info("Organization deleted", "organization_id", id)
		}
		return nil
	})
}

// CreateDepartment implements organization.OrganizationService.
func (s *OrganizationServiceImpl) CreateDepartment(ctx context.Context, req organization.CreateDepartmentRequest) (organization.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.DepartmentResponse{}, err
	}

	dept := organization.Department{
		OrganizationID: req.OrganizationID,
		Name:           strings.TrimSpace(req.Name),
		Code:           req.Code,
		ManagerID:      req.ManagerID,
		Description:    req.Description,
	}

	var created organization.Department
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if err := s.checkDepartment(ctx, dept); err != nil {
			return err
		}
		var err error
		created, err = s.departmentRepo.Create(ctx, dept)
		if err != nil {
			return fmt.Errorf("failed to create department: %w", err)
		}
		return nil
	})
	if err != nil {
		return organization.DepartmentResponse{}, err
	}

	slog.Info("Department created", "department_id", created.ID, "organization_id", created.OrganizationID)
	return organization.ToDepartmentResponse(created), nil
}

// checkDepartment verifies references and that the code is unique within the organization.
func (s *OrganizationServiceImpl) checkDepartment(ctx context.Context, dept organization.Department) error {
	if _, err := s.orgRepo.GetByID(ctx, dept.OrganizationID); err != nil {
		return err
	}
	if dept.ManagerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *dept.ManagerID); err != nil {
			return err
		}
	}
	siblings, err := s.departmentRepo.ListByOrganization(ctx, dept.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to list departments: %w", err)
	}
	for _, d := range siblings {
		if d.ID != dept.ID && strings.EqualFold(d.Code, dept.Code) {
			return organization.ErrDepartmentCodeExists
		}
	}
	return nil
}

// GetDepartment implements organization.OrganizationService.
func (s *OrganizationServiceImpl) GetDepartment(ctx context.Context, id string) (organization.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return organization.DepartmentResponse{}, err
	}
	return organization.ToDepartmentResponse(dept), nil
}

// ListDepartments implements organization.OrganizationService.
func (s *OrganizationServiceImpl) ListDepartments(ctx context.Context, organizationID *string) ([]organization.DepartmentResponse, error) {
	var (
		departments []organization.Department
		err         error
	)
	if organizationID != nil {
		departments, err = s.departmentRepo.ListByOrganization(ctx, *organizationID)
	} else {
		departments, err = s.departmentRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]organization.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, organization.ToDepartmentResponse(d))
	}
	return responses, nil
}

// UpdateDepartment implements organization.OrganizationService.
func (s *OrganizationServiceImpl) UpdateDepartment(ctx context.Context, req organization.UpdateDepartmentRequest) (organization.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.DepartmentResponse{}, err
	}

	var updated organization.Department
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		dept, err := s.departmentRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&dept)
		if err := s.checkDepartment(ctx, dept); err != nil {
			return err
		}
		found, err := s.departmentRepo.Update(ctx, dept)
		if err != nil {
			return fmt.Errorf("failed to update department: %w", err)
		}
		if !found {
			return organization.ErrDepartmentNotFound
		}
		updated = dept
		return nil
	})
	if err != nil {
		return organization.DepartmentResponse{}, err
	}
	return organization.ToDepartmentResponse(updated), nil
}

// DeleteDepartment removes the department without touching membership rows or requests.
func (s *OrganizationServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	found, err := s.departmentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if found {
		slog.Info("Department deleted", "department_id", id)
	}
	return nil
}
