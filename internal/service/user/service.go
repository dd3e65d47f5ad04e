package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type userServiceImpl struct {
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	bcryptCost   int
}

// NewUserService builds the account service. A bcryptCost of 0 uses bcrypt.DefaultCost.
func NewUserService(userRepo user.UserRepository, employeeRepo employee.EmployeeRepository, bcryptCost int) user.UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		bcryptCost:   bcryptCost,
	}
}

// CreateUser implements user.UserService.
func (s *userServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.EmployeeID != nil && *req.EmployeeID != "" {
		if _, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return user.UserResponse{}, err
			}
			return user.UserResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) {
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created", "user_id", created.ID, "role", created.Role)
	return user.ToResponse(created), nil
}

// ListUsers implements user.UserService.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}
