package user

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	svc := NewUserService(userRepo, employeeRepo, bcrypt.MinCost)

	emp, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: "NV100",
		FullName:     "Test Employee",
		Email:        "nv100@hris.local",
		HireDate:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	t.Run("creates hashed account", func(t *testing.T) {
		resp, err := svc.CreateUser(ctx, user.CreateUserRequest{
			Email:      " NV100@hris.local ",
			Password:   "password123",
			Role:       "employee",
			EmployeeID: &emp.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "nv100@hris.local", resp.Email)

		stored, err := userRepo.GetByID(ctx, resp.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "password123", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, user.CreateUserRequest{
			Email:      "nv100@hris.local",
			Password:   "password123",
			Role:       "manager",
			EmployeeID: &emp.ID,
		})
		assert.ErrorIs(t, err, user.ErrUserEmailExists)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, user.CreateUserRequest{
			Email:      "ghost@hris.local",
			Password:   "password123",
			Role:       "employee",
			EmployeeID: strPtr("missing"),
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, user.CreateUserRequest{
			Email:    "bad",
			Password: "short",
			Role:     "owner",
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 4)
	})

	t.Run("admin without employee", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, user.CreateUserRequest{
			Email:    "hr@hris.local",
			Password: "password123",
			Role:     "admin",
		})
		require.NoError(t, err)
	})

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
