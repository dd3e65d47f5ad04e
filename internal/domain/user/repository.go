package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	List(ctx context.Context) ([]User, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]User, error)
	ListByRole(ctx context.Context, roles ...Role) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
}
