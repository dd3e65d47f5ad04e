package memory

import (
	"context"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
)

type userRepositoryImpl struct {
	*crud[user.User]
}

func NewUserRepository(store *Store) user.UserRepository {
	return &userRepositoryImpl{&crud[user.User]{
		store: store,
		table: store.users,
		id:    func(u user.User) string { return u.ID },
		assign: func(u *user.User, id string, now time.Time) {
			u.ID, u.CreatedAt, u.UpdatedAt = id, now, now
		},
		touch: func(u *user.User, old user.User, now time.Time) {
			u.CreatedAt, u.UpdatedAt = old.CreatedAt, now
		},
		notFound: user.ErrUserNotFound,
	}}
}

// Create rejects a second account with the same email.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	err := WithTransaction(ctx, r.store, func(ctx context.Context) error {
		if _, taken := r.first(ctx, func(u user.User) bool {
			return strings.EqualFold(u.Email, newUser.Email)
		}); taken {
			return user.ErrUserEmailExists
		}
		created, err := r.crud.Create(ctx, newUser)
		newUser = created
		return err
	})
	if err != nil {
		return user.User{}, err
	}
	return newUser, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := r.first(ctx, func(u user.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// ListByEmployeeID implements user.UserRepository.
func (r *userRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]user.User, error) {
	return r.where(ctx, func(u user.User) bool {
		return u.EmployeeID != nil && *u.EmployeeID == employeeID
	}), nil
}

// ListByRole implements user.UserRepository.
func (r *userRepositoryImpl) ListByRole(ctx context.Context, roles ...user.Role) ([]user.User, error) {
	return r.where(ctx, func(u user.User) bool {
		for _, role := range roles {
			if u.Role == role {
				return true
			}
		}
		return false
	}), nil
}
