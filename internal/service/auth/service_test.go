package auth

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
	testPassword  = "password123"
)

func newTestAuthService(t *testing.T) (auth.AuthService, *jwt.JWTService, user.User) {
	t.Helper()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	employeeID := "emp-42"
	u, err := userRepo.Create(context.Background(), user.User{
		Email:        "manager@hris.local",
		PasswordHash: string(hash),
		Role:         user.RoleManager,
		EmployeeID:   &employeeID,
	})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(userRepo, jwtService), jwtService, u
}

func TestLogin(t *testing.T) {
	svc, jwtService, u := newTestAuthService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "Manager@hris.local", Password: testPassword})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, u.ID, resp.User.ID)
		assert.Equal(t, "manager", resp.User.Role)

		token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
		require.NoError(t, err)
		employeeID, _ := token.Get("employee_id")
		assert.Equal(t, "emp-42", employeeID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@hris.local", Password: "wrong-password"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@hris.local", Password: testPassword})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("invalid request", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 2)
	})
}

func TestLogout(t *testing.T) {
	svc, jwtService, _ := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@hris.local", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))

	assert.ErrorIs(t, svc.Logout(ctx, resp.AccessToken), auth.ErrTokenRevoked)
	assert.ErrorIs(t, svc.Logout(ctx, "garbage"), auth.ErrInvalidToken)
	assert.ErrorIs(t, svc.Logout(ctx, ""), auth.ErrInvalidToken)
}

func TestMe(t *testing.T) {
	svc, _, u := newTestAuthService(t)
	ctx := context.Background()

	me, err := svc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, me.User.Email)
	assert.Contains(t, me.Permissions, user.PermissionRequestDepartmentApprove)
	assert.NotContains(t, me.Permissions, user.PermissionRequestApprove)

	_, err = svc.Me(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
