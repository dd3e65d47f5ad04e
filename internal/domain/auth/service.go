package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Logout revokes the given access token until it expires.
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID string) (MeResponse, error)
}
