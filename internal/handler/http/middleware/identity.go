package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// Identity is the caller as described by the access token claims.
type Identity struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

// IdentityFromRequest reads the verified claims placed in the context by jwtauth.Verifier.
func IdentityFromRequest(r *http.Request) (Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Identity{}, auth.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return Identity{}, auth.ErrInvalidToken
	}
	employeeID, _ := claims["employee_id"].(string)
	role, _ := claims["role"].(string)

	return Identity{UserID: userID, EmployeeID: employeeID, Role: user.Role(role)}, nil
}

// ActorID is the id recorded as approver or rejecter: the employee id, or the user id
// for accounts not linked to an employee.
func (i Identity) ActorID() string {
	if i.EmployeeID != "" {
		return i.EmployeeID
	}
	return i.UserID
}

func (i Identity) Can(permission user.Permission) bool {
	return user.HasPermission(i.Role, permission)
}
