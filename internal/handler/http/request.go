package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
)

// decodeJSON reads the request body into dst and answers 400 on malformed input.
// An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Debug(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

func optionalQuery(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" || v == filter.All {
		return nil
	}
	return &v
}

func optionalBoolQuery(r *http.Request, key string) *bool {
	switch r.URL.Query().Get(key) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

func filterParams(r *http.Request) filter.Params {
	q := r.URL.Query()
	return filter.Params{
		Type:         q.Get("filter_type"),
		Date:         q.Get("date"),
		From:         q.Get("from"),
		To:           q.Get("to"),
		DepartmentID: q.Get("department_id"),
		EmployeeID:   q.Get("employee_id"),
	}
}

// scopedCriteria resolves the query filter. Callers lacking viewAll only ever see their own
// records, whatever employee_id they asked for.
func scopedCriteria(r *http.Request, viewAll user.Permission, now time.Time) (middleware.Identity, filter.Criteria, error) {
	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		return id, filter.Criteria{}, err
	}
	criteria, err := filterParams(r).Resolve(now)
	if err != nil {
		return id, filter.Criteria{}, err
	}
	if id.Can(viewAll) {
		return id, criteria, nil
	}
	if id.EmployeeID == "" {
		return id, filter.Criteria{}, user.ErrInsufficientPermissions
	}
	return id, criteria.RestrictTo(id.EmployeeID), nil
}

// ownerOrPermitted fails unless the caller holds viewAll or is the record's employee.
func ownerOrPermitted(id middleware.Identity, viewAll user.Permission, ownerEmployeeID string) error {
	if id.Can(viewAll) || (id.EmployeeID != "" && id.EmployeeID == ownerEmployeeID) {
		return nil
	}
	return user.ErrInsufficientPermissions
}

// ownEmployeeID returns the employee the caller may file requests for: anyone when they
// hold viewAll, otherwise themselves.
func ownEmployeeID(id middleware.Identity, viewAll user.Permission, requested string) (string, error) {
	if id.Can(viewAll) {
		if requested == "" {
			requested = id.EmployeeID
		}
		return requested, nil
	}
	if id.EmployeeID == "" {
		return requested, user.ErrInsufficientPermissions
	}
	return id.EmployeeID, nil
}

// authorizeOwned resolves the caller and checks they may touch the record whose owner
// lookup returns. A lookup error is written to w. With allowMissing the check passes for
// records that no longer exist so that deletes stay idempotent.
func authorizeOwned(w http.ResponseWriter, r *http.Request, viewAll user.Permission, allowMissing func(error) bool, owner func() (string, error)) (middleware.Identity, bool) {
	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return id, false
	}
	if id.Can(viewAll) {
		return id, true
	}

	employeeID, err := owner()
	if err != nil {
		if allowMissing != nil && allowMissing(err) {
			return id, true
		}
		response.HandleError(w, err)
		return id, false
	}
	if err := ownerOrPermitted(id, viewAll, employeeID); err != nil {
		response.HandleError(w, err)
		return id, false
	}
	return id, true
}
