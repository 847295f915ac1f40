package attendance

import "context"

type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Scope identifies who is reading attendance and for which company.
type Scope struct {
	CompanyID  string
	EmployeeID string
	Role       Role
}

// CanRead reports whether the scope may see the given employee's attendance.
// Owners and managers see their whole company; everyone else only themselves.
func (s Scope) CanRead(employeeID string) bool {
	if s.Role == RoleOwner || s.Role == RoleManager {
		return true
	}
	return s.EmployeeID != "" && s.EmployeeID == employeeID
}

type scopeKey struct{}

func WithScope(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

func ScopeFromContext(ctx context.Context) (Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(Scope)
	if !ok || scope.CompanyID == "" {
		return Scope{}, false
	}
	return scope, true
}
