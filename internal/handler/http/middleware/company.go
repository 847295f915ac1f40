package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireCompany puts the caller's company, employee and role on the request
// context. Tokens without a company are rejected.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		companyID, ok := claims["company_id"].(string)
		if !ok || companyID == "" {
			response.HandleError(w, attendance.ErrScopeRequired)
			return
		}

		// owners without an employee profile carry a null employee_id
		employeeID, _ := claims["employee_id"].(string)
		role, _ := claims["role"].(string)

		ctx := attendance.WithScope(r.Context(), attendance.Scope{
			CompanyID:  companyID,
			EmployeeID: employeeID,
			Role:       attendance.Role(role),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
