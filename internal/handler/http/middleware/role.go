package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffly/ems-backend-go/internal/domain/user"
	"github.com/staffly/ems-backend-go/internal/handler/http/response"
)

// RequireManagement requires admin or manager role, mirroring the app's
// role-gated routes (add/edit/delete employees, reports). Denial is an
// access-denied envelope, never a fault.
func RequireManagement(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagementRoleRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrManagementRoleRequired)
			return
		}

		if !user.Role(roleStr).CanManage() {
			response.HandleError(w, user.ErrManagementRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
