package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/response"
)

// RequireRole lets the request through when the caller has one of the roles.
func RequireRole(roles ...principal.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		if !p.Is(roles...) {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// StaffOnly allows administrators and managers.
func StaffOnly() gin.HandlerFunc {
	return RequireRole(principal.RoleAdministrator, principal.RoleManager)
}

// EmployeesOnly allows every role that works for an establishment.
func EmployeesOnly() gin.HandlerFunc {
	return RequireRole(principal.Employees...)
}
