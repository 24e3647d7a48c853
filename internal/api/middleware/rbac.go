package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautiflow/dashboard-api/internal/api/metrics"
)

// RBAC enforces role-based access control. With no roles listed, any
// authenticated identity passes; otherwise the role must be in the allowed
// set. An empty role always fails closed.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return deny(c, role)
			}
			if len(allowed) > 0 {
				if _, ok := allowed[role]; !ok {
					return deny(c, role)
				}
			}
			return next(c)
		}
	}
}

func deny(c echo.Context, role string) error {
	if role == "" {
		role = "none"
	}
	metrics.AccessDeniedTotal.WithLabelValues(role).Inc()
	return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
}
