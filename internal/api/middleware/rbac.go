package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/service"
)

// RBAC enforces role-based access control. It must run after Auth.
func RBAC(allowed domain.RoleSet) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, _ := PrincipalFrom(c)
			if err := service.Authorize(p, allowed); err != nil {
				return err
			}
			return next(c)
		}
	}
}
