package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/api/middleware"
	"github.com/transitline/fleet-tracking/internal/core/domain"
)

// principal returns the caller injected by the Auth middleware. Handlers
// behind Auth always have one; a missing principal means a routing mistake
// and is reported as unauthenticated.
func principal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return p, nil
}
