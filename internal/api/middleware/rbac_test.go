package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

func newRBACContext(p *domain.Principal) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if p != nil {
		c.Set(principalKey, p)
	}
	return c
}

func TestRBAC_Allows(t *testing.T) {
	c := newRBACContext(&domain.Principal{UserID: "1", Role: domain.RoleBusOperator})

	called := false
	mw := RBAC(domain.NewRoleSet(domain.RoleAdmin, domain.RoleBusOperator))
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRBAC_Forbids(t *testing.T) {
	c := newRBACContext(&domain.Principal{UserID: "1", Role: domain.RoleCommuter})

	mw := RBAC(domain.NewRoleSet(domain.RoleAdmin, domain.RoleBusOperator))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRBAC_WithoutPrincipal(t *testing.T) {
	c := newRBACContext(nil)

	handler := RBAC(domain.AllRoles)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
