package service

import (
	"context"
	"errors"
	"testing"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		header string
		want   string
		ok     bool
	}{
		"valid":        {"Bearer abc", "abc", true},
		"lowercase":    {"bearer abc", "abc", true},
		"missing":      {"", "", false},
		"wrong scheme": {"Token abc", "", false},
		"no token":     {"Bearer ", "", false},
		"no space":     {"Bearerabc", "", false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := BearerToken(tc.header)
			if tc.ok {
				if err != nil || got != tc.want {
					t.Fatalf("got (%q, %v), want %q", got, err, tc.want)
				}
				return
			}
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestAuthenticator_UsesLiveRole(t *testing.T) {
	repo := newStubAuthRepo()
	tokens, _ := NewTokenService("secret")
	authn := NewAuthenticator(tokens, repo)

	user, _ := repo.Create(context.Background(), &domain.User{Username: "op", Role: domain.RoleBusOperator})
	token, _ := tokens.Issue(user.ID, domain.RoleBusOperator)

	// Demote after issuance; the gate must see the current role.
	repo.users[user.ID].Role = domain.RoleCommuter

	p, err := authn.Authenticate(context.Background(), "Bearer "+token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if p.Role != domain.RoleCommuter {
		t.Fatalf("expected live role %s, got %s", domain.RoleCommuter, p.Role)
	}
	if err := Authorize(p, domain.NewRoleSet(domain.RoleAdmin, domain.RoleBusOperator)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden after demotion, got %v", err)
	}
}

func TestAuthenticator_DeletedSubject(t *testing.T) {
	repo := newStubAuthRepo()
	tokens, _ := NewTokenService("secret")
	authn := NewAuthenticator(tokens, repo)

	token, _ := tokens.Issue("missing-user", domain.RoleAdmin)
	if _, err := authn.Authenticate(context.Background(), "Bearer "+token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthorize_NoHierarchy(t *testing.T) {
	admin := &domain.Principal{UserID: "1", Role: domain.RoleAdmin}
	if err := Authorize(admin, domain.NewRoleSet(domain.RoleBusOperator)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin must not be an implicit superset, got %v", err)
	}
	if err := Authorize(admin, domain.AllRoles); err != nil {
		t.Fatalf("admin in AllRoles: %v", err)
	}
	if err := Authorize(nil, domain.AllRoles); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("nil principal: expected ErrUnauthorized, got %v", err)
	}
}
