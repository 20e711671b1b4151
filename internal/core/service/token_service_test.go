package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

func TestNewTokenService_EmptySecret(t *testing.T) {
	if _, err := NewTokenService(""); !errors.Is(err, ErrMissingSigningKey) {
		t.Fatalf("expected ErrMissingSigningKey, got %v", err)
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService("secret")
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleBusOperator, domain.RoleCommuter} {
		token, err := svc.Issue("user-42", role)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		claims, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if claims.SubjectID != "user-42" || claims.Role != role {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	}
}

func TestTokenService_HasNoExpiry(t *testing.T) {
	svc, _ := NewTokenService("secret")
	token, _ := svc.Issue("user-1", domain.RoleAdmin)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := claims["exp"]; ok {
		t.Fatalf("token must not carry exp, got %v", claims["exp"])
	}
}

func TestTokenService_RejectsTampered(t *testing.T) {
	svc, _ := NewTokenService("secret")
	token, _ := svc.Issue("user-1", domain.RoleCommuter)

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	// Swap the payload for one claiming admin, keep the original signature.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1", "role": "admin"})
	forgedSigned, _ := forged.SignedString([]byte("other"))
	forgedParts := strings.Split(forgedSigned, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestTokenService_RejectsInvalidInputs(t *testing.T) {
	svc, _ := NewTokenService("secret")
	other, _ := NewTokenService("different")
	foreign, _ := other.Issue("user-1", domain.RoleAdmin)

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1", "role": "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	unknownRole, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1", "role": "root"}).
		SignedString([]byte("secret"))
	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"}).
		SignedString([]byte("secret"))

	cases := map[string]string{
		"empty":        "",
		"malformed":    "not-a-token",
		"wrong key":    foreign,
		"alg none":     noneToken,
		"unknown role": unknownRole,
		"no subject":   noSubject,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}
