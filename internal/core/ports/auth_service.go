package ports

import (
	"context"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

// TokenClaims is what a verified bearer token asserts.
type TokenClaims struct {
	SubjectID string
	Role      domain.Role
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(subjectID string, role domain.Role) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// Authenticator resolves the Authorization header of a request into a Principal.
type Authenticator interface {
	Authenticate(ctx context.Context, authHeader string) (*domain.Principal, error)
}

// RegisterInput carries a registration request. AuthHeader is the raw
// Authorization header, empty when absent.
type RegisterInput struct {
	Username   string
	Password   string
	Role       domain.Role
	AuthHeader string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.PublicUser, error)
	Login(ctx context.Context, username, password string) (string, error)
}
