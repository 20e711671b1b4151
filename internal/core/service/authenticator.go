package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// Authenticator turns a bearer header into a Principal. The role comes from
// the live credential record, not from the token, so role changes apply to
// tokens already in circulation.
type Authenticator struct {
	tokens ports.TokenService
	users  ports.AuthRepository
}

var _ ports.Authenticator = (*Authenticator)(nil)

func NewAuthenticator(tokens ports.TokenService, users ports.AuthRepository) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

func (a *Authenticator) Authenticate(ctx context.Context, authHeader string) (*domain.Principal, error) {
	token, err := BearerToken(authHeader)
	if err != nil {
		return nil, err
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := a.users.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown subject", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	return &domain.Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// Authorize is a plain membership check against the route's allowed roles.
func Authorize(p *domain.Principal, allowed domain.RoleSet) error {
	if p == nil {
		return domain.ErrUnauthorized
	}
	if !allowed.Has(p.Role) {
		return domain.ErrForbidden
	}
	return nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("%w: missing authorization header", domain.ErrUnauthorized)
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: invalid authorization header", domain.ErrUnauthorized)
	}
	return strings.TrimSpace(token), nil
}
